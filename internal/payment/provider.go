package payment

import (
	"context"

	"github.com/careslot/appointment-api/internal/httperr"
	"github.com/careslot/appointment-api/internal/models"
)

// Order is a gateway checkout created for one appointment. The appointment
// reference travels to the gateway and comes back on verification, which is
// the only coupling this core has to either provider.
type Order struct {
	Provider    string  `json:"provider"`
	OrderID     string  `json:"order_id"`
	CheckoutURL string  `json:"checkout_url,omitempty"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Reference   string  `json:"reference"`
}

type Result struct {
	Paid      bool
	Reference string
}

// Provider is the single capability both gateways implement: create a
// checkout for an appointment, and verify what happened to it.
type Provider interface {
	Name() string
	CreateOrder(ctx context.Context, ap *models.Appointment) (*Order, error)
	VerifyOrder(ctx context.Context, orderID string) (*Result, error)
}

type Registry struct {
	providers map[string]Provider
}

func NewRegistry(providers ...Provider) *Registry {
	m := make(map[string]Provider, len(providers))
	for _, p := range providers {
		m[p.Name()] = p
	}
	return &Registry{providers: m}
}

func (r *Registry) Get(name string) (Provider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}
	return p, nil
}
