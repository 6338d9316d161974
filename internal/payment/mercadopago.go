package payment

import (
	"context"
	"strconv"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	mppayment "github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/careslot/appointment-api/internal/httperr"
	"github.com/careslot/appointment-api/internal/models"
)

const ProviderMercadoPago = "mercadopago"

type MercadoPagoProvider struct {
	preferences preference.Client
	payments    mppayment.Client
	currency    string
}

func NewMercadoPagoProvider(accessToken, currency string) (*MercadoPagoProvider, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}

	return &MercadoPagoProvider{
		preferences: preference.NewClient(cfg),
		payments:    mppayment.NewClient(cfg),
		currency:    currency,
	}, nil
}

func (p *MercadoPagoProvider) Name() string {
	return ProviderMercadoPago
}

func (p *MercadoPagoProvider) CreateOrder(
	ctx context.Context,
	ap *models.Appointment,
) (*Order, error) {

	request := preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:     "Appointment fees",
				Quantity:  1,
				UnitPrice: ap.Amount,
			},
		},
		ExternalReference: ap.Reference,
	}

	resource, err := p.preferences.Create(ctx, request)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeUpstreamFailure)
	}

	return &Order{
		Provider:    ProviderMercadoPago,
		OrderID:     resource.ID,
		CheckoutURL: resource.InitPoint,
		Amount:      ap.Amount,
		Currency:    p.currency,
		Reference:   ap.Reference,
	}, nil
}

// VerifyOrder resolves the payment the gateway reported for the checkout.
// MercadoPago identifies payments numerically.
func (p *MercadoPagoProvider) VerifyOrder(
	ctx context.Context,
	orderID string,
) (*Result, error) {

	paymentID, err := strconv.Atoi(orderID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	resource, err := p.payments.Get(ctx, paymentID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeUpstreamFailure)
	}

	return &Result{
		Paid:      resource.Status == "approved",
		Reference: resource.ExternalReference,
	}, nil
}

var _ Provider = (*MercadoPagoProvider)(nil)
