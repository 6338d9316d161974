package payment

import (
	"context"
	"math"

	razorpay "github.com/razorpay/razorpay-go"

	"github.com/careslot/appointment-api/internal/httperr"
	"github.com/careslot/appointment-api/internal/models"
)

const ProviderRazorpay = "razorpay"

type RazorpayProvider struct {
	client   *razorpay.Client
	currency string
}

func NewRazorpayProvider(keyID, keySecret, currency string) *RazorpayProvider {
	return &RazorpayProvider{
		client:   razorpay.NewClient(keyID, keySecret),
		currency: currency,
	}
}

func (p *RazorpayProvider) Name() string {
	return ProviderRazorpay
}

// subunits converts a fee to the smallest currency unit Razorpay counts in,
// rounding so 499.99 becomes 49999 and not 49998.
func subunits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func (p *RazorpayProvider) CreateOrder(
	ctx context.Context,
	ap *models.Appointment,
) (*Order, error) {

	data := map[string]interface{}{
		"amount":   subunits(ap.Amount),
		"currency": p.currency,
		"receipt":  ap.Reference,
	}

	body, err := p.client.Order.Create(data, nil)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeUpstreamFailure)
	}

	orderID, _ := body["id"].(string)
	if orderID == "" {
		return nil, httperr.ErrBusiness(httperr.CodeUpstreamFailure)
	}

	return &Order{
		Provider:  ProviderRazorpay,
		OrderID:   orderID,
		Amount:    ap.Amount,
		Currency:  p.currency,
		Reference: ap.Reference,
	}, nil
}

func (p *RazorpayProvider) VerifyOrder(
	ctx context.Context,
	orderID string,
) (*Result, error) {

	body, err := p.client.Order.Fetch(orderID, nil, nil)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeUpstreamFailure)
	}

	status, _ := body["status"].(string)
	reference, _ := body["receipt"].(string)

	return &Result{
		Paid:      status == "paid",
		Reference: reference,
	}, nil
}

var _ Provider = (*RazorpayProvider)(nil)
