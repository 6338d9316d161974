package booking

import (
	"context"
	"fmt"
	"testing"

	domain "github.com/careslot/appointment-api/internal/domain/booking"
	"github.com/careslot/appointment-api/internal/httperr"
	"github.com/careslot/appointment-api/internal/models"
	"github.com/careslot/appointment-api/internal/payment"
	"github.com/careslot/appointment-api/internal/timezone"
)

// fakeProvider records created orders and answers verification from a
// scripted orderID -> result map.
type fakeProvider struct {
	results map[string]payment.Result
	created int
}

var _ payment.Provider = (*fakeProvider)(nil)

func (p *fakeProvider) Name() string { return "fakepay" }

func (p *fakeProvider) CreateOrder(ctx context.Context, ap *models.Appointment) (*payment.Order, error) {
	p.created++
	orderID := fmt.Sprintf("order_%d", p.created)
	if p.results == nil {
		p.results = make(map[string]payment.Result)
	}
	p.results[orderID] = payment.Result{Paid: true, Reference: ap.Reference}
	return &payment.Order{
		Provider:  p.Name(),
		OrderID:   orderID,
		Amount:    ap.Amount,
		Currency:  "INR",
		Reference: ap.Reference,
	}, nil
}

func (p *fakeProvider) VerifyOrder(ctx context.Context, orderID string) (*payment.Result, error) {
	res, ok := p.results[orderID]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeUpstreamFailure)
	}
	return &res, nil
}

func TestStartPayment(t *testing.T) {
	repo := seededRepo()
	id := bookOne(t, repo, "2099-01-10", "10:00 AM")

	provider := &fakeProvider{}
	uc := NewStartPayment(repo, payment.NewRegistry(provider), nil)

	order, err := uc.Execute(context.Background(), 10, id, "fakepay")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.OrderID == "" || order.Amount != 500 {
		t.Fatalf("unexpected order %+v", order)
	}

	stored := repo.stored(id)
	if stored.PaymentProvider != "fakepay" || stored.PaymentOrderID != order.OrderID {
		t.Fatalf("order not persisted on appointment: %+v", stored)
	}
}

func TestStartPaymentRejections(t *testing.T) {
	repo := seededRepo()
	id := bookOne(t, repo, "2099-01-10", "10:30 AM")

	provider := &fakeProvider{}
	uc := NewStartPayment(repo, payment.NewRegistry(provider), nil)

	if _, err := uc.Execute(context.Background(), 77, id, "fakepay"); !httperr.IsBusiness(err, httperr.CodeUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}

	if _, err := uc.Execute(context.Background(), 10, id, "nopay"); !httperr.IsBusiness(err, httperr.CodeValidation) {
		t.Fatalf("expected validation_error for unknown provider, got %v", err)
	}

	cancel := NewCancelAppointment(repo, nil, nil, timezone.DefaultTimezone)
	if _, err := cancel.Execute(context.Background(), 10, id); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if _, err := uc.Execute(context.Background(), 10, id, "fakepay"); !httperr.IsBusiness(err, httperr.CodeInvalidState) {
		t.Fatalf("expected invalid_state for cancelled appointment, got %v", err)
	}
}

func TestConfirmPayment(t *testing.T) {
	repo := seededRepo()
	id := bookOne(t, repo, "2099-01-10", "11:00 AM")

	provider := &fakeProvider{}
	registry := payment.NewRegistry(provider)
	start := NewStartPayment(repo, registry, nil)
	confirm := NewConfirmPayment(repo, registry, nil, nil, timezone.DefaultTimezone, "INR")

	order, err := start.Execute(context.Background(), 10, id, "fakepay")
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}

	ap, err := confirm.Execute(context.Background(), "fakepay", order.OrderID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.PaymentStatus != string(domain.PaymentPaid) || ap.PaidAt == nil {
		t.Fatalf("expected paid appointment, got %s", ap.PaymentStatus)
	}
	if repo.stored(id).PaymentStatus != string(domain.PaymentPaid) {
		t.Fatal("paid state not persisted")
	}

	// A second confirmation of the same order must not succeed twice.
	if _, err := confirm.Execute(context.Background(), "fakepay", order.OrderID); !httperr.IsBusiness(err, httperr.CodeInvalidState) {
		t.Fatalf("expected invalid_state on repeated confirm, got %v", err)
	}
}

func TestConfirmPaymentUnpaidOrder(t *testing.T) {
	repo := seededRepo()
	id := bookOne(t, repo, "2099-01-10", "11:30 AM")

	provider := &fakeProvider{}
	registry := payment.NewRegistry(provider)
	start := NewStartPayment(repo, registry, nil)
	confirm := NewConfirmPayment(repo, registry, nil, nil, timezone.DefaultTimezone, "INR")

	order, err := start.Execute(context.Background(), 10, id, "fakepay")
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	provider.results[order.OrderID] = payment.Result{Paid: false}

	_, err = confirm.Execute(context.Background(), "fakepay", order.OrderID)
	if !httperr.IsBusiness(err, "payment_failed") {
		t.Fatalf("expected payment_failed, got %v", err)
	}
	if repo.stored(id).PaymentStatus != string(domain.PaymentPending) {
		t.Fatal("unpaid confirmation must not mutate the appointment")
	}
}

func TestConfirmPaymentCancelledAppointment(t *testing.T) {
	repo := seededRepo()
	id := bookOne(t, repo, "2099-01-10", "12:00 PM")

	provider := &fakeProvider{}
	registry := payment.NewRegistry(provider)
	start := NewStartPayment(repo, registry, nil)
	confirm := NewConfirmPayment(repo, registry, nil, nil, timezone.DefaultTimezone, "INR")

	order, err := start.Execute(context.Background(), 10, id, "fakepay")
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}

	cancel := NewCancelAppointment(repo, nil, nil, timezone.DefaultTimezone)
	if _, err := cancel.Execute(context.Background(), 10, id); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	_, err = confirm.Execute(context.Background(), "fakepay", order.OrderID)
	if !httperr.IsBusiness(err, httperr.CodeInvalidState) {
		t.Fatalf("expected invalid_state, got %v", err)
	}
	if repo.stored(id).PaymentStatus != string(domain.PaymentPending) {
		t.Fatal("cancelled appointment must keep its pending payment state")
	}
}
