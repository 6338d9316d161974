package booking

import (
	"context"

	"github.com/careslot/appointment-api/internal/audit"
	domain "github.com/careslot/appointment-api/internal/domain/booking"
	"github.com/careslot/appointment-api/internal/httperr"
	"github.com/careslot/appointment-api/internal/payment"
)

type StartPayment struct {
	repo      domain.Repository
	providers *payment.Registry
	audit     *audit.Dispatcher
}

func NewStartPayment(
	repo domain.Repository,
	providers *payment.Registry,
	audit *audit.Dispatcher,
) *StartPayment {
	return &StartPayment{
		repo:      repo,
		providers: providers,
		audit:     audit,
	}
}

func (uc *StartPayment) Execute(
	ctx context.Context,
	patientID uint,
	appointmentID uint,
	providerName string,
) (*payment.Order, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if ap.PatientID != patientID {
		return nil, httperr.ErrBusiness(httperr.CodeUnauthorized)
	}

	if err := domain.CanMarkPaid(
		domain.Status(ap.Status),
		domain.PaymentStatus(ap.PaymentStatus),
	); err != nil {
		return nil, err
	}

	provider, err := uc.providers.Get(providerName)
	if err != nil {
		return nil, err
	}

	order, err := provider.CreateOrder(ctx, ap)
	if err != nil {
		return nil, err
	}

	ap.PaymentProvider = provider.Name()
	ap.PaymentOrderID = order.OrderID
	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorRole: "patient",
		ActorID:   &patientID,
		Action:    "payment_started",
		Entity:    "appointment",
		EntityID:  &ap.ID,
		Metadata: map[string]any{
			"provider": provider.Name(),
			"order_id": order.OrderID,
		},
	})

	return order, nil
}
