package booking

import (
	"context"
	"log"

	"github.com/careslot/appointment-api/internal/audit"
	domain "github.com/careslot/appointment-api/internal/domain/booking"
	"github.com/careslot/appointment-api/internal/httperr"
	"github.com/careslot/appointment-api/internal/invoice"
	"github.com/careslot/appointment-api/internal/mail"
	"github.com/careslot/appointment-api/internal/models"
	"github.com/careslot/appointment-api/internal/payment"
	"github.com/careslot/appointment-api/internal/timezone"
)

type ConfirmPayment struct {
	repo      domain.Repository
	providers *payment.Registry
	audit     *audit.Dispatcher
	mailer    *mail.Mailer
	clinic    string
	currency  string
}

func NewConfirmPayment(
	repo domain.Repository,
	providers *payment.Registry,
	audit *audit.Dispatcher,
	mailer *mail.Mailer,
	clinicTimezone string,
	currency string,
) *ConfirmPayment {
	return &ConfirmPayment{
		repo:      repo,
		providers: providers,
		audit:     audit,
		mailer:    mailer,
		clinic:    clinicTimezone,
		currency:  currency,
	}
}

// Execute settles a gateway callback. Payment never touches the slot ledger:
// a paid appointment that later gets cancelled frees its slot through the
// cancellation path only.
func (uc *ConfirmPayment) Execute(
	ctx context.Context,
	providerName string,
	orderID string,
) (*models.Appointment, error) {

	provider, err := uc.providers.Get(providerName)
	if err != nil {
		return nil, err
	}

	result, err := provider.VerifyOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !result.Paid {
		return nil, httperr.ErrBusiness("payment_failed")
	}

	ap, err := uc.repo.GetAppointmentByReference(ctx, result.Reference)
	if err != nil {
		return nil, err
	}

	// A cancelled (or completed, or already paid) appointment rejects the
	// confirmation without mutating anything.
	now := timezone.NowIn(uc.clinic)
	if err := domain.MarkPaid(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorRole: "system",
		Action:    "payment_confirmed",
		Entity:    "appointment",
		EntityID:  &ap.ID,
		Metadata: map[string]any{
			"provider": providerName,
			"order_id": orderID,
		},
	})

	uc.sendReceipt(ap)

	return ap, nil
}

func (uc *ConfirmPayment) sendReceipt(ap *models.Appointment) {
	if uc.mailer == nil {
		return
	}

	snapshot, err := domain.ParsePatientSnapshot(ap.PatientSnapshot)
	if err != nil || snapshot.Email == "" {
		return
	}

	ap2 := *ap
	currency := uc.currency

	go func() {
		pdf, err := invoice.GenerateReceipt(&ap2, currency)
		if err != nil {
			log.Println("receipt pdf error:", err)
			return
		}
		if err := uc.mailer.SendReceipt(snapshot.Email, ap2.Reference, pdf); err != nil {
			log.Println("receipt mail error:", err)
		}
	}()
}
