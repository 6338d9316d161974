package booking

import (
	"context"

	"github.com/careslot/appointment-api/internal/audit"
	"github.com/careslot/appointment-api/internal/cache"
	domain "github.com/careslot/appointment-api/internal/domain/booking"
	"github.com/careslot/appointment-api/internal/httperr"
	"github.com/careslot/appointment-api/internal/models"
	"github.com/careslot/appointment-api/internal/timezone"
)

type CancelAppointment struct {
	repo   domain.Repository
	slots  *cache.SlotCache
	audit  *audit.Dispatcher
	clinic string
}

func NewCancelAppointment(
	repo domain.Repository,
	slots *cache.SlotCache,
	audit *audit.Dispatcher,
	clinicTimezone string,
) *CancelAppointment {
	return &CancelAppointment{
		repo:   repo,
		slots:  slots,
		audit:  audit,
		clinic: clinicTimezone,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	patientID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if ap.PatientID != patientID {
		return nil, httperr.ErrBusiness(httperr.CodeUnauthorized)
	}

	// Repeated cancellation is a no-op success so client retries are safe.
	// The release still runs: a retry after a failed release must free the
	// slot, and releasing an absent slot is harmless.
	if domain.Status(ap.Status) == domain.StatusCancelled {
		if err := uc.repo.ReleaseSlot(ctx, ap.DoctorID, ap.SlotDate, ap.SlotTime); err != nil {
			return nil, err
		}
		uc.slots.Invalidate(ctx, ap.DoctorID, ap.SlotDate)
		return ap, nil
	}

	now := timezone.NowIn(uc.clinic)
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// Release after the status flip. The slot may already be absent; release
	// tolerates that.
	if err := uc.repo.ReleaseSlot(ctx, ap.DoctorID, ap.SlotDate, ap.SlotTime); err != nil {
		return nil, err
	}

	uc.slots.Invalidate(ctx, ap.DoctorID, ap.SlotDate)

	uc.audit.Dispatch(audit.Event{
		ActorRole: "patient",
		ActorID:   &patientID,
		Action:    "appointment_cancelled",
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return ap, nil
}
