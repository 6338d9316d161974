package booking

import (
	"context"

	"github.com/careslot/appointment-api/internal/audit"
	domain "github.com/careslot/appointment-api/internal/domain/booking"
	"github.com/careslot/appointment-api/internal/httperr"
	"github.com/careslot/appointment-api/internal/models"
	"github.com/careslot/appointment-api/internal/timezone"
)

type CompleteAppointment struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	clinic string
}

func NewCompleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	clinicTimezone string,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:   repo,
		audit:  audit,
		clinic: clinicTimezone,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	doctorID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if ap.DoctorID != doctorID {
		return nil, httperr.ErrBusiness(httperr.CodeUnauthorized)
	}

	now := timezone.NowIn(uc.clinic)
	if err := domain.Complete(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorRole: "doctor",
		ActorID:   &doctorID,
		Action:    "appointment_completed",
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return ap, nil
}
