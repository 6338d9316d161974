package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/careslot/appointment-api/internal/audit"
	"github.com/careslot/appointment-api/internal/cache"
	domain "github.com/careslot/appointment-api/internal/domain/booking"
	"github.com/careslot/appointment-api/internal/httperr"
	"github.com/careslot/appointment-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	PatientID uint
	DoctorID  uint

	Date string
	Time string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  domain.Repository
	slots *cache.SlotCache
	audit *audit.Dispatcher
}

func NewBookAppointment(
	repo domain.Repository,
	slots *cache.SlotCache,
	audit *audit.Dispatcher,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		slots: slots,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	if err := domain.ValidateSlot(in.Date, in.Time); err != nil {
		return nil, err
	}

	doctor, err := uc.repo.GetDoctorByID(ctx, in.DoctorID)
	if err != nil {
		return nil, err
	}

	if !doctor.Available {
		return nil, httperr.ErrBusiness(httperr.CodeDoctorUnavailable)
	}

	patient, err := uc.repo.GetPatientByID(ctx, in.PatientID)
	if err != nil {
		return nil, err
	}

	// Fast-path ledger check. The authoritative decision is the atomic
	// reserve below; this only spares a doomed transaction.
	times, err := uc.repo.BookedTimes(ctx, in.DoctorID, in.Date)
	if err != nil {
		return nil, err
	}
	ledger := domain.Ledger{in.Date: times}
	if ledger.IsBooked(in.Date, in.Time) {
		return nil, httperr.ErrBusiness(httperr.CodeSlotConflict)
	}

	ap := &models.Appointment{
		Reference: uuid.NewString(),
		PatientID: in.PatientID,
		DoctorID:  in.DoctorID,
		SlotDate:  in.Date,
		SlotTime:  in.Time,
		Amount:    doctor.Fees,

		Status:        string(domain.InitialStatus()),
		PaymentStatus: string(domain.PaymentPending),

		DoctorSnapshot:  domain.SnapshotDoctor(doctor),
		PatientSnapshot: domain.SnapshotPatient(patient),
	}

	// Reserve + create atomically; the loser of a concurrent race gets
	// slot_conflict here.
	if err := uc.repo.CreateBooked(ctx, ap); err != nil {
		return nil, err
	}

	uc.slots.Invalidate(ctx, in.DoctorID, in.Date)

	uc.audit.Dispatch(audit.Event{
		ActorRole: "patient",
		ActorID:   &in.PatientID,
		Action:    "appointment_booked",
		Entity:    "appointment",
		EntityID:  &ap.ID,
		Metadata: map[string]any{
			"doctor_id": in.DoctorID,
			"slot_date": in.Date,
			"slot_time": in.Time,
		},
	})

	return ap, nil
}
