package booking

import (
	"context"

	domain "github.com/careslot/appointment-api/internal/domain/booking"
	"github.com/careslot/appointment-api/internal/dto"
	"github.com/careslot/appointment-api/internal/httperr"
	"github.com/careslot/appointment-api/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) ForPatient(
	ctx context.Context,
	patientID uint,
) ([]dto.AppointmentListDTO, error) {

	aps, err := uc.repo.ListAppointmentsForPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	return toListDTOs(aps), nil
}

func (uc *ListAppointments) ForDoctor(
	ctx context.Context,
	doctorID uint,
	date string,
) ([]dto.AppointmentListDTO, error) {

	if date != "" && !domain.IsValidDateLabel(date) {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	aps, err := uc.repo.ListAppointmentsForDoctor(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}

	return toListDTOs(aps), nil
}

// Display names come from the booking-time snapshots, never from the live
// profiles.
func toListDTOs(aps []models.Appointment) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		doc, _ := domain.ParseDoctorSnapshot(ap.DoctorSnapshot)
		patient, _ := domain.ParsePatientSnapshot(ap.PatientSnapshot)

		out = append(out, dto.AppointmentListDTO{
			ID:            ap.ID,
			Reference:     ap.Reference,
			SlotDate:      ap.SlotDate,
			SlotTime:      ap.SlotTime,
			Amount:        ap.Amount,
			Status:        ap.Status,
			PaymentStatus: ap.PaymentStatus,
			DoctorName:    doc.Name,
			Speciality:    doc.Speciality,
			PatientName:   patient.Name,
			CreatedAt:     ap.CreatedAt,
		})
	}
	return out
}
