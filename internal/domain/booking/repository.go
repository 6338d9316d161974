package booking

import (
	"context"

	"github.com/careslot/appointment-api/internal/models"
)

type Repository interface {
	// -------- Profiles --------
	GetDoctorByID(
		ctx context.Context,
		id uint,
	) (*models.Doctor, error)

	GetPatientByID(
		ctx context.Context,
		id uint,
	) (*models.Patient, error)

	// -------- Ledger --------
	BookedTimes(
		ctx context.Context,
		doctorID uint,
		date string,
	) ([]string, error)

	// CreateBooked reserves the slot and creates the appointment in one
	// transaction. It must guarantee at most one winner per
	// (doctor, date, time) and surface the loser as slot_conflict.
	CreateBooked(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// ReleaseSlot frees a reservation; releasing an absent slot is not an
	// error.
	ReleaseSlot(
		ctx context.Context,
		doctorID uint,
		date string,
		timeLabel string,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	GetAppointmentByReference(
		ctx context.Context,
		reference string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listing --------
	ListAppointmentsForPatient(
		ctx context.Context,
		patientID uint,
	) ([]models.Appointment, error)

	ListAppointmentsForDoctor(
		ctx context.Context,
		doctorID uint,
		date string,
	) ([]models.Appointment, error)
}
