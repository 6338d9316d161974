package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/careslot/appointment-api/internal/domain/booking"
	"github.com/careslot/appointment-api/internal/httperr"
	"github.com/careslot/appointment-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Profiles
// --------------------------------------------------

func (r *BookingGormRepository) GetDoctorByID(
	ctx context.Context,
	id uint,
) (*models.Doctor, error) {

	var doc models.Doctor
	if err := r.db.WithContext(ctx).First(&doc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil, err
	}
	return &doc, nil
}

func (r *BookingGormRepository) GetPatientByID(
	ctx context.Context,
	id uint,
) (*models.Patient, error) {

	var patient models.Patient
	if err := r.db.WithContext(ctx).First(&patient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil, err
	}
	return &patient, nil
}

// --------------------------------------------------
// Ledger
// --------------------------------------------------

func (r *BookingGormRepository) BookedTimes(
	ctx context.Context,
	doctorID uint,
	date string,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.BookedSlot{}).
		Where("doctor_id = ? AND slot_date = ?", doctorID, date).
		Order("slot_time ASC").
		Pluck("slot_time", &times).Error; err != nil {
		return nil, err
	}

	return times, nil
}

// CreateBooked inserts the slot row and the appointment in one transaction.
// The composite unique index on booked_slots decides the race: the second
// insert for the same (doctor, date, time) affects zero rows and the whole
// transaction rolls back with slot_conflict.
func (r *BookingGormRepository) CreateBooked(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Create(ap).Error; err != nil {
			return err
		}

		slot := models.BookedSlot{
			DoctorID:      ap.DoctorID,
			SlotDate:      ap.SlotDate,
			SlotTime:      ap.SlotTime,
			AppointmentID: ap.ID,
		}

		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&slot)
		if res.Error != nil {
			if httperr.IsUniqueViolation(res.Error) {
				return httperr.ErrBusiness(httperr.CodeSlotConflict)
			}
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrBusiness(httperr.CodeSlotConflict)
		}

		return nil
	})
}

func (r *BookingGormRepository) ReleaseSlot(
	ctx context.Context,
	doctorID uint,
	date string,
	timeLabel string,
) error {

	// Deleting an absent row affects zero rows, which keeps release
	// idempotent without a prior read.
	return r.db.WithContext(ctx).
		Where(
			"doctor_id = ? AND slot_date = ? AND slot_time = ?",
			doctorID, date, timeLabel,
		).
		Delete(&models.BookedSlot{}).Error
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil, err
	}

	return &ap, nil
}

func (r *BookingGormRepository) GetAppointmentByReference(
	ctx context.Context,
	reference string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("reference = ?", reference).
		First(&ap).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil, err
	}

	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *BookingGormRepository) ListAppointmentsForPatient(
	ctx context.Context,
	patientID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *BookingGormRepository) ListAppointmentsForDoctor(
	ctx context.Context,
	doctorID uint,
	date string,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).Where("doctor_id = ?", doctorID)
	if date != "" {
		q = q.Where("slot_date = ?", date)
	}

	var aps []models.Appointment
	if err := q.
		Order("slot_date ASC, slot_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
