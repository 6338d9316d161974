package models

import "time"

// BookedSlot materializes the slot ledger: one row per gross reservation.
// The composite unique index is what makes reserve an atomic
// add-to-set-if-absent, so concurrent bookings for the same slot cannot
// both win.
type BookedSlot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	DoctorID uint   `gorm:"uniqueIndex:idx_doctor_slot;not null" json:"doctor_id"`
	SlotDate string `gorm:"size:10;uniqueIndex:idx_doctor_slot;not null" json:"slot_date"`
	SlotTime string `gorm:"size:10;uniqueIndex:idx_doctor_slot;not null" json:"slot_time"`

	AppointmentID uint `json:"appointment_id"`

	CreatedAt time.Time `json:"created_at"`
}
