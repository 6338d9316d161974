package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Opaque reference handed to payment gateways as the external order id.
	Reference string `gorm:"size:36;uniqueIndex;not null" json:"reference"`

	PatientID uint `json:"patient_id"`
	DoctorID  uint `json:"doctor_id"`

	SlotDate string `gorm:"size:10;not null" json:"slot_date"`
	SlotTime string `gorm:"size:10;not null" json:"slot_time"`

	Amount float64 `json:"amount"`

	Status        string `gorm:"size:20;default:'booked'" json:"status"`
	PaymentStatus string `gorm:"size:20;default:'pending'" json:"payment_status"`

	PaymentProvider string `gorm:"size:30" json:"payment_provider"`
	PaymentOrderID  string `gorm:"size:100" json:"payment_order_id"`

	// Profile data copied at booking time so historical appointments keep
	// showing what both parties looked like then, regardless of later edits.
	DoctorSnapshot  string `gorm:"type:text" json:"doctor_snapshot"`
	PatientSnapshot string `gorm:"type:text" json:"patient_snapshot"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`
	PaidAt      *time.Time `json:"paid_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
