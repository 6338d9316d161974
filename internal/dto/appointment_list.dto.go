package dto

import "time"

type AppointmentListDTO struct {
	ID            uint      `json:"id"`
	Reference     string    `json:"reference"`
	SlotDate      string    `json:"slot_date"`
	SlotTime      string    `json:"slot_time"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	DoctorName    string    `json:"doctor_name"`
	Speciality    string    `json:"speciality"`
	PatientName   string    `json:"patient_name"`
	CreatedAt     time.Time `json:"created_at"`
}
