package booking

import "github.com/careslot/appointment-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusBooked    Status = "booked"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// ===============================
// Validations
// ===============================

// CanCancel: only a booked appointment can be cancelled. A completed one
// stays completed; an already-cancelled one is handled as a no-op upstream.
func CanCancel(current Status) error {
	if current != StatusBooked {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusBooked {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

// CanMarkPaid gates the payment sub-state: settable once, only while booked.
func CanMarkPaid(current Status, payment PaymentStatus) error {
	if current != StatusBooked || payment != PaymentPending {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

func InitialStatus() Status {
	return StatusBooked
}
