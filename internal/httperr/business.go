package httperr

import "errors"

// Business error codes shared by the booking core. A slot_conflict is a normal
// outcome under contention and must stay distinguishable from upstream_failure
// so callers can decide whether a retry makes sense.
const (
	CodeNotFound          = "not_found"
	CodeDoctorUnavailable = "doctor_unavailable"
	CodeSlotConflict      = "slot_conflict"
	CodeUnauthorized      = "unauthorized"
	CodeValidation        = "validation_error"
	CodeInvalidState      = "invalid_state"
	CodeUpstreamFailure   = "upstream_failure"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
