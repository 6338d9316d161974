package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/careslot/appointment-api/internal/httperr"
)

var businessMessages = map[string]string{
	httperr.CodeNotFound:          "Resource not found.",
	httperr.CodeDoctorUnavailable: "Doctor is not taking appointments.",
	httperr.CodeSlotConflict:      "Slot is no longer available.",
	httperr.CodeUnauthorized:      "You do not own this appointment.",
	httperr.CodeValidation:        "Invalid date, time or amount.",
	httperr.CodeInvalidState:      "Appointment state does not allow this.",
	httperr.CodeUpstreamFailure:   "Upstream service failed.",
	"payment_failed":              "Payment was not completed.",
}

// writeBusiness maps a tagged business error onto an HTTP status. Anything
// untagged is an internal failure.
func writeBusiness(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Unexpected error.")
		return
	}

	msg := businessMessages[code]
	if msg == "" {
		msg = "Request failed."
	}

	switch code {
	case httperr.CodeNotFound:
		httperr.NotFound(c, code, msg)
	case httperr.CodeSlotConflict, httperr.CodeDoctorUnavailable, httperr.CodeInvalidState:
		httperr.Conflict(c, code, msg)
	case httperr.CodeUnauthorized:
		httperr.Forbidden(c, code, msg)
	case httperr.CodeUpstreamFailure:
		httperr.BadGateway(c, code, msg)
	default:
		httperr.BadRequest(c, code, msg)
	}
}

func generateToken(secret string, userID uint, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
