package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/careslot/appointment-api/internal/httperr"
	"github.com/careslot/appointment-api/internal/httpresp"
	"github.com/careslot/appointment-api/internal/middleware"
	ucBooking "github.com/careslot/appointment-api/internal/usecase/booking"
)

type PaymentHandler struct {
	startUC   *ucBooking.StartPayment
	confirmUC *ucBooking.ConfirmPayment
}

func NewPaymentHandler(
	startUC *ucBooking.StartPayment,
	confirmUC *ucBooking.ConfirmPayment,
) *PaymentHandler {
	return &PaymentHandler{
		startUC:   startUC,
		confirmUC: confirmUC,
	}
}

type StartPaymentRequest struct {
	AppointmentID uint   `json:"appointment_id" binding:"required"`
	Provider      string `json:"provider" binding:"required"`
}

type ConfirmPaymentRequest struct {
	Provider string `json:"provider" binding:"required"`
	OrderID  string `json:"order_id" binding:"required"`
}

func (h *PaymentHandler) Start(c *gin.Context) {
	patientID := c.MustGet(middleware.ContextUserID).(uint)

	var req StartPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payment payload.")
		return
	}

	order, err := h.startUC.Execute(
		c.Request.Context(),
		patientID,
		req.AppointmentID,
		req.Provider,
	)
	if err != nil {
		writeBusiness(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"success": true,
		"order":   order,
	})
}

// Confirm settles a returning checkout. It is also the webhook target for
// both gateways, which only hand us a provider name and an order id.
func (h *PaymentHandler) Confirm(c *gin.Context) {
	var req ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid confirmation payload.")
		return
	}

	ap, err := h.confirmUC.Execute(c.Request.Context(), req.Provider, req.OrderID)
	if err != nil {
		writeBusiness(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"success":        true,
		"message":        "Payment successful",
		"appointment_id": ap.ID,
		"payment_status": ap.PaymentStatus,
	})
}

// parseUintParam is shared by handlers reading numeric path params.
func parseUintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid identifier.")
		return 0, false
	}
	return uint(v), true
}
