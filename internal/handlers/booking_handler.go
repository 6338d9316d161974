package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/careslot/appointment-api/internal/httperr"
	"github.com/careslot/appointment-api/internal/httpresp"
	"github.com/careslot/appointment-api/internal/middleware"
	ucBooking "github.com/careslot/appointment-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	bookUC   *ucBooking.BookAppointment
	cancelUC *ucBooking.CancelAppointment
	listUC   *ucBooking.ListAppointments
}

func NewBookingHandler(
	bookUC *ucBooking.BookAppointment,
	cancelUC *ucBooking.CancelAppointment,
	listUC *ucBooking.ListAppointments,
) *BookingHandler {
	return &BookingHandler{
		bookUC:   bookUC,
		cancelUC: cancelUC,
		listUC:   listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	DoctorID uint   `json:"doctor_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
}

// ======================================================
// BOOK
// ======================================================

func (h *BookingHandler) Book(c *gin.Context) {
	patientID := c.MustGet(middleware.ContextUserID).(uint)

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	ap, err := h.bookUC.Execute(c.Request.Context(), ucBooking.BookAppointmentInput{
		PatientID: patientID,
		DoctorID:  req.DoctorID,
		Date:      req.Date,
		Time:      req.Time,
	})
	if err != nil {
		writeBusiness(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"success":        true,
		"appointment_id": ap.ID,
		"reference":      ap.Reference,
		"amount":         ap.Amount,
	})
}

// ======================================================
// CANCEL
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	patientID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), patientID, uint(id))
	if err != nil {
		writeBusiness(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"success": true,
		"message": "Appointment cancelled",
		"status":  ap.Status,
	})
}

// ======================================================
// LIST (PATIENT)
// ======================================================

func (h *BookingHandler) ListMine(c *gin.Context) {
	patientID := c.MustGet(middleware.ContextUserID).(uint)

	aps, err := h.listUC.ForPatient(c.Request.Context(), patientID)
	if err != nil {
		writeBusiness(c, err)
		return
	}

	httpresp.List(c, aps)
}
