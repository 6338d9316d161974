package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/careslot/appointment-api/internal/audit"
	"github.com/careslot/appointment-api/internal/httperr"
	"github.com/careslot/appointment-api/internal/httpresp"
	"github.com/careslot/appointment-api/internal/middleware"
	"github.com/careslot/appointment-api/internal/models"
	"github.com/careslot/appointment-api/internal/storage"
	ucBooking "github.com/careslot/appointment-api/internal/usecase/booking"
)

type DoctorHandler struct {
	db         *gorm.DB
	images     *storage.ImageStore
	audit      *audit.Dispatcher
	listUC     *ucBooking.ListAppointments
	completeUC *ucBooking.CompleteAppointment
}

func NewDoctorHandler(
	db *gorm.DB,
	images *storage.ImageStore,
	auditDispatcher *audit.Dispatcher,
	listUC *ucBooking.ListAppointments,
	completeUC *ucBooking.CompleteAppointment,
) *DoctorHandler {
	return &DoctorHandler{
		db:         db,
		images:     images,
		audit:      auditDispatcher,
		listUC:     listUC,
		completeUC: completeUC,
	}
}

// ======================================================
// PROFILE
// ======================================================

func (h *DoctorHandler) GetMe(c *gin.Context) {
	doctorID := c.MustGet(middleware.ContextUserID).(uint)

	var doctor models.Doctor
	if err := h.db.First(&doctor, doctorID).Error; err != nil {
		httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
		return
	}

	httpresp.OK(c, doctor)
}

func (h *DoctorHandler) UpdateMe(c *gin.Context) {
	doctorID := c.MustGet(middleware.ContextUserID).(uint)

	var doctor models.Doctor
	if err := h.db.First(&doctor, doctorID).Error; err != nil {
		httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
		return
	}

	if about := c.PostForm("about"); about != "" {
		doctor.About = about
	}
	if fees := c.PostForm("fees"); fees != "" {
		parsed, err := strconv.ParseFloat(fees, 64)
		if err != nil || parsed < 0 {
			httperr.BadRequest(c, "invalid_fees", "Fees must be a non-negative number.")
			return
		}
		doctor.Fees = parsed
	}
	if addr := c.PostForm("address_line1"); addr != "" {
		doctor.AddressLine1 = addr
	}
	if addr := c.PostForm("address_line2"); addr != "" {
		doctor.AddressLine2 = addr
	}

	if file, err := c.FormFile("image"); err == nil {
		src, err := file.Open()
		if err != nil {
			httperr.BadRequest(c, "invalid_image", "Could not read image.")
			return
		}
		defer src.Close()

		url, err := h.images.UploadProfileImage(c.Request.Context(), "doctors", src)
		if err != nil {
			httperr.Internal(c, "image_upload_failed", "Could not store image.")
			return
		}
		doctor.ImageURL = url
	}

	if err := h.db.Save(&doctor).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Could not update profile.")
		return
	}

	httpresp.OK(c, doctor)
}

// ======================================================
// AVAILABILITY TOGGLE
// ======================================================

// ToggleAvailability flips the doctor-controlled flag. Existing bookings are
// untouched; only new reservations are gated.
func (h *DoctorHandler) ToggleAvailability(c *gin.Context) {
	doctorID := c.MustGet(middleware.ContextUserID).(uint)

	var doctor models.Doctor
	if err := h.db.First(&doctor, doctorID).Error; err != nil {
		httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
		return
	}

	doctor.Available = !doctor.Available
	if err := h.db.Save(&doctor).Error; err != nil {
		httperr.Internal(c, "failed_to_update_availability", "Could not update availability.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorRole: middleware.RoleDoctor,
		ActorID:   &doctorID,
		Action:    "availability_toggled",
		Entity:    "doctor",
		EntityID:  &doctor.ID,
		Metadata:  map[string]any{"available": doctor.Available},
	})

	httpresp.OK(c, gin.H{"available": doctor.Available})
}

// ======================================================
// APPOINTMENTS
// ======================================================

func (h *DoctorHandler) Appointments(c *gin.Context) {
	doctorID := c.MustGet(middleware.ContextUserID).(uint)

	aps, err := h.listUC.ForDoctor(c.Request.Context(), doctorID, c.Query("date"))
	if err != nil {
		writeBusiness(c, err)
		return
	}

	httpresp.List(c, aps)
}

func (h *DoctorHandler) Complete(c *gin.Context) {
	doctorID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	ap, err := h.completeUC.Execute(c.Request.Context(), doctorID, id)
	if err != nil {
		writeBusiness(c, err)
		return
	}

	httpresp.OK(c, ap)
}
