package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/careslot/appointment-api/internal/httperr"
	"github.com/careslot/appointment-api/internal/httpresp"
	"github.com/careslot/appointment-api/internal/middleware"
	"github.com/careslot/appointment-api/internal/models"
	"github.com/careslot/appointment-api/internal/storage"
)

// ProfileHandler owns the patient profile surface. Profile edits never touch
// existing appointments; those keep their booking-time snapshots.
type ProfileHandler struct {
	db     *gorm.DB
	images *storage.ImageStore
}

func NewProfileHandler(db *gorm.DB, images *storage.ImageStore) *ProfileHandler {
	return &ProfileHandler{db: db, images: images}
}

func (h *ProfileHandler) GetMe(c *gin.Context) {
	patientID := c.MustGet(middleware.ContextUserID).(uint)

	var patient models.Patient
	if err := h.db.First(&patient, patientID).Error; err != nil {
		httperr.NotFound(c, "patient_not_found", "Patient not found.")
		return
	}

	httpresp.OK(c, patient)
}

func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	patientID := c.MustGet(middleware.ContextUserID).(uint)

	var patient models.Patient
	if err := h.db.First(&patient, patientID).Error; err != nil {
		httperr.NotFound(c, "patient_not_found", "Patient not found.")
		return
	}

	// Multipart form: text fields plus an optional profile image.
	name := c.PostForm("name")
	phone := c.PostForm("phone")
	if name == "" || phone == "" {
		httperr.BadRequest(c, "missing_details", "Name and phone are required.")
		return
	}

	patient.Name = name
	patient.Phone = phone
	patient.Gender = c.PostForm("gender")
	patient.BirthDate = c.PostForm("birth_date")
	patient.AddressLine1 = c.PostForm("address_line1")
	patient.AddressLine2 = c.PostForm("address_line2")

	if file, err := c.FormFile("image"); err == nil {
		src, err := file.Open()
		if err != nil {
			httperr.BadRequest(c, "invalid_image", "Could not read image.")
			return
		}
		defer src.Close()

		url, err := h.images.UploadProfileImage(c.Request.Context(), "patients", src)
		if err != nil {
			httperr.Internal(c, "image_upload_failed", "Could not store image.")
			return
		}
		patient.ImageURL = url
	}

	if err := h.db.Save(&patient).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Could not update profile.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated",
		"patient": patient,
	})
}
