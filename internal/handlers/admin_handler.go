package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/careslot/appointment-api/internal/audit"
	domain "github.com/careslot/appointment-api/internal/domain/booking"
	"github.com/careslot/appointment-api/internal/httperr"
	"github.com/careslot/appointment-api/internal/httpresp"
	"github.com/careslot/appointment-api/internal/middleware"
	"github.com/careslot/appointment-api/internal/models"
	"github.com/careslot/appointment-api/internal/validators"
)

type AdminHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewAdminHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *AdminHandler {
	return &AdminHandler{db: db, audit: auditDispatcher}
}

// ======================================================
// DOCTOR MANAGEMENT
// ======================================================

type AddDoctorRequest struct {
	Name       string  `json:"name" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Password   string  `json:"password" binding:"required,min=8"`
	Speciality string  `json:"speciality" binding:"required"`
	Degree     string  `json:"degree"`
	Experience string  `json:"experience"`
	About      string  `json:"about"`
	Fees       float64 `json:"fees" binding:"required,gt=0"`
	Address1   string  `json:"address_line1"`
	Address2   string  `json:"address_line2"`
}

func (h *AdminHandler) AddDoctor(c *gin.Context) {
	var req AddDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid doctor payload.")
		return
	}

	email := validators.NormalizeEmail(req.Email)

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "Email domain does not resolve.")
		return
	}

	var count int64
	h.db.Model(&models.Doctor{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_registered", "A doctor with this email exists.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not hash password.")
		return
	}

	doctor := models.Doctor{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Speciality:   req.Speciality,
		Degree:       req.Degree,
		Experience:   req.Experience,
		About:        req.About,
		Fees:         req.Fees,
		AddressLine1: req.Address1,
		AddressLine2: req.Address2,
		Available:    true,
	}

	if err := h.db.Create(&doctor).Error; err != nil {
		httperr.Internal(c, "failed_to_create_doctor", "Could not create doctor.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorRole: middleware.RoleAdmin,
		Action:    "doctor_added",
		Entity:    "doctor",
		EntityID:  &doctor.ID,
	})

	c.JSON(http.StatusCreated, doctor)
}

func (h *AdminHandler) ListDoctors(c *gin.Context) {
	var doctors []models.Doctor
	if err := h.db.Order("name ASC").Find(&doctors).Error; err != nil {
		httperr.Internal(c, "failed_to_list_doctors", "Could not load doctors.")
		return
	}

	httpresp.List(c, doctors)
}

func (h *AdminHandler) SetDoctorAvailability(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Available *bool `json:"available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Available flag is required.")
		return
	}

	var doctor models.Doctor
	if err := h.db.First(&doctor, id).Error; err != nil {
		httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
		return
	}

	doctor.Available = *req.Available
	if err := h.db.Save(&doctor).Error; err != nil {
		httperr.Internal(c, "failed_to_update_availability", "Could not update availability.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorRole: middleware.RoleAdmin,
		Action:    "availability_set",
		Entity:    "doctor",
		EntityID:  &doctor.ID,
		Metadata:  map[string]any{"available": doctor.Available},
	})

	httpresp.OK(c, gin.H{"available": doctor.Available})
}

// ======================================================
// DASHBOARD
// ======================================================

func (h *AdminHandler) AllAppointments(c *gin.Context) {
	var aps []models.Appointment
	if err := h.db.Order("created_at DESC").Limit(200).Find(&aps).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not load appointments.")
		return
	}

	httpresp.List(c, aps)
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	var doctors, patients, appointments, booked int64

	h.db.Model(&models.Doctor{}).Count(&doctors)
	h.db.Model(&models.Patient{}).Count(&patients)
	h.db.Model(&models.Appointment{}).Count(&appointments)
	h.db.Model(&models.Appointment{}).
		Where("status = ?", string(domain.StatusBooked)).
		Count(&booked)

	httpresp.OK(c, gin.H{
		"doctors":             doctors,
		"patients":            patients,
		"appointments":        appointments,
		"booked_appointments": booked,
	})
}
