package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/careslot/appointment-api/internal/httperr"
	"github.com/careslot/appointment-api/internal/httpresp"
	"github.com/careslot/appointment-api/internal/models"
	ucBooking "github.com/careslot/appointment-api/internal/usecase/booking"
)

// PublicHandler serves the unauthenticated patient-app surface: doctor
// discovery and slot availability.
type PublicHandler struct {
	db             *gorm.DB
	availabilityUC *ucBooking.GetAvailability
}

func NewPublicHandler(db *gorm.DB, availabilityUC *ucBooking.GetAvailability) *PublicHandler {
	return &PublicHandler{
		db:             db,
		availabilityUC: availabilityUC,
	}
}

type doctorCard struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Speciality string  `json:"speciality"`
	Degree     string  `json:"degree"`
	Experience string  `json:"experience"`
	Fees       float64 `json:"fees"`
	ImageURL   string  `json:"image_url"`
	Available  bool    `json:"available"`
}

func (h *PublicHandler) ListDoctors(c *gin.Context) {
	q := h.db.Model(&models.Doctor{})

	if speciality := c.Query("speciality"); speciality != "" {
		q = q.Where("speciality = ?", speciality)
	}

	var doctors []models.Doctor
	if err := q.Order("name ASC").Find(&doctors).Error; err != nil {
		httperr.Internal(c, "failed_to_list_doctors", "Could not load doctors.")
		return
	}

	cards := make([]doctorCard, 0, len(doctors))
	for _, d := range doctors {
		cards = append(cards, doctorCard{
			ID:         d.ID,
			Name:       d.Name,
			Speciality: d.Speciality,
			Degree:     d.Degree,
			Experience: d.Experience,
			Fees:       d.Fees,
			ImageURL:   d.ImageURL,
			Available:  d.Available,
		})
	}

	httpresp.List(c, cards)
}

func (h *PublicHandler) GetDoctor(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var doctor models.Doctor
	if err := h.db.First(&doctor, id).Error; err != nil {
		httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
		return
	}

	httpresp.OK(c, doctor)
}

func (h *PublicHandler) Availability(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	free, err := h.availabilityUC.Execute(c.Request.Context(), id, date)
	if err != nil {
		writeBusiness(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"date":  date,
		"slots": free,
	})
}
