package booking

import (
	"encoding/json"

	"github.com/careslot/appointment-api/internal/models"
)

// Snapshots freeze the display data of both parties at booking time. They are
// stored as JSON on the appointment row and never refreshed from the live
// profiles.

type DoctorSnapshot struct {
	Name       string  `json:"name"`
	Speciality string  `json:"speciality"`
	Degree     string  `json:"degree"`
	Fees       float64 `json:"fees"`
	Address    string  `json:"address"`
	ImageURL   string  `json:"image_url"`
}

type PatientSnapshot struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Gender    string `json:"gender"`
	BirthDate string `json:"birth_date"`
	ImageURL  string `json:"image_url"`
}

func SnapshotDoctor(d *models.Doctor) string {
	b, _ := json.Marshal(DoctorSnapshot{
		Name:       d.Name,
		Speciality: d.Speciality,
		Degree:     d.Degree,
		Fees:       d.Fees,
		Address:    d.AddressLine1,
		ImageURL:   d.ImageURL,
	})
	return string(b)
}

func SnapshotPatient(p *models.Patient) string {
	b, _ := json.Marshal(PatientSnapshot{
		Name:      p.Name,
		Email:     p.Email,
		Phone:     p.Phone,
		Gender:    p.Gender,
		BirthDate: p.BirthDate,
		ImageURL:  p.ImageURL,
	})
	return string(b)
}

func ParsePatientSnapshot(raw string) (PatientSnapshot, error) {
	var s PatientSnapshot
	err := json.Unmarshal([]byte(raw), &s)
	return s, err
}

func ParseDoctorSnapshot(raw string) (DoctorSnapshot, error) {
	var s DoctorSnapshot
	err := json.Unmarshal([]byte(raw), &s)
	return s, err
}
