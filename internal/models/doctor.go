package models

import "time"

type Doctor struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`

	Speciality string `gorm:"size:100;not null" json:"speciality"`
	Degree     string `gorm:"size:100" json:"degree"`
	Experience string `gorm:"size:50" json:"experience"`
	About      string `gorm:"size:1000" json:"about"`

	Fees float64 `json:"fees"`

	AddressLine1 string `gorm:"size:255" json:"address_line1"`
	AddressLine2 string `gorm:"size:255" json:"address_line2"`

	ImageURL string `gorm:"size:255" json:"image_url"`

	// Doctor-controlled flag; an unavailable doctor rejects new bookings but
	// keeps existing ones.
	Available bool `gorm:"default:true" json:"available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
