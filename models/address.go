package models

import "time"

// Address is a pickup/return location attached to bookings.
type Address struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Street    string    `gorm:"size:255;not null" json:"street"`
	Number    string    `gorm:"size:20" json:"number"`
	City      string    `gorm:"size:100;not null" json:"city"`
	State     string    `gorm:"size:100" json:"state"`
	Country   string    `gorm:"size:100;not null" json:"country"`
	ZipCode   string    `gorm:"size:20" json:"zip_code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
