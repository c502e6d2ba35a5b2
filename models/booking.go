package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking reserves a rental for a date range at a pickup location.
// Payments settle through the booking_payments join table; a booking
// can be paid in several installments.
type Booking struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	RenterID   uint      `gorm:"index;not null" json:"renter_id"`
	Renter     *User     `gorm:"foreignKey:RenterID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"renter,omitempty"`
	RentalID   uint      `gorm:"index;not null" json:"rental_id"`
	Rental     *Rental   `gorm:"foreignKey:RentalID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"rental,omitempty"`
	LocationID uint      `gorm:"index;not null" json:"location_id"`
	Location   *Address  `gorm:"foreignKey:LocationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"location,omitempty"`
	RentDate   time.Time `gorm:"not null" json:"rent_date"`
	ReturnDate time.Time `gorm:"not null" json:"return_date"`
	Payments   []Payment `gorm:"many2many:booking_payments" json:"payments,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (b *Booking) BeforeSave(tx *gorm.DB) error {
	b.UpdatedAt = time.Now()
	return nil
}
