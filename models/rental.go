package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RentType enumerates the billing period of a rental listing.
type RentType string

const (
	RentDaily   RentType = "Daily"
	RentWeekly  RentType = "Weekly"
	RentMonthly RentType = "Monthly"
	RentYearly  RentType = "Yearly"
)

// Rental is an advertised car-rental offering owned by a user.
type Rental struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OwnerID   uint            `gorm:"index;not null" json:"owner_id"`
	Owner     *User           `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"owner,omitempty"`
	CarID     uint            `gorm:"index;not null" json:"car_id"`
	Car       *Car            `gorm:"foreignKey:CarID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"car,omitempty"`
	RentType  RentType        `gorm:"type:varchar(20);default:'Weekly'" json:"rent_type"`
	RentValue decimal.Decimal `gorm:"type:decimal(10,2)" json:"rent_value"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// BeforeSave stamps UpdatedAt on every write, creates included.
func (r *Rental) BeforeSave(tx *gorm.DB) error {
	r.UpdatedAt = time.Now()
	return nil
}
