package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Review is a star rating plus short comment a user leaves on a rental.
type Review struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	ReviewerID uint            `gorm:"index;not null" json:"reviewer_id"`
	Reviewer   *User           `gorm:"foreignKey:ReviewerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"reviewer,omitempty"`
	RentalID   uint            `gorm:"index;not null" json:"rental_id"`
	Rental     *Rental         `gorm:"foreignKey:RentalID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"rental,omitempty"`
	Stars      decimal.Decimal `gorm:"type:decimal(2,1)" json:"stars"`
	Comment    string          `gorm:"size:50" json:"comment"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func (r *Review) BeforeSave(tx *gorm.DB) error {
	r.UpdatedAt = time.Now()
	return nil
}
