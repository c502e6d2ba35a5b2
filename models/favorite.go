package models

import (
	"time"

	"gorm.io/gorm"
)

// Favorite marks a rental a user has bookmarked.
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OwnerID   uint      `gorm:"index;not null" json:"owner_id"`
	Owner     *User     `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"owner,omitempty"`
	RentalID  uint      `gorm:"index;not null" json:"rental_id"`
	Rental    *Rental   `gorm:"foreignKey:RentalID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"rental,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (f *Favorite) BeforeSave(tx *gorm.DB) error {
	f.UpdatedAt = time.Now()
	return nil
}
