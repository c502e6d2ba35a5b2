package models

// Brand is a car manufacturer. Deleting a brand removes its cars.
type Brand struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:255;not null" json:"name"`
	Image string `gorm:"size:255" json:"image"`
	Cars  []Car  `gorm:"foreignKey:BrandID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"cars,omitempty"`
}
