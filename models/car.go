package models

import "github.com/shopspring/decimal"

// FuelType enumerates the fuel options a car can be listed with.
type FuelType string

const (
	FuelGasoline  FuelType = "Gasoline"
	FuelDiesel    FuelType = "Diesel"
	FuelPropane   FuelType = "Propane"
	FuelCNG       FuelType = "CNG"
	FuelEthanol   FuelType = "Ethanol"
	FuelBiodiesel FuelType = "Bio-diesel"
)

// Car describes a vehicle that can be put up for rent.
type Car struct {
	ID                 uint            `gorm:"primaryKey" json:"id"`
	Name               string          `gorm:"size:255;not null" json:"name"`
	Image              string          `gorm:"size:255" json:"image"`
	BrandID            uint            `gorm:"index;not null" json:"brand_id"`
	Brand              *Brand          `gorm:"foreignKey:BrandID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"brand,omitempty"`
	Passengers         int             `json:"passengers"`
	Doors              int             `json:"doors"`
	HasAirConditioning bool            `json:"has_air_conditioning"`
	HasPowerLocks      bool            `json:"has_power_locks"`
	HasPowerWindows    bool            `json:"has_power_windows"`
	FuelType           FuelType        `gorm:"type:varchar(20);default:'Gasoline'" json:"fuel_type"`
	IsAutomatic        bool            `json:"is_automatic"`
	Horsepower         int             `json:"horsepower"`
	TopSpeed           int             `json:"top_speed"`
	Acceleration0To100 decimal.Decimal `gorm:"type:decimal(4,2)" json:"acceleration_0_100"`
	ModelYear          int             `json:"model_year"`
}
