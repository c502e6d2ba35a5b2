package store

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/wheelshare/schema/models"
)

// Seed inserts a small demo catalog: two brands, a car per brand, one
// owner and a weekly rental. Already-seeded databases are left alone.
func (s *Store) Seed(ctx context.Context) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Brand{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		s.log.Info("seed skipped, brands already present", zap.Int64("count", count))
		return nil
	}

	owner := models.User{
		Username:  "demo_owner",
		Email:     "owner@example.com",
		FirstName: "Demo",
		LastName:  "Owner",
	}
	if err := s.CreateUser(ctx, &owner); err != nil {
		return err
	}

	brands := []models.Brand{
		{Name: "Toyota", Image: "brand/toyota.png"},
		{Name: "Volkswagen", Image: "brand/vw.png"},
	}
	for i := range brands {
		if err := s.CreateBrand(ctx, &brands[i]); err != nil {
			return err
		}
	}

	cars := []models.Car{
		{
			Name:               "Corolla",
			Image:              "car/corolla.png",
			BrandID:            brands[0].ID,
			Passengers:         5,
			Doors:              4,
			HasAirConditioning: true,
			HasPowerLocks:      true,
			HasPowerWindows:    true,
			FuelType:           models.FuelGasoline,
			IsAutomatic:        true,
			Horsepower:         169,
			TopSpeed:           180,
			Acceleration0To100: decimal.RequireFromString("8.90"),
			ModelYear:          2023,
		},
		{
			Name:               "Golf",
			Image:              "car/golf.png",
			BrandID:            brands[1].ID,
			Passengers:         5,
			Doors:              4,
			HasAirConditioning: true,
			HasPowerLocks:      true,
			HasPowerWindows:    true,
			FuelType:           models.FuelDiesel,
			IsAutomatic:        false,
			Horsepower:         150,
			TopSpeed:           216,
			Acceleration0To100: decimal.RequireFromString("8.50"),
			ModelYear:          2022,
		},
	}
	for i := range cars {
		if err := s.CreateCar(ctx, &cars[i]); err != nil {
			return err
		}
	}

	rental := models.Rental{
		OwnerID:   owner.ID,
		CarID:     cars[0].ID,
		RentType:  models.RentWeekly,
		RentValue: decimal.RequireFromString("349.99"),
	}
	if err := s.CreateRental(ctx, &rental); err != nil {
		return err
	}

	s.log.Info("seeded demo data",
		zap.Int("brands", len(brands)),
		zap.Int("cars", len(cars)))
	return nil
}
