package store

import (
	"context"

	"go.uber.org/zap"

	"github.com/wheelshare/schema/models"
)

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	err := s.db.WithContext(ctx).Create(user).Error
	s.log.Debug("create user", zap.Uint("id", user.ID), zap.Error(err))
	return err
}

func (s *Store) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) CreateAddress(ctx context.Context, address *models.Address) error {
	err := s.db.WithContext(ctx).Create(address).Error
	s.log.Debug("create address", zap.Uint("id", address.ID), zap.Error(err))
	return err
}

func (s *Store) CreateBrand(ctx context.Context, brand *models.Brand) error {
	err := s.db.WithContext(ctx).Create(brand).Error
	s.log.Debug("create brand", zap.Uint("id", brand.ID), zap.String("name", brand.Name), zap.Error(err))
	return err
}

func (s *Store) GetBrand(ctx context.Context, id uint) (*models.Brand, error) {
	var brand models.Brand
	if err := s.db.WithContext(ctx).First(&brand, id).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

func (s *Store) ListBrands(ctx context.Context) ([]models.Brand, error) {
	var brands []models.Brand
	if err := s.db.WithContext(ctx).Order("name").Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

// DeleteBrand removes a brand. Its cars go with it through the
// ON DELETE CASCADE constraint.
func (s *Store) DeleteBrand(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Delete(&models.Brand{}, id).Error
	s.log.Debug("delete brand", zap.Uint("id", id), zap.Error(err))
	return err
}

func (s *Store) CreateCar(ctx context.Context, car *models.Car) error {
	err := s.db.WithContext(ctx).Create(car).Error
	s.log.Debug("create car", zap.Uint("id", car.ID), zap.String("name", car.Name), zap.Error(err))
	return err
}

func (s *Store) GetCar(ctx context.Context, id uint) (*models.Car, error) {
	var car models.Car
	if err := s.db.WithContext(ctx).Preload("Brand").First(&car, id).Error; err != nil {
		return nil, err
	}
	return &car, nil
}

func (s *Store) ListCarsByBrand(ctx context.Context, brandID uint) ([]models.Car, error) {
	var cars []models.Car
	if err := s.db.WithContext(ctx).Where("brand_id = ?", brandID).Order("name").Find(&cars).Error; err != nil {
		return nil, err
	}
	return cars, nil
}
