package store

import (
	"context"

	"go.uber.org/zap"

	"github.com/wheelshare/schema/models"
)

func (s *Store) CreateRental(ctx context.Context, rental *models.Rental) error {
	err := s.db.WithContext(ctx).Create(rental).Error
	s.log.Debug("create rental", zap.Uint("id", rental.ID), zap.Error(err))
	return err
}

// SaveRental persists every field of an existing rental. The model's
// BeforeSave hook rewrites UpdatedAt.
func (s *Store) SaveRental(ctx context.Context, rental *models.Rental) error {
	err := s.db.WithContext(ctx).Save(rental).Error
	s.log.Debug("save rental", zap.Uint("id", rental.ID), zap.Error(err))
	return err
}

func (s *Store) GetRental(ctx context.Context, id uint) (*models.Rental, error) {
	var rental models.Rental
	if err := s.db.WithContext(ctx).Preload("Car").Preload("Car.Brand").Preload("Owner").First(&rental, id).Error; err != nil {
		return nil, err
	}
	return &rental, nil
}

func (s *Store) ListRentals(ctx context.Context) ([]models.Rental, error) {
	var rentals []models.Rental
	if err := s.db.WithContext(ctx).Preload("Car").Order("created_at DESC").Find(&rentals).Error; err != nil {
		return nil, err
	}
	return rentals, nil
}

func (s *Store) ListRentalsByOwner(ctx context.Context, ownerID uint) ([]models.Rental, error) {
	var rentals []models.Rental
	if err := s.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&rentals).Error; err != nil {
		return nil, err
	}
	return rentals, nil
}

func (s *Store) DeleteRental(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Delete(&models.Rental{}, id).Error
	s.log.Debug("delete rental", zap.Uint("id", id), zap.Error(err))
	return err
}

func (s *Store) CreateReview(ctx context.Context, review *models.Review) error {
	err := s.db.WithContext(ctx).Create(review).Error
	s.log.Debug("create review", zap.Uint("id", review.ID), zap.Error(err))
	return err
}

func (s *Store) SaveReview(ctx context.Context, review *models.Review) error {
	err := s.db.WithContext(ctx).Save(review).Error
	s.log.Debug("save review", zap.Uint("id", review.ID), zap.Error(err))
	return err
}

func (s *Store) ListReviewsForRental(ctx context.Context, rentalID uint) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.WithContext(ctx).Where("rental_id = ?", rentalID).Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *Store) AddFavorite(ctx context.Context, favorite *models.Favorite) error {
	err := s.db.WithContext(ctx).Create(favorite).Error
	s.log.Debug("add favorite", zap.Uint("id", favorite.ID), zap.Error(err))
	return err
}

func (s *Store) RemoveFavorite(ctx context.Context, ownerID, rentalID uint) error {
	err := s.db.WithContext(ctx).
		Where("owner_id = ? AND rental_id = ?", ownerID, rentalID).
		Delete(&models.Favorite{}).Error
	s.log.Debug("remove favorite", zap.Uint("owner_id", ownerID), zap.Uint("rental_id", rentalID), zap.Error(err))
	return err
}

func (s *Store) ListFavorites(ctx context.Context, ownerID uint) ([]models.Favorite, error) {
	var favorites []models.Favorite
	if err := s.db.WithContext(ctx).Preload("Rental").Where("owner_id = ?", ownerID).Find(&favorites).Error; err != nil {
		return nil, err
	}
	return favorites, nil
}
