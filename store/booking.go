package store

import (
	"context"

	"go.uber.org/zap"

	"github.com/wheelshare/schema/models"
)

func (s *Store) CreateBooking(ctx context.Context, booking *models.Booking) error {
	err := s.db.WithContext(ctx).Create(booking).Error
	s.log.Debug("create booking", zap.Uint("id", booking.ID), zap.Error(err))
	return err
}

func (s *Store) SaveBooking(ctx context.Context, booking *models.Booking) error {
	err := s.db.WithContext(ctx).Save(booking).Error
	s.log.Debug("save booking", zap.Uint("id", booking.ID), zap.Error(err))
	return err
}

func (s *Store) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.WithContext(ctx).
		Preload("Rental").
		Preload("Location").
		Preload("Payments").
		First(&booking, id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *Store) ListBookingsByRenter(ctx context.Context, renterID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.WithContext(ctx).
		Preload("Rental").
		Where("renter_id = ?", renterID).
		Order("rent_date DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// AttachPayment links a payment to a booking through the
// booking_payments join table.
func (s *Store) AttachPayment(ctx context.Context, booking *models.Booking, payment *models.Payment) error {
	err := s.db.WithContext(ctx).Model(booking).Association("Payments").Append(payment)
	s.log.Debug("attach payment",
		zap.Uint("booking_id", booking.ID),
		zap.String("payment_hash", payment.PaymentHash),
		zap.Error(err))
	return err
}

func (s *Store) DeleteBooking(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Delete(&models.Booking{}, id).Error
	s.log.Debug("delete booking", zap.Uint("id", id), zap.Error(err))
	return err
}
