package store

import (
	"context"

	"go.uber.org/zap"

	"github.com/wheelshare/schema/models"
)

func (s *Store) CreatePayment(ctx context.Context, payment *models.Payment) error {
	err := s.db.WithContext(ctx).Create(payment).Error
	s.log.Debug("create payment", zap.String("hash", payment.PaymentHash), zap.Error(err))
	return err
}

func (s *Store) SavePayment(ctx context.Context, payment *models.Payment) error {
	err := s.db.WithContext(ctx).Save(payment).Error
	s.log.Debug("save payment", zap.String("hash", payment.PaymentHash), zap.Error(err))
	return err
}

func (s *Store) GetPayment(ctx context.Context, hash string) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.WithContext(ctx).First(&payment, "payment_hash = ?", hash).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *Store) UpdatePaymentStatus(ctx context.Context, hash string, status models.PaymentStatus) error {
	payment, err := s.GetPayment(ctx, hash)
	if err != nil {
		return err
	}
	payment.PaymentStatus = status
	return s.SavePayment(ctx, payment)
}

func (s *Store) ListPaymentsByOwner(ctx context.Context, ownerID uint) ([]models.Payment, error) {
	var payments []models.Payment
	if err := s.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("bill_date DESC").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
