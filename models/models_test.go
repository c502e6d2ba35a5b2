package models_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/wheelshare/schema/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(models.MigrationOrder...))
	return db
}

func seedRental(t *testing.T, db *gorm.DB) *models.Rental {
	owner := models.User{Username: "owner", Email: "owner@example.com"}
	require.NoError(t, db.Create(&owner).Error)

	brand := models.Brand{Name: "Toyota", Image: "brand/toyota.png"}
	require.NoError(t, db.Create(&brand).Error)

	car := models.Car{
		Name:               "Corolla",
		BrandID:            brand.ID,
		Passengers:         5,
		Doors:              4,
		FuelType:           models.FuelGasoline,
		Horsepower:         169,
		TopSpeed:           180,
		Acceleration0To100: decimal.RequireFromString("8.90"),
		ModelYear:          2023,
	}
	require.NoError(t, db.Create(&car).Error)

	rental := models.Rental{
		OwnerID:   owner.ID,
		CarID:     car.ID,
		RentType:  models.RentWeekly,
		RentValue: decimal.RequireFromString("349.99"),
	}
	require.NoError(t, db.Create(&rental).Error)
	return &rental
}

func TestRentalSaveRewritesUpdatedAt(t *testing.T) {
	db := setupTestDB(t)
	rental := seedRental(t, db)

	first := rental.UpdatedAt
	assert.False(t, first.IsZero())

	time.Sleep(10 * time.Millisecond)
	rental.RentValue = decimal.RequireFromString("399.99")
	require.NoError(t, db.Save(rental).Error)

	assert.True(t, rental.UpdatedAt.After(first))

	// Saving with no field changes still moves the timestamp forward.
	second := rental.UpdatedAt
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, db.Save(rental).Error)
	assert.True(t, rental.UpdatedAt.After(second))
}

func TestReviewAndFavoriteRewriteUpdatedAt(t *testing.T) {
	db := setupTestDB(t)
	rental := seedRental(t, db)

	review := models.Review{
		ReviewerID: rental.OwnerID,
		RentalID:   rental.ID,
		Stars:      decimal.RequireFromString("4.5"),
		Comment:    "smooth ride",
	}
	require.NoError(t, db.Create(&review).Error)
	firstReview := review.UpdatedAt

	favorite := models.Favorite{OwnerID: rental.OwnerID, RentalID: rental.ID}
	require.NoError(t, db.Create(&favorite).Error)
	firstFavorite := favorite.UpdatedAt

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, db.Save(&review).Error)
	require.NoError(t, db.Save(&favorite).Error)

	assert.True(t, review.UpdatedAt.After(firstReview))
	assert.True(t, favorite.UpdatedAt.After(firstFavorite))
}

func TestPaymentHashGeneratedOnFirstSave(t *testing.T) {
	db := setupTestDB(t)
	rental := seedRental(t, db)

	receiver := models.User{Username: "receiver", Email: "receiver@example.com"}
	require.NoError(t, db.Create(&receiver).Error)

	payment := models.Payment{
		OwnerID:    rental.OwnerID,
		ReceiverID: receiver.ID,
		Amount:     decimal.RequireFromString("349.99"),
		BillDate:   time.Now(),
	}
	require.NoError(t, db.Create(&payment).Error)

	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{64}$`), payment.PaymentHash)

	hash := payment.PaymentHash
	payment.PaymentStatus = models.PaymentCompleted
	require.NoError(t, db.Save(&payment).Error)
	assert.Equal(t, hash, payment.PaymentHash)

	var reloaded models.Payment
	require.NoError(t, db.First(&reloaded, "payment_hash = ?", hash).Error)
	assert.Equal(t, models.PaymentCompleted, reloaded.PaymentStatus)
}

func TestPaymentHashNotRegenerated(t *testing.T) {
	db := setupTestDB(t)
	rental := seedRental(t, db)

	payment := models.Payment{
		PaymentHash: "deadbeef",
		OwnerID:     rental.OwnerID,
		ReceiverID:  rental.OwnerID,
		Amount:      decimal.RequireFromString("10.00"),
		BillDate:    time.Now(),
	}
	require.NoError(t, db.Create(&payment).Error)
	assert.Equal(t, "deadbeef", payment.PaymentHash)
}

func TestPaymentHashesAreUnique(t *testing.T) {
	db := setupTestDB(t)
	rental := seedRental(t, db)

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		payment := models.Payment{
			OwnerID:    rental.OwnerID,
			ReceiverID: rental.OwnerID,
			Amount:     decimal.RequireFromString("1.00"),
			BillDate:   time.Now(),
		}
		require.NoError(t, db.Create(&payment).Error)
		assert.False(t, seen[payment.PaymentHash])
		seen[payment.PaymentHash] = true
	}
}

func TestBrandDeleteCascadesToCars(t *testing.T) {
	db := setupTestDB(t)

	brand := models.Brand{Name: "Saab"}
	require.NoError(t, db.Create(&brand).Error)

	car := models.Car{Name: "9-3", BrandID: brand.ID, ModelYear: 2002}
	require.NoError(t, db.Create(&car).Error)

	require.NoError(t, db.Delete(&models.Brand{}, brand.ID).Error)

	var count int64
	require.NoError(t, db.Model(&models.Car{}).Where("brand_id = ?", brand.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestBookingManyToManyPayments(t *testing.T) {
	db := setupTestDB(t)
	rental := seedRental(t, db)

	location := models.Address{Street: "Main St", City: "Lisbon", Country: "PT"}
	require.NoError(t, db.Create(&location).Error)

	booking := models.Booking{
		RenterID:   rental.OwnerID,
		RentalID:   rental.ID,
		LocationID: location.ID,
		RentDate:   time.Now(),
		ReturnDate: time.Now().Add(7 * 24 * time.Hour),
	}
	require.NoError(t, db.Create(&booking).Error)

	payment := models.Payment{
		OwnerID:    rental.OwnerID,
		ReceiverID: rental.OwnerID,
		Amount:     decimal.RequireFromString("349.99"),
		BillDate:   time.Now(),
	}
	require.NoError(t, db.Create(&payment).Error)
	require.NoError(t, db.Model(&booking).Association("Payments").Append(&payment))

	var reloaded models.Booking
	require.NoError(t, db.Preload("Payments").First(&reloaded, booking.ID).Error)
	require.Len(t, reloaded.Payments, 1)
	assert.Equal(t, payment.PaymentHash, reloaded.Payments[0].PaymentHash)
}
