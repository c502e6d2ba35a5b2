package migrations

import (
	"gorm.io/gorm"

	"github.com/wheelshare/schema/migration"
)

// rentals.created_at and reviews.created_at used to be populated only by
// the application. Give both columns a database-side default so rows
// written outside the ORM get a timestamp too.
func init() {
	migration.Register(&migration.Migration{
		Version: "20240321201700",
		Name:    "rental_review_created_at_defaults",
		Up: func(db *gorm.DB) error {
			if err := db.Exec(`ALTER TABLE rentals ALTER COLUMN created_at SET DEFAULT CURRENT_TIMESTAMP`).Error; err != nil {
				return err
			}
			return db.Exec(`ALTER TABLE reviews ALTER COLUMN created_at SET DEFAULT CURRENT_TIMESTAMP`).Error
		},
		Down: func(db *gorm.DB) error {
			if err := db.Exec(`ALTER TABLE rentals ALTER COLUMN created_at DROP DEFAULT`).Error; err != nil {
				return err
			}
			return db.Exec(`ALTER TABLE reviews ALTER COLUMN created_at DROP DEFAULT`).Error
		},
	})
}
