package driver

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/wheelshare/schema/migration"
)

// Migrator executes registered migrations against a database, one
// transaction per migration.
type Migrator struct {
	db         *gorm.DB
	migrations []*migration.Migration
}

// NewMigrator creates a Migrator preloaded with the global registry.
func NewMigrator(db *gorm.DB) *Migrator {
	return &Migrator{
		db:         db,
		migrations: migration.Registered(),
	}
}

// Register adds a migration outside the global registry.
func (m *Migrator) Register(mig *migration.Migration) {
	m.migrations = append(m.migrations, mig)
}

// Pending returns the migrations that have not been applied yet, in
// version order.
func (m *Migrator) Pending() ([]*migration.Migration, error) {
	applied, err := m.AppliedVersions()
	if err != nil {
		return nil, err
	}

	var pending []*migration.Migration
	for _, mig := range m.migrations {
		if !applied[mig.Version] {
			pending = append(pending, mig)
		}
	}
	return pending, nil
}

// AppliedVersions returns the set of versions present in the tracking
// table, creating the table if needed.
func (m *Migrator) AppliedVersions() (map[string]bool, error) {
	if err := m.ensureVersionTable(); err != nil {
		return nil, err
	}

	var records []migration.Record
	if err := m.db.Find(&records).Error; err != nil {
		return nil, err
	}

	versions := make(map[string]bool)
	for _, record := range records {
		versions[record.Version] = true
	}
	return versions, nil
}

func (m *Migrator) ensureVersionTable() error {
	return m.db.AutoMigrate(&migration.Record{})
}

// Up applies every pending migration. Each migration and its tracking
// record commit atomically; a failure stops the run and leaves earlier
// migrations applied.
func (m *Migrator) Up() error {
	pending, err := m.Pending()
	if err != nil {
		return err
	}

	for _, mig := range pending {
		err := m.db.Transaction(func(tx *gorm.DB) error {
			if err := mig.Up(tx); err != nil {
				return fmt.Errorf("apply %s_%s: %w", mig.Version, mig.Name, err)
			}
			record := migration.Record{
				Version:   mig.Version,
				Name:      mig.Name,
				AppliedAt: time.Now(),
			}
			return tx.Create(&record).Error
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// Down reverts the most recently applied migration and removes its
// record. Reverting with no applied migrations is an error.
func (m *Migrator) Down() error {
	if err := m.ensureVersionTable(); err != nil {
		return err
	}

	var lastRecord migration.Record
	if err := m.db.Order("applied_at DESC").First(&lastRecord).Error; err != nil {
		return fmt.Errorf("no migrations to revert: %w", err)
	}

	var target *migration.Migration
	for _, mig := range m.migrations {
		if mig.Version == lastRecord.Version {
			target = mig
			break
		}
	}
	if target == nil {
		return fmt.Errorf("migration file for version %s not found", lastRecord.Version)
	}

	return m.db.Transaction(func(tx *gorm.DB) error {
		if err := target.Down(tx); err != nil {
			return fmt.Errorf("revert %s_%s: %w", target.Version, target.Name, err)
		}
		return tx.Delete(&lastRecord).Error
	})
}
