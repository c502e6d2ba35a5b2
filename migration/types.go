package migration

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"
)

// Migration is a single versioned schema change. Up applies it, Down
// reverts it. Versions are lexicographically ordered timestamps.
type Migration struct {
	Version   string
	Name      string
	CreatedAt time.Time
	Up        func(*gorm.DB) error
	Down      func(*gorm.DB) error
}

// Record is a row in the version tracking table for an applied migration.
type Record struct {
	Version   string    `gorm:"primaryKey"`
	Name      string    `gorm:"not null"`
	AppliedAt time.Time `gorm:"not null"`
}

func (Record) TableName() string {
	return "schema_migrations"
}

var (
	registryMu sync.RWMutex
	registered = make([]*Migration, 0)
)

// Register adds a migration to the global registry. Migration files call
// this from init(), so importing the migrations package is enough to make
// them visible to the CLI.
func Register(m *Migration) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registered = append(registered, m)
}

// Registered returns all registered migrations sorted by version.
func Registered() []*Migration {
	registryMu.RLock()
	defer registryMu.RUnlock()

	migrations := make([]*Migration, len(registered))
	copy(migrations, registered)
	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})
	return migrations
}

// Reset clears the registry. Test helper.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registered = make([]*Migration, 0)
}

// Validate checks the registry for duplicate versions and migrations
// missing an Up or Down function.
func Validate() error {
	seen := make(map[string]string)
	for _, m := range Registered() {
		if m.Version == "" {
			return fmt.Errorf("migration %q has no version", m.Name)
		}
		if prev, ok := seen[m.Version]; ok {
			return fmt.Errorf("duplicate migration version %s (%q and %q)", m.Version, prev, m.Name)
		}
		seen[m.Version] = m.Name
		if m.Up == nil {
			return fmt.Errorf("migration %s_%s has no Up function", m.Version, m.Name)
		}
		if m.Down == nil {
			return fmt.Errorf("migration %s_%s has no Down function", m.Version, m.Name)
		}
	}
	return nil
}
