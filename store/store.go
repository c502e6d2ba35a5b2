package store

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wheelshare/schema/models"
)

// Store is the CRUD persistence layer over the rental schema. It carries
// no business logic; timestamp and hash bookkeeping happen in model
// hooks, constraint enforcement happens in the database.
type Store struct {
	db  *gorm.DB
	log *zap.Logger
}

// New wraps an open GORM handle. A nil logger disables store logging.
func New(db *gorm.DB, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{db: db, log: log}
}

// DB exposes the underlying handle for callers that need raw access.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// AutoMigrate creates or updates the tables for every model, parents
// before children so foreign keys resolve.
func (s *Store) AutoMigrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(models.MigrationOrder...)
}
