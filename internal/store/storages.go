package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-food-order/internal/config"
	"github.com/MKhiriev/go-food-order/internal/logger"
)

// Storages groups every repository over one database handle.
type Storages struct {
	CustomerRepository CustomerRepository
	MenuRepository     MenuRepository
	OrderRepository    OrderRepository
	HealthRepository   HealthRepository

	db *DB
}

// NewStorages connects to the configured database, applies migrations
// unless disabled and builds the repositories.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if !cfg.SkipMigrations {
		if err := db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("error applying migrations: %w", err)
		}
		log.Info().Str("driver", cfg.Driver).Msg("migrations applied")
	}

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB builds the repositories over an existing handle.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		CustomerRepository: NewCustomerRepository(db, log),
		MenuRepository:     NewMenuRepository(db, log),
		OrderRepository:    NewOrderRepository(db, log),
		HealthRepository:   NewHealthRepository(db),
		db:                 db,
	}
}

// Close releases the database handle.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
