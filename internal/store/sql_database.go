package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-food-order/internal/config"
	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/migrations"
)

// Supported drivers, mirrored from the config package.
const (
	DriverPostgres = config.DriverPostgres
	DriverSQLite   = config.DriverSQLite
)

// DB is a database handle shared by all repositories. It carries the
// driver-specific placeholder format and error classifier.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB wraps an open *sql.DB for the given driver.
func NewDB(conn *sql.DB, driver string, log *logger.Logger) (*DB, error) {
	if conn == nil {
		return nil, ErrNilDB
	}

	builder, err := newStatementBuilder(driver)
	if err != nil {
		return nil, err
	}

	var classifier ErrorClassificator
	switch driver {
	case DriverPostgres:
		classifier = NewPostgresErrorClassifier()
	case DriverSQLite:
		classifier = NewSQLiteErrorClassifier()
	}

	return &DB{
		DB:                 conn,
		driver:             driver,
		builder:            builder,
		errorClassificator: classifier,
		logger:             log,
	}, nil
}

// NewConnect opens and pings the database selected by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// Migrate applies the embedded migrations of the handle's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// Driver returns the name of the database driver.
func (db *DB) Driver() string {
	return db.driver
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return Unclassified
	}
	return db.errorClassificator.Classify(err)
}
