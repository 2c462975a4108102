package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-food-order/internal/logger"
)

type healthRepository struct {
	db *DB
}

// NewHealthRepository constructs a [HealthRepository] backed by db.
func NewHealthRepository(db *DB) HealthRepository {
	return &healthRepository{db: db}
}

func (r *healthRepository) DatabaseTime(ctx context.Context) (string, error) {
	query, args, err := buildDatabaseTimeQuery(r.db.builder)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var now string
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&now); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*healthRepository.DatabaseTime").Msg("database is unreachable")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return now, nil
}
