package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/models"
)

type menuRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMenuRepository constructs a [MenuRepository] backed by db.
func NewMenuRepository(db *DB, logger *logger.Logger) MenuRepository {
	logger.Debug().Msg("creating menu repository")
	return &menuRepository{
		db:     db,
		logger: logger,
	}
}

// ListMenus returns all menus joined with their restaurant.
func (r *menuRepository) ListMenus(ctx context.Context) ([]models.MenuItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListMenusQuery(r.db.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*menuRepository.ListMenus").Msg("error selecting menus")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.MenuItem, 0)
	for rows.Next() {
		var m models.MenuItem
		err := rows.Scan(
			&m.MenuID, &m.MenuName, &m.MenuDescription, &m.Price, &m.Category,
			&m.Restaurant.ID, &m.Restaurant.Name, &m.Restaurant.Address, &m.Restaurant.Phone, &m.Restaurant.MenuDescription,
		)
		if err != nil {
			log.Err(err).Str("func", "*menuRepository.ListMenus").Msg("error scanning menu")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// FindMenuByID returns [ErrMenuNotFound] for an unknown id.
func (r *menuRepository) FindMenuByID(ctx context.Context, menuID int64) (models.Menu, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindMenuByIDQuery(r.db.builder, menuID)
	if err != nil {
		return models.Menu{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var m models.Menu
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&m.ID, &m.RestaurantID, &m.Name, &m.Description, &m.Price, &m.Category)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Menu{}, ErrMenuNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*menuRepository.FindMenuByID").Msg("error selecting menu")
		return models.Menu{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return m, nil
}
