package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/models"
)

type orderRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewOrderRepository constructs an [OrderRepository] backed by db.
func NewOrderRepository(db *DB, logger *logger.Logger) OrderRepository {
	logger.Debug().Msg("creating order repository")
	return &orderRepository{
		db:     db,
		logger: logger,
	}
}

// CreateOrder inserts the order and fills ID and CreatedAt. A foreign key
// violation is reported as [ErrInvalidOrderReference].
func (r *orderRepository) CreateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertOrderQuery(r.db.builder, order)
	if err != nil {
		return models.Order{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		if r.db.classify(err) == ForeignKeyViolation {
			return models.Order{}, ErrInvalidOrderReference
		}
		log.Err(err).Str("func", "*orderRepository.CreateOrder").Msg("error inserting order")
		return models.Order{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return order, nil
}

// GetOrderSummary returns the customer's name and the sum of all order
// totals. Without orders the name is nil and the total is zero.
func (r *orderRepository) GetOrderSummary(ctx context.Context, customerID int64) (models.OrderSummary, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildOrderSummaryQuery(r.db.builder, customerID)
	if err != nil {
		return models.OrderSummary{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		name  sql.NullString
		total float64
	)
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&name, &total); err != nil {
		log.Err(err).Str("func", "*orderRepository.GetOrderSummary").Msg("error selecting order summary")
		return models.OrderSummary{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	summary := models.OrderSummary{TotalAmount: total}
	if name.Valid {
		summary.CustomerName = &name.String
	}

	return summary, nil
}
