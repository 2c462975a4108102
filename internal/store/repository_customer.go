package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/models"
)

// customerRepository is the SQL implementation of [CustomerRepository]
// backed by the "customers" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type customerRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCustomerRepository constructs a [CustomerRepository] backed by db.
func NewCustomerRepository(db *DB, logger *logger.Logger) CustomerRepository {
	logger.Debug().Msg("creating customer repository")
	return &customerRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCustomer inserts the customer and fills ID and CreatedAt from the
// RETURNING clause.
//
// Error handling:
//   - unique violation on username → [ErrCustomerAlreadyExists];
//   - any other driver error → wrapped [ErrExecutingQuery].
func (r *customerRepository) CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertCustomerQuery(r.db.builder, customer)
	if err != nil {
		return models.Customer{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&customer.ID, &customer.CreatedAt)
	if err != nil {
		if r.db.classify(err) == UniqueViolation {
			log.Debug().Str("func", "*customerRepository.CreateCustomer").Str("username", customer.Username).Msg("username is taken")
			return models.Customer{}, ErrCustomerAlreadyExists
		}
		log.Err(err).Str("func", "*customerRepository.CreateCustomer").Msg("error inserting customer")
		return models.Customer{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return customer, nil
}

// FindCustomerByUsername returns the full customer record including the
// password digest.
func (r *customerRepository) FindCustomerByUsername(ctx context.Context, username string) (models.Customer, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindCustomerByUsernameQuery(r.db.builder, username)
	if err != nil {
		return models.Customer{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var c models.Customer
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&c.ID, &c.Username, &c.PasswordHash, &c.Fullname, &c.Address, &c.Phone, &c.Email, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Customer{}, ErrCustomerNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.FindCustomerByUsername").Msg("error selecting customer")
		return models.Customer{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return c, nil
}

// CustomerExists reports whether a customer with username is stored.
func (r *customerRepository) CustomerExists(ctx context.Context, username string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCustomerExistsQuery(r.db.builder, username)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		log.Err(err).Str("func", "*customerRepository.CustomerExists").Msg("error checking customer")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}

// ListCustomers returns every customer ordered by id. The password digest
// is not selected.
func (r *customerRepository) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCustomersQuery(r.db.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.ListCustomers").Msg("error selecting customers")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	customers := make([]models.Customer, 0)
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.Username, &c.Fullname, &c.Address, &c.Phone, &c.Email, &c.CreatedAt); err != nil {
			log.Err(err).Str("func", "*customerRepository.ListCustomers").Msg("error scanning customer")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return customers, nil
}
