package store

import (
	"context"

	"github.com/MKhiriev/go-food-order/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CustomerRepository persists registered customers.
type CustomerRepository interface {
	// CreateCustomer inserts customer and returns it with ID and CreatedAt
	// assigned. Returns ErrCustomerAlreadyExists on a duplicate username.
	CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error)
	// FindCustomerByUsername returns ErrCustomerNotFound when no customer has
	// the username.
	FindCustomerByUsername(ctx context.Context, username string) (models.Customer, error)
	CustomerExists(ctx context.Context, username string) (bool, error)
	ListCustomers(ctx context.Context) ([]models.Customer, error)
}

// MenuRepository reads the menu catalogue.
type MenuRepository interface {
	ListMenus(ctx context.Context) ([]models.MenuItem, error)
	// FindMenuByID returns ErrMenuNotFound for an unknown id.
	FindMenuByID(ctx context.Context, menuID int64) (models.Menu, error)
}

// OrderRepository persists orders and aggregates them per customer.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order models.Order) (models.Order, error)
	GetOrderSummary(ctx context.Context, customerID int64) (models.OrderSummary, error)
}

// HealthRepository reports database liveness.
type HealthRepository interface {
	// DatabaseTime returns the database clock, proving a round trip.
	DatabaseTime(ctx context.Context) (string, error)
}

// ErrorClassificator maps a driver error to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
