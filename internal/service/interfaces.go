package service

import (
	"context"

	"github.com/MKhiriev/go-food-order/models"
)

// AuthService registers customers, checks credentials and issues and
// verifies session tokens.
type AuthService interface {
	RegisterCustomer(ctx context.Context, request models.RegisterRequest) (models.Customer, error)
	// Login returns ErrInvalidCredentials for an unknown username and for a
	// wrong password alike.
	Login(ctx context.Context, request models.LoginRequest) (models.Customer, error)
	CreateToken(ctx context.Context, customer models.Customer) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Principal, error)
}

type CustomerService interface {
	ListCustomers(ctx context.Context) ([]models.Customer, error)
}

type MenuService interface {
	ListMenus(ctx context.Context) ([]models.MenuItem, error)
}

// OrderService places orders on behalf of an authenticated customer.
type OrderService interface {
	PlaceOrder(ctx context.Context, customerID int64, request models.OrderRequest) (models.Order, error)
	GetOrderSummary(ctx context.Context, customerID int64) (models.OrderSummary, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	// Ping proves the database answers and returns its clock.
	Ping(ctx context.Context) (models.PingResponse, error)
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// OrderServiceWrapper defines middleware composition for OrderService.
type OrderServiceWrapper interface {
	Wrap(OrderService) OrderService
}
