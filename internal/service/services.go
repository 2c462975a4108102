package service

import (
	"fmt"

	"github.com/MKhiriev/go-food-order/internal/config"
	"github.com/MKhiriev/go-food-order/internal/crypto"
	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/internal/store"
)

type Services struct {
	AuthService     AuthService
	CustomerService CustomerService
	MenuService     MenuService
	OrderService    OrderService
	AppInfoService  AppInfoService
}

// NewServices wires every service over storages. Auth and order services
// are wrapped with request validation.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	hasher, err := crypto.NewBcryptHasher(cfg.App.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	authService, err := NewAuthService(storages.CustomerRepository, hasher, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}

	appInfoService, err := NewAppInfoService(storages.HealthRepository, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:     NewAuthValidationService().Wrap(authService),
		CustomerService: NewCustomerService(storages.CustomerRepository, logger),
		MenuService:     NewMenuService(storages.MenuRepository, logger),
		OrderService:    NewOrderValidationService().Wrap(NewOrderService(storages.MenuRepository, storages.OrderRepository, logger)),
		AppInfoService:  appInfoService,
	}, nil
}
