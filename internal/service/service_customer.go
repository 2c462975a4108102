package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/internal/store"
	"github.com/MKhiriev/go-food-order/models"
)

type customerService struct {
	customerRepository store.CustomerRepository
	logger             *logger.Logger
}

func NewCustomerService(customerRepository store.CustomerRepository, logger *logger.Logger) CustomerService {
	return &customerService{
		customerRepository: customerRepository,
		logger:             logger,
	}
}

// ListCustomers returns all customers without their password digests.
func (s *customerService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	customers, err := s.customerRepository.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing customers ended with error: %w", err)
	}

	for i := range customers {
		customers[i].PasswordHash = ""
	}

	return customers, nil
}
