package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-food-order/internal/validators"
	"github.com/MKhiriev/go-food-order/models"
)

// OrderValidationService checks order requests before the wrapped
// OrderService prices them.
type OrderValidationService struct {
	inner     OrderService
	validator validators.Validator
}

func NewOrderValidationService() OrderServiceWrapper {
	return &OrderValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *OrderValidationService) PlaceOrder(ctx context.Context, customerID int64, request models.OrderRequest) (models.Order, error) {
	if customerID <= 0 {
		return models.Order{}, fmt.Errorf("%w: customer id must be positive", ErrInvalidDataProvided)
	}
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Order{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.PlaceOrder(ctx, customerID, request)
}

func (v *OrderValidationService) GetOrderSummary(ctx context.Context, customerID int64) (models.OrderSummary, error) {
	if customerID <= 0 {
		return models.OrderSummary{}, fmt.Errorf("%w: customer id must be positive", ErrInvalidDataProvided)
	}

	return v.inner.GetOrderSummary(ctx, customerID)
}

func (v *OrderValidationService) Wrap(wrapped OrderService) OrderService {
	v.inner = wrapped
	return v
}
