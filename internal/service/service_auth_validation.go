package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-food-order/internal/validators"
	"github.com/MKhiriev/go-food-order/models"
)

// AuthValidationService rejects malformed register and login requests
// before they reach the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *AuthValidationService) RegisterCustomer(ctx context.Context, request models.RegisterRequest) (models.Customer, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Customer{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.RegisterCustomer(ctx, request)
}

func (v *AuthValidationService) Login(ctx context.Context, request models.LoginRequest) (models.Customer, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Customer{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Login(ctx, request)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, customer models.Customer) (models.Token, error) {
	return v.inner.CreateToken(ctx, customer)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Principal, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}
