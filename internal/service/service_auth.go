package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-food-order/internal/config"
	"github.com/MKhiriev/go-food-order/internal/crypto"
	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/internal/store"
	"github.com/MKhiriev/go-food-order/internal/utils"
	"github.com/MKhiriev/go-food-order/models"
)

// dummyPassword is hashed once per service so that a login for an unknown
// username still pays for one digest verification.
const dummyPassword = "food-order-dummy-password"

// authService is the concrete implementation of AuthService.
// It handles customer registration, credential verification, and session
// token lifecycle using a CustomerRepository for persistence and a
// PasswordHasher for digests.
type authService struct {
	customerRepository store.CustomerRepository
	hasher             crypto.PasswordHasher

	// dummyDigest is verified against when the username is unknown.
	dummyDigest string

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// CustomerRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(customerRepository store.CustomerRepository, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) (AuthService, error) {
	if cfg.TokenSignKey == "" {
		return nil, utils.ErrEmptySignKey
	}

	dummyDigest, err := hasher.Hash(dummyPassword)
	if err != nil {
		return nil, fmt.Errorf("error preparing dummy digest: %w", err)
	}

	return &authService{
		customerRepository: customerRepository,
		hasher:             hasher,
		dummyDigest:        dummyDigest,
		tokenSignKey:       cfg.TokenSignKey,
		tokenDuration:      cfg.TokenDuration,
		logger:             logger,
	}, nil
}

// RegisterCustomer creates a new customer account.
//
// The password is replaced by its digest before anything is persisted.
//
// Returns the persisted customer (with a server-assigned ID) or:
//   - ErrUsernameTaken if the username is already registered;
//   - a wrapped infrastructure error otherwise.
func (a *authService) RegisterCustomer(ctx context.Context, request models.RegisterRequest) (models.Customer, error) {
	log := logger.FromContext(ctx)

	exists, err := a.customerRepository.CustomerExists(ctx, request.Username)
	if err != nil {
		return models.Customer{}, fmt.Errorf("customer lookup ended with error: %w", err)
	}
	if exists {
		log.Debug().Str("username", request.Username).Msg("username is already registered")
		return models.Customer{}, ErrUsernameTaken
	}

	digest, err := a.hasher.Hash(request.Password)
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("password hashing failed")
		return models.Customer{}, fmt.Errorf("password hashing failed: %w", err)
	}

	customer, err := a.customerRepository.CreateCustomer(ctx, models.Customer{
		Username:     request.Username,
		PasswordHash: digest,
		Fullname:     request.Fullname,
		Address:      request.Address,
		Phone:        request.Phone,
		Email:        request.Email,
	})
	if errors.Is(err, store.ErrCustomerAlreadyExists) {
		// lost the race against a concurrent registration
		return models.Customer{}, ErrUsernameTaken
	}
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("customer creation ended with error")
		return models.Customer{}, fmt.Errorf("customer creation ended with error: %w", err)
	}

	log.Info().Object("customer", customer).Msg("customer registered")
	return customer, nil
}

// Login authenticates an existing customer.
//
// Returns the customer record or:
//   - ErrInvalidCredentials if the username is unknown or the password does
//     not match. Both cases verify one digest;
//   - a wrapped infrastructure error if the lookup fails.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.Customer, error) {
	log := logger.FromContext(ctx)

	customer, err := a.customerRepository.FindCustomerByUsername(ctx, request.Username)
	if errors.Is(err, store.ErrCustomerNotFound) {
		a.hasher.Verify(request.Password, a.dummyDigest)
		log.Debug().Str("username", request.Username).Msg("login for unknown username")
		return models.Customer{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("customer search by username failed")
		return models.Customer{}, fmt.Errorf("customer search by username failed: %w", err)
	}

	if !a.hasher.Verify(request.Password, customer.PasswordHash) {
		log.Debug().Int64("id", customer.ID).Msg("wrong password")
		return models.Customer{}, ErrInvalidCredentials
	}

	return customer, nil
}

// CreateToken issues a signed session token for the given customer.
func (a *authService) CreateToken(ctx context.Context, customer models.Customer) (models.Token, error) {
	token, err := utils.GenerateJWTToken(customer.ID, customer.Username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", customer.ID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw session token and returns the principal it
// carries. Every validation failure wraps ErrTokenIsExpiredOrInvalid
// together with the precise utils error.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Principal, error) {
	principal, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey)
	if err != nil {
		return models.Principal{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	return principal, nil
}
