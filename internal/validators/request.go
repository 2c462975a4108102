package validators

import (
	"cmp"
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-food-order/internal/crypto"
	"github.com/MKhiriev/go-food-order/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldFullname = "fullname"
	FieldMenuID   = "menu_id"
	FieldQuantity = "quantity"
)

const (
	// MaxUsernameLength matches the customers.username column.
	MaxUsernameLength = 100
	// MaxPasswordBytes is the longest password bcrypt accepts.
	MaxPasswordBytes = crypto.MaxPasswordBytes
)

// RequestValidator validates the JSON bodies accepted by the API.
type RequestValidator struct{}

// NewRequestValidator returns a [Validator] for register, login and order
// requests.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the request type. Optional fields restrict
// validation to the named subset; when omitted, every field of the request
// is validated.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	case models.OrderRequest:
		return v.validateOrderRequest(ctx, value, fields...)
	case *models.OrderRequest:
		return v.validateOrderRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateRegisterRequest(_ context.Context, request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword, FieldFullname}
	}

	var missing []string
	var invalid error
	for _, f := range fields {
		switch f {
		case FieldUsername:
			switch {
			case strings.TrimSpace(request.Username) == "":
				missing = append(missing, FieldUsername)
			case len(request.Username) > MaxUsernameLength:
				invalid = cmp.Or(invalid, ErrUsernameTooLong)
			case strings.ContainsFunc(request.Username, unicode.IsSpace):
				invalid = cmp.Or(invalid, ErrUsernameHasSpaces)
			}
		case FieldPassword:
			switch {
			case request.Password == "":
				missing = append(missing, FieldPassword)
			case len(request.Password) > MaxPasswordBytes:
				invalid = cmp.Or(invalid, ErrPasswordTooLong)
			}
		case FieldFullname:
			if strings.TrimSpace(request.Fullname) == "" {
				missing = append(missing, FieldFullname)
			}
		default:
			return ErrUnknownField
		}
	}
	if len(missing) > 0 {
		return missingFields(missing)
	}

	return invalid
}

// validateLoginRequest only checks presence. An over-long password is not
// rejected here: the hasher refuses to verify it, so it fails as an
// ordinary credential mismatch.
func (v *RequestValidator) validateLoginRequest(_ context.Context, request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	var missing []string
	for _, f := range fields {
		switch f {
		case FieldUsername:
			if request.Username == "" {
				missing = append(missing, FieldUsername)
			}
		case FieldPassword:
			if request.Password == "" {
				missing = append(missing, FieldPassword)
			}
		default:
			return ErrUnknownField
		}
	}
	if len(missing) > 0 {
		return missingFields(missing)
	}

	return nil
}

func (v *RequestValidator) validateOrderRequest(_ context.Context, request models.OrderRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMenuID, FieldQuantity}
	}

	var missing []string
	var invalid error
	for _, f := range fields {
		switch f {
		case FieldMenuID:
			switch {
			case request.MenuID == 0:
				missing = append(missing, FieldMenuID)
			case request.MenuID < 0:
				invalid = cmp.Or(invalid, ErrInvalidMenuID)
			}
		case FieldQuantity:
			switch {
			case request.Quantity == 0:
				missing = append(missing, FieldQuantity)
			case request.Quantity < 0:
				invalid = cmp.Or(invalid, ErrInvalidQuantity)
			}
		default:
			return ErrUnknownField
		}
	}
	if len(missing) > 0 {
		return missingFields(missing)
	}

	return invalid
}

func missingFields(names []string) error {
	return fmt.Errorf("%w: %s", ErrMissingRequiredFields, strings.Join(names, ", "))
}
