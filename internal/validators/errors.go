package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrMissingRequiredFields is wrapped with the comma-separated names of
	// every missing field.
	ErrMissingRequiredFields = errors.New("missing required fields")

	ErrUsernameTooLong   = errors.New("username is too long")
	ErrUsernameHasSpaces = errors.New("username must not contain whitespace")
	ErrPasswordTooLong   = errors.New("password is too long")
	ErrInvalidMenuID     = errors.New("menu_id must be positive")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
)
