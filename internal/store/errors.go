package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrCustomerAlreadyExists is returned when a customer with the same
	// username is already stored.
	ErrCustomerAlreadyExists = errors.New("customer already exists")

	// ErrCustomerNotFound is returned when no customer matches the lookup.
	ErrCustomerNotFound = errors.New("customer was not found")

	// ErrMenuNotFound is returned when no menu has the requested id.
	ErrMenuNotFound = errors.New("menu was not found")

	// ErrInvalidOrderReference is returned when an order refers to a
	// customer, restaurant or menu that does not exist.
	ErrInvalidOrderReference = errors.New("order references unknown entity")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	ErrUnknownDriver = errors.New("unknown database driver")
	ErrNilDB         = errors.New("db is nil")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
