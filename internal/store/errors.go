package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when no user matches the login.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrCustomerNotFound is returned when a customer id does not exist,
	// including when a payment method references a missing customer.
	ErrCustomerNotFound = errors.New("customer was not found")

	// ErrPaymentMethodNotFound is returned when a payment method id does not
	// exist.
	ErrPaymentMethodNotFound = errors.New("payment method was not found")

	// ErrUnsupportedDialect is returned for a DB handle of unknown dialect.
	ErrUnsupportedDialect = errors.New("unsupported sql dialect")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot build a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrNothingToUpdate is returned for an update without any set field.
	ErrNothingToUpdate = errors.New("nothing to update")
)
