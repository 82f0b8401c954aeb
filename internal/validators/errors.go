package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID            = errors.New("invalid ID")
	ErrInvalidCustomerID    = errors.New("invalid customer ID")
	ErrEmptyFirstName       = errors.New("first name is required")
	ErrEmptyLastName        = errors.New("last name is required")
	ErrInvalidPhone         = errors.New("invalid phone number")
	ErrInvalidSSN           = errors.New("invalid SSN: expected DDD-DD-DDDD or 9 digits")
	ErrEmptyValue           = errors.New("value cannot be empty")
	ErrInvalidMethodType    = errors.New("invalid payment method type")
	ErrInvalidAccountNumber = errors.New("invalid account number")
	ErrInvalidRoutingNumber = errors.New("invalid routing number: expected 9 digits")
	ErrInvalidCheckNumber   = errors.New("invalid check number")
	ErrInvalidCardNumber    = errors.New("invalid card number")
	ErrInvalidCVV           = errors.New("invalid CVV: expected 3 or 4 digits")
	ErrInvalidExpiryDate    = errors.New("invalid expiry date: expected MM/YY")
	ErrMissingRequiredField = errors.New("required field is missing")
	ErrNoFieldsToUpdate     = errors.New("at least one field must be provided for update")

	ErrEmptyLogin    = errors.New("login is required")
	ErrEmptyPassword = errors.New("password is required")
	ErrInvalidRole   = errors.New("invalid role")
)
