package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sales-keeper/models"
)

// Field name constants restrict validation to a subset of fields. They match
// the JSON names of the models.
const (
	FieldID               = "id"
	FieldCustomerID       = "customerId"
	FieldFirstName        = "firstName"
	FieldLastName         = "lastName"
	FieldPhone            = "phone"
	FieldSSN              = "ssnNumber"
	FieldDriverLicense    = "driverLicense"
	FieldStateID          = "stateId"
	FieldSecurityAnswer   = "securityAnswer"
	FieldMethodType       = "methodType"
	FieldAccountNumber    = "accountNumber"
	FieldRoutingNumber    = "routingNumber"
	FieldCheckNumber      = "checkNumber"
	FieldCardNumber       = "cardNumber"
	FieldCVV              = "cvv"
	FieldExpiryDate       = "expiryDate"
	FieldRequiredByMethod = "required by method type"
	FieldChanges          = "changes"

	FieldLogin    = "login"
	FieldPassword = "password"
	FieldRole     = "role"
)

// requiredByMethod is the set of sensitive fields a new payment method of
// each type must carry.
var requiredByMethod = map[models.PaymentMethodType][]string{
	models.PaymentBankAccount: {FieldAccountNumber, FieldRoutingNumber},
	models.PaymentCard:        {FieldCardNumber, FieldCVV, FieldExpiryDate},
	models.PaymentCheck:       {FieldAccountNumber, FieldRoutingNumber, FieldCheckNumber},
}

// SalesValidator implements [Validator] for customers, payment methods,
// their partial updates and user registrations. Value and pointer forms of
// each model are accepted.
type SalesValidator struct{}

// NewSalesValidator constructs a new SalesValidator and returns it as the
// Validator interface.
func NewSalesValidator() Validator {
	return &SalesValidator{}
}

// Validate dispatches on the dynamic type of obj. Without fields a default
// set is checked; ErrUnsupportedType is returned for unknown types.
func (v *SalesValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Customer:
		return v.validateCustomer(ctx, value, fields...)
	case *models.Customer:
		return v.validateCustomer(ctx, *value, fields...)
	case models.CustomerUpdate:
		return v.validateCustomerUpdate(ctx, value, fields...)
	case *models.CustomerUpdate:
		return v.validateCustomerUpdate(ctx, *value, fields...)
	case models.PaymentMethod:
		return v.validatePaymentMethod(ctx, value, fields...)
	case *models.PaymentMethod:
		return v.validatePaymentMethod(ctx, *value, fields...)
	case models.PaymentMethodUpdate:
		return v.validatePaymentMethodUpdate(ctx, value, fields...)
	case *models.PaymentMethodUpdate:
		return v.validatePaymentMethodUpdate(ctx, *value, fields...)
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *SalesValidator) validateCustomer(ctx context.Context, c models.Customer, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFirstName, FieldLastName, FieldPhone, FieldSSN, FieldDriverLicense, FieldStateID, FieldSecurityAnswer}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if c.ID <= 0 {
				return ErrInvalidID
			}
		case FieldFirstName:
			if c.FirstName == "" {
				return ErrEmptyFirstName
			}
		case FieldLastName:
			if c.LastName == "" {
				return ErrEmptyLastName
			}
		default:
			if err := checkCustomerField(f, c.Fields()[f]); err != nil {
				return err
			}
		}
	}

	return nil
}

func (v *SalesValidator) validateCustomerUpdate(ctx context.Context, u models.CustomerUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldChanges, FieldFirstName, FieldLastName, FieldPhone, FieldSSN, FieldDriverLicense, FieldStateID, FieldSecurityAnswer}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if u.ID <= 0 {
				return ErrInvalidID
			}
		case FieldChanges:
			if len(u.ChangedFields()) == 0 {
				return ErrNoFieldsToUpdate
			}
		case FieldFirstName:
			if u.FirstName != nil && *u.FirstName == "" {
				return ErrEmptyFirstName
			}
		case FieldLastName:
			if u.LastName != nil && *u.LastName == "" {
				return ErrEmptyLastName
			}
		default:
			if err := checkCustomerField(f, u.Fields()[f]); err != nil {
				return err
			}
		}
	}

	return nil
}

// checkCustomerField validates one optional sensitive customer attribute.
// value is the *string (or nil) taken from the model's Fields map.
func checkCustomerField(field string, value any) error {
	s, present := stringValue(value)

	switch field {
	case FieldPhone:
		if present && !IsPhone(s) {
			return ErrInvalidPhone
		}
	case FieldSSN:
		if present && !IsSSN(s) {
			return ErrInvalidSSN
		}
	case FieldDriverLicense, FieldStateID, FieldSecurityAnswer:
		if present && s == "" {
			return fmt.Errorf("%s: %w", field, ErrEmptyValue)
		}
	default:
		return ErrUnknownField
	}

	return nil
}

func (v *SalesValidator) validatePaymentMethod(ctx context.Context, p models.PaymentMethod, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCustomerID, FieldMethodType, FieldRequiredByMethod,
			FieldAccountNumber, FieldRoutingNumber, FieldCheckNumber, FieldCardNumber, FieldCVV, FieldExpiryDate}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if p.ID <= 0 {
				return ErrInvalidID
			}
		case FieldCustomerID:
			if p.CustomerID <= 0 {
				return ErrInvalidCustomerID
			}
		case FieldMethodType:
			if !p.MethodType.Valid() {
				return ErrInvalidMethodType
			}
		case FieldRequiredByMethod:
			values := p.Fields()
			for _, required := range requiredByMethod[p.MethodType] {
				if _, present := stringValue(values[required]); !present {
					return fmt.Errorf("%w for %s: %s", ErrMissingRequiredField, p.MethodType, required)
				}
			}
		default:
			if err := checkPaymentField(f, p.Fields()[f]); err != nil {
				return err
			}
		}
	}

	return nil
}

func (v *SalesValidator) validatePaymentMethodUpdate(ctx context.Context, u models.PaymentMethodUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldChanges, FieldMethodType,
			FieldAccountNumber, FieldRoutingNumber, FieldCheckNumber, FieldCardNumber, FieldCVV, FieldExpiryDate}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if u.ID <= 0 {
				return ErrInvalidID
			}
		case FieldChanges:
			if len(u.ChangedFields()) == 0 {
				return ErrNoFieldsToUpdate
			}
		case FieldMethodType:
			if u.MethodType != nil && !u.MethodType.Valid() {
				return ErrInvalidMethodType
			}
		default:
			if err := checkPaymentField(f, u.Fields()[f]); err != nil {
				return err
			}
		}
	}

	return nil
}

// checkPaymentField validates the format of one optional sensitive payment
// attribute when it is present.
func checkPaymentField(field string, value any) error {
	s, present := stringValue(value)
	if !present {
		switch field {
		case FieldAccountNumber, FieldRoutingNumber, FieldCheckNumber, FieldCardNumber, FieldCVV, FieldExpiryDate:
			return nil
		}
		return ErrUnknownField
	}

	switch field {
	case FieldAccountNumber:
		if !IsAccountNumber(s) {
			return ErrInvalidAccountNumber
		}
	case FieldRoutingNumber:
		if !IsRoutingNumber(s) {
			return ErrInvalidRoutingNumber
		}
	case FieldCheckNumber:
		if !IsDigits(s) {
			return ErrInvalidCheckNumber
		}
	case FieldCardNumber:
		if !IsCardNumber(s) {
			return ErrInvalidCardNumber
		}
	case FieldCVV:
		if !IsCVV(s) {
			return ErrInvalidCVV
		}
	case FieldExpiryDate:
		if !IsExpiryDate(s) {
			return ErrInvalidExpiryDate
		}
	default:
		return ErrUnknownField
	}

	return nil
}

func (v *SalesValidator) validateUser(ctx context.Context, u models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword, FieldRole}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if u.Login == "" {
				return ErrEmptyLogin
			}
		case FieldPassword:
			if u.Password == "" {
				return ErrEmptyPassword
			}
		case FieldRole:
			if !u.Role.Valid() {
				return ErrInvalidRole
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// stringValue unwraps the string or *string stored in a model's Fields map.
func stringValue(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case *string:
		if v == nil {
			return "", false
		}
		return *v, true
	}
	return "", false
}
