package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sales-keeper/internal/validators"
	"github.com/MKhiriev/go-sales-keeper/models"
)

// The validation services check plaintext input before the wrapped service
// hands it to the encryption gate. Validation errors are wrapped with
// ErrInvalidDataProvided so callers can map them without knowing every
// validator sentinel.

type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewSalesValidator(),
	}
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	fields := []string{validators.FieldLogin, validators.FieldPassword}
	if user.Role != "" {
		fields = append(fields, validators.FieldRole)
	}
	if err := v.validator.Validate(ctx, user, fields...); err != nil {
		return models.User{}, invalid("user registration", err)
	}

	return v.inner.RegisterUser(ctx, user)
}

func (v *AuthValidationService) Login(ctx context.Context, user models.User) (models.User, error) {
	if err := v.validator.Validate(ctx, user, validators.FieldLogin, validators.FieldPassword); err != nil {
		return models.User{}, invalid("login", err)
	}

	return v.inner.Login(ctx, user)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return v.inner.CreateToken(ctx, user)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}

type CustomerValidationService struct {
	inner     CustomerService
	validator validators.Validator
}

func NewCustomerValidationService() CustomerServiceWrapper {
	return &CustomerValidationService{
		validator: validators.NewSalesValidator(),
	}
}

func (v *CustomerValidationService) CreateCustomer(ctx context.Context, customer models.Customer, role models.Role) (models.Projection, error) {
	if err := v.validator.Validate(ctx, customer); err != nil {
		return nil, invalid("customer", err)
	}

	return v.inner.CreateCustomer(ctx, customer, role)
}

func (v *CustomerValidationService) UpdateCustomer(ctx context.Context, update models.CustomerUpdate, role models.Role) (models.Projection, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return nil, invalid("customer update", err)
	}

	return v.inner.UpdateCustomer(ctx, update, role)
}

func (v *CustomerValidationService) GetCustomer(ctx context.Context, id int64, role models.Role) (models.Projection, error) {
	if id <= 0 {
		return nil, invalid("customer id", validators.ErrInvalidID)
	}

	return v.inner.GetCustomer(ctx, id, role)
}

func (v *CustomerValidationService) ListCustomers(ctx context.Context, opts models.ListOptions, role models.Role) ([]models.Projection, error) {
	return v.inner.ListCustomers(ctx, opts, role)
}

func (v *CustomerValidationService) Wrap(wrapped CustomerService) CustomerService {
	v.inner = wrapped
	return v
}

type PaymentMethodValidationService struct {
	inner     PaymentMethodService
	validator validators.Validator
}

func NewPaymentMethodValidationService() PaymentMethodServiceWrapper {
	return &PaymentMethodValidationService{
		validator: validators.NewSalesValidator(),
	}
}

func (v *PaymentMethodValidationService) CreatePaymentMethod(ctx context.Context, method models.PaymentMethod, role models.Role) (models.Projection, error) {
	if err := v.validator.Validate(ctx, method); err != nil {
		return nil, invalid("payment method", err)
	}

	return v.inner.CreatePaymentMethod(ctx, method, role)
}

func (v *PaymentMethodValidationService) UpdatePaymentMethod(ctx context.Context, update models.PaymentMethodUpdate, role models.Role) (models.Projection, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return nil, invalid("payment method update", err)
	}

	return v.inner.UpdatePaymentMethod(ctx, update, role)
}

func (v *PaymentMethodValidationService) GetPaymentMethod(ctx context.Context, id int64, role models.Role) (models.Projection, error) {
	if id <= 0 {
		return nil, invalid("payment method id", validators.ErrInvalidID)
	}

	return v.inner.GetPaymentMethod(ctx, id, role)
}

func (v *PaymentMethodValidationService) ListCustomerPaymentMethods(ctx context.Context, customerID int64, role models.Role) ([]models.Projection, error) {
	if customerID <= 0 {
		return nil, invalid("customer id", validators.ErrInvalidCustomerID)
	}

	return v.inner.ListCustomerPaymentMethods(ctx, customerID, role)
}

func (v *PaymentMethodValidationService) Wrap(wrapped PaymentMethodService) PaymentMethodService {
	v.inner = wrapped
	return v
}

func invalid(what string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalidDataProvided, what, err)
}
