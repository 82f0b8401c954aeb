package service

import (
	"context"

	"github.com/MKhiriev/go-sales-keeper/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// CustomerService manages customers. Writes encrypt sensitive fields before
// they reach the store; reads return projections disclosed for role.
type CustomerService interface {
	CreateCustomer(ctx context.Context, customer models.Customer, role models.Role) (models.Projection, error)
	UpdateCustomer(ctx context.Context, update models.CustomerUpdate, role models.Role) (models.Projection, error)
	GetCustomer(ctx context.Context, id int64, role models.Role) (models.Projection, error)
	ListCustomers(ctx context.Context, opts models.ListOptions, role models.Role) ([]models.Projection, error)
}

// PaymentMethodService manages the payment methods of customers with the
// same write and read rules as [CustomerService].
type PaymentMethodService interface {
	CreatePaymentMethod(ctx context.Context, method models.PaymentMethod, role models.Role) (models.Projection, error)
	UpdatePaymentMethod(ctx context.Context, update models.PaymentMethodUpdate, role models.Role) (models.Projection, error)
	GetPaymentMethod(ctx context.Context, id int64, role models.Role) (models.Projection, error)
	ListCustomerPaymentMethods(ctx context.Context, customerID int64, role models.Role) ([]models.Projection, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper, CustomerServiceWrapper and PaymentMethodServiceWrapper
// wrap an existing service to add behavior such as validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

type CustomerServiceWrapper interface {
	Wrap(CustomerService) CustomerService
}

type PaymentMethodServiceWrapper interface {
	Wrap(PaymentMethodService) PaymentMethodService
}
