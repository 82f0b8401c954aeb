package store

import (
	"context"

	"github.com/MKhiriev/go-sales-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists CRM user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// CustomerRepository persists customers. Sensitive columns are written and
// read back exactly as given: the repository never encrypts or decrypts.
type CustomerRepository interface {
	Create(ctx context.Context, customer models.Customer) (models.Customer, error)
	Update(ctx context.Context, update models.CustomerUpdate) (models.Customer, error)
	Get(ctx context.Context, id int64) (models.Customer, error)
	List(ctx context.Context, opts models.ListOptions) ([]models.Customer, error)
	ListAll(ctx context.Context) ([]models.Customer, error)
}

// PaymentMethodRepository persists payment methods. Like
// [CustomerRepository] it stores sensitive columns as opaque text.
type PaymentMethodRepository interface {
	Create(ctx context.Context, method models.PaymentMethod) (models.PaymentMethod, error)
	Update(ctx context.Context, update models.PaymentMethodUpdate) (models.PaymentMethod, error)
	Get(ctx context.Context, id int64) (models.PaymentMethod, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]models.PaymentMethod, error)
	ListAll(ctx context.Context) ([]models.PaymentMethod, error)
}

// ErrorClassificator interprets driver errors of one SQL dialect.
type ErrorClassificator interface {
	// Classify tells whether the failed operation may be retried.
	Classify(err error) ErrorClassification
	// Constraint reports which integrity constraint err violated, if any.
	Constraint(err error) ConstraintViolation
}
