package store

import "github.com/MKhiriev/go-sales-keeper/internal/logger"

// Storages groups the repositories handed to the service layer.
type Storages struct {
	UserRepository          UserRepository
	CustomerRepository      CustomerRepository
	PaymentMethodRepository PaymentMethodRepository
}

// NewStorages builds every repository on top of db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:          NewUserRepository(db, logger),
		CustomerRepository:      NewCustomerRepository(db, logger),
		PaymentMethodRepository: NewPaymentMethodRepository(db, logger),
	}
}
