package service

import (
	"github.com/MKhiriev/go-sales-keeper/internal/config"
	"github.com/MKhiriev/go-sales-keeper/internal/gate"
	"github.com/MKhiriev/go-sales-keeper/internal/logger"
	"github.com/MKhiriev/go-sales-keeper/internal/store"
)

type Services struct {
	AuthService          AuthService
	CustomerService      CustomerService
	PaymentMethodService PaymentMethodService
	AppInfoService       AppInfoService
}

// NewServices builds every service over storages, each wrapped in its
// validation decorator.
func NewServices(storages *store.Storages, g *gate.Gate, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	authService := NewAuthService(storages.UserRepository, cfg.Auth, logger)
	customerService := NewCustomerService(storages.CustomerRepository, g, logger)
	paymentMethodService := NewPaymentMethodService(storages.PaymentMethodRepository, storages.CustomerRepository, g, logger)

	return &Services{
		AuthService:          NewAuthValidationService().Wrap(authService),
		CustomerService:      NewCustomerValidationService().Wrap(customerService),
		PaymentMethodService: NewPaymentMethodValidationService().Wrap(paymentMethodService),
		AppInfoService:       appInfoService,
	}, nil
}
