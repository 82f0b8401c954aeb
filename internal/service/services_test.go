package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sales-keeper/internal/config"
	"github.com/MKhiriev/go-sales-keeper/internal/logger"
	"github.com/MKhiriev/go-sales-keeper/internal/mock"
	"github.com/MKhiriev/go-sales-keeper/internal/store"
)

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.Storages{
		UserRepository:          mock.NewMockUserRepository(ctrl),
		CustomerRepository:      mock.NewMockCustomerRepository(ctrl),
		PaymentMethodRepository: mock.NewMockPaymentMethodRepository(ctrl),
	}
	g, _ := newTestGate(t)

	services, err := NewServices(storages, g, config.StructuredConfig{App: config.App{Version: "1.2.3"}}, logger.Nop())
	require.NoError(t, err)

	assert.IsType(t, &AuthValidationService{}, services.AuthService)
	assert.IsType(t, &CustomerValidationService{}, services.CustomerService)
	assert.IsType(t, &PaymentMethodValidationService{}, services.PaymentMethodService)
	assert.NotNil(t, services.AppInfoService)
}

func TestNewServices_MissingVersion(t *testing.T) {
	g, _ := newTestGate(t)

	_, err := NewServices(&store.Storages{}, g, config.StructuredConfig{}, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
