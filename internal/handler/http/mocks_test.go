package http

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-sales-keeper/internal/logger"
	"github.com/MKhiriev/go-sales-keeper/internal/service"
	"github.com/MKhiriev/go-sales-keeper/models"
)

// mockAuthService implements service.AuthService. Each method field can be
// overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockCustomerService struct {
	createFn func(ctx context.Context, customer models.Customer, role models.Role) (models.Projection, error)
	updateFn func(ctx context.Context, update models.CustomerUpdate, role models.Role) (models.Projection, error)
	getFn    func(ctx context.Context, id int64, role models.Role) (models.Projection, error)
	listFn   func(ctx context.Context, opts models.ListOptions, role models.Role) ([]models.Projection, error)
}

func (m *mockCustomerService) CreateCustomer(ctx context.Context, customer models.Customer, role models.Role) (models.Projection, error) {
	return m.createFn(ctx, customer, role)
}

func (m *mockCustomerService) UpdateCustomer(ctx context.Context, update models.CustomerUpdate, role models.Role) (models.Projection, error) {
	return m.updateFn(ctx, update, role)
}

func (m *mockCustomerService) GetCustomer(ctx context.Context, id int64, role models.Role) (models.Projection, error) {
	return m.getFn(ctx, id, role)
}

func (m *mockCustomerService) ListCustomers(ctx context.Context, opts models.ListOptions, role models.Role) ([]models.Projection, error) {
	return m.listFn(ctx, opts, role)
}

type mockPaymentMethodService struct {
	createFn func(ctx context.Context, method models.PaymentMethod, role models.Role) (models.Projection, error)
	updateFn func(ctx context.Context, update models.PaymentMethodUpdate, role models.Role) (models.Projection, error)
	getFn    func(ctx context.Context, id int64, role models.Role) (models.Projection, error)
	listFn   func(ctx context.Context, customerID int64, role models.Role) ([]models.Projection, error)
}

func (m *mockPaymentMethodService) CreatePaymentMethod(ctx context.Context, method models.PaymentMethod, role models.Role) (models.Projection, error) {
	return m.createFn(ctx, method, role)
}

func (m *mockPaymentMethodService) UpdatePaymentMethod(ctx context.Context, update models.PaymentMethodUpdate, role models.Role) (models.Projection, error) {
	return m.updateFn(ctx, update, role)
}

func (m *mockPaymentMethodService) GetPaymentMethod(ctx context.Context, id int64, role models.Role) (models.Projection, error) {
	return m.getFn(ctx, id, role)
}

func (m *mockPaymentMethodService) ListCustomerPaymentMethods(ctx context.Context, customerID int64, role models.Role) ([]models.Projection, error) {
	return m.listFn(ctx, customerID, role)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// tokenFor returns a ParseToken stub that authenticates every token as
// userID with role.
func tokenFor(userID int64, role models.Role) func(context.Context, string) (models.Token, error) {
	return func(_ context.Context, _ string) (models.Token, error) {
		return models.Token{UserID: userID, Role: role}, nil
	}
}

// newTestHandler builds a Handler over the given services. Nil services are
// replaced with mocks whose methods panic if reached.
func newTestHandler(t *testing.T, svcs service.Services) *Handler {
	t.Helper()

	if svcs.AuthService == nil {
		svcs.AuthService = &mockAuthService{}
	}
	if svcs.CustomerService == nil {
		svcs.CustomerService = &mockCustomerService{}
	}
	if svcs.PaymentMethodService == nil {
		svcs.PaymentMethodService = &mockPaymentMethodService{}
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test-version"}
	}

	return NewHandler(&svcs, logger.Nop())
}
