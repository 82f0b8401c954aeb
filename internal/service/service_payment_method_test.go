package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sales-keeper/internal/logger"
	"github.com/MKhiriev/go-sales-keeper/internal/mock"
	"github.com/MKhiriev/go-sales-keeper/internal/store"
	"github.com/MKhiriev/go-sales-keeper/models"
)

type paymentMethodMocks struct {
	methods   *mock.MockPaymentMethodRepository
	customers *mock.MockCustomerRepository
}

func newTestPaymentMethodService(t *testing.T) (PaymentMethodService, paymentMethodMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := paymentMethodMocks{
		methods:   mock.NewMockPaymentMethodRepository(ctrl),
		customers: mock.NewMockCustomerRepository(ctrl),
	}
	g, _ := newTestGate(t)
	return NewPaymentMethodService(m.methods, m.customers, g, logger.Nop()), m
}

func TestPaymentMethodService_AccountNumberEndToEnd(t *testing.T) {
	svc, m := newTestPaymentMethodService(t)
	ctx := context.Background()

	var stored models.PaymentMethod
	m.methods.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, pm models.PaymentMethod) (models.PaymentMethod, error) {
			require.NotNil(t, pm.AccountNumber)
			assert.NotEqual(t, "12345678901", *pm.AccountNumber)
			pm.ID = 77
			stored = pm
			return pm, nil
		})

	created, err := svc.CreatePaymentMethod(ctx, models.PaymentMethod{
		CustomerID:    1,
		MethodType:    models.PaymentBankAccount,
		AccountNumber: ptr("12345678901"),
		RoutingNumber: ptr("021000021"),
	}, models.RoleAgent)
	require.NoError(t, err)
	assert.Equal(t, "*******8901", created["accountNumber"])
	assert.Equal(t, "*********", created["routingNumber"])

	m.methods.EXPECT().Get(gomock.Any(), int64(77)).DoAndReturn(
		func(context.Context, int64) (models.PaymentMethod, error) { return stored, nil }).Times(2)

	agent, err := svc.GetPaymentMethod(ctx, 77, models.RoleAgent)
	require.NoError(t, err)
	assert.Equal(t, "*******8901", agent["accountNumber"])

	admin, err := svc.GetPaymentMethod(ctx, 77, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "12345678901", admin["accountNumber"])
	assert.Equal(t, "021000021", admin["routingNumber"])
}

func TestPaymentMethodService_UpdatePaymentMethod(t *testing.T) {
	svc, m := newTestPaymentMethodService(t)

	m.methods.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.PaymentMethodUpdate) (models.PaymentMethod, error) {
			require.NotNil(t, u.CVV)
			assert.NotEqual(t, "987", *u.CVV)
			assert.Equal(t, "Visa Gold", *u.CardholderName)
			return models.PaymentMethod{ID: u.ID, CVV: u.CVV, CardholderName: *u.CardholderName}, nil
		})

	view, err := svc.UpdatePaymentMethod(context.Background(),
		models.PaymentMethodUpdate{ID: 3, CVV: ptr("987"), CardholderName: ptr("Visa Gold")}, models.RoleManager)
	require.NoError(t, err)
	assert.Equal(t, "***", view["cvv"])
	assert.Equal(t, "Visa Gold", view["cardholderName"])
}

func TestPaymentMethodService_UpdatePaymentMethod_NothingToUpdate(t *testing.T) {
	svc, _ := newTestPaymentMethodService(t)

	_, err := svc.UpdatePaymentMethod(context.Background(), models.PaymentMethodUpdate{ID: 3}, models.RoleAdmin)
	assert.ErrorIs(t, err, ErrNothingToUpdate)
}

func TestPaymentMethodService_CreatePaymentMethod_UnknownCustomer(t *testing.T) {
	svc, m := newTestPaymentMethodService(t)

	m.methods.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.PaymentMethod{}, store.ErrCustomerNotFound)

	_, err := svc.CreatePaymentMethod(context.Background(),
		models.PaymentMethod{CustomerID: 99, MethodType: models.PaymentCheck}, models.RoleAdmin)
	assert.ErrorIs(t, err, store.ErrCustomerNotFound)
}

func TestPaymentMethodService_ListCustomerPaymentMethods(t *testing.T) {
	svc, m := newTestPaymentMethodService(t)
	_, c := newTestGate(t)

	card, err := c.Encrypt("4111111111111111")
	require.NoError(t, err)

	gomock.InOrder(
		m.customers.EXPECT().Get(gomock.Any(), int64(1)).Return(models.Customer{ID: 1}, nil),
		m.methods.EXPECT().ListByCustomer(gomock.Any(), int64(1)).Return([]models.PaymentMethod{
			{ID: 1, CustomerID: 1, CardNumber: &card},
			{ID: 2, CustomerID: 1, CheckNumber: ptr("000123")}, // legacy plaintext
		}, nil),
	)

	views, err := svc.ListCustomerPaymentMethods(context.Background(), 1, models.RoleAgent)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "************1111", views[0]["cardNumber"])
	assert.Equal(t, "000123", views[1]["checkNumber"])
}

func TestPaymentMethodService_ListCustomerPaymentMethods_UnknownCustomer(t *testing.T) {
	svc, m := newTestPaymentMethodService(t)

	m.customers.EXPECT().Get(gomock.Any(), int64(404)).Return(models.Customer{}, store.ErrCustomerNotFound)

	_, err := svc.ListCustomerPaymentMethods(context.Background(), 404, models.RoleAgent)
	assert.ErrorIs(t, err, store.ErrCustomerNotFound)
}

func TestPaymentMethodService_GetPaymentMethod_NotFound(t *testing.T) {
	svc, m := newTestPaymentMethodService(t)

	m.methods.EXPECT().Get(gomock.Any(), int64(5)).Return(models.PaymentMethod{}, store.ErrPaymentMethodNotFound)

	_, err := svc.GetPaymentMethod(context.Background(), 5, models.RoleAgent)
	assert.ErrorIs(t, err, store.ErrPaymentMethodNotFound)
}
