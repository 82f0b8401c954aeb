package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sales-keeper/internal/gate"
	"github.com/MKhiriev/go-sales-keeper/internal/logger"
	"github.com/MKhiriev/go-sales-keeper/internal/store"
	"github.com/MKhiriev/go-sales-keeper/models"
)

type paymentMethodService struct {
	paymentMethodRepository store.PaymentMethodRepository
	customerRepository      store.CustomerRepository
	gate                    *gate.Gate

	logger *logger.Logger
}

func NewPaymentMethodService(
	paymentMethodRepository store.PaymentMethodRepository,
	customerRepository store.CustomerRepository,
	g *gate.Gate,
	logger *logger.Logger,
) PaymentMethodService {
	return &paymentMethodService{
		paymentMethodRepository: paymentMethodRepository,
		customerRepository:      customerRepository,
		gate:                    g,
		logger:                  logger,
	}
}

// CreatePaymentMethod encrypts the account and card identifiers of method,
// persists it and returns the stored record projected for role.
func (s *paymentMethodService) CreatePaymentMethod(ctx context.Context, method models.PaymentMethod, role models.Role) (models.Projection, error) {
	log := logger.FromContext(ctx).With().Int64("customer_id", method.CustomerID).Logger()

	if err := s.gate.BeforeCreate(ctx, &method); err != nil {
		log.Err(err).Msg("encrypting payment method before create failed")
		return nil, fmt.Errorf("error creating payment method: %w", err)
	}

	created, err := s.paymentMethodRepository.Create(ctx, method)
	if err != nil {
		log.Err(err).Str("method_type", string(method.MethodType)).Msg("payment method creation ended with error")
		return nil, fmt.Errorf("error creating payment method: %w", err)
	}

	return s.gate.Project(ctx, &created, role), nil
}

func (s *paymentMethodService) UpdatePaymentMethod(ctx context.Context, update models.PaymentMethodUpdate, role models.Role) (models.Projection, error) {
	log := logger.FromContext(ctx).With().Int64("payment_method_id", update.ID).Logger()

	changed := update.ChangedFields()
	if len(changed) == 0 {
		return nil, ErrNothingToUpdate
	}

	if err := s.gate.BeforeUpdate(ctx, &update, changed...); err != nil {
		log.Err(err).Strs("fields", changed).Msg("encrypting payment method update failed")
		return nil, fmt.Errorf("error updating payment method: %w", err)
	}

	updated, err := s.paymentMethodRepository.Update(ctx, update)
	if err != nil {
		log.Err(err).Strs("fields", changed).Msg("payment method update ended with error")
		return nil, fmt.Errorf("error updating payment method: %w", err)
	}

	return s.gate.Project(ctx, &updated, role), nil
}

func (s *paymentMethodService) GetPaymentMethod(ctx context.Context, id int64, role models.Role) (models.Projection, error) {
	method, err := s.paymentMethodRepository.Get(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("payment_method_id", id).Msg("payment method lookup failed")
		return nil, fmt.Errorf("error getting payment method: %w", err)
	}

	return s.gate.Project(ctx, &method, role), nil
}

// ListCustomerPaymentMethods returns the payment methods of an existing
// customer. An unknown customer yields store.ErrCustomerNotFound rather than
// an empty list.
func (s *paymentMethodService) ListCustomerPaymentMethods(ctx context.Context, customerID int64, role models.Role) ([]models.Projection, error) {
	log := logger.FromContext(ctx).With().Int64("customer_id", customerID).Logger()

	if _, err := s.customerRepository.Get(ctx, customerID); err != nil {
		log.Err(err).Msg("customer lookup failed")
		return nil, fmt.Errorf("error listing payment methods: %w", err)
	}

	methods, err := s.paymentMethodRepository.ListByCustomer(ctx, customerID)
	if err != nil {
		log.Err(err).Msg("payment method listing failed")
		return nil, fmt.Errorf("error listing payment methods: %w", err)
	}

	records := make([]*models.PaymentMethod, len(methods))
	for i := range methods {
		records[i] = &methods[i]
	}

	return gate.ProjectAll(ctx, s.gate, records, role), nil
}
