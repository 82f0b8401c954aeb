package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sales-keeper/internal/gate"
	"github.com/MKhiriev/go-sales-keeper/internal/logger"
	"github.com/MKhiriev/go-sales-keeper/internal/store"
	"github.com/MKhiriev/go-sales-keeper/models"
)

// customerService routes every customer write through the encryption gate
// and every read through the role projection. The repository only ever sees
// blobs for sensitive columns.
type customerService struct {
	customerRepository store.CustomerRepository
	gate               *gate.Gate

	logger *logger.Logger
}

func NewCustomerService(customerRepository store.CustomerRepository, g *gate.Gate, logger *logger.Logger) CustomerService {
	return &customerService{
		customerRepository: customerRepository,
		gate:               g,
		logger:             logger,
	}
}

// CreateCustomer encrypts every present sensitive field, persists the
// customer and returns the stored record projected for role. The caller's
// input is not modified.
func (s *customerService) CreateCustomer(ctx context.Context, customer models.Customer, role models.Role) (models.Projection, error) {
	log := logger.FromContext(ctx)

	if err := s.gate.BeforeCreate(ctx, &customer); err != nil {
		log.Err(err).Msg("encrypting customer before create failed")
		return nil, fmt.Errorf("error creating customer: %w", err)
	}

	created, err := s.customerRepository.Create(ctx, customer)
	if err != nil {
		log.Err(err).Msg("customer creation ended with error")
		return nil, fmt.Errorf("error creating customer: %w", err)
	}

	return s.gate.Project(ctx, &created, role), nil
}

// UpdateCustomer encrypts only the sensitive fields set on update before
// writing. Unchanged stored blobs are never touched.
func (s *customerService) UpdateCustomer(ctx context.Context, update models.CustomerUpdate, role models.Role) (models.Projection, error) {
	log := logger.FromContext(ctx).With().Int64("customer_id", update.ID).Logger()

	changed := update.ChangedFields()
	if len(changed) == 0 {
		return nil, ErrNothingToUpdate
	}

	if err := s.gate.BeforeUpdate(ctx, &update, changed...); err != nil {
		log.Err(err).Strs("fields", changed).Msg("encrypting customer update failed")
		return nil, fmt.Errorf("error updating customer: %w", err)
	}

	updated, err := s.customerRepository.Update(ctx, update)
	if err != nil {
		log.Err(err).Strs("fields", changed).Msg("customer update ended with error")
		return nil, fmt.Errorf("error updating customer: %w", err)
	}

	return s.gate.Project(ctx, &updated, role), nil
}

func (s *customerService) GetCustomer(ctx context.Context, id int64, role models.Role) (models.Projection, error) {
	customer, err := s.customerRepository.Get(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("customer_id", id).Msg("customer lookup failed")
		return nil, fmt.Errorf("error getting customer: %w", err)
	}

	return s.gate.Project(ctx, &customer, role), nil
}

func (s *customerService) ListCustomers(ctx context.Context, opts models.ListOptions, role models.Role) ([]models.Projection, error) {
	customers, err := s.customerRepository.List(ctx, opts.Normalize())
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("customer listing failed")
		return nil, fmt.Errorf("error listing customers: %w", err)
	}

	records := make([]*models.Customer, len(customers))
	for i := range customers {
		records[i] = &customers[i]
	}

	return gate.ProjectAll(ctx, s.gate, records, role), nil
}
