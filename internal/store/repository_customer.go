package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sales-keeper/internal/logger"
	"github.com/MKhiriev/go-sales-keeper/models"
)

// customerRepository is the SQL implementation of [CustomerRepository] over
// the "customers" table.
type customerRepository struct {
	*DB
	logger *logger.Logger
}

// NewCustomerRepository constructs a [CustomerRepository] backed by db.
func NewCustomerRepository(db *DB, logger *logger.Logger) CustomerRepository {
	logger.Debug().Msg("creating customer repository")
	return &customerRepository{
		DB:     db,
		logger: logger,
	}
}

// Create inserts customer and returns the stored row.
func (r *customerRepository) Create(ctx context.Context, customer models.Customer) (models.Customer, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateCustomerQuery(r.builder(), customer)
	if err != nil {
		return models.Customer{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanCustomer(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "customerRepository.Create").Msg("failed to insert customer")
		return models.Customer{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// Update writes the set fields of update and returns the stored row.
func (r *customerRepository) Update(ctx context.Context, update models.CustomerUpdate) (models.Customer, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCustomerQuery(r.builder(), update)
	if errors.Is(err, ErrNothingToUpdate) {
		return models.Customer{}, err
	}
	if err != nil {
		return models.Customer{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanCustomer(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Customer{}, ErrCustomerNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "customerRepository.Update").
			Int64("customer_id", update.ID).
			Msg("failed to update customer")
		return models.Customer{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

// Get returns the customer with id or [ErrCustomerNotFound].
func (r *customerRepository) Get(ctx context.Context, id int64) (models.Customer, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetCustomerQuery(r.builder(), id)
	if err != nil {
		return models.Customer{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	customer, err := scanCustomer(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Customer{}, ErrCustomerNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "customerRepository.Get").
			Int64("customer_id", id).
			Msg("failed to get customer")
		return models.Customer{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return customer, nil
}

// List returns one page of customers ordered by id.
func (r *customerRepository) List(ctx context.Context, opts models.ListOptions) ([]models.Customer, error) {
	return r.list(ctx, opts.Normalize())
}

// ListAll returns every customer ordered by id.
func (r *customerRepository) ListAll(ctx context.Context) ([]models.Customer, error) {
	return r.list(ctx, models.ListOptions{})
}

func (r *customerRepository) list(ctx context.Context, opts models.ListOptions) ([]models.Customer, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCustomersQuery(r.builder(), opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "customerRepository.list").Msg("failed to execute query for listing customers")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	customers := make([]models.Customer, 0, opts.Limit)
	for rows.Next() {
		customer, scanErr := scanCustomer(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "customerRepository.list").Msg("failed to scan customer row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		customers = append(customers, customer)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "customerRepository.list").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return customers, nil
}

func scanCustomer(row scanner) (models.Customer, error) {
	var c models.Customer
	err := row.Scan(
		&c.ID,
		&c.FirstName,
		&c.LastName,
		&c.Email,
		&c.Address,
		&c.Phone,
		&c.SSNNumber,
		&c.DriverLicense,
		&c.StateID,
		&c.SecurityQuestion,
		&c.SecurityAnswer,
		&c.CreatedBy,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}
