package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sales-keeper/internal/logger"
	"github.com/MKhiriev/go-sales-keeper/models"
)

// paymentMethodRepository is the SQL implementation of
// [PaymentMethodRepository] over the "payment_methods" table.
type paymentMethodRepository struct {
	*DB
	logger *logger.Logger
}

// NewPaymentMethodRepository constructs a [PaymentMethodRepository] backed
// by db.
func NewPaymentMethodRepository(db *DB, logger *logger.Logger) PaymentMethodRepository {
	logger.Debug().Msg("creating payment method repository")
	return &paymentMethodRepository{
		DB:     db,
		logger: logger,
	}
}

// Create inserts method and returns the stored row. A missing customer is
// reported as [ErrCustomerNotFound].
func (r *paymentMethodRepository) Create(ctx context.Context, method models.PaymentMethod) (models.PaymentMethod, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreatePaymentMethodQuery(r.builder(), method)
	if err != nil {
		return models.PaymentMethod{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanPaymentMethod(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "paymentMethodRepository.Create").
			Int64("customer_id", method.CustomerID).
			Msg("failed to insert payment method")

		if r.constraint(err) == ForeignKeyViolation {
			return models.PaymentMethod{}, ErrCustomerNotFound
		}
		return models.PaymentMethod{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// Update writes the set fields of update and returns the stored row.
func (r *paymentMethodRepository) Update(ctx context.Context, update models.PaymentMethodUpdate) (models.PaymentMethod, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePaymentMethodQuery(r.builder(), update)
	if errors.Is(err, ErrNothingToUpdate) {
		return models.PaymentMethod{}, err
	}
	if err != nil {
		return models.PaymentMethod{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanPaymentMethod(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.PaymentMethod{}, ErrPaymentMethodNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "paymentMethodRepository.Update").
			Int64("payment_method_id", update.ID).
			Msg("failed to update payment method")
		return models.PaymentMethod{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

// Get returns the payment method with id or [ErrPaymentMethodNotFound].
func (r *paymentMethodRepository) Get(ctx context.Context, id int64) (models.PaymentMethod, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetPaymentMethodQuery(r.builder(), id)
	if err != nil {
		return models.PaymentMethod{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	method, err := scanPaymentMethod(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.PaymentMethod{}, ErrPaymentMethodNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "paymentMethodRepository.Get").
			Int64("payment_method_id", id).
			Msg("failed to get payment method")
		return models.PaymentMethod{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return method, nil
}

// ListByCustomer returns the payment methods of one customer ordered by id.
func (r *paymentMethodRepository) ListByCustomer(ctx context.Context, customerID int64) ([]models.PaymentMethod, error) {
	return r.list(ctx, &customerID)
}

// ListAll returns every payment method ordered by id.
func (r *paymentMethodRepository) ListAll(ctx context.Context) ([]models.PaymentMethod, error) {
	return r.list(ctx, nil)
}

func (r *paymentMethodRepository) list(ctx context.Context, customerID *int64) ([]models.PaymentMethod, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPaymentMethodsQuery(r.builder(), customerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "paymentMethodRepository.list").Msg("failed to execute query for listing payment methods")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	methods := make([]models.PaymentMethod, 0, 8)
	for rows.Next() {
		method, scanErr := scanPaymentMethod(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "paymentMethodRepository.list").Msg("failed to scan payment method row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		methods = append(methods, method)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "paymentMethodRepository.list").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return methods, nil
}

func scanPaymentMethod(row scanner) (models.PaymentMethod, error) {
	var (
		p          models.PaymentMethod
		methodType string
	)
	err := row.Scan(
		&p.ID,
		&p.CustomerID,
		&methodType,
		&p.BankName,
		&p.AccountNumber,
		&p.RoutingNumber,
		&p.CheckNumber,
		&p.CardholderName,
		&p.CardNumber,
		&p.CVV,
		&p.ExpiryDate,
		&p.CreatedBy,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	p.MethodType = models.PaymentMethodType(methodType)
	return p, err
}
