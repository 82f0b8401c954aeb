package workers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sales-keeper/internal/config"
	"github.com/MKhiriev/go-sales-keeper/internal/gate"
	"github.com/MKhiriev/go-sales-keeper/internal/logger"
	"github.com/MKhiriev/go-sales-keeper/internal/store"
	"github.com/MKhiriev/go-sales-keeper/models"
)

// LegacyEncryptionWorker encrypts sensitive values that were stored before
// encryption was enabled. Such values are served as stored by reads, so the
// sweep closes that window.
//
// The worker only ever encrypts. It has no caller role and never decrypts.
type LegacyEncryptionWorker struct {
	customers      store.CustomerRepository
	paymentMethods store.PaymentMethodRepository
	gate           *gate.Gate

	interval  time.Duration
	batchSize int

	logger *logger.Logger
}

func NewLegacyEncryptionWorker(
	customers store.CustomerRepository,
	paymentMethods store.PaymentMethodRepository,
	g *gate.Gate,
	cfg config.Workers,
	log *logger.Logger,
) *LegacyEncryptionWorker {
	return &LegacyEncryptionWorker{
		customers:      customers,
		paymentMethods: paymentMethods,
		gate:           g,
		interval:       cfg.ReencryptInterval,
		batchSize:      cfg.ReencryptBatchSize,
		logger:         log,
	}
}

// Run sweeps once right away and then every interval until ctx is done.
// A zero interval disables the worker.
func (w *LegacyEncryptionWorker) Run(ctx context.Context) {
	if w.interval <= 0 {
		w.logger.Info().Msg("legacy encryption worker disabled")
		return
	}

	w.sweep(ctx)

	t := time.NewTicker(w.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("legacy encryption worker stopped")
			return
		case <-t.C:
			w.sweep(ctx)
		}
	}
}

func (w *LegacyEncryptionWorker) sweep(ctx context.Context) {
	n, err := w.RunOnce(ctx)
	if err != nil {
		w.logger.Err(err).Int("encrypted_records", n).Msg("legacy encryption sweep finished with errors")
		return
	}
	if n > 0 {
		w.logger.Info().Int("encrypted_records", n).Msg("legacy encryption sweep finished")
	}
}

// RunOnce encrypts the plaintext sensitive values of up to batchSize
// customers and batchSize payment methods. It returns the number of records
// rewritten. A failing record does not stop the sweep; all failures are
// joined into the returned error.
func (w *LegacyEncryptionWorker) RunOnce(ctx context.Context) (int, error) {
	customersDone, customersErr := w.encryptCustomers(ctx)
	methodsDone, methodsErr := w.encryptPaymentMethods(ctx)

	return customersDone + methodsDone, errors.Join(customersErr, methodsErr)
}

func (w *LegacyEncryptionWorker) encryptCustomers(ctx context.Context) (int, error) {
	customers, err := w.customers.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("list customers: %w", err)
	}

	var (
		done int
		errs []error
	)
	for i := range customers {
		if w.batchSize > 0 && done >= w.batchSize {
			break
		}

		update := models.CustomerUpdate{ID: customers[i].ID}
		changed := w.copyPlaintext(&customers[i], &update)
		if len(changed) == 0 {
			continue
		}

		if err = w.gate.BeforeUpdate(ctx, &update, changed...); err != nil {
			errs = append(errs, fmt.Errorf("customer %d: %w", update.ID, err))
			continue
		}
		if _, err = w.customers.Update(ctx, update); err != nil {
			errs = append(errs, fmt.Errorf("customer %d: %w", update.ID, err))
			continue
		}

		w.logger.Debug().Int64("customer_id", update.ID).Strs("fields", changed).Msg("encrypted legacy plaintext")
		done++
	}

	return done, errors.Join(errs...)
}

func (w *LegacyEncryptionWorker) encryptPaymentMethods(ctx context.Context) (int, error) {
	methods, err := w.paymentMethods.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("list payment methods: %w", err)
	}

	var (
		done int
		errs []error
	)
	for i := range methods {
		if w.batchSize > 0 && done >= w.batchSize {
			break
		}

		update := models.PaymentMethodUpdate{ID: methods[i].ID}
		changed := w.copyPlaintext(&methods[i], &update)
		if len(changed) == 0 {
			continue
		}

		if err = w.gate.BeforeUpdate(ctx, &update, changed...); err != nil {
			errs = append(errs, fmt.Errorf("payment method %d: %w", update.ID, err))
			continue
		}
		if _, err = w.paymentMethods.Update(ctx, update); err != nil {
			errs = append(errs, fmt.Errorf("payment method %d: %w", update.ID, err))
			continue
		}

		w.logger.Debug().Int64("payment_method_id", update.ID).Strs("fields", changed).Msg("encrypted legacy plaintext")
		done++
	}

	return done, errors.Join(errs...)
}

// copyPlaintext sets on update every sensitive field of stored that does not
// look encrypted and returns their names. Fields are matched by name.
func (w *LegacyEncryptionWorker) copyPlaintext(stored, update models.SensitiveRecord) []string {
	targets := make(map[string]models.SensitiveField)
	for _, f := range update.SensitiveFields() {
		targets[f.Name] = f
	}

	var changed []string
	for _, f := range stored.SensitiveFields() {
		if !w.gate.IsPlaintext(f) {
			continue
		}
		target, ok := targets[f.Name]
		if !ok {
			continue
		}
		value := **f.Value
		*target.Value = &value
		changed = append(changed, f.Name)
	}

	return changed
}
