// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package gate is the seam between the encryption core and record storage.
//
// It offers two hooks every persistence path must call:
//
//   - before-write ([Gate.BeforeCreate], [Gate.BeforeUpdate], [Gate.BeforeWrite])
//     replaces plaintext sensitive values with encrypted blobs before a row
//     is written;
//   - project-for-role ([Gate.Project], [Gate.ProjectForRole]) decrypts and
//     discloses sensitive values for one explicit caller role on the way out.
//
// There is no decrypt-on-read hook: a value is only ever
// decrypted together with the role it is disclosed to.
package gate

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-sales-keeper/internal/crypto"
	"github.com/MKhiriev/go-sales-keeper/internal/disclosure"
	"github.com/MKhiriev/go-sales-keeper/internal/logger"
	"github.com/MKhiriev/go-sales-keeper/models"
)

// Gate applies the encryption and disclosure hooks around record storage.
type Gate struct {
	cipher crypto.Cipher
	logger *logger.Logger
}

// New returns a [*Gate] encrypting with c.
func New(c crypto.Cipher, logger *logger.Logger) *Gate {
	logger.Debug().Msg("creating encryption gate")
	return &Gate{
		cipher: c,
		logger: logger,
	}
}

// BeforeCreate encrypts every present sensitive field of a new record.
// On error the record may be partially encrypted and must not be persisted.
func (g *Gate) BeforeCreate(ctx context.Context, rec models.SensitiveRecord) error {
	return g.encryptFields(ctx, rec, func(string) bool { return true })
}

// BeforeUpdate encrypts the present sensitive fields named in changed.
// Unchanged fields keep their stored ciphertext and are not re-encrypted.
func (g *Gate) BeforeUpdate(ctx context.Context, rec models.SensitiveRecord, changed ...string) error {
	return g.encryptFields(ctx, rec, func(name string) bool {
		return slices.Contains(changed, name)
	})
}

func (g *Gate) encryptFields(ctx context.Context, rec models.SensitiveRecord, selected func(name string) bool) error {
	log := logger.FromContext(ctx)

	for _, field := range rec.SensitiveFields() {
		if *field.Value == nil || !selected(field.Name) {
			continue
		}

		blob, err := crypto.EncryptNullable(g.cipher, *field.Value)
		if err != nil {
			log.Err(err).Str("field", field.Name).Msg("failed to encrypt sensitive field")
			return fmt.Errorf("encrypt field %q: %w", field.Name, err)
		}
		*field.Value = blob
	}

	return nil
}

// BeforeWrite is the map form of the before-write hook. Every sensitive
// field of record (per specs) that is non-nil and either newly set (isNew)
// or named in changed is replaced in place by its blob. Non-string values
// pass through unchanged.
func (g *Gate) BeforeWrite(ctx context.Context, record map[string]any, changed []string, isNew bool, specs models.FieldSpecs) error {
	log := logger.FromContext(ctx)

	for name := range specs {
		value, ok := record[name]
		if !ok || value == nil {
			continue
		}
		if !isNew && !slices.Contains(changed, name) {
			continue
		}

		encrypted, err := crypto.EncryptAny(g.cipher, value)
		if err != nil {
			log.Err(err).Str("field", name).Msg("failed to encrypt sensitive field")
			return fmt.Errorf("encrypt field %q: %w", name, err)
		}
		record[name] = encrypted
	}

	return nil
}

// ProjectForRole returns a shallow copy of record in which every sensitive
// field is disclosed for role: blobs are decrypted (fail-open) and masked by
// the disclosure policy, values that do not look encrypted are returned as
// stored, and nil stays nil. *string values are dereferenced.
func (g *Gate) ProjectForRole(ctx context.Context, record map[string]any, role models.Role, specs models.FieldSpecs) models.Projection {
	projected := make(models.Projection, len(record))
	for name, value := range record {
		projected[name] = value
	}

	for name, fieldType := range specs {
		value, ok := projected[name]
		if !ok {
			continue
		}

		switch v := value.(type) {
		case string:
			projected[name] = g.disclose(ctx, v, role, fieldType)
		case *string:
			if v == nil {
				projected[name] = nil
				continue
			}
			projected[name] = g.disclose(ctx, *v, role, fieldType)
		}
	}

	return projected
}

// Project is [Gate.ProjectForRole] for a typed record.
func (g *Gate) Project(ctx context.Context, rec models.SensitiveRecord, role models.Role) models.Projection {
	return g.ProjectForRole(ctx, rec.Fields(), role, models.Specs(rec))
}

// ProjectAll projects every record of a list for role.
func ProjectAll[R models.SensitiveRecord](ctx context.Context, g *Gate, records []R, role models.Role) []models.Projection {
	projections := make([]models.Projection, 0, len(records))
	for _, rec := range records {
		projections = append(projections, g.Project(ctx, rec, role))
	}
	return projections
}

func (g *Gate) disclose(ctx context.Context, stored string, role models.Role, fieldType models.FieldType) string {
	if !g.cipher.IsEncrypted(stored) {
		// legacy row written before encryption was enabled
		return stored
	}
	return disclosure.GetDisclosure(g.cipher.DecryptOrRaw(ctx, stored), role, fieldType)
}

// IsPlaintext reports whether field holds a value that does not look like a
// blob and therefore still needs encrypting.
func (g *Gate) IsPlaintext(field models.SensitiveField) bool {
	return *field.Value != nil && !g.cipher.IsEncrypted(**field.Value)
}
