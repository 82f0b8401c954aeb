// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// validate checks the merged [StructuredConfig] before it is used at startup.
// Every violated group is reported, joined into one error.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.Encryption.Key == "" && !cfg.Encryption.AllowInsecureDefault {
		errs = append(errs, ErrMissingEncryptionKey)
	}

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, ErrInvalidStorageConfigs)
	}

	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenDuration <= 0 {
		errs = append(errs, ErrInvalidAuthConfigs)
	}

	if cfg.Workers.ReencryptInterval < 0 || cfg.Workers.ReencryptBatchSize < 0 {
		errs = append(errs, ErrInvalidWorkerConfigs)
	}

	return errors.Join(errs...)
}
