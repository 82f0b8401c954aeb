package config

import "errors"

// Validation errors returned by [StructuredConfig.validate]. All of them are
// fatal at startup.
var (
	// ErrMissingEncryptionKey means ENCRYPTION_KEY is empty and the insecure
	// default was not explicitly allowed.
	ErrMissingEncryptionKey = errors.New("encryption key is not configured (set ENCRYPTION_KEY or ENCRYPTION_ALLOW_INSECURE_DEFAULT=true)")
	// ErrInvalidStorageConfigs indicates a missing database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAuthConfigs indicates a missing token sign key or a
	// non-positive token duration.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidWorkerConfigs indicates a negative interval or batch size.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
