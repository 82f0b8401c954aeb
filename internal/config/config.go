// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// InsecureDefaultEncryptionKey is the well-known development secret used only
// when [Encryption.AllowInsecureDefault] is set and no key is configured.
// Data encrypted under it is readable by anyone who has this source.
const InsecureDefaultEncryptionKey = "default-key-change-in-production"

// StructuredConfig is the top-level configuration of the sales-keeper
// server. It is populated by merging environment variables, command-line
// flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env tag lookups (caarlos0/env).
//   - env: environment variable name of a scalar field.
type StructuredConfig struct {
	// Encryption holds the operator secret the field key is derived from.
	Encryption Encryption `envPrefix:"ENCRYPTION_"`

	// Auth holds JWT issuing parameters.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// App holds build and logging settings.
	App App `envPrefix:"APP_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Encryption configures field-level encryption.
type Encryption struct {
	// Key is the operator secret. The 256-bit field key is derived from it
	// once at startup. Changing it makes every stored blob undecryptable.
	// Env: ENCRYPTION_KEY
	Key string `env:"KEY"`

	// AllowInsecureDefault lets the server start without Key by falling back
	// to [InsecureDefaultEncryptionKey]. Local development only.
	// Env: ENCRYPTION_ALLOW_INSECURE_DEFAULT
	AllowInsecureDefault bool `env:"ALLOW_INSECURE_DEFAULT"`
}

// Secret returns the secret to derive the field key from and whether it is
// the insecure default. Call it only on a validated config.
func (e Encryption) Secret() (secret string, insecure bool) {
	if e.Key == "" && e.AllowInsecureDefault {
		return InsecureDefaultEncryptionKey, true
	}
	return e.Key, false
}

// Auth holds JWT settings.
type Auth struct {
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of every issued token.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an issued token stays valid.
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Storage groups the storage backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database.
type DB struct {
	// DSN selects the backend: a postgres:// or postgresql:// URI opens
	// PostgreSQL through pgx, anything else is a SQLite file path or URI.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings of the HTTP server.
type Server struct {
	// HTTPAddress is "host:port" the server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Workers holds background worker settings.
type Workers struct {
	// ReencryptInterval is the period of the legacy plaintext encryption
	// sweep. Zero disables the worker.
	// Env: WORKERS_REENCRYPT_INTERVAL
	ReencryptInterval time.Duration `env:"REENCRYPT_INTERVAL"`

	// ReencryptBatchSize caps the rows fixed per table and sweep.
	// Env: WORKERS_REENCRYPT_BATCH_SIZE
	ReencryptBatchSize int `env:"REENCRYPT_BATCH_SIZE"`
}

// App holds application-level values.
type App struct {
	// Version is exposed via GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name. Empty means debug.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// defaults is the lowest-priority config source.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			TokenIssuer:   "go-sales-keeper",
			TokenDuration: 24 * time.Hour,
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Workers: Workers{
			ReencryptBatchSize: 100,
		},
	}
}

// GetStructuredConfig loads, merges and validates the server configuration.
// Sources, lowest priority first:
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
