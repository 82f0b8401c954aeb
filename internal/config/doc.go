// Package config loads, merges and validates the server configuration.
//
// Configuration is assembled from several sources; later sources override
// earlier non-zero fields:
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The entry point is [GetStructuredConfig]. A configuration without an
// encryption key is rejected unless ENCRYPTION_ALLOW_INSECURE_DEFAULT is
// set, see [Encryption.Secret].
package config
