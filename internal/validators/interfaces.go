// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks customer, payment method and user input before
// it reaches the services.
//
// Validation always runs on plaintext, before the encryption gate turns
// sensitive values into blobs. A Validator accepts an optional list of field
// names that restricts the check to those fields.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
