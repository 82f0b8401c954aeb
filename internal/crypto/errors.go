// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
)

// Configuration errors. They are fatal at startup.
var (
	// ErrEmptySecret is returned by [NewFieldCipher] and [DeriveKey] when no
	// operator secret is provided.
	ErrEmptySecret = errors.New("encryption secret is empty")

	// ErrKeyDerivation is returned when the KDF primitive rejects its input.
	ErrKeyDerivation = errors.New("key derivation failed")
)

var (
	// ErrEncryptionFailed wraps every failure of [Cipher.Encrypt].
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrDecryptionFailed is matched by every [*DecryptError].
	ErrDecryptionFailed = errors.New("decryption failed")
)

// DecryptError describes why a blob could not be decrypted.
// errors.Is(err, ErrDecryptionFailed) holds for every DecryptError.
type DecryptError struct {
	// Reason is a short, blob-free description of the failing step.
	Reason string
	// Err is the underlying error, if any.
	Err error
}

func (e *DecryptError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", ErrDecryptionFailed, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", ErrDecryptionFailed, e.Reason)
}

func (e *DecryptError) Unwrap() error {
	return e.Err
}

// Is makes every DecryptError match [ErrDecryptionFailed].
func (e *DecryptError) Is(target error) bool {
	return target == ErrDecryptionFailed
}
