// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"
	"sync"

	"golang.org/x/crypto/scrypt"
)

// scrypt parameters. The salt is static so that the same secret always
// derives the same key across processes and restarts.
const (
	kdfSalt   = "salt"
	kdfN      = 16384
	kdfR      = 8
	kdfP      = 1
	kdfKeyLen = 32 // AES-256
)

// keyCache memoises derived keys per secret; scrypt is slow and
// the derived key is a pure function of the secret.
var keyCache = struct {
	sync.Mutex
	keys map[string][]byte
}{keys: make(map[string][]byte)}

// DeriveKey derives the 256-bit field-encryption key from secret with scrypt.
//
// The same secret always yields the same key; different secrets yield
// independent keys. The returned slice is a copy and may be modified by the
// caller.
func DeriveKey(secret string) ([]byte, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	keyCache.Lock()
	defer keyCache.Unlock()

	if key, ok := keyCache.keys[secret]; ok {
		return append([]byte(nil), key...), nil
	}

	key, err := scrypt.Key([]byte(secret), []byte(kdfSalt), kdfN, kdfR, kdfP, kdfKeyLen)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyDerivation, err)
	}
	keyCache.keys[secret] = key

	return append([]byte(nil), key...), nil
}
