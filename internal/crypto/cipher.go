// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-sales-keeper/internal/logger"
)

const (
	// ivSize is the AES block size; the IV prefixes every blob.
	ivSize = aes.BlockSize
	// minBlobSize is the smallest decoded length IsEncrypted accepts.
	minBlobSize = ivSize + 1
)

// FieldCipher is the AES-256-CBC implementation of [Cipher].
//
// The AES block is built once from the derived key and is safe for
// concurrent use; FieldCipher holds no other mutable state.
type FieldCipher struct {
	block  cipher.Block
	random io.Reader

	logger *logger.Logger
}

// NewFieldCipher derives the field key from secret (see [DeriveKey]) and
// returns a ready [*FieldCipher]. An empty secret is rejected with
// [ErrEmptySecret].
func NewFieldCipher(secret string, log *logger.Logger) (*FieldCipher, error) {
	key, err := DeriveKey(secret)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyDerivation, err)
	}

	log.Debug().Msg("field cipher created")

	return &FieldCipher{
		block:  block,
		random: rand.Reader,
		logger: log,
	}, nil
}

// Encrypt implements [Cipher]. The empty string is a valid plaintext and
// encrypts to a single padding block.
func (c *FieldCipher) Encrypt(plaintext string) (string, error) {
	// 1. Fresh IV from the CSPRNG
	iv := make([]byte, ivSize)
	if _, err := io.ReadFull(c.random, iv); err != nil {
		return "", fmt.Errorf("%w: generate iv: %w", ErrEncryptionFailed, err)
	}

	// 2. Pad and encrypt in place, right after the IV
	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	blob := make([]byte, ivSize+len(padded))
	copy(blob, iv)
	cipher.NewCBCEncrypter(c.block, iv).CryptBlocks(blob[ivSize:], padded)

	// 3. iv || ciphertext as standard base64
	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements [Cipher].
func (c *FieldCipher) Decrypt(blob string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return "", &DecryptError{Reason: "decode base64", Err: err}
	}

	if len(raw) < ivSize+aes.BlockSize {
		return "", &DecryptError{Reason: "blob too short"}
	}

	iv, ciphertext := raw[:ivSize], raw[ivSize:]
	if len(ciphertext)%aes.BlockSize != 0 {
		return "", &DecryptError{Reason: "ciphertext is not a multiple of the block size"}
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(c.block, iv).CryptBlocks(plaintext, ciphertext)

	plaintext, err = pkcs7Unpad(plaintext, aes.BlockSize)
	if err != nil {
		return "", &DecryptError{Reason: "unpad", Err: err}
	}

	// A wrong key passes the padding check now and then; the garbage it
	// produces is almost never valid UTF-8.
	if !utf8.Valid(plaintext) {
		return "", &DecryptError{Reason: "plaintext is not valid utf-8"}
	}

	return string(plaintext), nil
}

// DecryptOrRaw implements [Cipher]. The blob itself is never logged.
func (c *FieldCipher) DecryptOrRaw(ctx context.Context, blob string) string {
	plaintext, err := c.Decrypt(blob)
	if err != nil {
		c.loggerFor(ctx).Err(err).
			Int("blob_length", len(blob)).
			Msg("failed to decrypt value, returning it as stored")
		return blob
	}
	return plaintext
}

// IsEncrypted implements [Cipher].
func (c *FieldCipher) IsEncrypted(value string) bool {
	return IsEncrypted(value)
}

// IsEncrypted is the blob-shape heuristic shared by every [Cipher].
func IsEncrypted(value string) bool {
	if value == "" {
		return false
	}
	raw, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return false
	}
	return len(raw) >= minBlobSize
}

// loggerFor prefers the request-scoped logger and falls back to the
// cipher's own logger when ctx carries none.
func (c *FieldCipher) loggerFor(ctx context.Context) *logger.Logger {
	if ctx != nil {
		if l := logger.FromContext(ctx); l.GetLevel() != zerolog.Disabled {
			return l
		}
	}
	return c.logger
}
