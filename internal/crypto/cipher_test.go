// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sales-keeper/internal/logger"
)

func newTestCipher(t *testing.T, secret string) *FieldCipher {
	t.Helper()
	c, err := NewFieldCipher(secret, logger.Nop())
	require.NoError(t, err)
	return c
}

// failingReader makes IV generation fail.
type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

// ── NewFieldCipher ───────────────────────────────────────────────────────────

func TestNewFieldCipher_EmptySecret(t *testing.T) {
	c, err := NewFieldCipher("", logger.Nop())
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrEmptySecret)
}

// ── Encrypt / Decrypt ────────────────────────────────────────────────────────

func TestFieldCipher_RoundTrip(t *testing.T) {
	c := newTestCipher(t, "round-trip-secret")

	inputs := []string{
		"",
		"a",
		"12345678901",
		"123-45-6789",
		"exactly16bytes!!",
		"Ünïcödé ✓ 日本語",
		strings.Repeat("long value ", 100),
	}

	for _, in := range inputs {
		blob, err := c.Encrypt(in)
		require.NoError(t, err)

		out, err := c.Decrypt(blob)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	}
}

func TestFieldCipher_Encrypt_NonDeterministic(t *testing.T) {
	c := newTestCipher(t, "nondeterministic-secret")

	b1, err := c.Encrypt("hello")
	require.NoError(t, err)
	b2, err := c.Encrypt("hello")
	require.NoError(t, err)

	assert.NotEqual(t, b1, b2)

	p1, err := c.Decrypt(b1)
	require.NoError(t, err)
	p2, err := c.Decrypt(b2)
	require.NoError(t, err)
	assert.Equal(t, "hello", p1)
	assert.Equal(t, "hello", p2)
}

func TestFieldCipher_Encrypt_BlobLayout(t *testing.T) {
	c := newTestCipher(t, "layout-secret")

	blob, err := c.Encrypt("12345678901")
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(blob)
	require.NoError(t, err)

	// 16-byte IV + one padded block for an 11-byte plaintext
	assert.Len(t, raw, 32)
}

func TestFieldCipher_Encrypt_RandomFailure(t *testing.T) {
	c := newTestCipher(t, "failing-rand-secret")
	c.random = failingReader{}

	blob, err := c.Encrypt("value")
	assert.Empty(t, blob)
	assert.ErrorIs(t, err, ErrEncryptionFailed)
}

func TestFieldCipher_Decrypt_Errors(t *testing.T) {
	c := newTestCipher(t, "decrypt-errors-secret")

	valid, err := c.Encrypt("some value")
	require.NoError(t, err)
	raw, _ := base64.StdEncoding.DecodeString(valid)

	tests := []struct {
		name string
		blob string
	}{
		{"not base64", "not base64 at all!!"},
		{"too short", base64.StdEncoding.EncodeToString(raw[:20])},
		{"iv only", base64.StdEncoding.EncodeToString(raw[:16])},
		{"not block multiple", base64.StdEncoding.EncodeToString(raw[:len(raw)-1])},
		{"truncated base64", valid[:len(valid)-3]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Decrypt(tt.blob)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDecryptionFailed)

			var decErr *DecryptError
			assert.True(t, errors.As(err, &decErr))
		})
	}
}

func TestFieldCipher_Decrypt_WrongKey(t *testing.T) {
	enc := newTestCipher(t, "writer-secret")
	dec := newTestCipher(t, "reader-secret")

	blob, err := enc.Encrypt("4111111111111111")
	require.NoError(t, err)

	out, err := dec.Decrypt(blob)
	if err == nil {
		// a wrong key may occasionally unpad cleanly; it must never yield the plaintext
		assert.NotEqual(t, "4111111111111111", out)
		return
	}
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

// ── DecryptOrRaw ─────────────────────────────────────────────────────────────

func TestFieldCipher_DecryptOrRaw_ReturnsInputOnGarbage(t *testing.T) {
	c := newTestCipher(t, "fail-open-secret")
	ctx := context.Background()

	garbage := []string{
		"not base64 at all!!",
		"",
		"QUJD",                     // valid base64, too short
		"AAAAAAAAAAAAAAAAAAAAAAAA", // valid base64, 18 bytes
		strings.Repeat("A", 44),    // 33 bytes: not a block multiple
	}

	for _, g := range garbage {
		assert.NotPanics(t, func() {
			assert.Equal(t, g, c.DecryptOrRaw(ctx, g))
		})
	}
}

func TestFieldCipher_DecryptOrRaw_DecryptsValidBlob(t *testing.T) {
	c := newTestCipher(t, "fail-open-valid-secret")

	blob, err := c.Encrypt("021000021")
	require.NoError(t, err)

	assert.Equal(t, "021000021", c.DecryptOrRaw(context.Background(), blob))
}

func TestFieldCipher_DecryptOrRaw_UsesContextLogger(t *testing.T) {
	c := newTestCipher(t, "ctx-logger-secret")

	l := logger.NewLogger("test")
	ctx := l.WithContext(context.Background())

	assert.Equal(t, "%%%", c.DecryptOrRaw(ctx, "%%%"))
}

// ── IsEncrypted ──────────────────────────────────────────────────────────────

func TestFieldCipher_IsEncrypted(t *testing.T) {
	c := newTestCipher(t, "is-encrypted-secret")

	blob, err := c.Encrypt("hello")
	require.NoError(t, err)

	assert.True(t, c.IsEncrypted(blob))
	assert.False(t, c.IsEncrypted("not base64 at all!!"))
	assert.False(t, c.IsEncrypted(""))
	assert.False(t, c.IsEncrypted("12345678901"))
	// exactly 16 bytes decoded is below the threshold
	assert.False(t, c.IsEncrypted(base64.StdEncoding.EncodeToString(make([]byte, 16))))
	assert.True(t, c.IsEncrypted(base64.StdEncoding.EncodeToString(make([]byte, 17))))
}

// ── nullable helpers ─────────────────────────────────────────────────────────

func TestNullableHelpers_PassThroughNil(t *testing.T) {
	c := newTestCipher(t, "nullable-secret")

	enc, err := EncryptNullable(c, nil)
	require.NoError(t, err)
	assert.Nil(t, enc)

	assert.Nil(t, DecryptNullable(context.Background(), c, nil))
	assert.False(t, IsEncryptedNullable(c, nil))
}

func TestNullableHelpers_RoundTrip(t *testing.T) {
	c := newTestCipher(t, "nullable-roundtrip-secret")
	v := "D1234567"

	enc, err := EncryptNullable(c, &v)
	require.NoError(t, err)
	require.NotNil(t, enc)
	assert.True(t, IsEncryptedNullable(c, enc))

	dec := DecryptNullable(context.Background(), c, enc)
	require.NotNil(t, dec)
	assert.Equal(t, v, *dec)
}

func TestAnyHelpers_NonStringPassThrough(t *testing.T) {
	c := newTestCipher(t, "any-secret")
	ctx := context.Background()

	for _, v := range []any{nil, 42, int64(7), true, []byte("bytes"), (*string)(nil)} {
		out, err := EncryptAny(c, v)
		require.NoError(t, err)
		assert.Equal(t, v, out)
		assert.Equal(t, v, DecryptAny(ctx, c, v))
	}
}

func TestAnyHelpers_StringRoundTrip(t *testing.T) {
	c := newTestCipher(t, "any-roundtrip-secret")
	ctx := context.Background()

	out, err := EncryptAny(c, "4111111111111111")
	require.NoError(t, err)
	blob, ok := out.(string)
	require.True(t, ok)
	assert.Equal(t, "4111111111111111", DecryptAny(ctx, c, blob))
}

// ── concurrency ──────────────────────────────────────────────────────────────

func TestFieldCipher_ConcurrentUse(t *testing.T) {
	c := newTestCipher(t, "concurrent-secret")

	var wg sync.WaitGroup
	blobs := make([]string, 64)
	for i := range blobs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b, err := c.Encrypt("same plaintext")
			assert.NoError(t, err)
			blobs[i] = b
		}(i)
	}
	wg.Wait()

	seen := make(map[string]struct{}, len(blobs))
	for _, b := range blobs {
		_, dup := seen[b]
		assert.False(t, dup, "duplicate blob produced concurrently")
		seen[b] = struct{}{}

		out, err := c.Decrypt(b)
		require.NoError(t, err)
		assert.Equal(t, "same plaintext", out)
	}
}
