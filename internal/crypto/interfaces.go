package crypto

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_mock.go -package=mock

// Cipher encrypts single sensitive field values into self-contained,
// base64-encoded blobs and back.
//
// Blob layout:
//
//	base64( IV (16 bytes) || AES-256-CBC(PKCS#7(plaintext)) )
//
// Every call to Encrypt uses a fresh random IV, so encrypting the same
// plaintext twice yields two different blobs. Blobs are therefore not
// comparable and cannot be indexed or searched for equality.
type Cipher interface {
	// Encrypt turns plaintext into a blob. Any failure is reported as
	// [ErrEncryptionFailed]; callers must abort the write that triggered it.
	Encrypt(plaintext string) (string, error)

	// Decrypt reverses Encrypt. It returns a [*DecryptError] when the blob is
	// not valid base64, is too short, has a bad padding, or was encrypted
	// under another key.
	Decrypt(blob string) (string, error)

	// DecryptOrRaw is the fail-open form of Decrypt: on any error it logs the
	// failure and returns blob unchanged. It never returns an error, so the
	// result is not guaranteed to be human-readable plaintext.
	DecryptOrRaw(ctx context.Context, blob string) string

	// IsEncrypted reports whether value looks like a blob: it is valid
	// standard base64 and decodes to at least 17 bytes (IV plus one byte).
	// It is a heuristic; long base64-shaped plaintext is misclassified.
	IsEncrypted(value string) bool
}
