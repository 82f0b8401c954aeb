package crypto

import "context"

// EncryptNullable encrypts *v. A nil value is absent and passes through as nil.
func EncryptNullable(c Cipher, v *string) (*string, error) {
	if v == nil {
		return nil, nil
	}
	blob, err := c.Encrypt(*v)
	if err != nil {
		return nil, err
	}
	return &blob, nil
}

// DecryptNullable is the fail-open decrypt of *v; nil passes through.
func DecryptNullable(ctx context.Context, c Cipher, v *string) *string {
	if v == nil {
		return nil
	}
	plaintext := c.DecryptOrRaw(ctx, *v)
	return &plaintext
}

// IsEncryptedNullable reports false for nil.
func IsEncryptedNullable(c Cipher, v *string) bool {
	return v != nil && c.IsEncrypted(*v)
}

// EncryptAny encrypts string and *string values. Anything else, including
// nil, is returned unchanged so optional or non-text fields need no guard.
func EncryptAny(c Cipher, v any) (any, error) {
	switch value := v.(type) {
	case string:
		return c.Encrypt(value)
	case *string:
		if value == nil {
			return value, nil
		}
		return EncryptNullable(c, value)
	default:
		return v, nil
	}
}

// DecryptAny is the fail-open counterpart of [EncryptAny].
func DecryptAny(ctx context.Context, c Cipher, v any) any {
	switch value := v.(type) {
	case string:
		return c.DecryptOrRaw(ctx, value)
	case *string:
		if value == nil {
			return value
		}
		return DecryptNullable(ctx, c, value)
	default:
		return v
	}
}
