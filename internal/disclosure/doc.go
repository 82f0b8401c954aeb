// Package disclosure decides how much of a decrypted sensitive value a
// caller may see.
//
// Admins always see the plaintext. Every other role gets a masked rendition
// chosen by the value's [models.FieldType]. The package performs no
// cryptography: values must already be decrypted.
package disclosure
