package crypto

import (
	"bytes"
	"errors"
)

var (
	errInvalidPadding = errors.New("invalid padding")
	errInvalidLength  = errors.New("invalid padded length")
)

// pkcs7Pad appends 1..blockSize bytes, each equal to the pad length.
func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(append(make([]byte, 0, len(data)+n), data...), bytes.Repeat([]byte{byte(n)}, n)...)
}

// pkcs7Unpad strips and verifies the padding added by pkcs7Pad.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, errInvalidLength
	}

	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, errInvalidPadding
	}

	// check every pad byte without bailing out early
	var bad byte
	for _, b := range data[len(data)-n:] {
		bad |= b ^ byte(n)
	}
	if bad != 0 {
		return nil, errInvalidPadding
	}

	return data[:len(data)-n], nil
}
