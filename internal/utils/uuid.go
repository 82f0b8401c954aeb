package utils

import "github.com/google/uuid"

// maxTraceIDLen bounds a trace ID accepted from a caller.
const maxTraceIDLen = 64

// NewTraceID returns a time-ordered UUIDv7, or a random v4 if v7
// generation fails.
func NewTraceID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

// ValidTraceID reports whether a caller-supplied trace ID may be echoed and
// logged: 1 to 64 characters of letters, digits, '-', '_' and '.'.
func ValidTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.':
		default:
			return false
		}
	}
	return true
}
