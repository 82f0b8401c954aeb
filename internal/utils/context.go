// Package utils holds small helpers shared by the HTTP layer and the
// services: typed context keys for the authenticated caller, JWT issuing and
// parsing with the role claim, JSON response writing and trace ID
// generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-sales-keeper/models"
)

// contextKey is a private type for context keys.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey stores the authenticated user's ID (int64).
var UserIDCtxKey = contextKey("userID")

// RoleCtxKey stores the authenticated user's [models.Role]. The services
// read it to decide how sensitive fields are disclosed.
var RoleCtxKey = contextKey("role")

// GetUserIDFromContext retrieves the user identifier from the context.
// ok is false when the value is missing or not an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetRoleFromContext retrieves the caller role from the context. ok is false
// when the value is missing, has the wrong type or is not a known role.
func GetRoleFromContext(ctx context.Context) (models.Role, bool) {
	role, ok := ctx.Value(RoleCtxKey).(models.Role)
	if !ok || !role.Valid() {
		return "", false
	}
	return role, true
}

// WithCaller returns a copy of ctx carrying the authenticated user ID and role.
func WithCaller(ctx context.Context, userID int64, role models.Role) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, userID)
	return context.WithValue(ctx, RoleCtxKey, role)
}
