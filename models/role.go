// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strings"
)

// Role is the caller role a disclosure decision is made for.
//
// Only [RoleAdmin] is privileged; every other role is treated as restricted
// by the disclosure policy.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleAgent   Role = "agent"
)

// ErrUnknownRole is returned by [ParseRole] for strings outside the known set.
var ErrUnknownRole = errors.New("unknown role")

// ParseRole converts a raw role name into a [Role]. Matching is
// case-insensitive and ignores surrounding whitespace.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
	return r, nil
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleAgent:
		return true
	}
	return false
}

// IsAdmin reports whether r sees sensitive values unmasked.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func (r Role) String() string {
	return string(r)
}
