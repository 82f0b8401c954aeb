// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package disclosure

import (
	"strings"

	"github.com/MKhiriev/go-sales-keeper/models"
)

const (
	maskChar = "*"

	// routingMask and cvvMask are fixed-width: routing numbers and CVVs are
	// never partially disclosed.
	routingMask = "*********"
	cvvMask     = "***"

	ssnMaskPrefix = "XXX-XX-"
)

// keepLast is the number of trailing characters left visible per field type.
// Types absent from the table keep the last 4.
var keepLast = map[models.FieldType]int{
	models.FieldAccount: 4,
	models.FieldCard:    4,
	models.FieldCheck:   4,
	models.FieldDefault: 4,
	models.FieldPhone:   4,
	models.FieldLicense: 3,
	models.FieldStateID: 2,
}

// GetDisclosure returns plaintext as role may see it.
//
// It is a pure function: the same inputs always yield the same output and
// stored data is never touched.
func GetDisclosure(plaintext string, role models.Role, fieldType models.FieldType) string {
	if role.IsAdmin() {
		return plaintext
	}

	switch fieldType {
	case models.FieldRouting:
		return routingMask
	case models.FieldCVV:
		return cvvMask
	case models.FieldSSN:
		if isFormattedSSN(plaintext) {
			return ssnMaskPrefix + plaintext[len(plaintext)-4:]
		}
		return MaskKeepLast(plaintext, 4)
	}

	keep, ok := keepLast[fieldType]
	if !ok {
		keep = keepLast[models.FieldDefault]
	}
	return MaskKeepLast(plaintext, keep)
}

// Disclose is [GetDisclosure] for raw role and field-type names. Unknown
// roles are restricted and unknown field types use the default rule.
func Disclose(plaintext, role, fieldType string) string {
	r, err := models.ParseRole(role)
	if err != nil {
		r = models.RoleAgent
	}
	return GetDisclosure(plaintext, r, models.ParseFieldType(fieldType))
}

// MaskKeepLast replaces every character but the last keep with '*'.
// Characters are counted as runes. When the value is not longer than keep,
// the whole value is masked so it is never revealed in full.
func MaskKeepLast(value string, keep int) string {
	runes := []rune(value)
	if len(runes) <= keep {
		return strings.Repeat(maskChar, len(runes))
	}

	cut := len(runes) - keep
	return strings.Repeat(maskChar, cut) + string(runes[cut:])
}

// isFormattedSSN reports whether s is DDD-DD-DDDD.
func isFormattedSSN(s string) bool {
	if len(s) != 11 {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch i {
		case 3, 6:
			if s[i] != '-' {
				return false
			}
		default:
			if s[i] < '0' || s[i] > '9' {
				return false
			}
		}
	}
	return true
}
