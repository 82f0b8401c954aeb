// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FieldType selects the masking rule applied to a sensitive value.
type FieldType string

const (
	FieldAccount FieldType = "account"
	FieldRouting FieldType = "routing"
	FieldCard    FieldType = "card"
	FieldCVV     FieldType = "cvv"
	FieldSSN     FieldType = "ssn"
	FieldPhone   FieldType = "phone"
	FieldLicense FieldType = "license"
	FieldStateID FieldType = "state_id"
	FieldCheck   FieldType = "check"
	FieldDefault FieldType = "default"
)

// ParseFieldType maps a raw tag to a [FieldType]. Unknown tags fall back to
// [FieldDefault] so an unrecognised field is still masked.
func ParseFieldType(s string) FieldType {
	switch ft := FieldType(s); ft {
	case FieldAccount, FieldRouting, FieldCard, FieldCVV, FieldSSN,
		FieldPhone, FieldLicense, FieldStateID, FieldCheck, FieldDefault:
		return ft
	}
	return FieldDefault
}

// FieldSpecs maps a record field name (its JSON name) to its [FieldType].
type FieldSpecs map[string]FieldType

// SensitiveField points at one sensitive attribute of a record.
//
// Value is a pointer to the record's own *string field, so hooks can swap
// the stored value (plaintext → blob) without knowing the concrete type.
// A nil *Value means the attribute is absent.
type SensitiveField struct {
	Name  string
	Type  FieldType
	Value **string
}

// SensitiveRecord is implemented by every record carrying sensitive fields.
type SensitiveRecord interface {
	// SensitiveFields returns handles to the record's sensitive attributes.
	SensitiveFields() []SensitiveField
	// Fields returns the record as a flat map keyed by JSON field name.
	Fields() map[string]any
}

// Specs builds the [FieldSpecs] of a record from its sensitive field handles.
func Specs(rec SensitiveRecord) FieldSpecs {
	fields := rec.SensitiveFields()
	specs := make(FieldSpecs, len(fields))
	for _, f := range fields {
		specs[f.Name] = f.Type
	}
	return specs
}

// Projection is a record as it may leave the service: a flat field map whose
// sensitive values have been disclosed for one caller role.
type Projection map[string]any
