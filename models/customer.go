package models

import "time"

// Customer is a sales lead or client record. Identity attributes are
// sensitive and stored encrypted; contact details other than the phone
// number are stored as-is.
type Customer struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email,omitempty"`
	Address   string `json:"address,omitempty"`

	Phone            *string `json:"phone"`
	SSNNumber        *string `json:"ssnNumber"`
	DriverLicense    *string `json:"driverLicense"`
	StateID          *string `json:"stateId"`
	SecurityQuestion string  `json:"securityQuestion,omitempty"`
	SecurityAnswer   *string `json:"securityAnswer"`

	CreatedBy int64     `json:"createdBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CustomerFieldSpecs lists the sensitive attributes of [Customer].
var CustomerFieldSpecs = FieldSpecs{
	"phone":          FieldPhone,
	"ssnNumber":      FieldSSN,
	"driverLicense":  FieldLicense,
	"stateId":        FieldStateID,
	"securityAnswer": FieldDefault,
}

// SensitiveFields implements [SensitiveRecord].
func (c *Customer) SensitiveFields() []SensitiveField {
	return []SensitiveField{
		{Name: "phone", Type: FieldPhone, Value: &c.Phone},
		{Name: "ssnNumber", Type: FieldSSN, Value: &c.SSNNumber},
		{Name: "driverLicense", Type: FieldLicense, Value: &c.DriverLicense},
		{Name: "stateId", Type: FieldStateID, Value: &c.StateID},
		{Name: "securityAnswer", Type: FieldDefault, Value: &c.SecurityAnswer},
	}
}

// Fields implements [SensitiveRecord].
func (c *Customer) Fields() map[string]any {
	return map[string]any{
		"id":               c.ID,
		"firstName":        c.FirstName,
		"lastName":         c.LastName,
		"email":            c.Email,
		"address":          c.Address,
		"phone":            c.Phone,
		"ssnNumber":        c.SSNNumber,
		"driverLicense":    c.DriverLicense,
		"stateId":          c.StateID,
		"securityQuestion": c.SecurityQuestion,
		"securityAnswer":   c.SecurityAnswer,
		"createdBy":        c.CreatedBy,
		"createdAt":        c.CreatedAt,
		"updatedAt":        c.UpdatedAt,
	}
}

// CustomerUpdate is a partial update of a [Customer]. Only non-nil fields
// are written.
type CustomerUpdate struct {
	ID int64 `json:"-"`

	FirstName        *string `json:"firstName,omitempty"`
	LastName         *string `json:"lastName,omitempty"`
	Email            *string `json:"email,omitempty"`
	Address          *string `json:"address,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	SSNNumber        *string `json:"ssnNumber,omitempty"`
	DriverLicense    *string `json:"driverLicense,omitempty"`
	StateID          *string `json:"stateId,omitempty"`
	SecurityQuestion *string `json:"securityQuestion,omitempty"`
	SecurityAnswer   *string `json:"securityAnswer,omitempty"`
}

// SensitiveFields implements [SensitiveRecord].
func (u *CustomerUpdate) SensitiveFields() []SensitiveField {
	return []SensitiveField{
		{Name: "phone", Type: FieldPhone, Value: &u.Phone},
		{Name: "ssnNumber", Type: FieldSSN, Value: &u.SSNNumber},
		{Name: "driverLicense", Type: FieldLicense, Value: &u.DriverLicense},
		{Name: "stateId", Type: FieldStateID, Value: &u.StateID},
		{Name: "securityAnswer", Type: FieldDefault, Value: &u.SecurityAnswer},
	}
}

// Fields implements [SensitiveRecord]. Only set fields are included.
func (u *CustomerUpdate) Fields() map[string]any {
	fields := make(map[string]any, 10)
	setIfPresent(fields, "firstName", u.FirstName)
	setIfPresent(fields, "lastName", u.LastName)
	setIfPresent(fields, "email", u.Email)
	setIfPresent(fields, "address", u.Address)
	setIfPresent(fields, "phone", u.Phone)
	setIfPresent(fields, "ssnNumber", u.SSNNumber)
	setIfPresent(fields, "driverLicense", u.DriverLicense)
	setIfPresent(fields, "stateId", u.StateID)
	setIfPresent(fields, "securityQuestion", u.SecurityQuestion)
	setIfPresent(fields, "securityAnswer", u.SecurityAnswer)
	return fields
}

// ChangedFields returns the JSON names of the fields set on the update.
func (u *CustomerUpdate) ChangedFields() []string {
	return changedFields(u.Fields())
}
