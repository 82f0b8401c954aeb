package models

import "time"

// PaymentMethodType is the kind of instrument a customer pays with.
type PaymentMethodType string

const (
	PaymentBankAccount PaymentMethodType = "bank_account"
	PaymentCard        PaymentMethodType = "card"
	PaymentCheck       PaymentMethodType = "check"
)

// Valid reports whether t is a known payment method type.
func (t PaymentMethodType) Valid() bool {
	switch t {
	case PaymentBankAccount, PaymentCard, PaymentCheck:
		return true
	}
	return false
}

// PaymentMethod is a payment instrument captured for a customer. Every
// account/card identifier is sensitive and stored encrypted.
type PaymentMethod struct {
	ID         int64             `json:"id"`
	CustomerID int64             `json:"customerId"`
	MethodType PaymentMethodType `json:"methodType"`

	BankName       string  `json:"bankName,omitempty"`
	AccountNumber  *string `json:"accountNumber"`
	RoutingNumber  *string `json:"routingNumber"`
	CheckNumber    *string `json:"checkNumber"`
	CardholderName string  `json:"cardholderName,omitempty"`
	CardNumber     *string `json:"cardNumber"`
	CVV            *string `json:"cvv"`
	ExpiryDate     *string `json:"expiryDate"`

	CreatedBy int64     `json:"createdBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PaymentMethodFieldSpecs lists the sensitive attributes of [PaymentMethod].
var PaymentMethodFieldSpecs = FieldSpecs{
	"accountNumber": FieldAccount,
	"routingNumber": FieldRouting,
	"checkNumber":   FieldCheck,
	"cardNumber":    FieldCard,
	"cvv":           FieldCVV,
	"expiryDate":    FieldDefault,
}

// SensitiveFields implements [SensitiveRecord].
func (p *PaymentMethod) SensitiveFields() []SensitiveField {
	return []SensitiveField{
		{Name: "accountNumber", Type: FieldAccount, Value: &p.AccountNumber},
		{Name: "routingNumber", Type: FieldRouting, Value: &p.RoutingNumber},
		{Name: "checkNumber", Type: FieldCheck, Value: &p.CheckNumber},
		{Name: "cardNumber", Type: FieldCard, Value: &p.CardNumber},
		{Name: "cvv", Type: FieldCVV, Value: &p.CVV},
		{Name: "expiryDate", Type: FieldDefault, Value: &p.ExpiryDate},
	}
}

// Fields implements [SensitiveRecord].
func (p *PaymentMethod) Fields() map[string]any {
	return map[string]any{
		"id":             p.ID,
		"customerId":     p.CustomerID,
		"methodType":     p.MethodType,
		"bankName":       p.BankName,
		"accountNumber":  p.AccountNumber,
		"routingNumber":  p.RoutingNumber,
		"checkNumber":    p.CheckNumber,
		"cardholderName": p.CardholderName,
		"cardNumber":     p.CardNumber,
		"cvv":            p.CVV,
		"expiryDate":     p.ExpiryDate,
		"createdBy":      p.CreatedBy,
		"createdAt":      p.CreatedAt,
		"updatedAt":      p.UpdatedAt,
	}
}

// PaymentMethodUpdate is a partial update of a [PaymentMethod].
type PaymentMethodUpdate struct {
	ID int64 `json:"-"`

	MethodType     *PaymentMethodType `json:"methodType,omitempty"`
	BankName       *string            `json:"bankName,omitempty"`
	AccountNumber  *string            `json:"accountNumber,omitempty"`
	RoutingNumber  *string            `json:"routingNumber,omitempty"`
	CheckNumber    *string            `json:"checkNumber,omitempty"`
	CardholderName *string            `json:"cardholderName,omitempty"`
	CardNumber     *string            `json:"cardNumber,omitempty"`
	CVV            *string            `json:"cvv,omitempty"`
	ExpiryDate     *string            `json:"expiryDate,omitempty"`
}

// SensitiveFields implements [SensitiveRecord].
func (u *PaymentMethodUpdate) SensitiveFields() []SensitiveField {
	return []SensitiveField{
		{Name: "accountNumber", Type: FieldAccount, Value: &u.AccountNumber},
		{Name: "routingNumber", Type: FieldRouting, Value: &u.RoutingNumber},
		{Name: "checkNumber", Type: FieldCheck, Value: &u.CheckNumber},
		{Name: "cardNumber", Type: FieldCard, Value: &u.CardNumber},
		{Name: "cvv", Type: FieldCVV, Value: &u.CVV},
		{Name: "expiryDate", Type: FieldDefault, Value: &u.ExpiryDate},
	}
}

// Fields implements [SensitiveRecord]. Only set fields are included.
func (u *PaymentMethodUpdate) Fields() map[string]any {
	fields := make(map[string]any, 9)
	if u.MethodType != nil {
		fields["methodType"] = *u.MethodType
	}
	setIfPresent(fields, "bankName", u.BankName)
	setIfPresent(fields, "accountNumber", u.AccountNumber)
	setIfPresent(fields, "routingNumber", u.RoutingNumber)
	setIfPresent(fields, "checkNumber", u.CheckNumber)
	setIfPresent(fields, "cardholderName", u.CardholderName)
	setIfPresent(fields, "cardNumber", u.CardNumber)
	setIfPresent(fields, "cvv", u.CVV)
	setIfPresent(fields, "expiryDate", u.ExpiryDate)
	return fields
}

// ChangedFields returns the JSON names of the fields set on the update.
func (u *PaymentMethodUpdate) ChangedFields() []string {
	return changedFields(u.Fields())
}
