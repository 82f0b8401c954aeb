package store

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-sales-keeper/models"
)

const (
	usersTable          = "users"
	customersTable      = "customers"
	paymentMethodsTable = "payment_methods"
)

var userColumns = []string{"user_id", "login", "name", "password_hash", "role", "created_at"}

var customerColumns = []string{
	"id",
	"first_name",
	"last_name",
	"email",
	"address",
	"phone",
	"ssn_number",
	"driver_license",
	"state_id",
	"security_question",
	"security_answer",
	"created_by",
	"created_at",
	"updated_at",
}

// customerColumnByField maps the json name of a [models.CustomerUpdate]
// field to its column.
var customerColumnByField = map[string]string{
	"firstName":        "first_name",
	"lastName":         "last_name",
	"email":            "email",
	"address":          "address",
	"phone":            "phone",
	"ssnNumber":        "ssn_number",
	"driverLicense":    "driver_license",
	"stateId":          "state_id",
	"securityQuestion": "security_question",
	"securityAnswer":   "security_answer",
}

var paymentMethodColumns = []string{
	"id",
	"customer_id",
	"method_type",
	"bank_name",
	"account_number",
	"routing_number",
	"check_number",
	"cardholder_name",
	"card_number",
	"cvv",
	"expiry_date",
	"created_by",
	"created_at",
	"updated_at",
}

// paymentMethodColumnByField maps the json name of a
// [models.PaymentMethodUpdate] field to its column.
var paymentMethodColumnByField = map[string]string{
	"methodType":     "method_type",
	"bankName":       "bank_name",
	"accountNumber":  "account_number",
	"routingNumber":  "routing_number",
	"checkNumber":    "check_number",
	"cardholderName": "cardholder_name",
	"cardNumber":     "card_number",
	"cvv":            "cvv",
	"expiryDate":     "expiry_date",
}

func buildCreateUserQuery(sb sq.StatementBuilderType, user models.User) (string, []any, error) {
	return sb.Insert(usersTable).
		Columns("login", "name", "password_hash", "role").
		Values(user.Login, user.Name, user.PasswordHash, string(user.Role)).
		Suffix("RETURNING " + columnList(userColumns)).
		ToSql()
}

func buildFindUserByLoginQuery(sb sq.StatementBuilderType, login string) (string, []any, error) {
	return sb.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"login": login}).
		ToSql()
}

func buildCreateCustomerQuery(sb sq.StatementBuilderType, c models.Customer) (string, []any, error) {
	return sb.Insert(customersTable).
		Columns(customerColumns[1:12]...).
		Values(
			c.FirstName,
			c.LastName,
			c.Email,
			c.Address,
			c.Phone,
			c.SSNNumber,
			c.DriverLicense,
			c.StateID,
			c.SecurityQuestion,
			c.SecurityAnswer,
			c.CreatedBy,
		).
		Suffix("RETURNING " + columnList(customerColumns)).
		ToSql()
}

func buildUpdateCustomerQuery(sb sq.StatementBuilderType, update models.CustomerUpdate) (string, []any, error) {
	set, err := setMap(update.Fields(), customerColumnByField)
	if err != nil {
		return "", nil, err
	}

	return sb.Update(customersTable).
		SetMap(set).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": update.ID}).
		Suffix("RETURNING " + columnList(customerColumns)).
		ToSql()
}

func buildGetCustomerQuery(sb sq.StatementBuilderType, id int64) (string, []any, error) {
	return sb.Select(customerColumns...).
		From(customersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildListCustomersQuery(sb sq.StatementBuilderType, opts models.ListOptions) (string, []any, error) {
	q := sb.Select(customerColumns...).
		From(customersTable).
		OrderBy("id")
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit).Offset(opts.Offset)
	}
	return q.ToSql()
}

func buildCreatePaymentMethodQuery(sb sq.StatementBuilderType, p models.PaymentMethod) (string, []any, error) {
	return sb.Insert(paymentMethodsTable).
		Columns(paymentMethodColumns[1:12]...).
		Values(
			p.CustomerID,
			string(p.MethodType),
			p.BankName,
			p.AccountNumber,
			p.RoutingNumber,
			p.CheckNumber,
			p.CardholderName,
			p.CardNumber,
			p.CVV,
			p.ExpiryDate,
			p.CreatedBy,
		).
		Suffix("RETURNING " + columnList(paymentMethodColumns)).
		ToSql()
}

func buildUpdatePaymentMethodQuery(sb sq.StatementBuilderType, update models.PaymentMethodUpdate) (string, []any, error) {
	fields := update.Fields()
	if mt, ok := fields["methodType"].(models.PaymentMethodType); ok {
		fields["methodType"] = string(mt)
	}

	set, err := setMap(fields, paymentMethodColumnByField)
	if err != nil {
		return "", nil, err
	}

	return sb.Update(paymentMethodsTable).
		SetMap(set).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": update.ID}).
		Suffix("RETURNING " + columnList(paymentMethodColumns)).
		ToSql()
}

func buildGetPaymentMethodQuery(sb sq.StatementBuilderType, id int64) (string, []any, error) {
	return sb.Select(paymentMethodColumns...).
		From(paymentMethodsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildListPaymentMethodsQuery(sb sq.StatementBuilderType, customerID *int64) (string, []any, error) {
	q := sb.Select(paymentMethodColumns...).
		From(paymentMethodsTable).
		OrderBy("id")
	if customerID != nil {
		q = q.Where(sq.Eq{"customer_id": *customerID})
	}
	return q.ToSql()
}

// setMap translates json-named update fields to columns. Unknown fields are
// a programming error.
func setMap(fields map[string]any, columnByField map[string]string) (map[string]any, error) {
	if len(fields) == 0 {
		return nil, ErrNothingToUpdate
	}

	set := make(map[string]any, len(fields))
	for _, field := range slices.Sorted(maps.Keys(fields)) {
		column, ok := columnByField[field]
		if !ok {
			return nil, fmt.Errorf("%w: unknown field %q", ErrBuildingSQLQuery, field)
		}
		set[column] = fields[field]
	}
	return set, nil
}

func columnList(columns []string) string {
	return strings.Join(columns, ", ")
}
