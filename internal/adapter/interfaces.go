// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the sales-keeper REST API.
//
// [ServerAdapter] hides the transport from callers. The HTTP implementation
// ([NewHTTPServerAdapter]) is built on go-resty. Non-2xx answers are mapped to
// the sentinel errors in errors.go so callers can use [errors.Is] (e.g.
// [ErrNotFound] for 404, [ErrUnauthorized] for 401).
//
// Records come back as [models.Projection] values: the server has already
// applied the disclosure policy of the caller's role, so sensitive fields are
// plaintext for admins and masked for everyone else.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-sales-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the sales-keeper server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every authenticated
	// request.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none was set.
	Token() string

	// Register creates an employee account and stores the issued token.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates an employee and stores the issued token.
	Login(ctx context.Context, user models.User) (models.User, error)

	// GetServerVersion returns the server's build version.
	GetServerVersion(ctx context.Context) (string, error)

	CreateCustomer(ctx context.Context, customer models.Customer) (models.Projection, error)
	UpdateCustomer(ctx context.Context, update models.CustomerUpdate) (models.Projection, error)
	GetCustomer(ctx context.Context, id int64) (models.Projection, error)
	ListCustomers(ctx context.Context, opts models.ListOptions) ([]models.Projection, error)

	CreatePaymentMethod(ctx context.Context, method models.PaymentMethod) (models.Projection, error)
	UpdatePaymentMethod(ctx context.Context, update models.PaymentMethodUpdate) (models.Projection, error)
	GetPaymentMethod(ctx context.Context, id int64) (models.Projection, error)
	ListCustomerPaymentMethods(ctx context.Context, customerID int64) ([]models.Projection, error)
}
