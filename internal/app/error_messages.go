// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the response messages shared by the sales-keeper HTTP
// handlers, so every endpoint answers the same failure with the same words.
package app

const (
	// MsgInvalidJSON is returned when a request body is not valid JSON for
	// the endpoint.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgLoginAlreadyExists is returned when registering a taken login.
	MsgLoginAlreadyExists = "login already exists"

	// MsgInvalidLoginPassword is returned when the login/password pair does
	// not match a user.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgInvalidDataProvided is logged when a request fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgTokenIsExpired is logged when a bearer token is past its expiry.
	MsgTokenIsExpired = "token expired"
)
