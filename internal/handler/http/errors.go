// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned when the "Authorization" header is
	// missing from an authenticated request.
	ErrEmptyAuthorizationHeader = errors.New("empty authorization header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of the
	// form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

	// ErrNoCaller is returned when an authenticated handler finds no user ID or
	// role in the request context.
	ErrNoCaller = errors.New("no authenticated caller in context")

	// ErrInvalidPathID is returned when the {id} path segment is not a positive
	// integer.
	ErrInvalidPathID = errors.New("invalid id in path")

	// ErrInvalidPaging is returned for a non-numeric limit or offset.
	ErrInvalidPaging = errors.New("invalid limit or offset")
)
