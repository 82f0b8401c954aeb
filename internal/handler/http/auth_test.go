// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sales-keeper/internal/service"
	"github.com/MKhiriev/go-sales-keeper/internal/store"
	"github.com/MKhiriev/go-sales-keeper/models"
)

// userBody serialises a models.User to a JSON request body string.
func userBody(t *testing.T, u models.User) string {
	t.Helper()
	b, err := json.Marshal(u)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

var validUser = models.User{
	Login:    "alice",
	Name:     "Alice",
	Password: "s3cret-pass",
	Role:     models.RoleManager,
}

func TestRegister_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, u models.User) (models.User, error) {
			u.UserID = 10
			u.PasswordHash = "$2a$hash"
			return u, nil
		},
		createTokenFn: func(_ context.Context, u models.User) (models.Token, error) {
			assert.Equal(t, int64(10), u.UserID)
			return stubToken(signedToken), nil
		},
	}

	h := newTestHandler(t, service.Services{AuthService: auth})
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(userBody(t, validUser)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))

	body := rec.Body.String()
	assert.Contains(t, body, `"login":"alice"`)
	assert.Contains(t, body, `"role":"manager"`)
	assert.NotContains(t, body, "s3cret-pass")
	assert.NotContains(t, body, "$2a$hash")
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "invalid JSON",
			body:       "{invalid json}",
			wantStatus: http.StatusBadRequest,
			wantBody:   "Invalid JSON was passed",
		},
		{
			name:       "empty body",
			body:       "",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid data provided",
			body:       userBody(t, validUser),
			err:        fmt.Errorf("%w: user: login is required", service.ErrInvalidDataProvided),
			wantStatus: http.StatusBadRequest,
			wantBody:   "login is required",
		},
		{
			name:       "login already exists",
			body:       userBody(t, validUser),
			err:        store.ErrLoginAlreadyExists,
			wantStatus: http.StatusConflict,
			wantBody:   "login already exists",
		},
		{
			name:       "wrapped login already exists",
			body:       userBody(t, validUser),
			err:        errors.Join(errors.New("outer"), store.ErrLoginAlreadyExists),
			wantStatus: http.StatusConflict,
		},
		{
			name:       "unexpected error",
			body:       userBody(t, validUser),
			err:        errors.New("db connection lost"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				registerUserFn: func(_ context.Context, _ models.User) (models.User, error) {
					return models.User{}, tt.err
				},
			}

			h := newTestHandler(t, service.Services{AuthService: auth})
			req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.register(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.NotContains(t, rec.Body.String(), "db connection lost")
		})
	}
}

func TestRegister_CreateTokenFails(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, u models.User) (models.User, error) {
			return u, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, errors.New("signing key unavailable")
		},
	}

	h := newTestHandler(t, service.Services{AuthService: auth})
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(userBody(t, validUser)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Header().Get("Authorization"))
}

func TestLogin_Success(t *testing.T) {
	const signedToken = "login.jwt.token"

	auth := &mockAuthService{
		loginFn: func(_ context.Context, u models.User) (models.User, error) {
			return models.User{UserID: 4, Login: u.Login, Role: models.RoleAdmin}, nil
		},
		createTokenFn: func(_ context.Context, u models.User) (models.Token, error) {
			assert.Equal(t, models.RoleAdmin, u.Role)
			return stubToken(signedToken), nil
		},
	}

	h := newTestHandler(t, service.Services{AuthService: auth})
	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(userBody(t, validUser)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))
	assert.Contains(t, rec.Body.String(), `"role":"admin"`)
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "invalid JSON",
			body:       "{bad json",
			wantStatus: http.StatusBadRequest,
			wantBody:   "Invalid JSON was passed",
		},
		{
			name:       "invalid data provided",
			body:       userBody(t, validUser),
			err:        service.ErrInvalidDataProvided,
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid data provided",
		},
		{
			name:       "user not found",
			body:       userBody(t, validUser),
			err:        store.ErrNoUserWasFound,
			wantStatus: http.StatusUnauthorized,
			wantBody:   "invalid login/password",
		},
		{
			name:       "wrong password",
			body:       userBody(t, validUser),
			err:        service.ErrWrongPassword,
			wantStatus: http.StatusUnauthorized,
			wantBody:   "invalid login/password",
		},
		{
			name:       "unexpected error",
			body:       userBody(t, validUser),
			err:        errors.New("unexpected db error"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				loginFn: func(_ context.Context, _ models.User) (models.User, error) {
					return models.User{}, tt.err
				},
			}

			h := newTestHandler(t, service.Services{AuthService: auth})
			req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.login(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.Empty(t, rec.Header().Get("Authorization"))
		})
	}
}
