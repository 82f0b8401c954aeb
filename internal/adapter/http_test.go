// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sales-keeper/internal/config"
	"github.com/MKhiriev/go-sales-keeper/internal/logger"
	"github.com/MKhiriev/go-sales-keeper/models"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"http://localhost:8080/", "http://localhost:8080", false},
		{"localhost:8080", "http://localhost:8080", false},
		{" https://sales.example.com ", "https://sales.example.com", false},
		{"", "", true},
		{"http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogin_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/user/login", r.URL.Path)

		var u models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&u))
		assert.Equal(t, "alice", u.Login)
		assert.Equal(t, "pw", u.Password)

		w.Header().Set("Authorization", "Bearer header.payload.sig")
		writeJSON(t, w, http.StatusOK, models.User{Login: "alice", Role: models.RoleManager})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.User{Login: "alice", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, models.RoleManager, got.Role)
	assert.Equal(t, "header.payload.sig", a.Token())
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusConflict, map[string]string{"error": "login already exists"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.User{Login: "alice"})

	require.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "login already exists")
	assert.Empty(t, a.Token())
}

func TestRegister_MissingAuthorizationHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, models.User{Login: "alice"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.User{Login: "alice"})

	assert.Error(t, err)
}

func TestGetServerVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "text/plain")
		_, _ = io.WriteString(w, "v1.2.3\n")
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).GetServerVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "v1.2.3", got)
}

func TestAuthenticatedCalls_RequireToken(t *testing.T) {
	a := newTestAdapter(t, "http://127.0.0.1:1")

	_, err := a.GetCustomer(context.Background(), 1)

	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.True(t, IsAuthError(err))
}

func TestCustomerCalls(t *testing.T) {
	type seen struct {
		method, path, query, auth string
		body                      map[string]any
	}
	var got seen

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = seen{method: r.Method, path: r.URL.Path, query: r.URL.RawQuery, auth: r.Header.Get("Authorization")}
		if r.ContentLength > 0 {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got.body))
		}

		if r.Method == http.MethodGet && r.URL.Path == "/api/customers" {
			writeJSON(t, w, http.StatusOK, []map[string]any{{"id": 1}, {"id": 2}})
			return
		}
		writeJSON(t, w, http.StatusOK, map[string]any{"id": 7, "ssnNumber": "***-**-6789"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		ssn := "123-45-6789"
		p, err := a.CreateCustomer(ctx, models.Customer{FirstName: "Ann", LastName: "Lee", SSNNumber: &ssn})

		require.NoError(t, err)
		assert.Equal(t, "***-**-6789", p["ssnNumber"])
		assert.Equal(t, http.MethodPost, got.method)
		assert.Equal(t, "/api/customers", got.path)
		assert.Equal(t, "Bearer tok", got.auth)
		assert.Equal(t, "123-45-6789", got.body["ssnNumber"])
	})

	t.Run("update", func(t *testing.T) {
		phone := "555-000-1111"
		_, err := a.UpdateCustomer(ctx, models.CustomerUpdate{ID: 7, Phone: &phone})

		require.NoError(t, err)
		assert.Equal(t, http.MethodPatch, got.method)
		assert.Equal(t, "/api/customers/7", got.path)
		assert.Equal(t, map[string]any{"phone": "555-000-1111"}, got.body)
	})

	t.Run("get", func(t *testing.T) {
		p, err := a.GetCustomer(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, float64(7), p["id"])
		assert.Equal(t, "/api/customers/7", got.path)
	})

	t.Run("list with paging", func(t *testing.T) {
		list, err := a.ListCustomers(ctx, models.ListOptions{Limit: 10, Offset: 20})

		require.NoError(t, err)
		assert.Len(t, list, 2)
		assert.Equal(t, "limit=10&offset=20", got.query)
	})
}

func TestPaymentMethodCalls(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		if r.Method == http.MethodGet && r.URL.Path == "/api/customers/3/payment-methods" {
			writeJSON(t, w, http.StatusOK, []map[string]any{})
			return
		}
		writeJSON(t, w, http.StatusOK, map[string]any{"id": 9})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")
	ctx := context.Background()

	_, err := a.CreatePaymentMethod(ctx, models.PaymentMethod{CustomerID: 3, MethodType: models.PaymentCheck})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/customers/3/payment-methods", gotPath)

	list, err := a.ListCustomerPaymentMethods(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = a.GetPaymentMethod(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, "/api/payment-methods/9", gotPath)

	cvv := "321"
	_, err = a.UpdatePaymentMethod(ctx, models.PaymentMethodUpdate{ID: 9, CVV: &cvv})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusMethodNotAllowed, ErrMethodNotAllowed},
		{http.StatusConflict, ErrConflict},
		{http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(t, w, tt.status, map[string]string{"error": "server said no"})
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			a.SetToken("tok")
			_, err := a.GetPaymentMethod(context.Background(), 1)

			assert.ErrorIs(t, err, tt.want)
		})
	}
}
