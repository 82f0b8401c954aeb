package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sales-keeper/internal/logger"
)

// makeRequest puts a logger writing to buf into the request context the same
// way withTraceID does.
func makeRequest(method, path string, body string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		path         string
		status       int
		response     string
		wantContains []string
	}{
		{
			name:     "GET 200",
			method:   http.MethodGet,
			path:     "/api/customers?limit=5",
			status:   http.StatusOK,
			response: "[]",
			wantContains: []string{
				`"method":"GET"`,
				`"uri":"/api/customers?limit=5"`,
				`"status":200`,
				`"size":2`,
				`"duration":`,
			},
		},
		{
			name:     "PATCH 404",
			method:   http.MethodPatch,
			path:     "/api/customers/99",
			status:   http.StatusNotFound,
			response: `{"error":"customer was not found"}`,
			wantContains: []string{
				`"method":"PATCH"`,
				`"status":404`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: logger.Nop()}

			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.response))
			})

			rec := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rec, makeRequest(tt.method, tt.path, "", &buf))

			assert.Equal(t, tt.status, rec.Code)
			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestWithLogging_NeverLogsBodies(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"ssnNumber":"123-45-6789"}`))
	})

	req := makeRequest(http.MethodPost, "/api/customers", `{"ssnNumber":"123-45-6789"}`, &buf)
	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	require.NotEmpty(t, buf.String())
	assert.NotContains(t, buf.String(), "123-45-6789")
}

func TestWithLogging_ImplicitStatus(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/x", "", &buf))

	assert.Contains(t, buf.String(), `"status":200`)
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	assert.Panics(t, func() {
		h.withLogging(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestWithLogging_LevelFollowsStatus(t *testing.T) {
	tests := map[int]string{
		http.StatusOK:                  `"level":"info"`,
		http.StatusCreated:             `"level":"info"`,
		http.StatusUnauthorized:        `"level":"warn"`,
		http.StatusMethodNotAllowed:    `"level":"warn"`,
		http.StatusInternalServerError: `"level":"error"`,
	}

	for status, want := range tests {
		t.Run(http.StatusText(status), func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: logger.Nop()}

			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(status)
			})
			h.withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/api/customers", "", &buf))

			assert.Contains(t, buf.String(), want)
		})
	}
}

func TestWithLogging_NoWriteLogsOK(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	h.withLogging(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).
		ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/x", "", &buf))

	assert.Contains(t, buf.String(), `"status":200`)
}
