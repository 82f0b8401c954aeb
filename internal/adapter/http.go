package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-sales-keeper/internal/config"
	"github.com/MKhiriev/go-sales-keeper/internal/logger"
	"github.com/MKhiriev/go-sales-keeper/internal/utils"
	"github.com/MKhiriev/go-sales-keeper/models"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// adapterCfg.HTTPAddress may omit the scheme, in which case http:// is
// assumed.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	return h.authenticate(ctx, "/api/user/register", user)
}

func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	return h.authenticate(ctx, "/api/user/login", user)
}

// authenticate posts credentials to path and keeps the bearer token of the
// answer.
func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) (models.User, error) {
	var authenticated models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&authenticated).
		Post(path)
	if err != nil {
		return models.User{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("%s parse bearer token: %w", path, err)
	}

	h.SetToken(token)
	h.logger.Debug().Str("login", authenticated.Login).Str("role", authenticated.Role.String()).Msg("authenticated")

	return authenticated, nil
}

func (h *httpServerAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) CreateCustomer(ctx context.Context, customer models.Customer) (models.Projection, error) {
	var created models.Projection
	err := h.send(ctx, "create customer", &created, func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(customer).Post("/api/customers")
	})
	return created, err
}

func (h *httpServerAdapter) UpdateCustomer(ctx context.Context, update models.CustomerUpdate) (models.Projection, error) {
	var updated models.Projection
	err := h.send(ctx, "update customer", &updated, func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(update).
			SetPathParam("id", strconv.FormatInt(update.ID, 10)).
			Patch("/api/customers/{id}")
	})
	return updated, err
}

func (h *httpServerAdapter) GetCustomer(ctx context.Context, id int64) (models.Projection, error) {
	var customer models.Projection
	err := h.send(ctx, "get customer", &customer, func(r *resty.Request) (*resty.Response, error) {
		return r.SetPathParam("id", strconv.FormatInt(id, 10)).Get("/api/customers/{id}")
	})
	return customer, err
}

func (h *httpServerAdapter) ListCustomers(ctx context.Context, opts models.ListOptions) ([]models.Projection, error) {
	var customers []models.Projection
	err := h.send(ctx, "list customers", &customers, func(r *resty.Request) (*resty.Response, error) {
		if opts.Limit > 0 {
			r.SetQueryParam("limit", strconv.FormatUint(opts.Limit, 10))
		}
		if opts.Offset > 0 {
			r.SetQueryParam("offset", strconv.FormatUint(opts.Offset, 10))
		}
		return r.Get("/api/customers")
	})
	return customers, err
}

func (h *httpServerAdapter) CreatePaymentMethod(ctx context.Context, method models.PaymentMethod) (models.Projection, error) {
	var created models.Projection
	err := h.send(ctx, "create payment method", &created, func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(method).
			SetPathParam("id", strconv.FormatInt(method.CustomerID, 10)).
			Post("/api/customers/{id}/payment-methods")
	})
	return created, err
}

func (h *httpServerAdapter) UpdatePaymentMethod(ctx context.Context, update models.PaymentMethodUpdate) (models.Projection, error) {
	var updated models.Projection
	err := h.send(ctx, "update payment method", &updated, func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(update).
			SetPathParam("id", strconv.FormatInt(update.ID, 10)).
			Patch("/api/payment-methods/{id}")
	})
	return updated, err
}

func (h *httpServerAdapter) GetPaymentMethod(ctx context.Context, id int64) (models.Projection, error) {
	var method models.Projection
	err := h.send(ctx, "get payment method", &method, func(r *resty.Request) (*resty.Response, error) {
		return r.SetPathParam("id", strconv.FormatInt(id, 10)).Get("/api/payment-methods/{id}")
	})
	return method, err
}

func (h *httpServerAdapter) ListCustomerPaymentMethods(ctx context.Context, customerID int64) ([]models.Projection, error) {
	var methods []models.Projection
	err := h.send(ctx, "list payment methods", &methods, func(r *resty.Request) (*resty.Response, error) {
		return r.SetPathParam("id", strconv.FormatInt(customerID, 10)).Get("/api/customers/{id}/payment-methods")
	})
	return methods, err
}

// send runs an authenticated JSON request and decodes a 2xx body into
// result.
func (h *httpServerAdapter) send(ctx context.Context, op string, result any, do func(*resty.Request) (*resty.Response, error)) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := do(req.SetHeader("Content-Type", "application/json").SetResult(result))
	if err != nil {
		return fmt.Errorf("%s request: %w", op, err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNotAuthenticated
	}
	return h.client.R().SetContext(ctx).SetAuthToken(token), nil
}

// IsAuthError reports whether err means the stored token is missing,
// expired or rejected.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrNotAuthenticated)
}
