package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

type errorResponse struct {
	Error string `json:"error"`
}

// mapHTTPError returns nil for 2xx answers. Otherwise the server's
// {"error": ...} message is wrapped into the sentinel of the status.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := strings.TrimSpace(string(resp.Body()))
	var body errorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		message = body.Error
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusMethodNotAllowed:
		return fmt.Errorf("%w: allowed %s", ErrMethodNotAllowed, resp.Header().Get("Allow"))
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, message)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, message)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), message)
	}
}
