package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-sales-keeper/internal/utils"
	"github.com/MKhiriev/go-sales-keeper/models"
)

// caller returns the authenticated user ID and role put into the context by
// the auth middleware.
func caller(r *http.Request) (int64, models.Role, error) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return 0, "", ErrNoCaller
	}
	role, ok := utils.GetRoleFromContext(ctx)
	if !ok {
		return 0, "", ErrNoCaller
	}
	return userID, role, nil
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidPathID
	}
	return id, nil
}

// listOptions reads the optional limit and offset query parameters.
func listOptions(r *http.Request) (models.ListOptions, error) {
	var opts models.ListOptions
	query := r.URL.Query()

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return opts, ErrInvalidPaging
		}
		opts.Limit = limit
	}
	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return opts, ErrInvalidPaging
		}
		opts.Offset = offset
	}
	return opts, nil
}
