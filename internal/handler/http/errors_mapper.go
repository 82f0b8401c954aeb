package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-sales-keeper/internal/crypto"
	"github.com/MKhiriev/go-sales-keeper/internal/service"
	"github.com/MKhiriev/go-sales-keeper/internal/store"
	"github.com/MKhiriev/go-sales-keeper/internal/utils"
)

// errorStatusMap is checked in order; the first sentinel matched by
// errors.Is decides the status.
var errorStatusMap = []struct {
	err    error
	status int
}{
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrNothingToUpdate, http.StatusBadRequest},
	{service.ErrInvalidRole, http.StatusBadRequest},
	{store.ErrNothingToUpdate, http.StatusBadRequest},
	{ErrInvalidPathID, http.StatusBadRequest},
	{ErrInvalidPaging, http.StatusBadRequest},

	{service.ErrWrongPassword, http.StatusUnauthorized},
	{service.ErrTokenIsExpired, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{ErrNoCaller, http.StatusUnauthorized},

	{store.ErrCustomerNotFound, http.StatusNotFound},
	{store.ErrPaymentMethodNotFound, http.StatusNotFound},
	{store.ErrNoUserWasFound, http.StatusNotFound},

	{store.ErrLoginAlreadyExists, http.StatusConflict},

	{crypto.ErrEncryptionFailed, http.StatusInternalServerError},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.err) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError answers with the status of err. Client errors carry the
// error text; server errors only the status text, so no storage or crypto
// detail leaks to the caller.
func writeServiceError(w http.ResponseWriter, err error) int {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		utils.WriteError(w, http.StatusText(status), status)
		return status
	}
	utils.WriteError(w, err.Error(), status)
	return status
}
