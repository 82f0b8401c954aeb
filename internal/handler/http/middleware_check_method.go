// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-sales-keeper/internal/utils"
)

// knownMethods are probed when building the Allow header.
var knownMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// CheckHTTPMethod returns the handler to register with
// [chi.Mux.MethodNotAllowed].
//
// The router is asked which methods resolve for the request path. If none
// do, the path is unknown and the answer is 404. If the requested method
// resolves after all, the request is served normally. Otherwise the answer
// is 405 with an "Allow" header listing the registered methods.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		var allowed []string
		for _, method := range knownMethods {
			if router.Match(chi.NewRouteContext(), method, path) {
				allowed = append(allowed, method)
			}
		}

		if len(allowed) == 0 {
			utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		for _, method := range allowed {
			if method == r.Method {
				router.ServeHTTP(w, r)
				return
			}
		}

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		utils.WriteError(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}
