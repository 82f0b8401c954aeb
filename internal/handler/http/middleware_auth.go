package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-sales-keeper/internal/app"
	"github.com/MKhiriev/go-sales-keeper/internal/logger"
	"github.com/MKhiriev/go-sales-keeper/internal/service"
	"github.com/MKhiriev/go-sales-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It reads the bearer token from the "Authorization" header, validates it via
// [service.AuthService.ParseToken] and stores the caller's user ID and role in
// the request context with [utils.WithCaller]. Every rejection is a 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				log.Err(err).Msg(app.MsgTokenIsExpired)
				utils.WriteError(w, service.ErrTokenIsExpired.Error(), http.StatusUnauthorized)
				return
			default:
				log.Err(err).Msg("error occurred during parsing token")
				utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
		}

		if !token.Role.Valid() {
			log.Error().Str("role", token.Role.String()).Msg("token carries no valid role")
			utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx = utils.WithCaller(ctx, token.UserID, token.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
