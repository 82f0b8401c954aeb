package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-sales-keeper/internal/app"
	"github.com/MKhiriev/go-sales-keeper/internal/logger"
	"github.com/MKhiriev/go-sales-keeper/internal/service"
	"github.com/MKhiriev/go-sales-keeper/internal/store"
	"github.com/MKhiriev/go-sales-keeper/internal/utils"
	"github.com/MKhiriev/go-sales-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg(app.MsgInvalidDataProvided)
			utils.WriteError(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrLoginAlreadyExists):
			log.Err(err).Msg(app.MsgLoginAlreadyExists)
			utils.WriteError(w, app.MsgLoginAlreadyExists, http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	h.issueToken(w, r, registeredUser)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg(app.MsgInvalidDataProvided)
			utils.WriteError(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoUserWasFound) || errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("no user was found/wrong password")
			utils.WriteError(w, app.MsgInvalidLoginPassword, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Str("role", foundUser.Role.String()).Msg("user successfully logged in")

	h.issueToken(w, r, foundUser)
}

// issueToken answers a successful register or login with the token in the
// Authorization header and the user (without secrets) in the body.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request, user models.User) {
	log := logger.FromRequest(r)

	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	user.Password = ""
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	if _, err = utils.WriteJSON(w, user, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing response")
	}
}
