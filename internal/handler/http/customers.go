package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-sales-keeper/internal/app"
	"github.com/MKhiriev/go-sales-keeper/internal/logger"
	"github.com/MKhiriev/go-sales-keeper/internal/utils"
	"github.com/MKhiriev/go-sales-keeper/models"
)

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, role, err := caller(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createCustomer").Send()
		writeServiceError(w, err)
		return
	}

	var customer models.Customer
	if err = json.NewDecoder(r.Body).Decode(&customer); err != nil {
		log.Err(err).Str("func", "*Handler.createCustomer").Msg(app.MsgInvalidJSON)
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	customer.ID = 0
	customer.CreatedBy = userID

	created, err := h.services.CustomerService.CreateCustomer(ctx, customer, role)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createCustomer").Msg("error creating customer")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	_, role, err := caller(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listCustomers").Send()
		writeServiceError(w, err)
		return
	}

	opts, err := listOptions(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listCustomers").Send()
		writeServiceError(w, err)
		return
	}

	customers, err := h.services.CustomerService.ListCustomers(ctx, opts, role)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listCustomers").Msg("error listing customers")
		writeServiceError(w, err)
		return
	}
	if customers == nil {
		customers = []models.Projection{}
	}

	utils.WriteJSON(w, customers, http.StatusOK)
}

func (h *Handler) getCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	_, role, err := caller(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getCustomer").Send()
		writeServiceError(w, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getCustomer").Send()
		writeServiceError(w, err)
		return
	}

	customer, err := h.services.CustomerService.GetCustomer(ctx, id, role)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getCustomer").Int64("customer_id", id).Msg("error getting customer")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, customer, http.StatusOK)
}

func (h *Handler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	_, role, err := caller(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateCustomer").Send()
		writeServiceError(w, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateCustomer").Send()
		writeServiceError(w, err)
		return
	}

	var update models.CustomerUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.updateCustomer").Msg(app.MsgInvalidJSON)
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	update.ID = id

	log.Debug().Int64("customer_id", id).Strs("fields", update.ChangedFields()).Msg("updating customer")

	updated, err := h.services.CustomerService.UpdateCustomer(ctx, update, role)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateCustomer").Int64("customer_id", id).Msg("error updating customer")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}
