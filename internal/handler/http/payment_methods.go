package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-sales-keeper/internal/app"
	"github.com/MKhiriev/go-sales-keeper/internal/logger"
	"github.com/MKhiriev/go-sales-keeper/internal/utils"
	"github.com/MKhiriev/go-sales-keeper/models"
)

// createPaymentMethod adds a payment method to the customer named in the
// path; a customerId in the body is ignored.
func (h *Handler) createPaymentMethod(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, role, err := caller(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createPaymentMethod").Send()
		writeServiceError(w, err)
		return
	}

	customerID, err := pathID(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createPaymentMethod").Send()
		writeServiceError(w, err)
		return
	}

	var method models.PaymentMethod
	if err = json.NewDecoder(r.Body).Decode(&method); err != nil {
		log.Err(err).Str("func", "*Handler.createPaymentMethod").Msg(app.MsgInvalidJSON)
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	method.ID = 0
	method.CustomerID = customerID
	method.CreatedBy = userID

	created, err := h.services.PaymentMethodService.CreatePaymentMethod(ctx, method, role)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createPaymentMethod").Int64("customer_id", customerID).Msg("error creating payment method")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listCustomerPaymentMethods(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	_, role, err := caller(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listCustomerPaymentMethods").Send()
		writeServiceError(w, err)
		return
	}

	customerID, err := pathID(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listCustomerPaymentMethods").Send()
		writeServiceError(w, err)
		return
	}

	methods, err := h.services.PaymentMethodService.ListCustomerPaymentMethods(ctx, customerID, role)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listCustomerPaymentMethods").Int64("customer_id", customerID).Msg("error listing payment methods")
		writeServiceError(w, err)
		return
	}
	if methods == nil {
		methods = []models.Projection{}
	}

	utils.WriteJSON(w, methods, http.StatusOK)
}

func (h *Handler) getPaymentMethod(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	_, role, err := caller(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getPaymentMethod").Send()
		writeServiceError(w, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getPaymentMethod").Send()
		writeServiceError(w, err)
		return
	}

	method, err := h.services.PaymentMethodService.GetPaymentMethod(ctx, id, role)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getPaymentMethod").Int64("payment_method_id", id).Msg("error getting payment method")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, method, http.StatusOK)
}

func (h *Handler) updatePaymentMethod(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	_, role, err := caller(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updatePaymentMethod").Send()
		writeServiceError(w, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updatePaymentMethod").Send()
		writeServiceError(w, err)
		return
	}

	var update models.PaymentMethodUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.updatePaymentMethod").Msg(app.MsgInvalidJSON)
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	update.ID = id

	updated, err := h.services.PaymentMethodService.UpdatePaymentMethod(ctx, update, role)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updatePaymentMethod").Int64("payment_method_id", id).Msg("error updating payment method")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}
