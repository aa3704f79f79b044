// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-ledger/internal/app"
	"github.com/MKhiriev/go-ledger/internal/logger"
	"github.com/MKhiriev/go-ledger/internal/utils"
	"github.com/MKhiriev/go-ledger/models"
	"github.com/go-chi/chi/v5"
)

const headerIdempotencyKey = "Idempotency-Key"

func (h *Handler) getAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	balance, err := h.services.LedgerService.GetBalance(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, "balance lookup failed")
		return
	}

	utils.WriteJSON(w, balance, http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	users, err := h.services.LedgerService.ListUsers(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, "user listing failed")
		return
	}
	if users == nil {
		users = []models.UserSummary{}
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) listTransfers(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	transfers, err := h.services.LedgerService.ListTransfers(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, "transfer listing failed")
		return
	}
	if transfers == nil {
		transfers = []models.Transfer{}
	}

	utils.WriteJSON(w, transfers, http.StatusOK)
}

func (h *Handler) getTransfer(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	transferID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || transferID <= 0 {
		logger.FromRequest(r).Warn().Str("id", chi.URLParam(r, "id")).Msg("invalid transfer id")
		http.Error(w, app.MsgInvalidTransferID, http.StatusBadRequest)
		return
	}

	transfer, err := h.services.LedgerService.GetTransfer(r.Context(), userID, transferID)
	if err != nil {
		writeError(w, r, err, "transfer lookup failed")
		return
	}

	utils.WriteJSON(w, transfer, http.StatusOK)
}

func (h *Handler) sendTransfer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req models.TransferRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	req.IdempotencyKey = r.Header.Get(headerIdempotencyKey)

	transfer, err := h.services.LedgerService.SendTransfer(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err, "transfer was not posted")
		return
	}

	utils.WriteJSON(w, transfer, http.StatusCreated)
}

// callerID reads the user ID put into the context by the auth middleware and
// answers 401 itself when it is missing.
func callerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Err(ErrNoUserIDInContext).Send()
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}
