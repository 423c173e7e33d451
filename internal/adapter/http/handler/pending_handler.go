package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/fintrack/internal/adapter/http/dto"
	"github.com/iho/fintrack/internal/usecase"
)

// PendingHandler handles the review queue of staged records.
type PendingHandler struct {
	reviewUC *usecase.ReviewUseCase
}

// NewPendingHandler creates a new PendingHandler.
func NewPendingHandler(reviewUC *usecase.ReviewUseCase) *PendingHandler {
	return &PendingHandler{reviewUC: reviewUC}
}

// List returns all records awaiting review.
func (h *PendingHandler) List(w http.ResponseWriter, r *http.Request) {
	txs, err := h.reviewUC.ListPending(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list pending records", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionsFromDomain(txs))
}

// Confirm promotes a staged record into the ledger.
func (h *PendingHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing record ID", "")
		return
	}

	tx, err := h.reviewUC.Confirm(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to confirm record", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionFromDomain(tx))
}

// Reject discards a staged record.
func (h *PendingHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing record ID", "")
		return
	}

	if err := h.reviewUC.Reject(r.Context(), id); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to reject record", err.Error())

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
