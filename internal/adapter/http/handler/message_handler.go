package handler

import (
	"encoding/json"
	"net/http"

	"github.com/iho/fintrack/internal/adapter/http/dto"
	"github.com/iho/fintrack/internal/usecase"
)

// MessageHandler accepts raw messages for extraction.
type MessageHandler struct {
	ingestUC *usecase.IngestUseCase
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(ingestUC *usecase.IngestUseCase) *MessageHandler {
	return &MessageHandler{ingestUC: ingestUC}
}

// Ingest runs a raw message through the extraction pipeline.
func (h *MessageHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	var req dto.IngestMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if req.Body == "" {
		writeError(w, http.StatusBadRequest, "missing message body", "")
		return
	}

	outcome, err := h.ingestUC.HandleMessage(r.Context(), req.Sender, req.Body)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to ingest message", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.IngestResponse{Outcome: string(outcome)})
}
