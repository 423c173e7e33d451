package handler

import (
	"encoding/json"
	"net/http"

	"github.com/iho/fintrack/internal/adapter/http/dto"
	"github.com/iho/fintrack/internal/usecase"
)

// SettingsHandler exposes the auto-confirm flag.
type SettingsHandler struct {
	settings usecase.SettingsStore
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settings usecase.SettingsStore) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// GetAutoConfirm returns the current auto-confirm flag.
func (h *SettingsHandler) GetAutoConfirm(w http.ResponseWriter, r *http.Request) {
	enabled, err := h.settings.AutoConfirm(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read setting", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AutoConfirmResponse{Enabled: enabled})
}

// SetAutoConfirm updates the auto-confirm flag.
func (h *SettingsHandler) SetAutoConfirm(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateAutoConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.settings.SetAutoConfirm(r.Context(), req.Enabled); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update setting", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AutoConfirmResponse{Enabled: req.Enabled})
}
