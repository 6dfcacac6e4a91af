package server

import (
	"encoding/json"
	"net/http"

	"github.com/ExeHalah/PlayerInfo/internal/constants"
	"github.com/ExeHalah/PlayerInfo/internal/service"
	apperrors "github.com/ExeHalah/PlayerInfo/pkg/errors"
	"go.uber.org/zap"
)

// Handler serves the player-info endpoint.
type Handler struct {
	apiKey   string
	profiles *service.ProfileService
	logger   *zap.Logger
}

func NewHandler(apiKey string, profiles *service.ProfileService, logger *zap.Logger) *Handler {
	return &Handler{
		apiKey:   apiKey,
		profiles: profiles,
		logger:   logger,
	}
}

func (h *Handler) PlayerInfo(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if query.Get("key") != h.apiKey {
		writeError(w, http.StatusForbidden, constants.Messages.InvalidAPIKey)
		return
	}

	uid := query.Get("uid")
	if uid == "" {
		writeError(w, http.StatusBadRequest, constants.Messages.MissingUID)
		return
	}

	profile, err := h.profiles.Fetch(r.Context(), uid, query.Get("region"))
	if err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok {
			writeError(w, appErr.StatusCode, appErr.Message)
			return
		}
		h.logger.Error("Profile fetch failed", zap.String("uid", uid), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
