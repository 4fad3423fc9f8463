// internal/handlers/settings_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"violin_study_plan/internal/model"
	"violin_study_plan/internal/service"
	"violin_study_plan/internal/webutil"
)

type SettingsHandler struct {
	service service.SettingsService
	logger  *slog.Logger
}

func NewSettingsHandler(s service.SettingsService, logger *slog.Logger) *SettingsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SettingsHandler{service: s, logger: logger}
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetSettings"))

	resp, err := h.service.GetSettings(r.Context())
	if err != nil {
		logger.Error("Error loading settings", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *SettingsHandler) UpdateDurations(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UpdateDurations"))

	if _, ok := requireUsername(w, r, logger); !ok {
		return
	}

	var req model.UpdateSessionDurationsRequest
	if !bindJSON(w, r, logger, &req) {
		return
	}

	if err := h.service.UpdateSessionDurations(r.Context(), &req); err != nil {
		logger.Warn("Error updating session durations", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.MessageResponse{Message: "Configurações atualizadas"})
}
