// internal/handlers/stats_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"violin_study_plan/internal/service"
	"violin_study_plan/internal/webutil"
)

type StatsHandler struct {
	service service.StatsService
	logger  *slog.Logger
}

func NewStatsHandler(s service.StatsService, logger *slog.Logger) *StatsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatsHandler{service: s, logger: logger}
}

func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Stats"))

	username, ok := requireUsername(w, r, logger)
	if !ok {
		return
	}

	resp, err := h.service.GetStats(r.Context(), username)
	if err != nil {
		logger.Error("Error computing stats", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *StatsHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Calendar"))

	username, ok := requireUsername(w, r, logger)
	if !ok {
		return
	}

	resp, err := h.service.GetCalendar(r.Context(), username)
	if err != nil {
		logger.Error("Error building calendar", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}
