// internal/handlers/daily_log_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"violin_study_plan/internal/model"
	"violin_study_plan/internal/service"
	"violin_study_plan/internal/webutil"

	"github.com/go-chi/chi/v5"
)

// defaultLogLimit bounds the history listing to roughly one year of entries.
const defaultLogLimit = 365

type DailyLogHandler struct {
	service service.DailyLogService
	logger  *slog.Logger
}

func NewDailyLogHandler(s service.DailyLogService, logger *slog.Logger) *DailyLogHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DailyLogHandler{service: s, logger: logger}
}

func (h *DailyLogHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListLogs"))

	username, ok := requireUsername(w, r, logger)
	if !ok {
		return
	}

	limit := defaultLogLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	resp, err := h.service.ListLogs(r.Context(), username, limit)
	if err != nil {
		logger.Error("Error listing daily logs", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *DailyLogHandler) Get(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetLog"))

	username, ok := requireUsername(w, r, logger)
	if !ok {
		return
	}

	date := chi.URLParam(r, "date")
	resp, err := h.service.GetLog(r.Context(), username, date)
	if err != nil {
		logger.Error("Error loading daily log", slog.String("date", date), slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *DailyLogHandler) Notes(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DailyNotes"))

	username, ok := requireUsername(w, r, logger)
	if !ok {
		return
	}

	var req model.DailyNotesRequest
	if !bindJSON(w, r, logger, &req) {
		return
	}

	date := chi.URLParam(r, "date")
	if err := h.service.UpdateNotes(r.Context(), username, date, &req); err != nil {
		logger.Warn("Error saving daily notes", slog.String("date", date), slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.MessageResponse{Message: "Anotações salvas"})
}

func (h *DailyLogHandler) LogTime(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "LogTime"))

	username, ok := requireUsername(w, r, logger)
	if !ok {
		return
	}

	var req model.LogTimeRequest
	if !bindJSON(w, r, logger, &req) {
		return
	}

	if err := h.service.LogTime(r.Context(), username, &req); err != nil {
		logger.Warn("Error recording practice time", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.MessageResponse{Message: "Tempo registrado"})
}
