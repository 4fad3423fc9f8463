// internal/handlers/progress_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"violin_study_plan/internal/model"
	"violin_study_plan/internal/service"
	"violin_study_plan/internal/webutil"
)

type ProgressHandler struct {
	service service.ProgressService
	logger  *slog.Logger
}

func NewProgressHandler(s service.ProgressService, logger *slog.Logger) *ProgressHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProgressHandler{service: s, logger: logger}
}

func (h *ProgressHandler) Get(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetProgress"))

	username, ok := requireUsername(w, r, logger)
	if !ok {
		return
	}

	resp, err := h.service.GetProgress(r.Context(), username)
	if err != nil {
		logger.Error("Error loading progress", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *ProgressHandler) Practice(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Practice"))

	username, ok := requireUsername(w, r, logger)
	if !ok {
		return
	}

	var req model.PracticeLogRequest
	if !bindJSON(w, r, logger, &req) {
		return
	}

	resp, err := h.service.LogPractice(r.Context(), username, &req)
	if err != nil {
		logger.Warn("Error recording practice", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *ProgressHandler) Advance(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Advance"))

	username, ok := requireUsername(w, r, logger)
	if !ok {
		return
	}

	var req model.AdvanceLessonRequest
	if !bindJSON(w, r, logger, &req) {
		return
	}
	if req.Direction == "" {
		req.Direction = "next"
	}

	resp, err := h.service.AdvanceLesson(r.Context(), username, &req)
	if err != nil {
		logger.Warn("Error advancing lesson", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *ProgressHandler) Jump(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Jump"))

	username, ok := requireUsername(w, r, logger)
	if !ok {
		return
	}

	var req model.JumpToLessonRequest
	if !bindJSON(w, r, logger, &req) {
		return
	}

	resp, err := h.service.JumpToLesson(r.Context(), username, &req)
	if err != nil {
		logger.Warn("Error jumping to lesson", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *ProgressHandler) Notes(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Notes"))

	username, ok := requireUsername(w, r, logger)
	if !ok {
		return
	}

	var req model.UpdateNotesRequest
	if !bindJSON(w, r, logger, &req) {
		return
	}

	if err := h.service.UpdateNotes(r.Context(), username, &req); err != nil {
		logger.Warn("Error saving lesson notes", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.MessageResponse{Message: "Anotações salvas"})
}

func (h *ProgressHandler) WarmupCheck(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "WarmupCheck"))

	username, ok := requireUsername(w, r, logger)
	if !ok {
		return
	}

	var req model.WarmupCheckRequest
	if !bindJSON(w, r, logger, &req) {
		return
	}

	resp, err := h.service.CheckWarmupItem(r.Context(), username, &req)
	if err != nil {
		logger.Warn("Error updating warmup checklist", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}
