// internal/handlers/catalog_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"violin_study_plan/internal/service"
	"violin_study_plan/internal/webutil"

	"github.com/go-chi/chi/v5"
)

// CatalogHandler serves the read-only curriculum surface. Everything here is
// public; no authentication required.
type CatalogHandler struct {
	service service.CatalogService
	logger  *slog.Logger
}

func NewCatalogHandler(s service.CatalogService, logger *slog.Logger) *CatalogHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogHandler{service: s, logger: logger}
}

func (h *CatalogHandler) Root(w http.ResponseWriter, r *http.Request) {
	webutil.RespondWithJSON(w, http.StatusOK, h.service.Root(r.Context()))
}

func (h *CatalogHandler) SessionTypes(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SessionTypes"))

	resp, err := h.service.SessionTypes(r.Context())
	if err != nil {
		logger.Error("Error listing session types", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *CatalogHandler) SessionInfo(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SessionInfo"))

	resp, err := h.service.SessionInfo(r.Context())
	if err != nil {
		logger.Error("Error building session info", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *CatalogHandler) Lessons(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Lessons"))

	sessionType := chi.URLParam(r, "session_type")
	resp, err := h.service.Lessons(r.Context(), sessionType)
	if err != nil {
		logger.Warn("Error listing lessons", slog.String("session_type", sessionType), slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *CatalogHandler) Methods(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Methods"))

	resp, err := h.service.Methods(r.Context())
	if err != nil {
		logger.Error("Error listing methods", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *CatalogHandler) LevelThresholds(w http.ResponseWriter, r *http.Request) {
	webutil.RespondWithJSON(w, http.StatusOK, h.service.LevelThresholds(r.Context()))
}

func (h *CatalogHandler) WarmupChecklist(w http.ResponseWriter, r *http.Request) {
	webutil.RespondWithJSON(w, http.StatusOK, h.service.WarmupChecklist(r.Context()))
}
