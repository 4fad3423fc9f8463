// internal/handlers/export_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"violin_study_plan/internal/model"
	"violin_study_plan/internal/service"
	"violin_study_plan/internal/webutil"
)

type ExportHandler struct {
	service service.ExportService
	logger  *slog.Logger
}

func NewExportHandler(s service.ExportService, logger *slog.Logger) *ExportHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportHandler{service: s, logger: logger}
}

func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Export"))

	username, ok := requireUsername(w, r, logger)
	if !ok {
		return
	}

	resp, err := h.service.Export(r.Context(), username)
	if err != nil {
		logger.Error("Error exporting data", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *ExportHandler) ImportPreview(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ImportPreview"))

	username, ok := requireUsername(w, r, logger)
	if !ok {
		return
	}

	var req model.ImportDataRequest
	if !bindJSON(w, r, logger, &req) {
		return
	}

	resp, err := h.service.PreviewImport(r.Context(), username, &req)
	if err != nil {
		logger.Error("Error previewing import", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *ExportHandler) Import(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Import"))

	username, ok := requireUsername(w, r, logger)
	if !ok {
		return
	}

	var req model.ImportDataRequest
	if !bindJSON(w, r, logger, &req) {
		return
	}

	if err := h.service.Import(r.Context(), username, &req); err != nil {
		logger.Error("Error importing data", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Data imported", slog.String("username", username))
	webutil.RespondWithJSON(w, http.StatusOK, model.MessageResponse{Message: "Dados importados com sucesso"})
}

func (h *ExportHandler) Reset(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Reset"))

	username, ok := requireUsername(w, r, logger)
	if !ok {
		return
	}

	if err := h.service.Reset(r.Context(), username); err != nil {
		logger.Error("Error resetting data", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Data reset", slog.String("username", username))
	webutil.RespondWithJSON(w, http.StatusOK, model.MessageResponse{Message: "Todos os dados foram reiniciados"})
}
