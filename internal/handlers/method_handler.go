// internal/handlers/method_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"violin_study_plan/internal/model"
	"violin_study_plan/internal/service"
	"violin_study_plan/internal/webutil"

	"github.com/go-chi/chi/v5"
)

// MethodHandler covers the custom-method CRUD surface. Reads are public via
// CatalogHandler; every route here mutates and therefore requires auth.
type MethodHandler struct {
	service service.MethodService
	logger  *slog.Logger
}

func NewMethodHandler(s service.MethodService, logger *slog.Logger) *MethodHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &MethodHandler{service: s, logger: logger}
}

func (h *MethodHandler) Create(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateMethod"))

	username, ok := requireUsername(w, r, logger)
	if !ok {
		return
	}

	var req model.CreateMethodRequest
	if !bindJSON(w, r, logger, &req) {
		return
	}

	resp, err := h.service.CreateMethod(r.Context(), username, &req)
	if err != nil {
		logger.Warn("Error creating method", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, resp)
}

func (h *MethodHandler) Update(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UpdateMethod"))

	username, ok := requireUsername(w, r, logger)
	if !ok {
		return
	}

	var req model.UpdateMethodRequest
	if !bindJSON(w, r, logger, &req) {
		return
	}

	methodID := chi.URLParam(r, "method_id")
	if err := h.service.UpdateMethod(r.Context(), username, methodID, &req); err != nil {
		logger.Warn("Error updating method", slog.String("method_id", methodID), slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.MessageResponse{Message: "Método atualizado com sucesso"})
}

func (h *MethodHandler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteMethod"))

	username, ok := requireUsername(w, r, logger)
	if !ok {
		return
	}

	methodID := chi.URLParam(r, "method_id")
	if err := h.service.DeleteMethod(r.Context(), username, methodID); err != nil {
		logger.Warn("Error deleting method", slog.String("method_id", methodID), slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.MessageResponse{Message: "Método removido com sucesso"})
}

func (h *MethodHandler) CreateLesson(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateLesson"))

	username, ok := requireUsername(w, r, logger)
	if !ok {
		return
	}

	var req model.CreateLessonRequest
	if !bindJSON(w, r, logger, &req) {
		return
	}

	methodID := chi.URLParam(r, "method_id")
	resp, err := h.service.CreateLesson(r.Context(), username, methodID, &req)
	if err != nil {
		logger.Warn("Error creating lesson", slog.String("method_id", methodID), slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, resp)
}

func (h *MethodHandler) CreateLessonsBatch(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateLessonsBatch"))

	username, ok := requireUsername(w, r, logger)
	if !ok {
		return
	}

	var req model.BatchLessonRequest
	if !bindJSON(w, r, logger, &req) {
		return
	}

	methodID := chi.URLParam(r, "method_id")
	resp, err := h.service.CreateLessonsBatch(r.Context(), username, methodID, &req)
	if err != nil {
		logger.Warn("Error creating lesson batch", slog.String("method_id", methodID), slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, resp)
}

func (h *MethodHandler) UpdateLesson(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UpdateLesson"))

	username, ok := requireUsername(w, r, logger)
	if !ok {
		return
	}

	var req model.UpdateLessonRequest
	if !bindJSON(w, r, logger, &req) {
		return
	}

	lessonID := chi.URLParam(r, "lesson_id")
	if err := h.service.UpdateLesson(r.Context(), username, lessonID, &req); err != nil {
		logger.Warn("Error updating lesson", slog.String("lesson_id", lessonID), slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.MessageResponse{Message: "Lição atualizada com sucesso"})
}

func (h *MethodHandler) DeleteLesson(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteLesson"))

	username, ok := requireUsername(w, r, logger)
	if !ok {
		return
	}

	lessonID := chi.URLParam(r, "lesson_id")
	if err := h.service.DeleteLesson(r.Context(), username, lessonID); err != nil {
		logger.Warn("Error deleting lesson", slog.String("lesson_id", lessonID), slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.MessageResponse{Message: "Lição removida com sucesso"})
}

func (h *MethodHandler) ReorderLessons(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ReorderLessons"))

	username, ok := requireUsername(w, r, logger)
	if !ok {
		return
	}

	var req model.ReorderLessonsRequest
	if !bindJSON(w, r, logger, &req) {
		return
	}

	methodID := chi.URLParam(r, "method_id")
	if err := h.service.ReorderLessons(r.Context(), username, methodID, &req); err != nil {
		logger.Warn("Error reordering lessons", slog.String("method_id", methodID), slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.MessageResponse{Message: "Lições reordenadas com sucesso"})
}

func (h *MethodHandler) Lessons(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "MethodLessons"))

	if _, ok := requireUsername(w, r, logger); !ok {
		return
	}

	methodID := chi.URLParam(r, "method_id")
	resp, err := h.service.MethodLessons(r.Context(), methodID)
	if err != nil {
		logger.Warn("Error listing method lessons", slog.String("method_id", methodID), slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}
