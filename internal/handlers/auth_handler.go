// internal/handlers/auth_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"violin_study_plan/internal/model"
	"violin_study_plan/internal/service"
	"violin_study_plan/internal/webutil"
)

type AuthHandler struct {
	service service.AuthService
	logger  *slog.Logger
}

func NewAuthHandler(s service.AuthService, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{service: s, logger: logger}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Login"))

	var req model.LoginRequest
	if !bindJSON(w, r, logger, &req) {
		return
	}

	resp, err := h.service.Login(r.Context(), &req, clientIP(r))
	if err != nil {
		logger.Warn("Login failed", slog.String("username", req.Username), slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Login succeeded", slog.String("username", req.Username))
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Me"))

	username, ok := requireUsername(w, r, logger)
	if !ok {
		return
	}

	resp, err := h.service.GetUser(r.Context(), username)
	if err != nil {
		logger.Error("Error loading user", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ChangePassword"))

	username, ok := requireUsername(w, r, logger)
	if !ok {
		return
	}

	var req model.ChangePasswordRequest
	if !bindJSON(w, r, logger, &req) {
		return
	}

	if err := h.service.ChangePassword(r.Context(), username, &req); err != nil {
		logger.Warn("Password change failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Password changed", slog.String("username", username))
	webutil.RespondWithJSON(w, http.StatusOK, model.MessageResponse{Message: "Senha alterada com sucesso"})
}

func (h *AuthHandler) FirstLoginPassword(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "FirstLoginPassword"))

	username, ok := requireUsername(w, r, logger)
	if !ok {
		return
	}

	var req model.FirstLoginPasswordRequest
	if !bindJSON(w, r, logger, &req) {
		return
	}

	if err := h.service.SetFirstLoginPassword(r.Context(), username, &req); err != nil {
		logger.Warn("First-login password change failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("First-login password set", slog.String("username", username))
	webutil.RespondWithJSON(w, http.StatusOK, model.MessageResponse{Message: "Senha definida com sucesso"})
}

func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Verify"))

	username, ok := requireUsername(w, r, logger)
	if !ok {
		return
	}

	resp, err := h.service.Verify(r.Context(), username)
	if err != nil {
		logger.Warn("Token verification failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}
