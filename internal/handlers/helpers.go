// internal/handlers/helpers.go
package handlers

import (
	"errors"
	"log/slog"
	"net"
	"net/http"

	"violin_study_plan/internal/middleware"
	"violin_study_plan/internal/model"
	"violin_study_plan/internal/webutil"

	"github.com/go-playground/validator/v10"
)

// requireUsername pulls the authenticated username out of the context. A
// missing value means the auth middleware did not run; the client gets a 401.
func requireUsername(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (string, bool) {
	username, err := middleware.GetUsernameFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "Não autenticado", "", model.ErrUnauthorized)
		webutil.HandleError(w, logger, appErr)
		return "", false
	}
	return username, true
}

// bindJSON decodes the body into dst and runs struct validation, writing the
// error response itself when either step fails.
func bindJSON(w http.ResponseWriter, r *http.Request, logger *slog.Logger, dst interface{}) bool {
	if err := webutil.DecodeJSONBody(r, dst); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return false
	}

	if err := webutil.Validator.Struct(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.String("errors", validationErrors.Error()))
			webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrors))
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return false
	}
	return true
}

// clientIP returns the peer address without the port. RealIP middleware has
// already folded X-Forwarded-For into RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
