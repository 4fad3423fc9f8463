package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"violin_study_plan/internal/config"
	"violin_study_plan/internal/model"
	"violin_study_plan/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
)

// JWTAuthMiddleware validates the Bearer token and stores the authenticated
// username in the request context. The token subject is the username.
func JWTAuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("JWT auth failed: Authorization header missing")
				appErr := model.NewAppError("UNAUTHORIZED", "Cabeçalho Authorization é obrigatório.", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				logger.Warn("JWT auth failed: Invalid Authorization header format")
				appErr := model.NewAppError("UNAUTHORIZED", "Formato do cabeçalho Authorization inválido.", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}
			tokenString := headerParts[1]

			// jwt.Parse checks both signature and expiry.
			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(cfg.JWT.SecretKey), nil
			})
			if err != nil {
				logger.Warn("JWT auth failed: Invalid token", "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "Token inválido ou expirado.", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok || !token.Valid {
				logger.Warn("JWT auth failed: Unknown claims type or invalid token")
				appErr := model.NewAppError("INVALID_TOKEN", "Token inválido.", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			username, err := claims.GetSubject()
			if err != nil || username == "" {
				logger.Warn("JWT auth failed: Subject (sub) claim missing", "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "Token não contém informações do usuário.", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			ctx := context.WithValue(r.Context(), model.UsernameKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUsernameFromContext(ctx context.Context) (string, error) {
	value, ok := ctx.Value(model.UsernameKey).(string)
	if !ok || value == "" {
		return "", model.NewAppError("INTERNAL_SERVER_ERROR", "Não foi possível obter o usuário do contexto.", "", model.ErrInternalServer)
	}
	return value, nil
}
