// internal/service/auth_service.go
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"violin_study_plan/internal/config"
	"violin_study_plan/internal/middleware"
	"violin_study_plan/internal/model"
	"violin_study_plan/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Login(ctx context.Context, req *model.LoginRequest, ip string) (*model.TokenResponse, error)
	GetUser(ctx context.Context, username string) (*model.UserResponse, error)
	ChangePassword(ctx context.Context, username string, req *model.ChangePasswordRequest) error
	SetFirstLoginPassword(ctx context.Context, username string, req *model.FirstLoginPasswordRequest) error
	Verify(ctx context.Context, username string) (*model.VerifyResponse, error)
}

type authService struct {
	db           *gorm.DB
	userRepo     repository.UserRepository
	progressRepo repository.ProgressRepository
	settingsRepo repository.SettingsRepository
	limiter      LoginLimiter
	cfg          *config.Config
	clock        Clock
}

func NewAuthService(db *gorm.DB, userRepo repository.UserRepository, progressRepo repository.ProgressRepository, settingsRepo repository.SettingsRepository, limiter LoginLimiter, cfg *config.Config, clock Clock) AuthService {
	if clock == nil {
		clock = time.Now
	}
	return &authService{
		db:           db,
		userRepo:     userRepo,
		progressRepo: progressRepo,
		settingsRepo: settingsRepo,
		limiter:      limiter,
		cfg:          cfg,
		clock:        clock,
	}
}

// Login authenticates and issues a signed token. The very first login for the
// admin account bootstraps the account, its progress documents and the app
// settings with the initial password that must be changed.
func (s *authService) Login(ctx context.Context, req *model.LoginRequest, ip string) (*model.TokenResponse, error) {
	logger := middleware.GetLogger(ctx)

	if blocked, _ := s.limiter.ShouldBlock(ip); blocked {
		logger.Warn("Login blocked by rate limiter", "ip", ip)
		return nil, model.NewAppError("TOO_MANY_ATTEMPTS", "Muitas tentativas falhas. Aguarde 5 minutos.", "", model.ErrTooManyRequests)
	}

	var resp *model.TokenResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := s.userRepo.FindByUsername(ctx, tx, req.Username)
		if errors.Is(err, model.ErrNotFound) && req.Username == config.AdminUsername {
			user, err = s.bootstrapAdmin(ctx, tx)
			if err != nil {
				logger.Error("Failed to bootstrap admin user", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "Ocorreu um erro interno no servidor.", "", err)
			}
			logger.Info("Admin user bootstrapped on first login")
		} else if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				s.limiter.Record(ip, false)
				return model.NewAppError("INVALID_CREDENTIALS", "Usuário ou senha incorretos", "", model.ErrUnauthorized)
			}
			logger.Error("Failed to look up user", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Ocorreu um erro interno no servidor.", "", err)
		}

		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
			s.limiter.Record(ip, false)
			logger.Warn("Login failed: wrong password", "username", req.Username)
			return model.NewAppError("INVALID_CREDENTIALS", "Usuário ou senha incorretos", "", model.ErrUnauthorized)
		}

		s.limiter.Record(ip, true)

		if user.FirstLoginAt == nil {
			now := s.clock().UTC()
			user.FirstLoginAt = &now
			if err := s.userRepo.Save(ctx, tx, user); err != nil {
				logger.Error("Failed to record first login", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "Ocorreu um erro interno no servidor.", "", err)
			}
		}

		token, err := s.createAccessToken(user.Username)
		if err != nil {
			logger.Error("Failed to sign access token", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Ocorreu um erro interno no servidor.", "", err)
		}

		resp = &model.TokenResponse{
			AccessToken:        token,
			TokenType:          "bearer",
			MustChangePassword: user.MustChangePassword,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *authService) bootstrapAdmin(ctx context.Context, tx *gorm.DB) (*model.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(config.AdminInitialPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := s.clock().UTC()
	user := &model.User{
		Username:           config.AdminUsername,
		PasswordHash:       string(hashed),
		FirstLoginAt:       &now,
		MustChangePassword: true,
	}
	if err := s.userRepo.Create(ctx, tx, user); err != nil {
		return nil, err
	}
	if err := initUserProgress(ctx, tx, s.progressRepo, user.Username, now); err != nil {
		return nil, err
	}
	if _, err := ensureSettings(ctx, tx, s.settingsRepo, s.clock); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) createAccessToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"sub": username,
		"exp": s.clock().Add(config.TokenExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWT.SecretKey))
}

func (s *authService) GetUser(ctx context.Context, username string) (*model.UserResponse, error) {
	user, err := s.findUser(ctx, username)
	if err != nil {
		return nil, err
	}
	return &model.UserResponse{
		Username:           user.Username,
		CreatedAt:          user.CreatedAt,
		FirstLoginAt:       user.FirstLoginAt,
		MustChangePassword: user.MustChangePassword,
	}, nil
}

func (s *authService) ChangePassword(ctx context.Context, username string, req *model.ChangePasswordRequest) error {
	logger := middleware.GetLogger(ctx)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := s.userRepo.FindByUsername(ctx, tx, username)
		if err != nil {
			return s.mapLookupError(ctx, err)
		}

		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)) != nil {
			return model.NewAppError("WRONG_PASSWORD", "Senha atual incorreta", "current_password", model.ErrInvalidInput)
		}

		return s.storeNewPassword(ctx, tx, user, req.NewPassword, logger)
	})
}

// SetFirstLoginPassword replaces the bootstrap password. It only works while
// the must-change flag is still set; afterwards ChangePassword is the path.
func (s *authService) SetFirstLoginPassword(ctx context.Context, username string, req *model.FirstLoginPasswordRequest) error {
	logger := middleware.GetLogger(ctx)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := s.userRepo.FindByUsername(ctx, tx, username)
		if err != nil {
			return s.mapLookupError(ctx, err)
		}

		if !user.MustChangePassword {
			return model.NewAppError("PASSWORD_CHANGE_NOT_REQUIRED", "Troca de senha não necessária", "", model.ErrInvalidInput)
		}

		return s.storeNewPassword(ctx, tx, user, req.NewPassword, logger)
	})
}

func (s *authService) storeNewPassword(ctx context.Context, tx *gorm.DB, user *model.User, newPassword string, logger *slog.Logger) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash password", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "Erro ao processar a senha.", "", err)
	}

	user.PasswordHash = string(hashed)
	user.PasswordChanged = true
	user.MustChangePassword = false
	if err := s.userRepo.Save(ctx, tx, user); err != nil {
		logger.Error("Failed to save new password", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "Ocorreu um erro interno no servidor.", "", err)
	}
	return nil
}

func (s *authService) Verify(ctx context.Context, username string) (*model.VerifyResponse, error) {
	user, err := s.findUser(ctx, username)
	if err != nil {
		return nil, err
	}
	return &model.VerifyResponse{
		Valid:              true,
		Username:           user.Username,
		MustChangePassword: user.MustChangePassword,
	}, nil
}

func (s *authService) findUser(ctx context.Context, username string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, s.db, username)
	if err != nil {
		return nil, s.mapLookupError(ctx, err)
	}
	return user, nil
}

func (s *authService) mapLookupError(ctx context.Context, err error) error {
	if errors.Is(err, model.ErrNotFound) {
		return model.NewAppError("USER_NOT_FOUND", "Usuário não encontrado", "", model.ErrUnauthorized)
	}
	middleware.GetLogger(ctx).Error("Failed to look up user", "error", err)
	return model.NewAppError("INTERNAL_SERVER_ERROR", "Ocorreu um erro interno no servidor.", "", err)
}
