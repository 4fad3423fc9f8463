// internal/service/settings_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"violin_study_plan/internal/catalog"
	"violin_study_plan/internal/middleware"
	"violin_study_plan/internal/model"
	"violin_study_plan/internal/repository"

	"gorm.io/gorm"
)

// hourBudgetSec is the fixed daily practice hour the durations must fill.
const hourBudgetSec = 3600

type SettingsService interface {
	GetSettings(ctx context.Context) (*model.SettingsResponse, error)
	UpdateSessionDurations(ctx context.Context, req *model.UpdateSessionDurationsRequest) error
}

type settingsService struct {
	db           *gorm.DB
	settingsRepo repository.SettingsRepository
	clock        Clock
}

func NewSettingsService(db *gorm.DB, settingsRepo repository.SettingsRepository, clock Clock) SettingsService {
	if clock == nil {
		clock = time.Now
	}
	return &settingsService{db: db, settingsRepo: settingsRepo, clock: clock}
}

// ensureSettings loads the settings singleton, creating it with the catalog's
// default durations on first touch.
func ensureSettings(ctx context.Context, tx *gorm.DB, repo repository.SettingsRepository, clock Clock) (*model.AppSettings, error) {
	settings, err := repo.Get(ctx, tx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}

	durations := model.StringIntMap{}
	for _, sessionType := range catalog.SessionTypes() {
		durations[sessionType.ID] = sessionType.DefaultDurationSec
	}
	settings = &model.AppSettings{
		ID:               model.SettingsID,
		StartDate:        clock().UTC().Format(time.RFC3339),
		SessionDurations: durations,
		Theme:            "dark",
		AccentColor:      "#d4a843",
	}
	if err := repo.Save(ctx, tx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *settingsService) GetSettings(ctx context.Context) (*model.SettingsResponse, error) {
	logger := middleware.GetLogger(ctx)

	var settings *model.AppSettings
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		settings, err = ensureSettings(ctx, tx, s.settingsRepo, s.clock)
		if err != nil {
			logger.Error("Failed to load settings", "error", err)
			return internalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &model.SettingsResponse{Settings: settings}, nil
}

// UpdateSessionDurations replaces the duration map. The durations must sum to
// exactly one hour; anything else is rejected, never clamped.
func (s *settingsService) UpdateSessionDurations(ctx context.Context, req *model.UpdateSessionDurationsRequest) error {
	logger := middleware.GetLogger(ctx)

	totalSec := 0
	for _, sec := range req.Durations {
		totalSec += sec
	}
	if totalSec != hourBudgetSec {
		return model.NewAppError(
			"INVALID_DURATIONS",
			fmt.Sprintf("O total deve ser 60 minutos (3600 segundos). Atual: %d segundos", totalSec),
			"durations",
			model.ErrInvalidInput,
		)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		settings, err := ensureSettings(ctx, tx, s.settingsRepo, s.clock)
		if err != nil {
			logger.Error("Failed to load settings", "error", err)
			return internalError(err)
		}

		settings.SessionDurations = model.StringIntMap(req.Durations)
		if err := s.settingsRepo.Save(ctx, tx, settings); err != nil {
			logger.Error("Failed to save settings", "error", err)
			return internalError(err)
		}
		return nil
	})
}
