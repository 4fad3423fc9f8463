// internal/service/daily_log_service.go
package service

import (
	"context"
	"errors"
	"time"

	"violin_study_plan/internal/middleware"
	"violin_study_plan/internal/model"
	"violin_study_plan/internal/repository"

	"gorm.io/gorm"
)

type DailyLogService interface {
	ListLogs(ctx context.Context, username string, limit int) (*model.DailyLogsResponse, error)
	GetLog(ctx context.Context, username, date string) (*model.DailyLogResponse, error)
	UpdateNotes(ctx context.Context, username, date string, req *model.DailyNotesRequest) error
	LogTime(ctx context.Context, username string, req *model.LogTimeRequest) error
}

type dailyLogService struct {
	db           *gorm.DB
	dailyLogRepo repository.DailyLogRepository
	clock        Clock
}

func NewDailyLogService(db *gorm.DB, dailyLogRepo repository.DailyLogRepository, clock Clock) DailyLogService {
	if clock == nil {
		clock = time.Now
	}
	return &dailyLogService{db: db, dailyLogRepo: dailyLogRepo, clock: clock}
}

// touchDailyLog marks the day as studied, adds the session to the practiced
// set, accumulates time and recomputes the total. It creates the day's log on
// first touch.
func touchDailyLog(ctx context.Context, tx *gorm.DB, repo repository.DailyLogRepository, username, date, sessionType string, timeSec int, now time.Time) error {
	log, err := repo.Get(ctx, tx, username, date)
	if errors.Is(err, model.ErrNotFound) {
		log = &model.DailyLog{
			Username:          username,
			Date:              date,
			SessionsPracticed: model.StringSlice{},
			SessionTimes:      model.StringIntMap{},
			CreatedAt:         now,
		}
	} else if err != nil {
		return err
	}

	log.Studied = true
	if !log.SessionsPracticed.Contains(sessionType) {
		log.SessionsPracticed = append(log.SessionsPracticed, sessionType)
	}
	log.SessionTimes[sessionType] += timeSec
	log.RecomputeTotal()

	return repo.Save(ctx, tx, log)
}

func (s *dailyLogService) ListLogs(ctx context.Context, username string, limit int) (*model.DailyLogsResponse, error) {
	logger := middleware.GetLogger(ctx)

	logs, err := s.dailyLogRepo.ListByUser(ctx, s.db, username)
	if err != nil {
		logger.Error("Failed to list daily logs", "error", err)
		return nil, internalError(err)
	}
	if limit > 0 && len(logs) > limit {
		logs = logs[:limit]
	}
	return &model.DailyLogsResponse{Logs: logs}, nil
}

func (s *dailyLogService) GetLog(ctx context.Context, username, date string) (*model.DailyLogResponse, error) {
	logger := middleware.GetLogger(ctx)

	log, err := s.dailyLogRepo.Get(ctx, s.db, username, date)
	if errors.Is(err, model.ErrNotFound) {
		return &model.DailyLogResponse{Log: nil}, nil
	}
	if err != nil {
		logger.Error("Failed to load daily log", "error", err)
		return nil, internalError(err)
	}
	return &model.DailyLogResponse{Log: log}, nil
}

// UpdateNotes writes free-form notes for a day, creating a not-studied log if
// the day has none. Notes alone never mark a day as studied.
func (s *dailyLogService) UpdateNotes(ctx context.Context, username, date string, req *model.DailyNotesRequest) error {
	logger := middleware.GetLogger(ctx)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		log, err := s.dailyLogRepo.Get(ctx, tx, username, date)
		if errors.Is(err, model.ErrNotFound) {
			log = &model.DailyLog{
				Username:          username,
				Date:              date,
				Studied:           false,
				SessionsPracticed: model.StringSlice{},
				SessionTimes:      model.StringIntMap{},
				CreatedAt:         s.clock().UTC(),
			}
		} else if err != nil {
			logger.Error("Failed to load daily log", "error", err)
			return internalError(err)
		}

		log.Notes = req.Notes
		if err := s.dailyLogRepo.Save(ctx, tx, log); err != nil {
			logger.Error("Failed to save daily log", "error", err)
			return internalError(err)
		}
		return nil
	})
}

func (s *dailyLogService) LogTime(ctx context.Context, username string, req *model.LogTimeRequest) error {
	logger := middleware.GetLogger(ctx)
	today := todayString(s.clock)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := touchDailyLog(ctx, tx, s.dailyLogRepo, username, today, req.SessionType, req.TimeSec, s.clock().UTC()); err != nil {
			logger.Error("Failed to update daily log", "error", err)
			return internalError(err)
		}
		return nil
	})
}
