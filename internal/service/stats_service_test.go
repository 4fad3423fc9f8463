// internal/service/stats_service_test.go
package service

import (
	"context"
	"testing"

	"violin_study_plan/internal/model"
	"violin_study_plan/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newStatsServiceForTest(t *testing.T) (StatsService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	svc := NewStatsService(
		db,
		repository.NewGormProgressRepository(),
		repository.NewGormDailyLogRepository(),
		repository.NewGormCatalogRepository(),
		fixedClock(t, "2026-03-10T12:00:00Z"),
	)
	return svc, db
}

func Test_statsService_GetStats_NewUser(t *testing.T) {
	ctx := context.Background()
	svc, _ := newStatsServiceForTest(t)

	resp, err := svc.GetStats(ctx, "alice")
	require.NoError(t, err)

	assert.Equal(t, 493, resp.TotalLessons)
	assert.Equal(t, 0, resp.CompletedLessons)
	assert.Equal(t, 0.0, resp.CompletionPercentage)
	assert.Equal(t, "Iniciante", resp.Level)
	assert.Equal(t, 0, resp.PracticeDays)
	assert.Nil(t, resp.FirstPracticeDate)
	require.Len(t, resp.SessionProgress, 6)
	assert.Equal(t, SessionStat{Total: 48, Completed: 0, Current: 1}, resp.SessionProgress["scales"])
}

func Test_statsService_GetStats_LevelFromStudiesOnly(t *testing.T) {
	ctx := context.Background()
	svc, db := newStatsServiceForTest(t)
	repo := repository.NewGormProgressRepository()

	// 60 completed études puts the player into the Kayser bracket; completed
	// scales never move the level.
	studies := model.NewSessionProgress("alice", "studies")
	for i := 1; i <= 60; i++ {
		studies.CompletedLessons = append(studies.CompletedLessons, i)
	}
	studies.CurrentLesson = 61
	require.NoError(t, repo.SaveSession(ctx, db, studies))

	scales := model.NewSessionProgress("alice", "scales")
	for i := 1; i <= 48; i++ {
		scales.CompletedLessons = append(scales.CompletedLessons, i)
	}
	require.NoError(t, repo.SaveSession(ctx, db, scales))

	resp, err := svc.GetStats(ctx, "alice")
	require.NoError(t, err)

	assert.Equal(t, 60, resp.StudiesCompleted)
	assert.Equal(t, "Iniciante–Intermediário", resp.Level)
	assert.Equal(t, "Kayser", resp.LevelInfo.MethodRange)
	require.NotNil(t, resp.LevelInfo.NextThreshold)
	assert.Equal(t, 96, *resp.LevelInfo.NextThreshold)

	assert.Equal(t, 108, resp.CompletedLessons)
	// 108/493 rounded to one decimal.
	assert.InDelta(t, 21.9, resp.CompletionPercentage, 0.001)
}

func Test_statsService_GetStats_TotalTime(t *testing.T) {
	ctx := context.Background()
	svc, db := newStatsServiceForTest(t)
	logRepo := repository.NewGormDailyLogRepository()

	for _, entry := range []struct {
		date string
		sec  int
	}{
		{"2026-03-08", 1800},
		{"2026-03-09", 3600},
	} {
		log := &model.DailyLog{
			Username:          "alice",
			Date:              entry.date,
			Studied:           true,
			SessionsPracticed: model.StringSlice{"scales"},
			SessionTimes:      model.StringIntMap{"scales": entry.sec},
		}
		log.RecomputeTotal()
		require.NoError(t, logRepo.Save(ctx, db, log))
	}

	resp, err := svc.GetStats(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 5400, resp.TotalPracticeTimeSec)
}

func Test_statsService_GetCalendar(t *testing.T) {
	ctx := context.Background()
	svc, db := newStatsServiceForTest(t)

	progressRepo := repository.NewGormProgressRepository()
	first := "2026-03-08"
	userProgress := &model.UserProgress{
		Username:          "alice",
		PracticeDates:     model.StringSlice{"2026-03-08", "2026-03-09"},
		FirstPracticeDate: &first,
	}
	require.NoError(t, progressRepo.SaveUserProgress(ctx, db, userProgress))

	log := &model.DailyLog{
		Username:          "alice",
		Date:              "2026-03-09",
		Studied:           true,
		SessionsPracticed: model.StringSlice{"scales", "bow"},
		SessionTimes:      model.StringIntMap{"scales": 600, "bow": 300},
	}
	log.RecomputeTotal()
	require.NoError(t, repository.NewGormDailyLogRepository().Save(ctx, db, log))

	resp, err := svc.GetCalendar(ctx, "alice")
	require.NoError(t, err)

	assert.Equal(t, 2, resp.TotalDays)
	require.Len(t, resp.CalendarData, 2)

	// A practiced day without a log still appears, just with no detail.
	assert.Equal(t, CalendarDay{Date: "2026-03-08", Studied: true}, resp.CalendarData[0])
	assert.Equal(t, CalendarDay{Date: "2026-03-09", Studied: true, TotalTimeSec: 900, SessionsCount: 2}, resp.CalendarData[1])
}

func Test_statsService_GetCalendar_NewUser(t *testing.T) {
	ctx := context.Background()
	svc, _ := newStatsServiceForTest(t)

	resp, err := svc.GetCalendar(ctx, "nobody")
	require.NoError(t, err)
	assert.Equal(t, 0, resp.TotalDays)
	assert.Empty(t, resp.CalendarData)
}
