// internal/service/daily_log_service_test.go
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

func newDailyLogServiceForTest(t *testing.T) (DailyLogService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	svc := NewDailyLogService(db, repository.NewGormDailyLogRepository(), fixedClock(t, "2026-03-10T12:00:00Z"))
	return svc, db
}

func Test_dailyLogService_LogTime(t *testing.T) {
	ctx := context.Background()
	svc, _ := newDailyLogServiceForTest(t)

	require.NoError(t, svc.LogTime(ctx, "alice", &model.LogTimeRequest{SessionType: "scales", TimeSec: 300}))
	require.NoError(t, svc.LogTime(ctx, "alice", &model.LogTimeRequest{SessionType: "scales", TimeSec: 120}))
	require.NoError(t, svc.LogTime(ctx, "alice", &model.LogTimeRequest{SessionType: "bow", TimeSec: 600}))

	resp, err := svc.GetLog(ctx, "alice", "2026-03-10")
	require.NoError(t, err)
	require.NotNil(t, resp.Log)

	log := resp.Log
	assert.True(t, log.Studied)
	assert.Equal(t, model.StringSlice{"scales", "bow"}, log.SessionsPracticed)
	assert.Equal(t, 420, log.SessionTimes["scales"])
	assert.Equal(t, 600, log.SessionTimes["bow"])
	// The total is always the sum over the per-session map.
	assert.Equal(t, 1020, log.TotalTimeSec)
}

func Test_dailyLogService_GetLog_Missing(t *testing.T) {
	ctx := context.Background()
	svc, _ := newDailyLogServiceForTest(t)

	resp, err := svc.GetLog(ctx, "alice", "2026-01-01")
	require.NoError(t, err)
	assert.Nil(t, resp.Log)
}

func Test_dailyLogService_UpdateNotes_CreatesNonStudiedLog(t *testing.T) {
	ctx := context.Background()
	svc, _ := newDailyLogServiceForTest(t)

	notes := "listened to recordings only"
	require.NoError(t, svc.UpdateNotes(ctx, "alice", "2026-03-09", &model.DailyNotesRequest{Notes: &notes}))

	resp, err := svc.GetLog(ctx, "alice", "2026-03-09")
	require.NoError(t, err)
	require.NotNil(t, resp.Log)
	assert.False(t, resp.Log.Studied, "notes alone never mark a day as studied")
	require.NotNil(t, resp.Log.Notes)
	assert.Equal(t, notes, *resp.Log.Notes)
	assert.Equal(t, 0, resp.Log.TotalTimeSec)
}

func Test_dailyLogService_UpdateNotes_KeepsExistingLog(t *testing.T) {
	ctx := context.Background()
	svc, _ := newDailyLogServiceForTest(t)

	require.NoError(t, svc.LogTime(ctx, "alice", &model.LogTimeRequest{SessionType: "studies", TimeSec: 900}))

	notes := "Kreutzer 2 finally even"
	require.NoError(t, svc.UpdateNotes(ctx, "alice", "2026-03-10", &model.DailyNotesRequest{Notes: &notes}))

	resp, err := svc.GetLog(ctx, "alice", "2026-03-10")
	require.NoError(t, err)
	require.NotNil(t, resp.Log)
	assert.True(t, resp.Log.Studied)
	assert.Equal(t, 900, resp.Log.TotalTimeSec)
	require.NotNil(t, resp.Log.Notes)
	assert.Equal(t, notes, *resp.Log.Notes)
}

func Test_dailyLogService_ListLogs(t *testing.T) {
	ctx := context.Background()
	svc, db := newDailyLogServiceForTest(t)

	repo := repository.NewGormDailyLogRepository()
	for _, date := range []string{"2026-03-07", "2026-03-08", "2026-03-09", "2026-03-10"} {
		log := &model.DailyLog{
			Username:          "alice",
			Date:              date,
			Studied:           true,
			SessionsPracticed: model.StringSlice{"scales"},
			SessionTimes:      model.StringIntMap{"scales": 300},
		}
		log.RecomputeTotal()
		require.NoError(t, repo.Save(ctx, db, log))
	}

	resp, err := svc.ListLogs(ctx, "alice", 2)
	require.NoError(t, err)
	require.Len(t, resp.Logs, 2)
	// Newest first.
	assert.Equal(t, "2026-03-10", resp.Logs[0].Date)
	assert.Equal(t, "2026-03-09", resp.Logs[1].Date)
}
