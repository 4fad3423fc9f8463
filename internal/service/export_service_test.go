// internal/service/export_service_test.go
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

type exportFixture struct {
	export   ExportService
	progress ProgressService
	dailyLog DailyLogService
	settings SettingsService
	db       *gorm.DB
}

func newExportFixture(t *testing.T) exportFixture {
	t.Helper()
	db := setupTestDB(t)
	clock := fixedClock(t, "2026-03-10T12:00:00Z")

	userRepo := repository.NewGormUserRepository()
	progressRepo := repository.NewGormProgressRepository()
	warmupRepo := repository.NewGormWarmupRepository()
	dailyLogRepo := repository.NewGormDailyLogRepository()
	settingsRepo := repository.NewGormSettingsRepository()
	catalogRepo := repository.NewGormCatalogRepository()
	activityRepo := repository.NewGormActivityRepository()

	return exportFixture{
		export:   NewExportService(db, userRepo, progressRepo, warmupRepo, dailyLogRepo, settingsRepo, activityRepo, clock),
		progress: NewProgressService(db, progressRepo, warmupRepo, dailyLogRepo, catalogRepo, activityRepo, clock),
		dailyLog: NewDailyLogService(db, dailyLogRepo, clock),
		settings: NewSettingsService(db, settingsRepo, clock),
		db:       db,
	}
}

func Test_exportService_Export_EmptyUser(t *testing.T) {
	ctx := context.Background()
	f := newExportFixture(t)

	resp, err := f.export.Export(ctx, "alice")
	require.NoError(t, err)

	assert.Equal(t, "2.0", resp.Version)
	assert.Equal(t, "2026-03-10T12:00:00Z", resp.ExportedAt)
	assert.Nil(t, resp.Data.Progress)
	assert.Empty(t, resp.Data.Warmups)
	assert.Empty(t, resp.Data.DailyLogs)
	assert.Nil(t, resp.Data.Settings)
	assert.Nil(t, resp.Data.User)
}

func Test_exportService_RoundTrip(t *testing.T) {
	ctx := context.Background()
	f := newExportFixture(t)

	// Build some real state through the services.
	_, err := f.progress.LogPractice(ctx, "alice", &model.PracticeLogRequest{SessionType: "studies", LessonID: 7})
	require.NoError(t, err)
	_, err = f.progress.AdvanceLesson(ctx, "alice", &model.AdvanceLessonRequest{SessionType: "studies", Direction: "next"})
	require.NoError(t, err)
	_, err = f.progress.CheckWarmupItem(ctx, "alice", &model.WarmupCheckRequest{ItemID: 1, Completed: true})
	require.NoError(t, err)
	require.NoError(t, f.dailyLog.LogTime(ctx, "alice", &model.LogTimeRequest{SessionType: "studies", TimeSec: 600}))

	exported, err := f.export.Export(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, exported.Data.Progress)
	require.Len(t, exported.Data.Warmups, 1)
	require.Len(t, exported.Data.DailyLogs, 1)

	// Wipe everything, then import the snapshot back.
	require.NoError(t, f.export.Reset(ctx, "alice"))

	afterReset, err := f.progress.GetProgress(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, afterReset.Sessions["studies"].CurrentLesson)
	assert.Empty(t, afterReset.PracticeDates)

	require.NoError(t, f.export.Import(ctx, "alice", &model.ImportDataRequest{Data: exported.Data}))

	restored, err := f.progress.GetProgress(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 2, restored.Sessions["studies"].CurrentLesson)
	assert.Equal(t, model.IntSlice{1}, restored.Sessions["studies"].CompletedLessons)
	assert.Equal(t, 1, restored.Sessions["studies"].PracticeCounts[7])
	assert.Equal(t, model.StringSlice{"2026-03-10"}, restored.PracticeDates)
	require.NotNil(t, restored.WarmupToday)
	assert.True(t, restored.WarmupToday.Checklist[0].Completed)
}

func Test_exportService_PreviewImport(t *testing.T) {
	ctx := context.Background()
	f := newExportFixture(t)

	_, err := f.progress.AdvanceLesson(ctx, "alice", &model.AdvanceLessonRequest{SessionType: "scales", Direction: "next"})
	require.NoError(t, err)
	_, err = f.progress.AdvanceLesson(ctx, "alice", &model.AdvanceLessonRequest{SessionType: "scales", Direction: "next"})
	require.NoError(t, err)

	exported, err := f.export.Export(ctx, "alice")
	require.NoError(t, err)

	preview, err := f.export.PreviewImport(ctx, "alice", &model.ImportDataRequest{Data: exported.Data})
	require.NoError(t, err)

	assert.True(t, preview.Valid)
	assert.Equal(t, true, preview.Summary["has_progress"])
	assert.Equal(t, 0, preview.Summary["warmups_count"])
	require.Len(t, preview.Warnings, 1)
	assert.Equal(t, "Você tem 2 lições concluídas que serão substituídas", preview.Warnings[0])
}

func Test_exportService_PreviewImport_NoWarningsForFreshUser(t *testing.T) {
	ctx := context.Background()
	f := newExportFixture(t)

	preview, err := f.export.PreviewImport(ctx, "alice", &model.ImportDataRequest{Data: model.ExportData{}})
	require.NoError(t, err)

	assert.True(t, preview.Valid)
	assert.Equal(t, false, preview.Summary["has_progress"])
	assert.Empty(t, preview.Warnings)
}

func Test_exportService_Import_PartialSections(t *testing.T) {
	ctx := context.Background()
	f := newExportFixture(t)

	// Existing progress must survive an import that carries none.
	_, err := f.progress.LogPractice(ctx, "alice", &model.PracticeLogRequest{SessionType: "bow", LessonID: 2})
	require.NoError(t, err)

	imported := model.ExportData{
		DailyLogs: []model.DailyLog{
			{
				Date:              "2026-02-01",
				Studied:           true,
				SessionsPracticed: model.StringSlice{"scales"},
				SessionTimes:      model.StringIntMap{"scales": 500},
				// A stale stored total must be recomputed on the way in.
				TotalTimeSec: 9999,
			},
		},
	}
	require.NoError(t, f.export.Import(ctx, "alice", &model.ImportDataRequest{Data: imported}))

	progress, err := f.progress.GetProgress(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, progress.Sessions["bow"].PracticeCounts[2])

	logResp, err := f.dailyLog.GetLog(ctx, "alice", "2026-02-01")
	require.NoError(t, err)
	require.NotNil(t, logResp.Log)
	assert.Equal(t, 500, logResp.Log.TotalTimeSec)
}

func Test_exportService_Reset(t *testing.T) {
	ctx := context.Background()
	f := newExportFixture(t)

	_, err := f.progress.JumpToLesson(ctx, "alice", &model.JumpToLessonRequest{SessionType: "studies", LessonID: 100})
	require.NoError(t, err)
	_, err = f.progress.CheckWarmupItem(ctx, "alice", &model.WarmupCheckRequest{ItemID: 1, Completed: true})
	require.NoError(t, err)

	require.NoError(t, f.export.Reset(ctx, "alice"))

	progress, err := f.progress.GetProgress(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, progress.Sessions["studies"].CurrentLesson)
	assert.Empty(t, progress.PracticeDates)
	assert.Nil(t, progress.WarmupToday)

	entries, err := repository.NewGormActivityRepository().ListByUser(ctx, f.db, "alice", 10)
	require.NoError(t, err)
	assert.Empty(t, entries, "the activity log is cleared on reset")
}
