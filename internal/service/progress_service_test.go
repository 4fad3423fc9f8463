// internal/service/progress_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"violin_study_plan/internal/model"
	"violin_study_plan/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProgressServiceForTest(t *testing.T) (ProgressService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	clock := fixedClock(t, "2026-03-10T12:00:00Z")
	svc := NewProgressService(
		db,
		repository.NewGormProgressRepository(),
		repository.NewGormWarmupRepository(),
		repository.NewGormDailyLogRepository(),
		repository.NewGormCatalogRepository(),
		repository.NewGormActivityRepository(),
		clock,
	)
	return svc, db
}

func Test_progressService_GetProgress_NewUser(t *testing.T) {
	ctx := context.Background()
	svc, _ := newProgressServiceForTest(t)

	resp, err := svc.GetProgress(ctx, "alice")
	require.NoError(t, err)

	require.Len(t, resp.Sessions, 6)
	for _, sessionType := range []string{"scales", "bow", "speed", "positions", "studies", "repertoire"} {
		session, ok := resp.Sessions[sessionType]
		require.True(t, ok, "missing session %s", sessionType)
		assert.Equal(t, 1, session.CurrentLesson)
		assert.Empty(t, session.CompletedLessons)
	}
	assert.Nil(t, resp.WarmupToday)
	assert.Empty(t, resp.PracticeDates)
	assert.Nil(t, resp.FirstPracticeDate)
}

func Test_progressService_LogPractice(t *testing.T) {
	ctx := context.Background()
	svc, _ := newProgressServiceForTest(t)

	req := &model.PracticeLogRequest{SessionType: "scales", LessonID: 3}

	resp, err := svc.LogPractice(ctx, "alice", req)
	require.NoError(t, err)
	assert.Equal(t, "Prática registrada", resp.Message)
	assert.Equal(t, 1, resp.PracticeCount)
	assert.Equal(t, "2026-03-10", resp.Date)

	// Repeating the same lesson bumps the count but not the date set.
	resp, err = svc.LogPractice(ctx, "alice", req)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.PracticeCount)

	progress, err := svc.GetProgress(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, model.StringSlice{"2026-03-10"}, progress.PracticeDates)
	require.NotNil(t, progress.FirstPracticeDate)
	assert.Equal(t, "2026-03-10", *progress.FirstPracticeDate)
	assert.Equal(t, "2026-03-10", progress.Sessions["scales"].LastPracticed[3])
}

func Test_progressService_LogPractice_InvalidSession(t *testing.T) {
	ctx := context.Background()
	svc, _ := newProgressServiceForTest(t)

	_, err := svc.LogPractice(ctx, "alice", &model.PracticeLogRequest{SessionType: "warmup", LessonID: 1})
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	_, err = svc.LogPractice(ctx, "alice", &model.PracticeLogRequest{SessionType: "nope", LessonID: 1})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func Test_progressService_AdvanceLesson(t *testing.T) {
	ctx := context.Background()
	svc, db := newProgressServiceForTest(t)

	t.Run("next marks the left lesson completed", func(t *testing.T) {
		resp, err := svc.AdvanceLesson(ctx, "alice", &model.AdvanceLessonRequest{SessionType: "scales", Direction: "next"})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.CurrentLesson)
		assert.Equal(t, 48, resp.TotalLessons)
		assert.Equal(t, 1, resp.CompletedCount)
		assert.Equal(t, "Agora na lição 2", resp.Message)
	})

	t.Run("previous at the start is a no-op", func(t *testing.T) {
		resp, err := svc.AdvanceLesson(ctx, "bob", &model.AdvanceLessonRequest{SessionType: "scales", Direction: "previous"})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.CurrentLesson)
		assert.Equal(t, 0, resp.CompletedCount)
	})

	t.Run("next at the end is a no-op", func(t *testing.T) {
		session := model.NewSessionProgress("carol", "scales")
		session.CurrentLesson = 48
		repo := repository.NewGormProgressRepository()
		require.NoError(t, repo.SaveSession(ctx, db, session))

		resp, err := svc.AdvanceLesson(ctx, "carol", &model.AdvanceLessonRequest{SessionType: "scales", Direction: "next"})
		require.NoError(t, err)
		assert.Equal(t, 48, resp.CurrentLesson)
		assert.Equal(t, 0, resp.CompletedCount)
	})

	t.Run("walking the whole session completes everything but the last lesson", func(t *testing.T) {
		req := &model.AdvanceLessonRequest{SessionType: "scales", Direction: "next"}
		var resp *model.AdvanceLessonResponse
		var err error
		for i := 0; i < 48; i++ {
			resp, err = svc.AdvanceLesson(ctx, "erin", req)
			require.NoError(t, err)
		}
		assert.Equal(t, 48, resp.CurrentLesson)
		assert.Equal(t, 47, resp.CompletedCount)

		repo := repository.NewGormProgressRepository()
		session, err := repo.GetSession(ctx, db, "erin", "scales")
		require.NoError(t, err)
		require.Len(t, session.CompletedLessons, 47)
		for i, id := range session.CompletedLessons {
			assert.Equal(t, i+1, id)
		}
	})

	t.Run("advancing twice over one lesson does not duplicate it", func(t *testing.T) {
		req := &model.AdvanceLessonRequest{SessionType: "bow", Direction: "next"}
		_, err := svc.AdvanceLesson(ctx, "dave", req)
		require.NoError(t, err)
		_, err = svc.AdvanceLesson(ctx, "dave", &model.AdvanceLessonRequest{SessionType: "bow", Direction: "previous"})
		require.NoError(t, err)

		resp, err := svc.AdvanceLesson(ctx, "dave", req)
		require.NoError(t, err)
		assert.Equal(t, 2, resp.CurrentLesson)
		assert.Equal(t, 1, resp.CompletedCount)
	})
}

func Test_progressService_JumpToLesson(t *testing.T) {
	ctx := context.Background()
	svc, db := newProgressServiceForTest(t)

	resp, err := svc.JumpToLesson(ctx, "alice", &model.JumpToLessonRequest{SessionType: "studies", LessonID: 150})
	require.NoError(t, err)
	assert.Equal(t, 150, resp.CurrentLesson)
	assert.Equal(t, "Pulou para lição 150", resp.Message)

	// The jump is audited.
	entries, err := repository.NewGormActivityRepository().ListByUser(ctx, db, "alice", 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "jump_to_lesson", entries[0].Action)
	assert.Equal(t, "studies", entries[0].SessionType)
	assert.Equal(t, 150, entries[0].LessonID)
}

func Test_progressService_JumpToLesson_OutOfRange(t *testing.T) {
	ctx := context.Background()
	svc, _ := newProgressServiceForTest(t)

	tests := []struct {
		name     string
		lessonID int
	}{
		{name: "zero", lessonID: 0},
		{name: "negative", lessonID: -3},
		{name: "past the end", lessonID: 49},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.JumpToLesson(ctx, "alice", &model.JumpToLessonRequest{SessionType: "scales", LessonID: tt.lessonID})
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrInvalidInput)
			var appErr *model.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "INVALID_LESSON_ID", appErr.Detail.Code)
		})
	}
}

func Test_progressService_UpdateNotes(t *testing.T) {
	ctx := context.Background()
	svc, _ := newProgressServiceForTest(t)

	err := svc.UpdateNotes(ctx, "alice", &model.UpdateNotesRequest{SessionType: "scales", LessonID: 5, Notes: "intonation needs work"})
	require.NoError(t, err)

	progress, err := svc.GetProgress(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "intonation needs work", progress.Sessions["scales"].Notes[5])
}

func Test_progressService_CheckWarmupItem(t *testing.T) {
	ctx := context.Background()
	svc, db := newProgressServiceForTest(t)

	resp, err := svc.CheckWarmupItem(ctx, "alice", &model.WarmupCheckRequest{ItemID: 2, Completed: true})
	require.NoError(t, err)
	require.Len(t, resp.Checklist, 6)
	assert.True(t, resp.Checklist[1].Completed)
	assert.False(t, resp.Checklist[0].Completed)

	// The day counts as practiced and the daily log is touched as warmup.
	log, err := repository.NewGormDailyLogRepository().Get(ctx, db, "alice", "2026-03-10")
	require.NoError(t, err)
	assert.True(t, log.Studied)
	assert.Equal(t, model.StringSlice{"warmup"}, log.SessionsPracticed)
	assert.Equal(t, 0, log.TotalTimeSec)
}

func Test_progressService_CheckWarmupItem_UnknownItem(t *testing.T) {
	ctx := context.Background()
	svc, _ := newProgressServiceForTest(t)

	// An unknown item id leaves the checklist unchanged but still succeeds.
	resp, err := svc.CheckWarmupItem(ctx, "alice", &model.WarmupCheckRequest{ItemID: 99, Completed: true})
	require.NoError(t, err)
	for _, item := range resp.Checklist {
		assert.False(t, item.Completed)
	}
}

func Test_progressService_CheckWarmupItem_StatePersistsWithinDay(t *testing.T) {
	ctx := context.Background()
	svc, _ := newProgressServiceForTest(t)

	_, err := svc.CheckWarmupItem(ctx, "alice", &model.WarmupCheckRequest{ItemID: 1, Completed: true})
	require.NoError(t, err)
	resp, err := svc.CheckWarmupItem(ctx, "alice", &model.WarmupCheckRequest{ItemID: 3, Completed: true})
	require.NoError(t, err)

	assert.True(t, resp.Checklist[0].Completed)
	assert.True(t, resp.Checklist[2].Completed)
	assert.False(t, resp.Checklist[1].Completed)

	progress, err := svc.GetProgress(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, progress.WarmupToday)
	assert.Equal(t, "2026-03-10", progress.WarmupToday.Date)
}
