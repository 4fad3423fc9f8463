// internal/service/method_service_test.go
package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"violin_study_plan/internal/model"
	"violin_study_plan/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMethodServiceForTest(t *testing.T) (MethodService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	svc := NewMethodService(db, repository.NewGormCatalogRepository(), fixedClock(t, "2026-03-10T12:00:00Z"))
	return svc, db
}

func createTestMethod(t *testing.T, svc MethodService, username string) string {
	t.Helper()
	resp, err := svc.CreateMethod(context.Background(), username, &model.CreateMethodRequest{
		Name:        "Sitt Op.32",
		Author:      "Hans Sitt",
		Category:    "Estudos",
		SessionType: "studies",
	})
	require.NoError(t, err)
	return resp.Method.ID
}

func Test_methodService_CreateMethod(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMethodServiceForTest(t)

	resp, err := svc.CreateMethod(ctx, "alice", &model.CreateMethodRequest{
		Name:        "Sitt Op.32",
		Author:      "Hans Sitt",
		SessionType: "studies",
	})
	require.NoError(t, err)
	assert.Equal(t, "Método criado com sucesso", resp.Message)
	assert.NotEmpty(t, resp.Method.ID)
	assert.True(t, resp.Method.IsCustom)
	assert.Equal(t, "studies", resp.Method.SessionType)
}

func Test_methodService_CreateMethod_InvalidSession(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMethodServiceForTest(t)

	for _, sessionType := range []string{"warmup", "unknown"} {
		_, err := svc.CreateMethod(ctx, "alice", &model.CreateMethodRequest{
			Name:        "X",
			Author:      "Y",
			SessionType: sessionType,
		})
		assert.ErrorIs(t, err, model.ErrInvalidInput, "session type %q", sessionType)
	}
}

func Test_methodService_UpdateMethod(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMethodServiceForTest(t)
	methodID := createTestMethod(t, svc, "alice")

	newName := "Sitt Op.32 Livro 1"
	require.NoError(t, svc.UpdateMethod(ctx, "alice", methodID, &model.UpdateMethodRequest{Name: &newName}))

	t.Run("empty patch is rejected", func(t *testing.T) {
		err := svc.UpdateMethod(ctx, "alice", methodID, &model.UpdateMethodRequest{})
		require.Error(t, err)
		var appErr *model.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "NO_FIELDS", appErr.Detail.Code)
	})

	t.Run("only the creator may update", func(t *testing.T) {
		err := svc.UpdateMethod(ctx, "bob", methodID, &model.UpdateMethodRequest{Name: &newName})
		assert.ErrorIs(t, err, model.ErrForbidden)
	})

	t.Run("seed method ids are not valid UUIDs", func(t *testing.T) {
		err := svc.UpdateMethod(ctx, "alice", "kreutzer", &model.UpdateMethodRequest{Name: &newName})
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("unknown method", func(t *testing.T) {
		err := svc.UpdateMethod(ctx, "alice", "6ba7b810-9dad-11d1-80b4-00c04fd430c8", &model.UpdateMethodRequest{Name: &newName})
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func Test_methodService_CreateLesson_OrderAssignment(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMethodServiceForTest(t)
	methodID := createTestMethod(t, svc, "alice")

	first, err := svc.CreateLesson(ctx, "alice", methodID, &model.CreateLessonRequest{Title: "Estudo 1"})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Lesson.Order)

	second, err := svc.CreateLesson(ctx, "alice", methodID, &model.CreateLessonRequest{Title: "Estudo 2"})
	require.NoError(t, err)
	assert.Equal(t, 2, second.Lesson.Order)
}

func Test_methodService_CreateLessonsBatch(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMethodServiceForTest(t)
	methodID := createTestMethod(t, svc, "alice")

	resp, err := svc.CreateLessonsBatch(ctx, "alice", methodID, &model.BatchLessonRequest{
		TitlePrefix: "Sitt nº",
		Count:       20,
		Level:       "Intermediário",
	})
	require.NoError(t, err)
	assert.Equal(t, 20, resp.Count)
	assert.Equal(t, "20 lições criadas com sucesso", resp.Message)

	lessons, err := svc.MethodLessons(ctx, methodID)
	require.NoError(t, err)
	require.Equal(t, 20, lessons.Total)
	for i, lesson := range lessons.Lessons {
		assert.Equal(t, fmt.Sprintf("Sitt nº %d", i+1), lesson.Title)
		assert.Equal(t, i+1, lesson.Order)
		assert.True(t, lesson.IsCustom)
	}
}

func Test_methodService_DeleteMethod_CascadesLessons(t *testing.T) {
	ctx := context.Background()
	svc, db := newMethodServiceForTest(t)
	methodID := createTestMethod(t, svc, "alice")

	_, err := svc.CreateLessonsBatch(ctx, "alice", methodID, &model.BatchLessonRequest{TitlePrefix: "Sitt nº", Count: 5})
	require.NoError(t, err)

	t.Run("non-owner cannot delete", func(t *testing.T) {
		err := svc.DeleteMethod(ctx, "bob", methodID)
		assert.ErrorIs(t, err, model.ErrForbidden)
	})

	require.NoError(t, svc.DeleteMethod(ctx, "alice", methodID))

	var lessonCount int64
	require.NoError(t, db.Model(&model.CustomLesson{}).Where("custom_method_id = ?", methodID).Count(&lessonCount).Error)
	assert.Zero(t, lessonCount)
}

func Test_methodService_UpdateAndDeleteLesson(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMethodServiceForTest(t)
	methodID := createTestMethod(t, svc, "alice")

	created, err := svc.CreateLesson(ctx, "alice", methodID, &model.CreateLessonRequest{Title: "Estudo 1"})
	require.NoError(t, err)
	lessonID := created.Lesson.ID

	newTitle := "Estudo 1 (revisado)"
	require.NoError(t, svc.UpdateLesson(ctx, "alice", lessonID, &model.UpdateLessonRequest{Title: &newTitle}))

	err = svc.UpdateLesson(ctx, "bob", lessonID, &model.UpdateLessonRequest{Title: &newTitle})
	assert.ErrorIs(t, err, model.ErrForbidden)

	err = svc.DeleteLesson(ctx, "bob", lessonID)
	assert.ErrorIs(t, err, model.ErrForbidden)

	require.NoError(t, svc.DeleteLesson(ctx, "alice", lessonID))

	err = svc.DeleteLesson(ctx, "alice", lessonID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func Test_methodService_ReorderLessons(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMethodServiceForTest(t)
	methodID := createTestMethod(t, svc, "alice")

	var ids []string
	for i := 1; i <= 3; i++ {
		created, err := svc.CreateLesson(ctx, "alice", methodID, &model.CreateLessonRequest{Title: fmt.Sprintf("Estudo %d", i)})
		require.NoError(t, err)
		ids = append(ids, created.Lesson.ID)
	}

	// Reverse the order; a foreign id in the list is skipped silently.
	require.NoError(t, svc.ReorderLessons(ctx, "alice", methodID, &model.ReorderLessonsRequest{
		LessonIDs: []string{ids[2], "6ba7b810-9dad-11d1-80b4-00c04fd430c8", ids[1], ids[0]},
	}))

	lessons, err := svc.MethodLessons(ctx, methodID)
	require.NoError(t, err)
	require.Equal(t, 3, lessons.Total)
	assert.Equal(t, ids[2], lessons.Lessons[0].ID)
	assert.Equal(t, ids[1], lessons.Lessons[1].ID)
	assert.Equal(t, ids[0], lessons.Lessons[2].ID)
}

func Test_methodService_MethodLessons_Seed(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMethodServiceForTest(t)

	resp, err := svc.MethodLessons(ctx, "kreutzer")
	require.NoError(t, err)
	assert.Equal(t, 42, resp.Total)
	for _, lesson := range resp.Lessons {
		assert.True(t, lesson.IsSeed)
		assert.Equal(t, "studies", lesson.SessionType)
		assert.Equal(t, "kreutzer", lesson.MethodID)
	}
}
