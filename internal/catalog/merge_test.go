// internal/catalog/merge_test.go
package catalog

import (
	"testing"

	"violin_study_plan/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_MergeLessons(t *testing.T) {
	custom := []model.CustomLesson{
		{ID: "11111111-1111-4111-8111-111111111111", CustomMethodID: "m1", SessionType: "scales", Title: "Galamian tripla", Order: 1, Tags: model.StringSlice{"arpejos"}},
		{ID: "22222222-2222-4222-8222-222222222222", CustomMethodID: "m1", SessionType: "scales", Title: "Galamian quádrupla", Order: 2},
		// An off-session lesson in the slice is skipped entirely.
		{ID: "33333333-3333-4333-8333-333333333333", CustomMethodID: "m2", SessionType: "studies", Title: "Sitt nº 1", Order: 1},
	}

	merged := MergeLessons("scales", custom)
	require.Len(t, merged, 50)

	// The seed block is untouched and keeps its ids.
	for i := 0; i < 48; i++ {
		assert.Equal(t, i+1, merged[i].ID)
		assert.False(t, merged[i].IsCustom)
	}

	// Custom entries continue the numbering right after the seed block.
	assert.Equal(t, 49, merged[48].ID)
	assert.Equal(t, "11111111-1111-4111-8111-111111111111", merged[48].CustomLessonID)
	assert.Equal(t, 50, merged[49].ID)
	assert.Equal(t, "Galamian quádrupla", merged[49].Title)
	for _, lesson := range merged[48:] {
		assert.True(t, lesson.IsCustom)
		assert.Equal(t, "m1", lesson.CustomMethodID)
	}

	// No id appears twice; customs can never shadow a seed lesson.
	seen := make(map[int]bool, len(merged))
	for _, lesson := range merged {
		require.False(t, seen[lesson.ID], "duplicate lesson id %d", lesson.ID)
		seen[lesson.ID] = true
	}
}

func Test_MergeLessons_NoCustom(t *testing.T) {
	merged := MergeLessons("bow", nil)
	assert.Len(t, merged, 43)
	for i, lesson := range merged {
		assert.Equal(t, i+1, lesson.ID)
	}
}

func Test_MergeLessons_Deterministic(t *testing.T) {
	custom := []model.CustomLesson{
		{ID: "11111111-1111-4111-8111-111111111111", CustomMethodID: "m1", SessionType: "repertoire", Title: "Meditação de Thaïs", Order: 1},
	}

	first := MergeLessons("repertoire", custom)
	second := MergeLessons("repertoire", custom)
	assert.Equal(t, first, second)
}

func Test_MergeMethods(t *testing.T) {
	custom := []model.CustomMethod{
		{ID: "44444444-4444-4444-8444-444444444444", Name: "Sitt Op.32", Author: "Hans Sitt", SessionType: "studies"},
	}

	merged := MergeMethods(custom)
	require.Len(t, merged, 17)

	for _, m := range merged[:16] {
		assert.True(t, m.IsSeed)
		assert.False(t, m.IsCustom)
	}

	last := merged[16]
	assert.True(t, last.IsCustom)
	assert.False(t, last.IsSeed)
	assert.Equal(t, "Sitt Op.32", last.Name)
	assert.Equal(t, "studies", last.SessionType)
}
