// internal/catalog/catalog_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SessionTypes(t *testing.T) {
	sessions := SessionTypes()
	require.Len(t, sessions, 7)

	assert.Equal(t, "warmup", sessions[0].ID)
	assert.Equal(t, KindChecklist, sessions[0].Kind)

	totalSec := 0
	for _, s := range sessions {
		totalSec += s.DefaultDurationSec
	}
	assert.Equal(t, 3600, totalSec, "default durations must fill the practice hour")
}

func Test_ProgressiveSessionIDs(t *testing.T) {
	ids := ProgressiveSessionIDs()
	assert.Equal(t, []string{"scales", "bow", "speed", "positions", "studies", "repertoire"}, ids)

	assert.True(t, IsProgressiveSession("studies"))
	assert.False(t, IsProgressiveSession("warmup"))
	assert.False(t, IsProgressiveSession("nope"))
}

func Test_SeedLessons_Counts(t *testing.T) {
	lessons := SeedLessons()

	counts := map[string]int{
		"scales":     48,
		"bow":        43,
		"speed":      40,
		"positions":  32,
		"studies":    300,
		"repertoire": 30,
	}
	for session, want := range counts {
		assert.Len(t, lessons[session], want, "session %s", session)
	}
	assert.Equal(t, 493, TotalSeedLessons())
}

func Test_SeedLessons_SequentialIDs(t *testing.T) {
	for session, lessons := range SeedLessons() {
		for i, lesson := range lessons {
			require.Equal(t, i+1, lesson.ID, "session %s position %d", session, i)
			assert.NotEmpty(t, lesson.Title, "session %s lesson %d", session, lesson.ID)
		}
	}
}

func Test_SeedLessons_ReturnsCopies(t *testing.T) {
	first := SeedLessons()
	first["scales"][0].Title = "mutated"

	second := SeedLessons()
	assert.NotEqual(t, "mutated", second["scales"][0].Title)
}

func Test_WarmupChecklist(t *testing.T) {
	items := WarmupChecklist()
	require.Len(t, items, 6)
	for i, item := range items {
		assert.Equal(t, i+1, item.ID)
		assert.NotEmpty(t, item.Text)
	}
}

func Test_Methods(t *testing.T) {
	seedMethods := Methods()
	require.Len(t, seedMethods, 16)

	wohlfahrt, ok := MethodByID("wohlfahrt")
	require.True(t, ok)
	assert.Equal(t, "Franz Wohlfahrt", wohlfahrt.Author)

	_, ok = MethodByID("unknown")
	assert.False(t, ok)
}
