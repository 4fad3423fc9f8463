// internal/catalog/catalog.go
package catalog

// Package catalog holds the curated violin curriculum: seven session types
// (one daily checklist plus six progressive tracks), the seed methods and
// lessons, the level threshold table and the pure merge of seed and custom
// entries. Seed data is immutable for the process lifetime.

// SessionType describes one block of the daily practice hour.
type SessionType struct {
	ID                 string `json:"id"`
	Order              int    `json:"order"`
	Name               string `json:"name"`
	Icon               string `json:"icon"`
	DefaultDurationSec int    `json:"default_duration_sec"`
	Description        string `json:"description"`
	Kind               string `json:"type"`
	Tip                string `json:"tip"`
}

const (
	KindChecklist   = "checklist"
	KindProgressive = "progressive"
)

// Method is an authorial grouping of lessons (an études collection).
type Method struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Author   string `json:"author"`
	Category string `json:"category"`
}

// MethodView is a method as listed by the API, seed or custom.
type MethodView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Author      string `json:"author"`
	Category    string `json:"category"`
	SessionType string `json:"session_type,omitempty"`
	IsSeed      bool   `json:"is_seed"`
	IsCustom    bool   `json:"is_custom,omitempty"`
}

// Lesson is an addressable unit of practice content. Seed lessons carry an
// id unique within their session; merged custom lessons additionally carry
// their UUID identity.
type Lesson struct {
	ID             int      `json:"id"`
	Title          string   `json:"title"`
	MethodID       string   `json:"method_id,omitempty"`
	Subtitle       string   `json:"subtitle,omitempty"`
	Instruction    string   `json:"instruction,omitempty"`
	Level          string   `json:"level,omitempty"`
	Tags           []string `json:"tags"`
	IsCustom       bool     `json:"is_custom,omitempty"`
	CustomLessonID string   `json:"custom_lesson_id,omitempty"`
	CustomMethodID string   `json:"custom_method_id,omitempty"`
}

// ChecklistItem is one entry of the canonical warmup checklist template.
type ChecklistItem struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

// SessionTypes returns the seven session configurations in practice order.
func SessionTypes() []SessionType {
	out := make([]SessionType, len(sessionTypes))
	copy(out, sessionTypes)
	return out
}

// SessionTypeByID returns the session configuration, or false when unknown.
func SessionTypeByID(id string) (SessionType, bool) {
	for _, s := range sessionTypes {
		if s.ID == id {
			return s, true
		}
	}
	return SessionType{}, false
}

// ProgressiveSessionIDs returns the six session types that track lessons,
// in practice order. Warmup is excluded; it is a checklist, not a track.
func ProgressiveSessionIDs() []string {
	ids := make([]string, 0, len(sessionTypes)-1)
	for _, s := range sessionTypes {
		if s.Kind == KindProgressive {
			ids = append(ids, s.ID)
		}
	}
	return ids
}

// IsProgressiveSession reports whether id names one of the six tracks.
func IsProgressiveSession(id string) bool {
	s, ok := SessionTypeByID(id)
	return ok && s.Kind == KindProgressive
}

// Methods returns the seed methods.
func Methods() []Method {
	out := make([]Method, len(methods))
	copy(out, methods)
	return out
}

// MethodByID returns the seed method, or false when unknown.
func MethodByID(id string) (Method, bool) {
	for _, m := range methods {
		if m.ID == id {
			return m, true
		}
	}
	return Method{}, false
}

// WarmupChecklist returns the canonical checklist template.
func WarmupChecklist() []ChecklistItem {
	out := make([]ChecklistItem, len(warmupChecklist))
	copy(out, warmupChecklist)
	return out
}

// SeedLessons returns the seed lessons per progressive session, fresh copies
// so callers can append without touching the shared data.
func SeedLessons() map[string][]Lesson {
	out := make(map[string][]Lesson, len(seedLessons))
	for session, lessons := range seedLessons {
		cp := make([]Lesson, len(lessons))
		copy(cp, lessons)
		out[session] = cp
	}
	return out
}

// TotalSeedLessons returns the seed lesson count across all sessions.
func TotalSeedLessons() int {
	total := 0
	for _, lessons := range seedLessons {
		total += len(lessons)
	}
	return total
}

// RepertoireStudyGuide is the recommended weekly routine for repertoire work.
func RepertoireStudyGuide() string {
	return repertoireStudyGuide
}
