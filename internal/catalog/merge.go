// internal/catalog/merge.go
package catalog

import "violin_study_plan/internal/model"

// MergeLessons appends the session's custom lessons after the seed block,
// assigning each a numeric id of seedCount+position. The assignment is pure:
// the same custom lessons in the same order always yield the same ids, and no
// custom id can collide with a seed id.
func MergeLessons(sessionType string, custom []model.CustomLesson) []Lesson {
	seed := seedLessons[sessionType]
	merged := make([]Lesson, 0, len(seed)+len(custom))
	merged = append(merged, seed...)
	nextID := len(seed) + 1
	for _, cl := range custom {
		if cl.SessionType != sessionType {
			continue
		}
		merged = append(merged, Lesson{
			ID:             nextID,
			Title:          cl.Title,
			MethodID:       cl.CustomMethodID,
			Subtitle:       cl.Subtitle,
			Instruction:    cl.Instruction,
			Level:          cl.Level,
			Tags:           append([]string(nil), cl.Tags...),
			IsCustom:       true,
			CustomLessonID: cl.ID,
			CustomMethodID: cl.CustomMethodID,
		})
		nextID++
	}
	return merged
}

// MergeMethods lists the seed methods followed by the custom methods.
func MergeMethods(custom []model.CustomMethod) []MethodView {
	out := make([]MethodView, 0, len(methods)+len(custom))
	for _, m := range methods {
		out = append(out, MethodView{
			ID: m.ID, Name: m.Name, Author: m.Author, Category: m.Category,
			IsSeed: true,
		})
	}
	for _, cm := range custom {
		out = append(out, MethodView{
			ID: cm.ID, Name: cm.Name, Author: cm.Author, Category: cm.Category,
			SessionType: cm.SessionType, IsCustom: true,
		})
	}
	return out
}
