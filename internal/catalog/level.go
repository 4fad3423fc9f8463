// internal/catalog/level.go
package catalog

// LevelBracket maps a closed range of completed études to a player level.
type LevelBracket struct {
	Min         int    `json:"min"`
	Max         int    `json:"max"`
	Level       string `json:"level"`
	MethodRange string `json:"method_range"`
}

// LevelInfo is the classification of a studies-completed count.
type LevelInfo struct {
	Level         string `json:"level"`
	MethodRange   string `json:"method_range"`
	Completed     int    `json:"completed"`
	NextThreshold *int   `json:"next_threshold"`
}

const maxLevelThreshold = 296

var levelThresholds = []LevelBracket{
	{Min: 0, Max: 59, Level: "Iniciante", MethodRange: "Wohlfahrt"},
	{Min: 60, Max: 95, Level: "Iniciante–Intermediário", MethodRange: "Kayser"},
	{Min: 96, Max: 125, Level: "Intermediário", MethodRange: "Mazas"},
	{Min: 126, Max: 187, Level: "Intermediário–Avançado", MethodRange: "Dont 37 + Kreutzer"},
	{Min: 188, Max: 247, Level: "Avançado", MethodRange: "Fiorillo + Rode"},
	{Min: 248, Max: 271, Level: "Avançado Superior", MethodRange: "Dont 35"},
	{Min: 272, Max: 296, Level: "Virtuoso", MethodRange: "Paganini"},
}

// LevelThresholds returns the bracket table in ascending order.
func LevelThresholds() []LevelBracket {
	out := make([]LevelBracket, len(levelThresholds))
	copy(out, levelThresholds)
	return out
}

// ClassifyLevel maps the number of completed études to a level. Counts beyond
// the last bracket fall back to the first level with its next threshold, the
// same answer a brand-new player gets.
func ClassifyLevel(studiesCompleted int) LevelInfo {
	for _, b := range levelThresholds {
		if studiesCompleted >= b.Min && studiesCompleted <= b.Max {
			info := LevelInfo{
				Level:       b.Level,
				MethodRange: b.MethodRange,
				Completed:   studiesCompleted,
			}
			if b.Max < maxLevelThreshold {
				next := b.Max + 1
				info.NextThreshold = &next
			}
			return info
		}
	}
	next := 60
	return LevelInfo{Level: "Iniciante", MethodRange: "Wohlfahrt", Completed: 0, NextThreshold: &next}
}
