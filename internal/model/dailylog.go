// internal/model/dailylog.go
package model

import "time"

// DailyLog is the per-user, per-calendar-day practice record. TotalTimeSec is
// always recomputed from SessionTimes on write; the stored value is never
// trusted as an accumulator.
type DailyLog struct {
	Username          string       `gorm:"primaryKey" json:"-"`
	Date              string       `gorm:"primaryKey" json:"date"`
	Studied           bool         `json:"studied"`
	SessionsPracticed StringSlice  `gorm:"type:text" json:"sessions_practiced"`
	SessionTimes      StringIntMap `gorm:"type:text" json:"session_times"`
	TotalTimeSec      int          `json:"total_time_sec"`
	Notes             *string      `json:"notes,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"-"`
}

func (DailyLog) TableName() string {
	return "daily_logs"
}

// RecomputeTotal rebuilds TotalTimeSec as the sum over SessionTimes.
func (l *DailyLog) RecomputeTotal() {
	total := 0
	for _, sec := range l.SessionTimes {
		total += sec
	}
	l.TotalTimeSec = total
}

type DailyNotesRequest struct {
	Notes *string `json:"notes" validate:"omitempty,max=5000"`
}

type LogTimeRequest struct {
	SessionType string `json:"session_type" validate:"required,max=50"`
	TimeSec     int    `json:"time_sec" validate:"min=0"`
}

type DailyLogsResponse struct {
	Logs []DailyLog `json:"logs"`
}

type DailyLogResponse struct {
	Log *DailyLog `json:"log"`
}
