// internal/model/progress.go
package model

import "time"

// SessionProgress is the mutable per-user, per-session document. Mutations
// load the whole row, change it and save it back; last writer wins.
type SessionProgress struct {
	Username         string       `gorm:"primaryKey" json:"-"`
	SessionType      string       `gorm:"primaryKey" json:"session_type"`
	CurrentLesson    int          `gorm:"not null;default:1" json:"current_lesson"`
	CompletedLessons IntSlice     `gorm:"type:text" json:"completed_lessons"`
	PracticeCounts   IntCountMap  `gorm:"type:text" json:"practice_counts"`
	LastPracticed    IntStringMap `gorm:"type:text" json:"last_practiced"`
	Notes            IntStringMap `gorm:"type:text" json:"notes"`
	UpdatedAt        time.Time    `json:"-"`
}

func (SessionProgress) TableName() string {
	return "session_progress"
}

// NewSessionProgress seeds an empty session at lesson 1.
func NewSessionProgress(username, sessionType string) *SessionProgress {
	return &SessionProgress{
		Username:         username,
		SessionType:      sessionType,
		CurrentLesson:    1,
		CompletedLessons: IntSlice{},
		PracticeCounts:   IntCountMap{},
		LastPracticed:    IntStringMap{},
		Notes:            IntStringMap{},
	}
}

// UserProgress holds the user-level practice aggregates shared by all six
// sessions: the deduplicated practice-date set and the set-once first date.
type UserProgress struct {
	Username          string      `gorm:"primaryKey" json:"-"`
	PracticeDates     StringSlice `gorm:"type:text" json:"practice_dates"`
	FirstPracticeDate *string     `json:"first_practice_date"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"-"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}

// ActivityEntry is an append-only audit record. The core only ever writes it.
type ActivityEntry struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Username    string    `gorm:"not null;index" json:"username"`
	Action      string    `gorm:"not null" json:"action"`
	SessionType string    `json:"session_type"`
	LessonID    int       `json:"lesson_id"`
	Timestamp   time.Time `json:"timestamp"`
}

func (ActivityEntry) TableName() string {
	return "activity_log"
}

type PracticeLogRequest struct {
	SessionType string `json:"session_type" validate:"required,max=50"`
	LessonID    int    `json:"lesson_id" validate:"required,min=1"`
}

type PracticeLogResponse struct {
	Message       string `json:"message"`
	LessonID      int    `json:"lesson_id"`
	PracticeCount int    `json:"practice_count"`
	Date          string `json:"date"`
}

type AdvanceLessonRequest struct {
	SessionType string `json:"session_type" validate:"required,max=50"`
	Direction   string `json:"direction" validate:"omitempty,oneof=next previous"`
}

type AdvanceLessonResponse struct {
	Message        string `json:"message"`
	CurrentLesson  int    `json:"current_lesson"`
	TotalLessons   int    `json:"total_lessons"`
	CompletedCount int    `json:"completed_count"`
}

type JumpToLessonRequest struct {
	SessionType string `json:"session_type" validate:"required,max=50"`
	LessonID    int    `json:"lesson_id" validate:"required"`
}

type JumpToLessonResponse struct {
	Message       string `json:"message"`
	CurrentLesson int    `json:"current_lesson"`
}

type UpdateNotesRequest struct {
	SessionType string `json:"session_type" validate:"required,max=50"`
	LessonID    int    `json:"lesson_id" validate:"required,min=1"`
	Notes       string `json:"notes" validate:"max=5000"`
}

// ProgressResponse is the full per-user progress view: the six sessions,
// today's warmup record and the user-level aggregates.
type ProgressResponse struct {
	Sessions          map[string]*SessionProgress `json:"sessions"`
	WarmupToday       *WarmupRecord               `json:"warmup_today"`
	PracticeDates     StringSlice                 `json:"practice_dates"`
	FirstPracticeDate *string                     `json:"first_practice_date"`
}
