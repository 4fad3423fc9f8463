// internal/model/export.go
package model

import "time"

// SessionSnapshot is the portable form of one session's progress.
type SessionSnapshot struct {
	CurrentLesson    int          `json:"current_lesson"`
	CompletedLessons IntSlice     `json:"completed_lessons"`
	PracticeCounts   IntCountMap  `json:"practice_counts"`
	LastPracticed    IntStringMap `json:"last_practiced"`
	Notes            IntStringMap `json:"notes"`
}

// ProgressSnapshot is the portable form of a user's whole progress document.
type ProgressSnapshot struct {
	Sessions          map[string]SessionSnapshot `json:"sessions"`
	PracticeDates     StringSlice                `json:"practice_dates"`
	FirstPracticeDate *string                    `json:"first_practice_date"`
	CreatedAt         time.Time                  `json:"created_at"`
}

type ExportUserInfo struct {
	Username     string     `json:"username"`
	CreatedAt    time.Time  `json:"created_at"`
	FirstLoginAt *time.Time `json:"first_login_at,omitempty"`
}

// ExportData is the full per-user snapshot moved by export/import.
type ExportData struct {
	Progress  *ProgressSnapshot `json:"progress"`
	Warmups   []WarmupRecord    `json:"warmups"`
	DailyLogs []DailyLog        `json:"daily_logs"`
	Settings  *AppSettings      `json:"settings"`
	User      *ExportUserInfo   `json:"user,omitempty"`
}

type ExportDataResponse struct {
	Data       ExportData `json:"data"`
	ExportedAt string     `json:"exported_at"`
	Version    string     `json:"version"`
}

type ImportDataRequest struct {
	Data ExportData `json:"data" validate:"required"`
}

type ImportPreviewResponse struct {
	Valid    bool           `json:"valid"`
	Summary  map[string]any `json:"summary"`
	Warnings []string       `json:"warnings"`
}
