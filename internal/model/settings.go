// internal/model/settings.go
package model

import "time"

const SettingsID = "app_settings"

// AppSettings is the process-wide singleton settings document. The session
// durations must always sum to exactly one hour; violating writes are
// rejected, never clamped.
type AppSettings struct {
	ID               string       `gorm:"primaryKey" json:"-"`
	StartDate        string       `json:"start_date"`
	SessionDurations StringIntMap `gorm:"type:text" json:"session_durations"`
	Theme            string       `json:"theme"`
	AccentColor      string       `json:"accent_color"`
	UpdatedAt        time.Time    `json:"-"`
}

func (AppSettings) TableName() string {
	return "settings"
}

type UpdateSessionDurationsRequest struct {
	Durations map[string]int `json:"durations" validate:"required,min=1"`
}

type SettingsResponse struct {
	Settings *AppSettings `json:"settings"`
}
