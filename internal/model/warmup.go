// internal/model/warmup.go
package model

import (
	"database/sql/driver"
)

// WarmupItem is one entry of the daily warmup checklist.
type WarmupItem struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

type WarmupItems []WarmupItem

func (w WarmupItems) Value() (driver.Value, error) {
	if w == nil {
		w = WarmupItems{}
	}
	return jsonValue(w)
}

func (w *WarmupItems) Scan(src any) error { return jsonScan(w, src) }

// WarmupRecord is the per-user, per-day checklist state. It is cloned from
// the template on first touch each day and never carries over.
type WarmupRecord struct {
	Username  string      `gorm:"primaryKey" json:"-"`
	Date      string      `gorm:"primaryKey" json:"date"`
	Checklist WarmupItems `gorm:"type:text" json:"checklist"`
}

func (WarmupRecord) TableName() string {
	return "warmups"
}

type WarmupCheckRequest struct {
	ItemID    int  `json:"item_id" validate:"required,min=1"`
	Completed bool `json:"completed"`
}

type WarmupCheckResponse struct {
	Message   string      `json:"message"`
	Checklist WarmupItems `json:"checklist"`
}
