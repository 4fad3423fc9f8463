// internal/model/method.go
package model

import "time"

// CustomMethod is a user-created method grouping extra lessons. Seed methods
// live in the catalog package and are immutable; these are stored per
// creator but visible to everyone.
type CustomMethod struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Author      string    `gorm:"not null" json:"author"`
	Category    string    `json:"category"`
	SessionType string    `gorm:"not null;index" json:"session_type"`
	CreatedBy   string    `gorm:"not null" json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

func (CustomMethod) TableName() string {
	return "custom_methods"
}

// CustomLesson is a lesson inside a custom method. Its UUID is the stable
// identity; the numeric id seen by progress operations is assigned by the
// catalog merge after the seed block of its session.
type CustomLesson struct {
	ID             string      `gorm:"primaryKey" json:"id"`
	CustomMethodID string      `gorm:"not null;index" json:"custom_method_id"`
	SessionType    string      `gorm:"not null;index" json:"session_type"`
	Title          string      `gorm:"not null" json:"title"`
	Subtitle       string      `json:"subtitle"`
	Instruction    string      `json:"instruction"`
	Level          string      `json:"level"`
	Tags           StringSlice `gorm:"type:text" json:"tags"`
	Order          int         `gorm:"column:lesson_order;not null" json:"order"`
	CreatedBy      string      `gorm:"not null" json:"created_by"`
	CreatedAt      time.Time   `json:"created_at"`
}

func (CustomLesson) TableName() string {
	return "custom_lessons"
}

type CreateMethodRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Author      string `json:"author" validate:"required,max=200"`
	Category    string `json:"category" validate:"max=100"`
	SessionType string `json:"session_type" validate:"required,max=50"`
}

type UpdateMethodRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Author   *string `json:"author,omitempty" validate:"omitempty,min=1,max=200"`
	Category *string `json:"category,omitempty" validate:"omitempty,max=100"`
}

type CreateLessonRequest struct {
	Title       string   `json:"title" validate:"required,max=500"`
	Subtitle    string   `json:"subtitle" validate:"max=500"`
	Instruction string   `json:"instruction" validate:"max=2000"`
	Level       string   `json:"level" validate:"max=100"`
	Tags        []string `json:"tags"`
}

type BatchLessonRequest struct {
	TitlePrefix string   `json:"title_prefix" validate:"required,max=200"`
	Count       int      `json:"count" validate:"required,min=1,max=500"`
	Subtitle    string   `json:"subtitle" validate:"max=500"`
	Instruction string   `json:"instruction" validate:"max=2000"`
	Level       string   `json:"level" validate:"max=100"`
	Tags        []string `json:"tags"`
}

type UpdateLessonRequest struct {
	Title       *string   `json:"title,omitempty" validate:"omitempty,min=1,max=500"`
	Subtitle    *string   `json:"subtitle,omitempty" validate:"omitempty,max=500"`
	Instruction *string   `json:"instruction,omitempty" validate:"omitempty,max=2000"`
	Level       *string   `json:"level,omitempty" validate:"omitempty,max=100"`
	Tags        *[]string `json:"tags,omitempty"`
}

type ReorderLessonsRequest struct {
	LessonIDs []string `json:"lesson_ids" validate:"required,min=1"`
}
