// internal/model/user.go
package model

import "time"

// User is an account in the fixed set of practice-app users. The username is
// the sole key for every per-user document.
type User struct {
	Username           string     `gorm:"primaryKey" json:"username"`
	PasswordHash       string     `gorm:"not null" json:"-"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"-"`
	FirstLoginAt       *time.Time `json:"first_login_at,omitempty"`
	MustChangePassword bool       `json:"must_change_password"`
	PasswordChanged    bool       `json:"-"`
}

func (User) TableName() string {
	return "users"
}

type ContextKey string

const UsernameKey ContextKey = "username"

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=200"`
}

type TokenResponse struct {
	AccessToken        string `json:"access_token"`
	TokenType          string `json:"token_type"`
	MustChangePassword bool   `json:"must_change_password"`
}

type UserResponse struct {
	Username           string     `json:"username"`
	CreatedAt          time.Time  `json:"created_at"`
	FirstLoginAt       *time.Time `json:"first_login_at,omitempty"`
	MustChangePassword bool       `json:"must_change_password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required,max=200"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=200"`
}

type FirstLoginPasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=8,max=200"`
}

type VerifyResponse struct {
	Valid              bool   `json:"valid"`
	Username           string `json:"username"`
	MustChangePassword bool   `json:"must_change_password"`
}
