// internal/config/constants.go
package config

import "time"

// Application identity.
const (
	AppName    = "violin-study-plan"
	AppVersion = "1.0.0"
)

// Defaults applied when the config file and environment leave a value unset.
const (
	DefaultServerPort       = ":8080"
	DefaultLogLevel         = "info"
	DefaultMaxLoginAttempts = 5
	DefaultLockoutSeconds   = 300
	DefaultJWTSecretKey     = "violin-study-plan-secret-key-2024-dev-only"
)

// Auth parameters shared by the token issuer and verifier.
const (
	TokenExpiry          = 7 * 24 * time.Hour
	AdminUsername        = "admin"
	AdminInitialPassword = "violino2024"
)

// ExportVersion tags exported snapshots so future imports can tell formats apart.
const ExportVersion = "2.0"
