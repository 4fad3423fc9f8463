// internal/service/testutil_test.go
package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"violin_study_plan/internal/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory database per test. The shared-cache DSN
// keeps one database across the connection pool while the test runs.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := repository.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// fixedClock returns a Clock frozen at the given RFC3339 instant.
func fixedClock(t *testing.T, value string) Clock {
	t.Helper()

	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("bad fixed clock value %q: %v", value, err)
	}
	return func() time.Time { return parsed }
}
