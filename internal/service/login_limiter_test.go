// internal/service/login_limiter_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_MemoryLoginLimiter(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	t.Run("unknown IP is not blocked", func(t *testing.T) {
		limiter := NewMemoryLoginLimiter(5, 300*time.Second, clock)
		blocked, _ := limiter.ShouldBlock("10.0.0.1")
		assert.False(t, blocked)
	})

	t.Run("locks after max failures", func(t *testing.T) {
		limiter := NewMemoryLoginLimiter(5, 300*time.Second, clock)
		for i := 0; i < 4; i++ {
			limiter.Record("10.0.0.1", false)
			blocked, _ := limiter.ShouldBlock("10.0.0.1")
			assert.False(t, blocked, "attempt %d must not lock yet", i+1)
		}

		limiter.Record("10.0.0.1", false)
		blocked, retrySec := limiter.ShouldBlock("10.0.0.1")
		assert.True(t, blocked)
		assert.Greater(t, retrySec, 0)
		assert.LessOrEqual(t, retrySec, 301)
	})

	t.Run("lock expires after the window", func(t *testing.T) {
		now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
		limiter := NewMemoryLoginLimiter(5, 300*time.Second, clock)
		for i := 0; i < 5; i++ {
			limiter.Record("10.0.0.2", false)
		}
		blocked, _ := limiter.ShouldBlock("10.0.0.2")
		assert.True(t, blocked)

		now = now.Add(301 * time.Second)
		blocked, _ = limiter.ShouldBlock("10.0.0.2")
		assert.False(t, blocked)
	})

	t.Run("success clears the failure count", func(t *testing.T) {
		now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
		limiter := NewMemoryLoginLimiter(5, 300*time.Second, clock)
		for i := 0; i < 4; i++ {
			limiter.Record("10.0.0.3", false)
		}
		limiter.Record("10.0.0.3", true)

		// A fresh run of failures is needed to lock again.
		for i := 0; i < 4; i++ {
			limiter.Record("10.0.0.3", false)
		}
		blocked, _ := limiter.ShouldBlock("10.0.0.3")
		assert.False(t, blocked)

		limiter.Record("10.0.0.3", false)
		blocked, _ = limiter.ShouldBlock("10.0.0.3")
		assert.True(t, blocked)
	})

	t.Run("IPs are tracked independently", func(t *testing.T) {
		now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
		limiter := NewMemoryLoginLimiter(5, 300*time.Second, clock)
		for i := 0; i < 5; i++ {
			limiter.Record("10.0.0.4", false)
		}
		blocked, _ := limiter.ShouldBlock("10.0.0.4")
		assert.True(t, blocked)
		blocked, _ = limiter.ShouldBlock("10.0.0.5")
		assert.False(t, blocked)
	})
}
