// internal/service/login_limiter.go
package service

import (
	"sync"
	"time"
)

// LoginLimiter throttles password guessing per client IP.
type LoginLimiter interface {
	// ShouldBlock reports whether the IP is locked out and for how many
	// more seconds.
	ShouldBlock(ip string) (bool, int)
	// Record notes the outcome of a login attempt. A success clears the
	// failure count; enough failures lock the IP out.
	Record(ip string, success bool)
}

type loginAttempt struct {
	count       int
	lastAttempt time.Time
	lockedUntil time.Time
}

type memoryLoginLimiter struct {
	mu          sync.Mutex
	attempts    map[string]*loginAttempt
	maxAttempts int
	lockout     time.Duration
	clock       func() time.Time
}

// NewMemoryLoginLimiter returns an in-memory limiter. State does not survive
// a restart, which matches the short lockout window.
func NewMemoryLoginLimiter(maxAttempts int, lockout time.Duration, clock func() time.Time) LoginLimiter {
	if clock == nil {
		clock = time.Now
	}
	return &memoryLoginLimiter{
		attempts:    make(map[string]*loginAttempt),
		maxAttempts: maxAttempts,
		lockout:     lockout,
		clock:       clock,
	}
}

func (l *memoryLoginLimiter) ShouldBlock(ip string) (bool, int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	attempt, ok := l.attempts[ip]
	if !ok {
		return false, 0
	}

	now := l.clock()
	if attempt.lockedUntil.After(now) {
		return true, int(attempt.lockedUntil.Sub(now).Seconds()) + 1
	}
	// Stale entries reset so old failures do not count forever.
	if now.Sub(attempt.lastAttempt) > l.lockout {
		l.attempts[ip] = &loginAttempt{lastAttempt: now}
	}
	return false, 0
}

func (l *memoryLoginLimiter) Record(ip string, success bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock()
	attempt, ok := l.attempts[ip]
	if !ok {
		attempt = &loginAttempt{}
		l.attempts[ip] = attempt
	}

	if success {
		*attempt = loginAttempt{lastAttempt: now}
		return
	}

	attempt.count++
	attempt.lastAttempt = now
	if attempt.count >= l.maxAttempts {
		attempt.lockedUntil = now.Add(l.lockout)
	}
}
