package service

import (
	"sync"
	"time"
)

// LoginLimiter is a capped, time-windowed counter of failed login attempts
// keyed by network origin. It is process-local and only guards the web login
// form; it is not part of the ledger core.
type LoginLimiter struct {
	mu       sync.Mutex
	limit    int
	window   time.Duration
	maxKeys  int
	attempts map[string][]time.Time
	now      func() time.Time
}

func NewLoginLimiter(limit int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{
		limit:    limit,
		window:   window,
		maxKeys:  10000,
		attempts: make(map[string][]time.Time),
		now:      time.Now,
	}
}

// Allow reports whether the key is still under the failure limit for the
// current window.
func (l *LoginLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.prune(key)) < l.limit
}

// RecordFailure notes a failed attempt for the key.
func (l *LoginLimiter) RecordFailure(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.attempts) >= l.maxKeys {
		l.evictStale()
	}
	l.attempts[key] = append(l.prune(key), l.now())
}

// Reset clears the key after a successful login.
func (l *LoginLimiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.attempts, key)
}

// prune drops attempts older than the window and returns what remains.
// Callers must hold the mutex.
func (l *LoginLimiter) prune(key string) []time.Time {
	cutoff := l.now().Add(-l.window)
	kept := l.attempts[key][:0]
	for _, t := range l.attempts[key] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		delete(l.attempts, key)
		return nil
	}
	l.attempts[key] = kept
	return kept
}

// evictStale removes every key whose attempts all fall outside the window.
// Callers must hold the mutex.
func (l *LoginLimiter) evictStale() {
	cutoff := l.now().Add(-l.window)
	for key, times := range l.attempts {
		stale := true
		for _, t := range times {
			if t.After(cutoff) {
				stale = false
				break
			}
		}
		if stale {
			delete(l.attempts, key)
		}
	}
}
