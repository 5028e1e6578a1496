package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLimiter(limit int, window time.Duration) (*LoginLimiter, *time.Time) {
	l := NewLoginLimiter(limit, window)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	return l, &now
}

func TestLoginLimiter(t *testing.T) {
	t.Run("blocks after the limit and recovers when the window passes", func(t *testing.T) {
		l, now := newTestLimiter(3, time.Minute)

		for i := 0; i < 3; i++ {
			assert.True(t, l.Allow("1.2.3.4"), "attempt %d should be allowed", i)
			l.RecordFailure("1.2.3.4")
		}
		assert.False(t, l.Allow("1.2.3.4"))

		*now = now.Add(61 * time.Second)
		assert.True(t, l.Allow("1.2.3.4"))
	})

	t.Run("keys are independent", func(t *testing.T) {
		l, _ := newTestLimiter(1, time.Minute)

		l.RecordFailure("1.2.3.4")

		assert.False(t, l.Allow("1.2.3.4"))
		assert.True(t, l.Allow("5.6.7.8"))
	})

	t.Run("reset clears the key after a successful login", func(t *testing.T) {
		l, _ := newTestLimiter(1, time.Minute)

		l.RecordFailure("1.2.3.4")
		assert.False(t, l.Allow("1.2.3.4"))

		l.Reset("1.2.3.4")
		assert.True(t, l.Allow("1.2.3.4"))
	})

	t.Run("only failures inside the window count", func(t *testing.T) {
		l, now := newTestLimiter(2, time.Minute)

		l.RecordFailure("1.2.3.4")
		*now = now.Add(45 * time.Second)
		l.RecordFailure("1.2.3.4")
		assert.False(t, l.Allow("1.2.3.4"))

		// The first failure ages out, leaving one inside the window.
		*now = now.Add(30 * time.Second)
		assert.True(t, l.Allow("1.2.3.4"))
	})

	t.Run("stale keys are evicted once the map is full", func(t *testing.T) {
		l, now := newTestLimiter(5, time.Minute)
		l.maxKeys = 2

		l.RecordFailure("1.1.1.1")
		l.RecordFailure("2.2.2.2")

		*now = now.Add(2 * time.Minute)
		l.RecordFailure("3.3.3.3")

		assert.Len(t, l.attempts, 1)
	})
}
