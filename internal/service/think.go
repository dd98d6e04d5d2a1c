package service

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/set-night/elliotlab/internal/selector"
)

// ThinkTime is the artificial pause before Elliot answers: Base plus a
// uniform jitter in [0, Jitter].
type ThinkTime struct {
	Base   time.Duration
	Jitter time.Duration
}

// Draw picks one delay using src.
func (t ThinkTime) Draw(src selector.Source) time.Duration {
	d := t.Base
	if t.Jitter > 0 {
		d += time.Duration(src.IntN(int(t.Jitter/time.Millisecond)+1)) * time.Millisecond
	}
	if d < 0 {
		return 0
	}
	return d
}

// Sleeper waits for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// SleepContext is the timer-backed Sleeper.
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }
