package gradpick

import (
	"context"
	"errors"
	"sync/atomic"
	"time"
)

// TickFunc is one refresh step driven by an Animator.
type TickFunc func(ctx context.Context) error

// Animator drives a refresh function periodically. A tick that arrives
// while another is still running, from Run or a direct Tick call, is
// skipped, not queued.
//
// Thread safety: Animator is safe for concurrent use.
type Animator struct {
	tick TickFunc

	// running is set while tick executes.
	running atomic.Bool

	ticks   atomic.Uint64
	skipped atomic.Uint64
}

// NewAnimator creates an animator around tick.
func NewAnimator(tick TickFunc) *Animator {
	return &Animator{tick: tick}
}

// Tick runs the refresh function once unless a tick is already in
// progress. It reports whether the function ran.
func (a *Animator) Tick(ctx context.Context) (bool, error) {
	if !a.running.CompareAndSwap(false, true) {
		a.skipped.Add(1)
		return false, nil
	}
	defer a.running.Store(false)

	a.ticks.Add(1)
	return true, a.tick(ctx)
}

// Run ticks every interval until ctx is cancelled. Tick errors are logged
// and do not stop the loop. Run returns ctx.Err().
func (a *Animator) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return errors.New("gradpick: animator interval must be positive")
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := a.Tick(ctx); err != nil {
				Logger().Warn("gradpick: animator tick failed", "err", err)
			}
		}
	}
}

// Running reports whether a tick is in progress.
func (a *Animator) Running() bool {
	return a.running.Load()
}

// Ticks returns how many ticks have run.
func (a *Animator) Ticks() uint64 {
	return a.ticks.Load()
}

// Skipped returns how many ticks were dropped because one was running.
func (a *Animator) Skipped() uint64 {
	return a.skipped.Load()
}
