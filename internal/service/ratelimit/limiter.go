package ratelimit

import (
    "context"
    "sync"
    "time"
)

// Throttle enforces a minimum interval between successive calls. Used to
// keep paginated REST fetches polite towards shared store hosting.
type Throttle struct {
    mu   sync.Mutex
    min  time.Duration
    last time.Time
}

func New(min time.Duration) *Throttle {
    return &Throttle{min: min}
}

// Wait blocks until the interval since the previous permitted call has
// elapsed, or until ctx is done.
func (t *Throttle) Wait(ctx context.Context) error {
    if t == nil || t.min <= 0 {
        return nil
    }
    t.mu.Lock()
    now := time.Now()
    wait := t.min - now.Sub(t.last)
    if wait < 0 {
        wait = 0
    }
    t.last = now.Add(wait)
    t.mu.Unlock()

    if wait == 0 {
        return nil
    }
    timer := time.NewTimer(wait)
    defer timer.Stop()
    select {
    case <-ctx.Done():
        return ctx.Err()
    case <-timer.C:
        return nil
    }
}
