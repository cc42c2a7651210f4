// ABOUTME: Periodic health probe for the cache dependency
// ABOUTME: Gates server startup on the probe reaching the healthy state

package health

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Probe states. A prober starts in StatusStarting and settles on
// StatusHealthy or StatusUnhealthy.
const (
	StatusStarting  = "starting"
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// CheckFunc runs one probe attempt, e.g. a cache ping.
type CheckFunc func(ctx context.Context) error

// Prober polls a check until it passes or the retry budget is spent.
type Prober struct {
	check    CheckFunc
	interval time.Duration
	timeout  time.Duration
	retries  int

	mu     sync.Mutex
	status string
}

// NewProber creates a prober that probes every interval, bounds each attempt
// by timeout, and declares unhealthy after retries consecutive failures.
func NewProber(check CheckFunc, interval, timeout time.Duration, retries int) *Prober {
	return &Prober{
		check:    check,
		interval: interval,
		timeout:  timeout,
		retries:  retries,
		status:   StatusStarting,
	}
}

// Status returns the current probe state.
func (p *Prober) Status() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

func (p *Prober) setStatus(status string) {
	p.mu.Lock()
	p.status = status
	p.mu.Unlock()
}

// WaitHealthy blocks until one probe passes and returns nil, or returns an
// error once the retry budget is spent or the context is cancelled. The
// dependent server must not start while this has not returned nil.
func (p *Prober) WaitHealthy(ctx context.Context) error {
	var lastErr error

	for attempt := 1; attempt <= p.retries; attempt++ {
		probeCtx, cancel := context.WithTimeout(ctx, p.timeout)
		err := p.check(probeCtx)
		cancel()

		if err == nil {
			p.setStatus(StatusHealthy)
			return nil
		}
		lastErr = err

		if attempt == p.retries {
			break
		}

		select {
		case <-ctx.Done():
			p.setStatus(StatusUnhealthy)
			return ctx.Err()
		case <-time.After(p.interval):
		}
	}

	p.setStatus(StatusUnhealthy)
	return fmt.Errorf("unhealthy after %d probes: %w", p.retries, lastErr)
}
