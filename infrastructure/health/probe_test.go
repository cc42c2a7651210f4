package health

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNewProber_StartsInStartingState(t *testing.T) {
	prober := NewProber(func(ctx context.Context) error { return nil },
		time.Millisecond, time.Millisecond, 3)

	if got := prober.Status(); got != StatusStarting {
		t.Errorf("Status = %s, want %s", got, StatusStarting)
	}
}

func TestWaitHealthy_PassesOnFirstProbe(t *testing.T) {
	calls := 0
	prober := NewProber(func(ctx context.Context) error {
		calls++
		return nil
	}, time.Millisecond, time.Millisecond, 3)

	if err := prober.WaitHealthy(context.Background()); err != nil {
		t.Fatalf("WaitHealthy returned error: %v", err)
	}
	if calls != 1 {
		t.Errorf("check called %d times, want 1", calls)
	}
	if got := prober.Status(); got != StatusHealthy {
		t.Errorf("Status = %s, want %s", got, StatusHealthy)
	}
}

func TestWaitHealthy_RecoversWithinRetryBudget(t *testing.T) {
	calls := 0
	prober := NewProber(func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("connection refused")
		}
		return nil
	}, time.Millisecond, time.Millisecond, 5)

	if err := prober.WaitHealthy(context.Background()); err != nil {
		t.Fatalf("WaitHealthy returned error: %v", err)
	}
	if calls != 3 {
		t.Errorf("check called %d times, want 3", calls)
	}
	if got := prober.Status(); got != StatusHealthy {
		t.Errorf("Status = %s, want %s", got, StatusHealthy)
	}
}

func TestWaitHealthy_UnhealthyAfterRetriesExhausted(t *testing.T) {
	calls := 0
	prober := NewProber(func(ctx context.Context) error {
		calls++
		return errors.New("connection refused")
	}, time.Millisecond, time.Millisecond, 5)

	err := prober.WaitHealthy(context.Background())

	if err == nil {
		t.Fatal("WaitHealthy should return error when every probe fails")
	}
	if calls != 5 {
		t.Errorf("check called %d times, want 5", calls)
	}
	if got := prober.Status(); got != StatusUnhealthy {
		t.Errorf("Status = %s, want %s", got, StatusUnhealthy)
	}
}

func TestWaitHealthy_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	prober := NewProber(func(probeCtx context.Context) error {
		cancel()
		return errors.New("connection refused")
	}, time.Hour, time.Millisecond, 5)

	err := prober.WaitHealthy(ctx)

	if !errors.Is(err, context.Canceled) {
		t.Errorf("WaitHealthy should return context error, got %v", err)
	}
	if got := prober.Status(); got != StatusUnhealthy {
		t.Errorf("Status = %s, want %s", got, StatusUnhealthy)
	}
}

func TestWaitHealthy_ProbeTimeoutBoundsSlowCheck(t *testing.T) {
	prober := NewProber(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}, time.Millisecond, 5*time.Millisecond, 2)

	start := time.Now()
	err := prober.WaitHealthy(context.Background())

	if err == nil {
		t.Fatal("WaitHealthy should fail when every probe times out")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("WaitHealthy took %v, probes are not being bounded", elapsed)
	}
}
