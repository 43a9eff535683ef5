package config

import (
	"context"
	"fmt"
	"time"
)

// Retry configuration constants for the remote collaborators.
// Label generation itself is never retried.
const (
	// Google Sheets roster read retry configuration
	SheetReadMaxAttempts       = 3
	SheetReadInitialWait       = 500 * time.Millisecond
	SheetReadMaxWait           = 5 * time.Second
	SheetReadBackoffMultiplier = 2.0
	SheetReadTimeout           = 30 * time.Second

	// SCP publish retry configuration
	PublishMaxAttempts       = 3
	PublishInitialWait       = 1 * time.Second
	PublishMaxWait           = 10 * time.Second
	PublishBackoffMultiplier = 2.0
	PublishTimeout           = 30 * time.Second
)

// RetryConfig defines retry behavior for operations
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
	Timeout     time.Duration
}

// ResilienceConfig contains all retry configurations
type ResilienceConfig struct {
	SheetRead RetryConfig
	Publish   RetryConfig
}

// DefaultResilienceConfig provides sensible defaults
var DefaultResilienceConfig = ResilienceConfig{
	SheetRead: RetryConfig{
		MaxAttempts: SheetReadMaxAttempts,
		InitialWait: SheetReadInitialWait,
		MaxWait:     SheetReadMaxWait,
		Multiplier:  SheetReadBackoffMultiplier,
		Timeout:     SheetReadTimeout,
	},
	Publish: RetryConfig{
		MaxAttempts: PublishMaxAttempts,
		InitialWait: PublishInitialWait,
		MaxWait:     PublishMaxWait,
		Multiplier:  PublishBackoffMultiplier,
		Timeout:     PublishTimeout,
	},
}

// Wait returns the pause before the given retry (1 = first retry), capped at MaxWait
func (r RetryConfig) Wait(retry int) time.Duration {
	if retry < 1 {
		return 0
	}
	wait := float64(r.InitialWait)
	for i := 1; i < retry; i++ {
		wait *= r.Multiplier
		if r.MaxWait > 0 && time.Duration(wait) >= r.MaxWait {
			return r.MaxWait
		}
	}
	if r.MaxWait > 0 && time.Duration(wait) > r.MaxWait {
		return r.MaxWait
	}
	return time.Duration(wait)
}

// Retry runs op until it succeeds, attempts run out or ctx is done.
// Each attempt gets its own Timeout when one is configured.
func Retry(ctx context.Context, cfg RetryConfig, op func(ctx context.Context) error) error {
	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			timer := time.NewTimer(cfg.Wait(attempt - 1))
			select {
			case <-ctx.Done():
				timer.Stop()
				return fmt.Errorf("retry cancelled after %d attempts: %w", attempt-1, lastErr)
			case <-timer.C:
			}
		}

		attemptCtx := ctx
		cancel := func() {}
		if cfg.Timeout > 0 {
			attemptCtx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		}
		lastErr = op(attemptCtx)
		cancel()

		if lastErr == nil {
			return nil
		}
	}

	return fmt.Errorf("failed after %d attempts: %w", attempts, lastErr)
}
