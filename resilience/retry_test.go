package resilience

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func fastConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
		BackoffFactor:  2.0,
	}
}

func TestRetrySucceedsFirstAttempt(t *testing.T) {
	calls := 0
	result, err := Retry(context.Background(), fastConfig(), func() (int, error) {
		calls++
		return 42, nil
	})
	if err != nil {
		t.Fatalf("Retry failed: %v", err)
	}
	if result != 42 || calls != 1 {
		t.Errorf("expected 42 after 1 call, got %d after %d", result, calls)
	}
}

func TestRetryEventuallySucceeds(t *testing.T) {
	calls := 0
	result, err := Retry(context.Background(), fastConfig(), func() (string, error) {
		calls++
		if calls < 3 {
			return "", fmt.Errorf("transient")
		}
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("Retry failed: %v", err)
	}
	if result != "ok" || calls != 3 {
		t.Errorf("expected ok after 3 calls, got %q after %d", result, calls)
	}
}

func TestRetryExhaustsAttempts(t *testing.T) {
	calls := 0
	_, err := Retry(context.Background(), fastConfig(), func() (int, error) {
		calls++
		return 0, fmt.Errorf("always fails")
	})
	if err == nil {
		t.Fatal("expected error after exhausting attempts")
	}
	if calls != 3 {
		t.Errorf("expected 3 attempts, got %d", calls)
	}
}

func TestRetryStopsOnNonRetryable(t *testing.T) {
	calls := 0
	cfg := fastConfig()
	cfg.RetryIf = func(err error) bool { return false }
	_, err := Retry(context.Background(), cfg, func() (int, error) {
		calls++
		return 0, fmt.Errorf("permanent")
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("expected 1 attempt for non-retryable error, got %d", calls)
	}
}

func TestRetryHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Retry(ctx, fastConfig(), func() (int, error) {
		return 0, fmt.Errorf("never reached on cancelled context")
	})
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRetryOnRetryCallback(t *testing.T) {
	var attempts []int
	cfg := fastConfig()
	cfg.OnRetry = func(attempt int, err error, backoff time.Duration) {
		attempts = append(attempts, attempt)
	}
	_ = RetryFunc(context.Background(), cfg, func() error {
		return fmt.Errorf("fail")
	})
	if len(attempts) != 2 {
		t.Errorf("expected OnRetry called twice, got %v", attempts)
	}
}
