package retry

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func testConfig() Config {
	return Config{
		Enabled:     true,
		MaxAttempts: 2,
		BaseDelay:   time.Millisecond,
		MaxDelay:    5 * time.Millisecond,
	}
}

func TestDoSucceedsAfterRetryableFailures(t *testing.T) {
	attempts := 0
	got, err := Do(context.Background(), testConfig(), func() (string, error) {
		attempts++
		if attempts < 3 {
			return "", errors.New("503 service unavailable")
		}
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("Do error: %v", err)
	}
	if got != "ok" {
		t.Errorf("Do = %q, want ok", got)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestDoStopsOnNonRetryable(t *testing.T) {
	attempts := 0
	_, err := Do(context.Background(), testConfig(), func() (string, error) {
		attempts++
		return "", errors.New("401 unauthorized")
	})
	if err == nil {
		t.Fatal("Do error = nil, want error")
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1 (no retries on client errors)", attempts)
	}
}

func TestDoExhaustsAttempts(t *testing.T) {
	attempts := 0
	_, err := Do(context.Background(), testConfig(), func() (string, error) {
		attempts++
		return "", errors.New("connection refused")
	})
	if err == nil || !strings.Contains(err.Error(), "max retries exceeded") {
		t.Fatalf("Do error = %v, want max-retries error", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3 (initial + 2 retries)", attempts)
	}
}

func TestDoDisabledRunsOnce(t *testing.T) {
	attempts := 0
	_, err := Do(context.Background(), Config{}, func() (string, error) {
		attempts++
		return "", errors.New("timeout")
	})
	if err == nil {
		t.Fatal("Do error = nil, want error")
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}
}

func TestDoHonorsContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Do(ctx, testConfig(), func() (string, error) {
		return "", errors.New("timeout")
	})
	if err == nil || !strings.Contains(err.Error(), "retry cancelled") {
		t.Fatalf("Do error = %v, want cancellation error", err)
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		err  string
		want bool
	}{
		{"429 too many requests", true},
		{"500 internal server error", true},
		{"context deadline exceeded", true},
		{"dial tcp: connection refused", true},
		{"400 bad request", false},
		{"401 unauthorized", false},
		{"invalid model name", false},
		{"something unexpected", true},
	}

	for _, tt := range tests {
		t.Run(tt.err, func(t *testing.T) {
			if got := IsRetryable(errors.New(tt.err)); got != tt.want {
				t.Errorf("IsRetryable(%q) = %t, want %t", tt.err, got, tt.want)
			}
		})
	}

	if IsRetryable(nil) {
		t.Error("IsRetryable(nil) = true, want false")
	}
}
