package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastConfig() Config {
	return Config{
		MaxRetries:     3,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     10 * time.Millisecond,
		Multiplier:     2.0,
	}
}

func TestDo_Success(t *testing.T) {
	attempts := 0
	err := Do(context.Background(), fastConfig(), nil, func(ctx context.Context) error {
		attempts++
		return nil
	})
	if err != nil {
		t.Errorf("Do() error = %v, want nil", err)
	}
	if attempts != 1 {
		t.Errorf("Do() made %d attempts, want 1", attempts)
	}
}

func TestDo_PermanentError(t *testing.T) {
	attempts := 0
	permanent := errors.New("permanent")
	classifier := func(err error) bool { return !errors.Is(err, permanent) }

	err := Do(context.Background(), fastConfig(), classifier, func(ctx context.Context) error {
		attempts++
		return permanent
	})
	if !errors.Is(err, permanent) {
		t.Errorf("Do() error = %v, want %v", err, permanent)
	}
	if attempts != 1 {
		t.Errorf("Do() made %d attempts, want 1", attempts)
	}
}

func TestDo_RecoversAfterRetries(t *testing.T) {
	attempts := 0
	err := Do(context.Background(), fastConfig(), nil, func(ctx context.Context) error {
		attempts++
		if attempts < 3 {
			return errors.New("temporary")
		}
		return nil
	})
	if err != nil {
		t.Errorf("Do() error = %v, want nil", err)
	}
	if attempts != 3 {
		t.Errorf("Do() made %d attempts, want 3", attempts)
	}
}

func TestDo_MaxRetriesExceeded(t *testing.T) {
	attempts := 0
	temp := errors.New("temporary")
	cfg := fastConfig()

	err := Do(context.Background(), cfg, nil, func(ctx context.Context) error {
		attempts++
		return temp
	})
	if !errors.Is(err, temp) {
		t.Errorf("Do() error = %v, want wrapped %v", err, temp)
	}
	if attempts != cfg.MaxRetries+1 {
		t.Errorf("Do() made %d attempts, want %d", attempts, cfg.MaxRetries+1)
	}
}

func TestDo_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := fastConfig()
	cfg.InitialBackoff = time.Minute // Do must bail on ctx, not sleep

	err := Do(ctx, cfg, nil, func(ctx context.Context) error {
		return errors.New("temporary")
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Do() error = %v, want context.Canceled", err)
	}
}

func TestIsRetryable(t *testing.T) {
	if IsRetryable(context.Canceled) {
		t.Error("IsRetryable(context.Canceled) = true")
	}
	if IsRetryable(context.DeadlineExceeded) {
		t.Error("IsRetryable(context.DeadlineExceeded) = true")
	}
	if !IsRetryable(errors.New("network blip")) {
		t.Error("IsRetryable(generic) = false")
	}
}
