package store

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"log/slog"
	"time"

	"station-booking/internal/infra"
)

// withRetry runs fn under a fresh per-attempt timeout and retries while the error is retryable.
func withRetry[T any](ctx context.Context, op string, opTimeout time.Duration, maxRetries int, base time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		result, err := withTimeout(ctx, opTimeout, fn)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !infra.IsRetryable(err) || attempt == maxRetries {
			break
		}

		waitTime := calculateBackoff(attempt, base)
		slog.Warn("retrying store operation",
			"op", op,
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return zero, lastErr
		case <-time.After(waitTime):
		}
	}

	return zero, lastErr
}

// A zero timeout leaves ctx untouched.
func withTimeout[T any](ctx context.Context, timeout time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	if timeout <= 0 {
		return fn(ctx)
	}
	opCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return fn(opCtx)
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- masked to a positive value above
	return int64(uval) % n
}
