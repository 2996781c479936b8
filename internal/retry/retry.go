// Package retry wraps outbound Google API calls with bounded
// retry-and-backoff. It is the single chokepoint for backend-call error
// handling: transient failures are retried with exponential delays, anything
// else is returned immediately.
package retry

import (
	"log/slog"
	"strings"
	"time"

	"github.com/cadentdev/content-calendar-template/internal/logging"
)

const (
	// DefaultMaxAttempts is the total number of attempts per call, including the first.
	DefaultMaxAttempts = 3

	// DefaultBaseDelay is the delay before the first retry; it doubles per attempt.
	DefaultBaseDelay = 1 * time.Second
)

// retryablePatterns classifies an error as transient when its message contains
// any of these substrings (case-insensitive). The Sheets backend reports
// transient conditions in prose rather than structured codes, so matching on
// the message is the only portable classification available.
// TODO: replace with googleapi.Error HTTP status codes once every call site
// surfaces them unwrapped.
var retryablePatterns = []string{
	"quota exceeded",
	"rate limit",
	"timeout",
	"connection",
	"network",
	"internal error",
	"service unavailable",
	"temporary failure",
}

// IsRetryable reports whether err looks like a transient backend failure
// worth reattempting.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	msg := strings.ToLower(err.Error())
	for _, pattern := range retryablePatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}

	return false
}

// Policy controls how a call is retried. The zero value is not usable; use
// NewPolicy or fill in every field.
type Policy struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int

	// BaseDelay is the sleep before the first retry; attempt n (0-based)
	// waits BaseDelay << n.
	BaseDelay time.Duration

	// Sleep is called to wait between attempts. Injectable for tests;
	// defaults to time.Sleep. Retry waits run to completion: the tool is
	// fire-and-forget and has no cancellation path.
	Sleep func(time.Duration)

	// Logger receives per-attempt warnings and the final error.
	Logger logging.Logger

	// OnRetry, when set, is called before each retry wait with the
	// operation name and the 1-based number of the failed attempt.
	OnRetry func(operation string, attempt int)
}

// NewPolicy returns the default policy: 3 attempts with 1s/2s delays.
func NewPolicy(logger *slog.Logger) Policy {
	return Policy{
		MaxAttempts: DefaultMaxAttempts,
		BaseDelay:   DefaultBaseDelay,
		Sleep:       time.Sleep,
		Logger:      logging.NewSlogAdapter(logger),
	}
}

// Do invokes op, retrying transient failures per the policy. The wrapped
// operation closes over its own arguments and result, keeping Do oblivious to
// their shape. On success the result is whatever op left behind; on a fatal
// error or after exhausting attempts the last error is returned.
func (p Policy) Do(operation string, op func() error) error {
	var lastErr error

	for attempt := 0; attempt < p.MaxAttempts; attempt++ {
		err := op()
		if err == nil {
			return nil
		}

		lastErr = err

		if !IsRetryable(err) {
			p.Logger.Error("api call failed",
				logging.Operation(operation),
				logging.Err(err))
			return err
		}

		if attempt == p.MaxAttempts-1 {
			break
		}

		if p.OnRetry != nil {
			p.OnRetry(operation, attempt+1)
		}

		delay := p.BaseDelay << attempt
		p.Logger.Warn("api call failed, retrying",
			logging.Operation(operation),
			logging.Attempt(attempt+1),
			slog.Duration(logging.KeyDelay, delay),
			logging.Err(err))
		p.Sleep(delay)
	}

	p.Logger.Error("api call failed after retries",
		logging.Operation(operation),
		logging.Attempt(p.MaxAttempts),
		logging.Err(lastErr))

	return lastErr
}

// DoValue is Do for operations that produce a value alongside the error.
func DoValue[T any](p Policy, operation string, op func() (T, error)) (T, error) {
	var result T

	err := p.Do(operation, func() error {
		var err error
		result, err = op()
		return err
	})

	return result, err
}
