package store

import (
	"context"
	"fmt"
	"time"

	"github.com/aborland123/AI-Golf-Caddie/models"
)

// RetrySwings wraps a swing log with bounded retry. Each round trip is
// attempted up to attempts times with exponential backoff between tries;
// once exhausted, the last error is wrapped in ErrUnavailable and the
// submission aborts with no partial write.
func RetrySwings(inner SwingLog, attempts int, backoff time.Duration) SwingLog {
	return &retrySwingLog{inner: inner, r: newRetrier(attempts, backoff)}
}

// RetryPractice wraps a practice log with the same bounded-retry policy as
// RetrySwings.
func RetryPractice(inner PracticeLog, attempts int, backoff time.Duration) PracticeLog {
	return &retryPracticeLog{inner: inner, r: newRetrier(attempts, backoff)}
}

type retrier struct {
	attempts int
	backoff  time.Duration
}

func newRetrier(attempts int, backoff time.Duration) *retrier {
	if attempts < 1 {
		attempts = 1
	}
	return &retrier{attempts: attempts, backoff: backoff}
}

func (r *retrier) do(ctx context.Context, op func() error) error {
	var err error
	delay := r.backoff
	for attempt := 1; ; attempt++ {
		if err = op(); err == nil {
			return nil
		}
		if attempt >= r.attempts {
			break
		}
		if ctx.Err() != nil {
			break
		}
		time.Sleep(delay)
		delay *= 2
	}
	return fmt.Errorf("%w after %d attempts: %v", ErrUnavailable, r.attempts, err)
}

type retrySwingLog struct {
	inner SwingLog
	r     *retrier
}

func (s *retrySwingLog) ReadAll(ctx context.Context) ([]models.Swing, error) {
	var swings []models.Swing
	err := s.r.do(ctx, func() error {
		var opErr error
		swings, opErr = s.inner.ReadAll(ctx)
		return opErr
	})
	return swings, err
}

func (s *retrySwingLog) Append(ctx context.Context, sw *models.Swing) error {
	return s.r.do(ctx, func() error { return s.inner.Append(ctx, sw) })
}

type retryPracticeLog struct {
	inner PracticeLog
	r     *retrier
}

func (s *retryPracticeLog) ReadAll(ctx context.Context) ([]models.PracticeEntry, error) {
	var entries []models.PracticeEntry
	err := s.r.do(ctx, func() error {
		var opErr error
		entries, opErr = s.inner.ReadAll(ctx)
		return opErr
	})
	return entries, err
}

func (s *retryPracticeLog) Append(ctx context.Context, pe *models.PracticeEntry) error {
	return s.r.do(ctx, func() error { return s.inner.Append(ctx, pe) })
}
