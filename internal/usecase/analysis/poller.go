package analysis

import (
	"context"
	"errors"
	"fmt"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	ucerrors "github.com/johnquangdev/interview-coach/internal/usecase/errors"
	"github.com/johnquangdev/interview-coach/pkg/jobcontext"
)

// PollPolicy bounds a provider poll loop: a fixed interval that escalates after
// EscalateAfter attempts, with a hard cap of MaxAttempts status checks.
type PollPolicy struct {
	Interval          time.Duration
	EscalatedInterval time.Duration
	EscalateAfter     int
	MaxAttempts       int
}

// DefaultPollPolicy allows roughly five minutes per job
func DefaultPollPolicy() PollPolicy {
	return PollPolicy{
		Interval:          4 * time.Second,
		EscalatedInterval: 6 * time.Second,
		EscalateAfter:     15,
		MaxAttempts:       60,
	}
}

// escalatingBackOff implements backoff.BackOff with a two-step schedule
type escalatingBackOff struct {
	policy  PollPolicy
	retries int
}

func (b *escalatingBackOff) NextBackOff() time.Duration {
	b.retries++
	if b.retries >= b.policy.MaxAttempts {
		return backoff.Stop
	}
	if b.retries > b.policy.EscalateAfter {
		return b.policy.EscalatedInterval
	}
	return b.policy.Interval
}

func (b *escalatingBackOff) Reset() {
	b.retries = 0
}

var errStillRunning = errors.New("job still running")

// pollCheck inspects a job once. done=false means poll again.
type pollCheck[T any] func(ctx context.Context) (result T, done bool, err error)

// pollUntilDone polls check until it reports done, fails permanently, the attempt cap is hit,
// or ctx ends. Transient provider errors count as attempts.
func pollUntilDone[T any](ctx context.Context, policy PollPolicy, check pollCheck[T], notify backoff.Notify) (T, error) {
	op := backoff.OperationWithData[T](func() (T, error) {
		result, done, err := check(ctx)
		if err != nil {
			if jobcontext.IsRetryableError(err) {
				return result, err
			}
			return result, backoff.Permanent(err)
		}
		if !done {
			return result, errStillRunning
		}
		return result, nil
	})

	b := backoff.WithContext(&escalatingBackOff{policy: policy}, ctx)
	result, err := backoff.RetryNotifyWithData(op, b, notify)
	if err == nil {
		return result, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return result, fmt.Errorf("%w: %w", ucerrors.ErrPollTimeout, ctxErr)
	}
	if errors.Is(err, errStillRunning) {
		return result, fmt.Errorf("%w after %d attempts", ucerrors.ErrPollTimeout, policy.MaxAttempts)
	}
	return result, err
}
