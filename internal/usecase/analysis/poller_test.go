package analysis

import (
	"context"
	"errors"
	"testing"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	ucerrors "github.com/johnquangdev/interview-coach/internal/usecase/errors"
)

func fastPolicy(max int) PollPolicy {
	return PollPolicy{
		Interval:          time.Millisecond,
		EscalatedInterval: 2 * time.Millisecond,
		EscalateAfter:     3,
		MaxAttempts:       max,
	}
}

func TestEscalatingBackOffSchedule(t *testing.T) {
	b := &escalatingBackOff{policy: PollPolicy{
		Interval:          4 * time.Second,
		EscalatedInterval: 6 * time.Second,
		EscalateAfter:     3,
		MaxAttempts:       6,
	}}
	want := []time.Duration{4 * time.Second, 4 * time.Second, 4 * time.Second, 6 * time.Second, 6 * time.Second, backoff.Stop}
	for i, w := range want {
		if got := b.NextBackOff(); got != w {
			t.Fatalf("step %d: got %v, want %v", i, got, w)
		}
	}
	b.Reset()
	if got := b.NextBackOff(); got != 4*time.Second {
		t.Fatalf("after reset got %v", got)
	}
}

func TestDefaultPollPolicy(t *testing.T) {
	p := DefaultPollPolicy()
	if p.Interval != 4*time.Second || p.EscalatedInterval != 6*time.Second || p.EscalateAfter != 15 || p.MaxAttempts != 60 {
		t.Fatalf("policy=%+v", p)
	}
}

func TestPollUntilDoneSucceeds(t *testing.T) {
	calls := 0
	got, err := pollUntilDone(context.Background(), fastPolicy(10), func(context.Context) (string, bool, error) {
		calls++
		if calls < 3 {
			return "", false, nil
		}
		return "done", true, nil
	}, nil)
	if err != nil || got != "done" {
		t.Fatalf("got %q err %v", got, err)
	}
	if calls != 3 {
		t.Fatalf("calls=%d, want 3", calls)
	}
}

func TestPollUntilDoneAttemptCap(t *testing.T) {
	calls := 0
	_, err := pollUntilDone(context.Background(), fastPolicy(7), func(context.Context) (int, bool, error) {
		calls++
		return 0, false, nil
	}, nil)
	if !errors.Is(err, ucerrors.ErrPollTimeout) {
		t.Fatalf("err=%v, want ErrPollTimeout", err)
	}
	if calls != 7 {
		t.Fatalf("calls=%d, want 7", calls)
	}
}

func TestPollUntilDoneStopsOnJobFailure(t *testing.T) {
	calls := 0
	_, err := pollUntilDone(context.Background(), fastPolicy(10), func(context.Context) (int, bool, error) {
		calls++
		return 0, false, ucerrors.ErrJobFailed
	}, nil)
	if !errors.Is(err, ucerrors.ErrJobFailed) {
		t.Fatalf("err=%v, want ErrJobFailed", err)
	}
	if calls != 1 {
		t.Fatalf("calls=%d, want 1", calls)
	}
}

func TestPollUntilDoneRetriesTransientErrors(t *testing.T) {
	calls := 0
	got, err := pollUntilDone(context.Background(), fastPolicy(10), func(context.Context) (int, bool, error) {
		calls++
		if calls == 1 {
			return 0, false, errors.New("read tcp: connection reset by peer")
		}
		return 42, true, nil
	}, nil)
	if err != nil || got != 42 {
		t.Fatalf("got %d err %v", got, err)
	}
}

func TestPollUntilDoneHonorsDeadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := pollUntilDone(ctx, fastPolicy(100000), func(context.Context) (int, bool, error) {
		return 0, false, nil
	}, nil)
	if !errors.Is(err, ucerrors.ErrPollTimeout) || !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err=%v, want poll timeout from deadline", err)
	}
	if time.Since(start) > 2*time.Second {
		t.Fatal("poll loop ignored the deadline")
	}
}

func TestPollUntilDoneNotifies(t *testing.T) {
	var notified []time.Duration
	_, _ = pollUntilDone(context.Background(), fastPolicy(6), func(context.Context) (int, bool, error) {
		return 0, false, nil
	}, func(_ error, next time.Duration) {
		notified = append(notified, next)
	})
	want := []time.Duration{time.Millisecond, time.Millisecond, time.Millisecond, 2 * time.Millisecond, 2 * time.Millisecond}
	if len(notified) != len(want) {
		t.Fatalf("notified %v, want %v", notified, want)
	}
	for i := range want {
		if notified[i] != want[i] {
			t.Fatalf("notified %v, want %v", notified, want)
		}
	}
}
