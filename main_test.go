package debounce_test

import (
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/ghettovoice/debounce/clock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var epoch = time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)

func newClock() *clock.Fake { return clock.NewFake(epoch) }

const waitTimeout = time.Second

func recv[T any](t *testing.T, ch <-chan T) T {
	t.Helper()

	select {
	case v := <-ch:
		return v
	case <-time.After(waitTimeout):
		var zero T
		t.Fatalf("nothing received within %v", waitTimeout)
		return zero
	}
}

func noRecv[T any](t *testing.T, ch <-chan T, d time.Duration) {
	t.Helper()

	select {
	case v := <-ch:
		t.Fatalf("unexpectedly received %v", v)
	case <-time.After(d):
	}
}
