package debounce_test

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/debounce"
	"github.com/ghettovoice/debounce/internal/log"
)

func TestDeferred(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		delay   time.Duration
		wantErr error
	}{
		{"zero", 0, debounce.ErrInvalidArgument},
		{"negative", -time.Millisecond, debounce.ErrInvalidArgument},
		{"positive", 50 * time.Millisecond, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			f, err := debounce.Deferred(c.delay)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("debounce.Deferred(%v) error = %v, want %v\ndiff (-got +want):\n%v", c.delay, err, c.wantErr, diff)
			}
			if err != nil {
				return
			}
			if got := f.Delay(); got != c.delay {
				t.Errorf("f.Delay() = %v, want %v", got, c.delay)
			}
		})
	}
}

func TestDeferredMillis(t *testing.T) {
	t.Parallel()

	cases := []struct {
		ms        float64
		wantDelay time.Duration
		wantErr   error
	}{
		{0, 0, debounce.ErrInvalidArgument},
		{-1, 0, debounce.ErrInvalidArgument},
		{math.NaN(), 0, debounce.ErrInvalidArgument},
		{math.Inf(1), 0, debounce.ErrInvalidArgument},
		{1e300, 0, debounce.ErrInvalidArgument},
		{250, 250 * time.Millisecond, nil},
		{0.5, 500 * time.Microsecond, nil},
	}
	for _, c := range cases {
		f, err := debounce.DeferredMillis(c.ms)
		if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
			t.Errorf("debounce.DeferredMillis(%v) error = %v, want %v\ndiff (-got +want):\n%v", c.ms, err, c.wantErr, diff)
			continue
		}
		if err == nil && f.Delay() != c.wantDelay {
			t.Errorf("debounce.DeferredMillis(%v).Delay() = %v, want %v", c.ms, f.Delay(), c.wantDelay)
		}
	}
}

func TestDeferredMillis_OutOfRange(t *testing.T) {
	t.Parallel()

	for _, ms := range []float64{1e300, math.Inf(1), float64(math.MaxInt64)} {
		_, err := debounce.DeferredMillis(ms)
		if err == nil {
			t.Errorf("debounce.DeferredMillis(%v) error = nil, want %v", ms, debounce.ErrInvalidArgument)
			continue
		}
		if !strings.Contains(err.Error(), "out of range") {
			t.Errorf("debounce.DeferredMillis(%v) error = %q, want out of range error", ms, err)
		}
	}
}

func TestFactory_Invoke_InvalidArgument(t *testing.T) {
	t.Parallel()

	f, err := debounce.Deferred(50 * time.Millisecond)
	if err != nil {
		t.Fatalf("debounce.Deferred() error = %v, want nil", err)
	}

	cases := []struct {
		name string
		cb   debounce.Callback
		opts *debounce.InvokeOptions
	}{
		{"nil callback", nil, nil},
		{"nil action", debounce.Action(nil), nil},
		{"nil async with param", debounce.AsyncWith[int](1, nil), nil},
		{"no dispatcher to capture", debounce.Action(func() {}), &debounce.InvokeOptions{CapturedContext: true}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			tok, err := f.Invoke(t.Context(), c.cb, c.opts)
			if diff := cmp.Diff(err, debounce.ErrInvalidArgument, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("f.Invoke() error = %v, want %v\ndiff (-got +want):\n%v", err, debounce.ErrInvalidArgument, diff)
			}
			if tok != nil {
				t.Errorf("f.Invoke() token = %v, want nil", tok)
			}
		})
	}
}

func TestFactory_Invoke_Shapes(t *testing.T) {
	t.Parallel()

	type firing struct {
		param   string
		hasExec bool
	}

	f, err := debounce.Deferred(50 * time.Millisecond)
	if err != nil {
		t.Fatalf("debounce.Deferred() error = %v, want nil", err)
	}

	cases := []struct {
		name string
		cb   func(ch chan<- firing) debounce.Callback
		want firing
	}{
		{
			"action",
			func(ch chan<- firing) debounce.Callback {
				return debounce.Action(func() { ch <- firing{} })
			},
			firing{},
		},
		{
			"action_with_param",
			func(ch chan<- firing) debounce.Callback {
				return debounce.ActionWith("x", func(p string) { ch <- firing{param: p} })
			},
			firing{param: "x"},
		},
		{
			"action_exec",
			func(ch chan<- firing) debounce.Callback {
				return debounce.ActionExec(func(e *debounce.Execution) { ch <- firing{hasExec: e != nil} })
			},
			firing{hasExec: true},
		},
		{
			"action_exec_with_param",
			func(ch chan<- firing) debounce.Callback {
				return debounce.ActionExecWith("x", func(e *debounce.Execution, p string) {
					ch <- firing{param: p, hasExec: e != nil}
				})
			},
			firing{param: "x", hasExec: true},
		},
		{
			"async",
			func(ch chan<- firing) debounce.Callback {
				return debounce.Async(func(context.Context) error {
					ch <- firing{}
					return nil
				})
			},
			firing{},
		},
		{
			"async_with_param",
			func(ch chan<- firing) debounce.Callback {
				return debounce.AsyncWith("x", func(_ context.Context, p string) error {
					ch <- firing{param: p}
					return nil
				})
			},
			firing{param: "x"},
		},
		{
			"async_exec",
			func(ch chan<- firing) debounce.Callback {
				return debounce.AsyncExec(func(_ context.Context, e *debounce.Execution) error {
					ch <- firing{hasExec: e != nil}
					return nil
				})
			},
			firing{hasExec: true},
		},
		{
			"async_exec_with_param",
			func(ch chan<- firing) debounce.Callback {
				return debounce.AsyncExecWith("x", func(_ context.Context, e *debounce.Execution, p string) error {
					ch <- firing{param: p, hasExec: e != nil}
					return nil
				})
			},
			firing{param: "x", hasExec: true},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			ch := make(chan firing, 1)
			cb := c.cb(ch)
			if got := cb.String(); got != c.name {
				t.Errorf("cb.String() = %q, want %q", got, c.name)
			}

			clk := newClock()
			tok, err := f.Invoke(t.Context(), cb, &debounce.InvokeOptions{Clock: clk, Log: log.Noop})
			if err != nil {
				t.Fatalf("f.Invoke() error = %v, want nil", err)
			}
			defer tok.Dispose()

			clk.Advance(50 * time.Millisecond)
			if diff := cmp.Diff(recv(t, ch), c.want, cmp.AllowUnexported(firing{})); diff != "" {
				t.Errorf("firing mismatch\ndiff (-got +want):\n%v", diff)
			}
		})
	}
}
