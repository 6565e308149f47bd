package debounce

import (
	"context"
	"math"
	"time"

	"braces.dev/errtrace"
)

const maxDelayMillis = float64(math.MaxInt64) / float64(time.Millisecond)

// Factory creates deferred behaviors with a fixed delay.
type Factory struct {
	delay time.Duration
}

// Deferred creates a new factory of behaviors deferred by delay.
// It fails with [ErrInvalidArgument] when delay is not positive.
func Deferred(delay time.Duration) (*Factory, error) {
	if delay <= 0 {
		return nil, errtrace.Wrap(NewInvalidArgumentError("delay %v is not positive", delay))
	}
	return &Factory{delay}, nil
}

// DeferredMillis is like [Deferred] but takes the delay in milliseconds.
func DeferredMillis(ms float64) (*Factory, error) {
	if math.IsNaN(ms) || ms <= 0 {
		return nil, errtrace.Wrap(NewInvalidArgumentError("delay %vms is not positive", ms))
	}
	if ms > maxDelayMillis {
		return nil, errtrace.Wrap(NewInvalidArgumentError("delay %vms is out of range", ms))
	}
	return errtrace.Wrap2(Deferred(time.Duration(ms * float64(time.Millisecond))))
}

// Delay returns the factory delay.
func (f *Factory) Delay() time.Duration { return f.delay }

// Invoke creates a new behavior that runs cb after the factory delay and returns its token.
// Unless [InvokeOptions.Paused] is set the first delay window starts right away.
//
// With [InvokeOptions.CapturedContext] the dispatcher is captured from ctx.
// The values of ctx are visible to asynchronous callbacks, its cancellation is not.
// Options are optional, nil is valid.
func (f *Factory) Invoke(ctx context.Context, cb Callback, opts *InvokeOptions) (*Token, error) {
	if cb == nil || cb.isNil() {
		return nil, errtrace.Wrap(NewInvalidArgumentError("nil callback"))
	}

	b, err := newBehavior(ctx, f.delay, cb, opts)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &Token{b: b}, nil
}
