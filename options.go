package debounce

import (
	"context"
	"log/slog"

	"github.com/ghettovoice/debounce/clock"
	"github.com/ghettovoice/debounce/internal/log"
)

// ErrorHandler is called with errors that the engine cannot return to a caller:
// failed dispatch of a captured-context firing and errors returned by
// asynchronous callbacks.
type ErrorHandler = func(ctx context.Context, exec *Execution, err error)

// InvokeOptions contains options for [Factory.Invoke].
type InvokeOptions struct {
	// Label is the name of the behavior. It is reported by [Execution.Label]
	// and attached to log records.
	Label string
	// CapturedContext makes every firing run on the [Dispatcher] carried by the
	// construction context, see [ContextWithDispatcher].
	// Ignored when Dispatcher is set.
	CapturedContext bool
	// Dispatcher is the dispatcher that runs every firing.
	// If nil and CapturedContext is false, firings run on the worker goroutine
	// that observed the delay expiration.
	Dispatcher Dispatcher
	// Paused creates the behavior in idle state. The first window starts with
	// the first [Token.Restart]. By default the first window starts right away.
	Paused bool
	// Clock is the time source.
	// If nil, the [clock.Real] will be used.
	Clock clock.Clock
	// OnError is the initial error handler, see [Token.OnError].
	OnError ErrorHandler
	// Log is the logger that will be used with the behavior.
	// If nil, the [log.Default] will be used.
	Log *slog.Logger
}

func (o *InvokeOptions) label() string {
	if o == nil {
		return ""
	}
	return o.Label
}

func (o *InvokeOptions) dispatcher(ctx context.Context) (Dispatcher, bool) {
	if o == nil {
		return nil, false
	}
	if o.Dispatcher != nil {
		return o.Dispatcher, true
	}
	if o.CapturedContext {
		d, ok := DispatcherFromContext(ctx)
		return d, ok
	}
	return nil, false
}

func (o *InvokeOptions) captured() bool {
	return o != nil && (o.Dispatcher != nil || o.CapturedContext)
}

func (o *InvokeOptions) paused() bool {
	return o != nil && o.Paused
}

func (o *InvokeOptions) clock() clock.Clock {
	if o == nil || o.Clock == nil {
		return clock.Real()
	}
	return o.Clock
}

func (o *InvokeOptions) onError() ErrorHandler {
	if o == nil {
		return nil
	}
	return o.OnError
}

func (o *InvokeOptions) log() *slog.Logger {
	if o == nil || o.Log == nil {
		return log.Default()
	}
	return o.Log
}
