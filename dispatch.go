package debounce

import (
	"context"

	"braces.dev/errtrace"

	"github.com/ghettovoice/debounce/internal/ident"
)

// Dispatcher runs posted functions on a specific execution context,
// for example an event loop goroutine that owns UI state.
type Dispatcher interface {
	// ID returns the identifier of the worker that runs posted functions.
	ID() uint64
	// Post queues fn for execution.
	// It must not block waiting for fn to run.
	Post(fn func()) error
}

//go:generate go tool mockgen -typed -destination=internal/testutil/dispatchmock/dispatcher.go -package=dispatchmock . Dispatcher

type dispatcherCtxKey struct{}

// ContextWithDispatcher returns a copy of ctx that carries d.
// Behaviors created with [InvokeOptions.CapturedContext] capture it at construction.
func ContextWithDispatcher(ctx context.Context, d Dispatcher) context.Context {
	return context.WithValue(ctx, dispatcherCtxKey{}, d)
}

// DispatcherFromContext returns the dispatcher carried by ctx.
func DispatcherFromContext(ctx context.Context) (Dispatcher, bool) {
	d, ok := ctx.Value(dispatcherCtxKey{}).(Dispatcher)
	return d, ok && d != nil
}

// strategy decides where a firing runs.
type strategy interface {
	dispatch(run func(workerID uint64)) error
	captured() bool
}

// workerStrategy runs the firing inline on the goroutine that woke up.
type workerStrategy struct{}

func (workerStrategy) dispatch(run func(uint64)) error {
	run(ident.Next())
	return nil
}

func (workerStrategy) captured() bool { return false }

// capturedStrategy marshals the firing to the captured dispatcher.
type capturedStrategy struct {
	d Dispatcher
}

func (s capturedStrategy) dispatch(run func(uint64)) error {
	id := s.d.ID()
	return errtrace.Wrap(s.d.Post(func() { run(id) }))
}

func (capturedStrategy) captured() bool { return true }
