package debounce

import (
	"context"
	"fmt"
)

// Callback is a unit of work scheduled by a [Factory].
// Build it with one of [Action], [ActionWith], [ActionExec], [ActionExecWith],
// [Async], [AsyncWith], [AsyncExec] or [AsyncExecWith].
type Callback interface {
	// invoke runs the callback for the execution.
	// Errors of asynchronous callbacks are passed to report.
	invoke(exec *Execution, report func(error))
	isAsync() bool
	isNil() bool
	fmt.Stringer
}

// adapter is the single implementation behind every callback shape.
// Shapes without a parameter use struct{} for T, shapes that ignore the execution
// or the context simply drop them.
type adapter[T any] struct {
	shape string
	param T
	async bool
	noFn  bool
	fn    func(ctx context.Context, exec *Execution, param T) error
}

func (a *adapter[T]) invoke(exec *Execution, report func(error)) {
	if !a.async {
		a.fn(exec.ctx, exec, a.param) //nolint:errcheck
		return
	}

	go func() {
		if err := a.fn(exec.ctx, exec, a.param); err != nil {
			report(err)
		}
	}()
}

func (a *adapter[T]) isAsync() bool { return a.async }

func (a *adapter[T]) isNil() bool { return a == nil || a.noFn }

func (a *adapter[T]) String() string { return a.shape }

func newAdapter[T any](
	shape string,
	param T,
	async bool,
	noFn bool,
	fn func(context.Context, *Execution, T) error,
) Callback {
	return &adapter[T]{
		shape: shape,
		param: param,
		async: async,
		noFn:  noFn,
		fn:    fn,
	}
}

// Action returns a callback that calls fn.
func Action(fn func()) Callback {
	return newAdapter("action", struct{}{}, false, fn == nil,
		func(context.Context, *Execution, struct{}) error {
			fn()
			return nil
		},
	)
}

// ActionWith returns a callback that calls fn with param.
// The parameter is captured once, every firing receives the same value.
func ActionWith[T any](param T, fn func(T)) Callback {
	return newAdapter("action_with_param", param, false, fn == nil,
		func(_ context.Context, _ *Execution, p T) error {
			fn(p)
			return nil
		},
	)
}

// ActionExec returns a callback that calls fn with the firing execution.
func ActionExec(fn func(*Execution)) Callback {
	return newAdapter("action_exec", struct{}{}, false, fn == nil,
		func(_ context.Context, exec *Execution, _ struct{}) error {
			fn(exec)
			return nil
		},
	)
}

// ActionExecWith returns a callback that calls fn with the firing execution and param.
func ActionExecWith[T any](param T, fn func(*Execution, T)) Callback {
	return newAdapter("action_exec_with_param", param, false, fn == nil,
		func(_ context.Context, exec *Execution, p T) error {
			fn(exec, p)
			return nil
		},
	)
}

// Async returns a callback that starts fn on a new goroutine.
// The firing does not wait for fn to return. The context is cancelled when the
// execution is abandoned or the behavior disposed. A non-nil error returned from fn
// is reported to the token error handlers.
func Async(fn func(context.Context) error) Callback {
	return newAdapter("async", struct{}{}, true, fn == nil,
		func(ctx context.Context, _ *Execution, _ struct{}) error {
			return fn(ctx)
		},
	)
}

// AsyncWith is like [Async] but passes param to fn.
func AsyncWith[T any](param T, fn func(context.Context, T) error) Callback {
	return newAdapter("async_with_param", param, true, fn == nil,
		func(ctx context.Context, _ *Execution, p T) error {
			return fn(ctx, p)
		},
	)
}

// AsyncExec is like [Async] but passes the firing execution to fn.
func AsyncExec(fn func(context.Context, *Execution) error) Callback {
	return newAdapter("async_exec", struct{}{}, true, fn == nil,
		func(ctx context.Context, exec *Execution, _ struct{}) error {
			return fn(ctx, exec)
		},
	)
}

// AsyncExecWith is like [Async] but passes the firing execution and param to fn.
func AsyncExecWith[T any](param T, fn func(context.Context, *Execution, T) error) Callback {
	return newAdapter("async_exec_with_param", param, true, fn == nil,
		func(ctx context.Context, exec *Execution, p T) error {
			return fn(ctx, exec, p)
		},
	)
}
