package debounce

//go:generate go tool errtrace -w .

import "github.com/ghettovoice/debounce/internal/errorutil"

// Common errors.
const (
	ErrInvalidArgument = errorutil.ErrInvalidArgument
	// ErrDisposed is returned when a disposed token is used.
	ErrDisposed Error = "deferred behavior disposed"
)

// Cancellation causes.
// They are observed through [context.Cause] on the context passed to asynchronous callbacks.
const (
	// ErrSuperseded is the cause of a pending wait cancelled by a later restart.
	ErrSuperseded Error = "deferred wait superseded"
	// ErrAbandoned is the cause of an execution abandoned by a later restart.
	ErrAbandoned Error = "deferred execution abandoned"
)

// Dispatcher errors.
const (
	// ErrDispatcherClosed is returned when posting to a closed dispatcher.
	ErrDispatcherClosed Error = "dispatcher closed"
	// ErrDispatcherBusy is returned when the dispatcher queue is full.
	ErrDispatcherBusy Error = "dispatcher busy"
)

// Error represents a debounce error.
// See [errorutil.Error].
type Error = errorutil.Error

// NewInvalidArgumentError creates a new error with [ErrInvalidArgument] or
// wraps provided error with [ErrInvalidArgument].
func NewInvalidArgumentError(args ...any) error {
	return errorutil.NewInvalidArgumentError(args...) //errtrace:skip
}
