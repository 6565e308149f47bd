package debounce

import (
	"log/slog"
	"sync/atomic"
	"time"

	"braces.dev/errtrace"
)

// Token is a handle of a deferred behavior created by [Factory.Invoke].
// It is safe for concurrent use.
type Token struct {
	b        *behavior
	disposed atomic.Bool
}

// Restart starts a new delay window.
// A pending window is superseded and never fires, the most recent execution
// is marked abandoned.
// It fails with [ErrDisposed] after [Token.Dispose].
func (t *Token) Restart() error {
	if t.disposed.Load() {
		return errtrace.Wrap(ErrDisposed)
	}
	return errtrace.Wrap(t.b.restart())
}

// Dispose stops the behavior. A pending window never fires and later restarts fail.
// A callback that is already running is not interrupted.
// It is safe to call Dispose multiple times.
func (t *Token) Dispose() {
	if t.disposed.CompareAndSwap(false, true) {
		t.b.dispose()
	}
}

// Close disposes the token, see [Token.Dispose].
// It implements [io.Closer] and always returns nil.
func (t *Token) Close() error {
	t.Dispose()
	return nil
}

// OnError registers a handler of errors that cannot be returned to a caller,
// see [ErrorHandler]. When no handler is registered such errors are logged.
func (t *Token) OnError(fn ErrorHandler) (cancel func()) {
	return t.b.onErr.Add(fn)
}

// State returns the current state of the behavior.
func (t *Token) State() State { return t.b.state() }

// Stats returns the behavior counters.
func (t *Token) Stats() Stats { return t.b.getStats() }

// Label returns the behavior label.
func (t *Token) Label() string { return t.b.label }

// Delay returns the behavior delay.
func (t *Token) Delay() time.Duration { return t.b.delay }

// LogValue implements [slog.LogValuer].
func (t *Token) LogValue() slog.Value {
	if t == nil {
		return slog.Value{}
	}
	return slog.GroupValue(
		slog.String("label", t.b.label),
		slog.Duration("delay", t.b.delay),
		slog.String("state", string(t.State())),
	)
}
