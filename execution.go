package debounce

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Execution describes a single firing of a deferred behavior.
// Its values are meaningful only for the duration of the callback invocation
// that received it.
type Execution struct {
	id        uuid.UUID
	label     string
	deferTime time.Duration
	beginTime time.Time
	workerID  uint64
	abandoned atomic.Bool

	ctx    context.Context
	cancel context.CancelCauseFunc
}

func newExecution(parent context.Context, label string, delay time.Duration) *Execution {
	ctx, cancel := context.WithCancelCause(parent)
	return &Execution{
		id:        uuid.New(),
		label:     label,
		deferTime: delay,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// ID returns the unique identifier of the execution.
func (e *Execution) ID() uuid.UUID { return e.id }

// Label returns the label of the behavior that produced the execution.
func (e *Execution) Label() string { return e.label }

// DeferTime returns the configured delay of the behavior.
func (e *Execution) DeferTime() time.Duration { return e.deferTime }

// BeginTime returns the time the callback invocation began.
func (e *Execution) BeginTime() time.Time { return e.beginTime }

// WorkerID returns the identifier of the worker that runs the callback.
// For captured-context behaviors it is the [Dispatcher.ID], otherwise
// each firing gets a fresh worker identifier.
func (e *Execution) WorkerID() uint64 { return e.workerID }

// IsAbandoned reports whether the execution was superseded by a later restart
// or the behavior was disposed.
// An abandoned execution is not interrupted, callbacks check the flag themselves.
func (e *Execution) IsAbandoned() bool { return e.abandoned.Load() }

func (e *Execution) abandon(cause error) {
	if e.abandoned.CompareAndSwap(false, true) {
		e.cancel(cause)
	}
}

// LogValue implements [slog.LogValuer].
func (e *Execution) LogValue() slog.Value {
	if e == nil {
		return slog.Value{}
	}
	return slog.GroupValue(
		slog.String("id", e.id.String()),
		slog.String("label", e.label),
		slog.Duration("defer_time", e.deferTime),
		slog.Time("begin_time", e.beginTime),
		slog.Uint64("worker_id", e.workerID),
		slog.Bool("abandoned", e.IsAbandoned()),
	)
}
