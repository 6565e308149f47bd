package debounce

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"braces.dev/errtrace"

	"github.com/ghettovoice/debounce/internal/errorutil"
	"github.com/ghettovoice/debounce/internal/ident"
	"github.com/ghettovoice/debounce/internal/log"
)

// DefaultLoopQueueSize is the task queue capacity of a [Loop] created without options.
const DefaultLoopQueueSize = 1024

// LoopOptions contains options for a [Loop].
type LoopOptions struct {
	// QueueSize is the capacity of the task queue.
	// If zero, [DefaultLoopQueueSize] is used.
	QueueSize int
	// Log is the logger that will be used with the loop.
	// If nil, the [log.Default] will be used.
	Log *slog.Logger
}

func (o *LoopOptions) queueSize() int {
	if o == nil || o.QueueSize <= 0 {
		return DefaultLoopQueueSize
	}
	return o.QueueSize
}

func (o *LoopOptions) log() *slog.Logger {
	if o == nil || o.Log == nil {
		return log.Default()
	}
	return o.Log
}

// Loop is a [Dispatcher] that runs posted functions one by one on the goroutine
// that calls [Loop.Run].
type Loop struct {
	id      uint64
	tasks   chan func()
	quit    chan struct{}
	running atomic.Bool
	log     *slog.Logger

	mu     sync.RWMutex
	closed bool
}

// NewLoop creates a new loop. Options are optional, nil is valid.
// The loop does nothing until [Loop.Run] is called.
func NewLoop(opts *LoopOptions) *Loop {
	l := &Loop{
		id:    ident.Next(),
		tasks: make(chan func(), opts.queueSize()),
		quit:  make(chan struct{}),
	}
	l.log = opts.log().With(slog.Uint64("loop_id", l.id))
	return l
}

// ID returns the loop identifier.
// It is reported as [Execution.WorkerID] of firings marshalled to the loop.
func (l *Loop) ID() uint64 { return l.id }

// Post queues fn for execution on the loop goroutine.
// It fails with [ErrDispatcherClosed] when the loop is closed and with
// [ErrDispatcherBusy] when the queue is full.
func (l *Loop) Post(fn func()) error {
	if fn == nil {
		return errtrace.Wrap(NewInvalidArgumentError("nil func"))
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.closed {
		return errtrace.Wrap(ErrDispatcherClosed)
	}

	select {
	case l.tasks <- fn:
		return nil
	default:
		return errtrace.Wrap(errorutil.NewWrapperError(ErrDispatcherBusy, "queue is full"))
	}
}

// Run executes posted functions on the calling goroutine until the loop is closed
// or ctx is done.
// On close, functions queued before closing are run before Run returns nil.
// On ctx cancellation the queue is left as is and the context error is returned.
// Panics raised by posted functions propagate to the caller of Run.
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrDispatcherBusy, "loop is already running"))
	}
	defer l.running.Store(false)

	l.log.LogAttrs(ctx, slog.LevelDebug, "loop started")

	for {
		select {
		case <-ctx.Done():
			l.log.LogAttrs(ctx, slog.LevelDebug, "loop stopped", slog.Any("error", ctx.Err()))
			return errtrace.Wrap(ctx.Err())
		case <-l.quit:
			n := l.drain()
			l.log.LogAttrs(ctx, slog.LevelDebug, "loop closed", slog.Int("drained", n))
			return nil
		case fn := <-l.tasks:
			fn()
		}
	}
}

func (l *Loop) drain() int {
	var n int
	for {
		select {
		case fn := <-l.tasks:
			fn()
			n++
		default:
			return n
		}
	}
}

// Close closes the loop. Later posts fail with [ErrDispatcherClosed].
// It is safe to call Close multiple times.
func (l *Loop) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true
	close(l.quit)
	return nil
}

// Closed reports whether the loop is closed.
func (l *Loop) Closed() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.closed
}
