package debounce

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"braces.dev/errtrace"
	"github.com/qmuntal/stateless"

	"github.com/ghettovoice/debounce/clock"
	"github.com/ghettovoice/debounce/internal/log"
	"github.com/ghettovoice/debounce/internal/types"
)

// State is a state of a deferred behavior.
type State string

const (
	// StateIdle is the state of a behavior that has not been restarted yet.
	StateIdle State = "idle"
	// StateWaiting is the state of a behavior with a pending delay window.
	StateWaiting State = "waiting"
	// StateFired is the state of a behavior whose last window elapsed.
	StateFired State = "fired"
	// StateDisposed is the terminal state.
	StateDisposed State = "disposed"
)

const (
	evtRestart = "restart"
	evtElapse  = "elapse"
	evtDispose = "dispose"
)

// behavior owns the restart/elapse/dispose state machine of one deferred callback.
type behavior struct {
	delay time.Duration
	label string
	strat strategy
	clk   clock.Clock
	log   *slog.Logger

	ctx    context.Context // lifetime, cancelled on dispose
	cancel context.CancelCauseFunc

	onErr types.Handlers[ErrorHandler]

	gen atomic.Uint64

	mu         sync.Mutex
	fsm        *stateless.StateMachine
	cb         Callback
	waitCancel context.CancelCauseFunc
	waitTmr    clock.Timer
	last       *Execution
	stats      Stats
}

func newBehavior(ctx context.Context, delay time.Duration, cb Callback, opts *InvokeOptions) (*behavior, error) {
	var strat strategy = workerStrategy{}
	if opts.captured() {
		d, ok := opts.dispatcher(ctx)
		if !ok {
			return nil, errtrace.Wrap(NewInvalidArgumentError("no dispatcher to capture"))
		}
		strat = capturedStrategy{d}
	}

	b := &behavior{
		delay: delay,
		label: opts.label(),
		strat: strat,
		clk:   opts.clock(),
		cb:    cb,
	}
	b.ctx, b.cancel = context.WithCancelCause(context.WithoutCancel(ctx))
	b.log = opts.log().With(
		slog.String("deferred", b.label),
		slog.Duration("delay", b.delay),
	)
	if fn := opts.onError(); fn != nil {
		b.onErr.Add(fn)
	}

	b.initFSM()

	if !opts.paused() {
		if err := b.restart(); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	return b, nil
}

func (b *behavior) initFSM() {
	b.fsm = stateless.NewStateMachine(StateIdle)
	b.fsm.OnTransitioned(b.logTransition)

	b.fsm.Configure(StateIdle).
		Permit(evtRestart, StateWaiting).
		Permit(evtDispose, StateDisposed)

	b.fsm.Configure(StateWaiting).
		OnEntry(b.actArm).
		PermitReentry(evtRestart).
		Permit(evtElapse, StateFired).
		Permit(evtDispose, StateDisposed)

	b.fsm.Configure(StateFired).
		OnEntryFrom(evtElapse, b.actFire).
		Permit(evtRestart, StateWaiting).
		Permit(evtDispose, StateDisposed)

	b.fsm.Configure(StateDisposed).
		OnEntry(b.actDispose).
		Ignore(evtDispose)
}

func (b *behavior) logTransition(ctx context.Context, tr stateless.Transition) {
	b.log.LogAttrs(ctx, slog.LevelDebug,
		"deferred behavior state changed",
		slog.Any("from", tr.Source),
		slog.Any("to", tr.Destination),
		slog.Any("trigger", tr.Trigger),
	)
}

func (b *behavior) state() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stateUnsafe()
}

// stateUnsafe returns the current state.
// Caller must hold the mutex.
func (b *behavior) stateUnsafe() State {
	return b.fsm.MustState().(State) //nolint:forcetypeassert
}

func (b *behavior) restart() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.stateUnsafe() == StateDisposed {
		return errtrace.Wrap(ErrDisposed)
	}
	return errtrace.Wrap(b.fsm.FireCtx(b.ctx, evtRestart))
}

func (b *behavior) dispose() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.stateUnsafe() == StateDisposed {
		return
	}
	if err := b.fsm.FireCtx(b.ctx, evtDispose); err != nil {
		b.log.LogAttrs(b.ctx, slog.LevelError, "failed to dispose deferred behavior", slog.Any("error", err))
	}
}

// actArm supersedes the pending window, if any, and starts a new one.
func (b *behavior) actArm(ctx context.Context, _ ...any) error {
	if b.last != nil {
		b.last.abandon(ErrAbandoned)
	}
	if b.stopWaitUnsafe(ErrSuperseded) {
		b.stats.Superseded++
	}

	waitCtx, cancel := context.WithCancelCause(b.ctx)
	gen := b.gen.Add(1)
	tmr := b.clk.NewTimer(b.delay)
	b.waitCancel, b.waitTmr = cancel, tmr
	b.stats.Restarts++

	b.log.LogAttrs(ctx, slog.LevelDebug,
		"deferred wait started",
		slog.Uint64("generation", gen),
		slog.Time("expires_at", b.clk.Now().Add(b.delay)),
	)

	go b.wait(waitCtx, gen, tmr)
	return nil
}

// actFire builds the execution of the elapsed window.
func (b *behavior) actFire(context.Context, ...any) error {
	if b.waitCancel != nil {
		b.waitCancel(nil)
	}
	b.waitCancel, b.waitTmr = nil, nil
	b.last = newExecution(b.ctx, b.label, b.delay)
	return nil
}

func (b *behavior) actDispose(ctx context.Context, _ ...any) error {
	if b.stopWaitUnsafe(ErrDisposed) {
		b.stats.Cancelled++
	}
	if b.last != nil {
		b.last.abandon(ErrDisposed)
	}
	b.cancel(ErrDisposed)
	b.cb = nil

	b.log.LogAttrs(ctx, slog.LevelDebug, "deferred behavior disposed", slog.Any("stats", log.FmtValue(b.stats, false)))
	return nil
}

// stopWaitUnsafe cancels the pending window.
// It returns true if there was one.
// Caller must hold the mutex.
func (b *behavior) stopWaitUnsafe(cause error) bool {
	if b.waitCancel == nil {
		return false
	}
	b.waitTmr.Stop()
	b.waitCancel(cause)
	b.waitCancel, b.waitTmr = nil, nil
	return true
}

func (b *behavior) wait(ctx context.Context, gen uint64, tmr clock.Timer) {
	select {
	case <-tmr.C():
	case <-ctx.Done():
		b.log.LogAttrs(ctx, slog.LevelDebug,
			"deferred wait discarded",
			slog.Uint64("generation", gen),
			slog.Any("cause", context.Cause(ctx)),
		)
		return
	}

	exec, cb := b.elapse(ctx, gen)
	if exec == nil {
		return
	}
	b.dispatch(exec, cb, gen)
}

// elapse moves the behavior to fired state if gen is still the live window.
func (b *behavior) elapse(waitCtx context.Context, gen uint64) (*Execution, Callback) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if cur := b.gen.Load(); cur != gen {
		b.log.LogAttrs(b.ctx, slog.LevelDebug,
			"stale deferred wait discarded",
			slog.Uint64("generation", gen),
			slog.Uint64("current_generation", cur),
		)
		return nil, nil
	}
	if waitCtx.Err() != nil {
		return nil, nil
	}

	if err := b.fsm.FireCtx(b.ctx, evtElapse); err != nil {
		panic(fmt.Errorf("fire %q in state %q: %w", evtElapse, b.stateUnsafe(), err))
	}
	return b.last, b.cb
}

func (b *behavior) dispatch(exec *Execution, cb Callback, gen uint64) {
	if cb == nil {
		return
	}

	err := b.strat.dispatch(func(workerID uint64) {
		b.mu.Lock()
		if b.stateUnsafe() == StateDisposed {
			b.stats.Cancelled++
			b.mu.Unlock()

			b.log.LogAttrs(b.ctx, slog.LevelDebug, "deferred firing skipped, behavior disposed", slog.Any("execution", exec))
			return
		}
		// a queued firing loses to any restart issued after it was posted
		if cur := b.gen.Load(); b.strat.captured() && cur != gen {
			b.stats.Superseded++
			b.mu.Unlock()

			b.log.LogAttrs(b.ctx, slog.LevelDebug,
				"deferred firing skipped, superseded while queued",
				slog.Any("execution", exec),
				slog.Uint64("generation", gen),
				slog.Uint64("current_generation", cur),
			)
			return
		}
		b.stats.Fired++
		b.mu.Unlock()

		exec.workerID = workerID
		exec.beginTime = b.clk.Now()

		b.log.LogAttrs(b.ctx, slog.LevelDebug,
			"deferred callback invoked",
			slog.Any("execution", exec),
			slog.String("callback", cb.String()),
			slog.Bool("async", cb.isAsync()),
			slog.Bool("captured", b.strat.captured()),
		)

		cb.invoke(exec, func(err error) {
			b.report(exec, errtrace.Wrap(fmt.Errorf("%s callback: %w", cb, err)))
		})
	})
	if err != nil {
		b.mu.Lock()
		b.stats.Dropped++
		b.mu.Unlock()

		b.report(exec, errtrace.Wrap(fmt.Errorf("dispatch %s callback: %w", cb, err)))
	}
}

// report passes err to the error handlers or logs it when there are none.
func (b *behavior) report(exec *Execution, err error) {
	if b.onErr.Len() == 0 {
		b.log.LogAttrs(b.ctx, slog.LevelError,
			"deferred firing failed",
			slog.Any("execution", exec),
			slog.Any("error", err),
		)
		return
	}
	for fn := range b.onErr.All() {
		fn(b.ctx, exec, err)
	}
}

func (b *behavior) getStats() Stats {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stats
}
