// Package debounce implements deferred execution with debounce semantics.
//
// A [Factory] created with [Deferred] schedules a [Callback] to run after a delay.
// The returned [Token] restarts the delay window with [Token.Restart]: a restart
// issued before the window elapses supersedes the pending run, so a burst of restarts
// produces a single firing timed from the last one.
//
//	f, err := debounce.Deferred(300 * time.Millisecond)
//	if err != nil {
//	    return err
//	}
//	tok, err := f.Invoke(ctx, debounce.ActionWith(query, search), nil)
//	if err != nil {
//	    return err
//	}
//	defer tok.Close()
//
//	// on every key press
//	tok.Restart()
//
// By default the callback runs on the goroutine that observed the delay expiration.
// With [InvokeOptions.Dispatcher] or [InvokeOptions.CapturedContext] every firing is
// posted to a [Dispatcher] captured at construction, for example a [Loop] that owns
// UI state.
//
// Each firing produces an [Execution] that describes it. An execution is abandoned
// when a later restart supersedes it; callbacks that care check
// [Execution.IsAbandoned], asynchronous callbacks also see their context cancelled.
package debounce
