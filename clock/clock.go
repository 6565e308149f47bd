package clock

import "time"

// Clock is a source of current time and timers.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
	// NewTimer creates a new timer that sends the current time on its channel
	// after at least duration d.
	NewTimer(d time.Duration) Timer
}

// Timer is a single event timer.
type Timer interface {
	// C returns the channel on which the time is delivered.
	C() <-chan time.Time
	// Stop prevents the timer from firing.
	// It returns true if the call stops the timer, false if the timer
	// has already expired or been stopped.
	Stop() bool
}

type realClock struct{}

var realClk Clock = realClock{}

// Real returns the clock backed by the time package.
func Real() Clock { return realClk }

func (realClock) Now() time.Time { return time.Now() }

func (realClock) NewTimer(d time.Duration) Timer { return realTimer{time.NewTimer(d)} }

type realTimer struct{ t *time.Timer }

func (t realTimer) C() <-chan time.Time { return t.t.C }

func (t realTimer) Stop() bool { return t.t.Stop() }
