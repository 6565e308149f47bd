// Package clock abstracts the time source used by debounce behaviors.
//
// [Real] is backed by the time package. [Fake] is a manually driven clock for
// deterministic tests: timers created from it fire only when [Fake.Advance]
// moves the clock past their deadline.
//
//	clk := clock.NewFake(time.Unix(0, 0))
//	tmr := clk.NewTimer(50 * time.Millisecond)
//	clk.Advance(50 * time.Millisecond)
//	<-tmr.C() // fires
//
// Both implementations are safe for concurrent use.
package clock
