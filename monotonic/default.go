package monotonic

import (
	"github.com/chronowerks/utstamp"
	"github.com/chronowerks/utstamp/clock"
)

// std is the process-wide generator over the system clock.
var std = New(clock.SystemSource{})

// Now returns a strictly increasing instant from the process-wide default
// generator.
func Now() utstamp.Instant {
	return std.Now()
}

// SetObserver registers a clock-regression observer on the process-wide
// default generator. Last writer wins; nil removes it.
func SetObserver(fn RegressionFunc) {
	std.SetObserver(fn)
}
