package monotonic

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/chronowerks/utstamp"
	"github.com/chronowerks/utstamp/clock"
)

// RegressionFunc observes a clock-regression event: expected is the minimum
// acceptable instant (last emitted + 1ns), actual is the raw source
// reading, and adjusted is the instant the generator emitted instead. It is
// invoked synchronously on the calling goroutine.
type RegressionFunc func(expected, actual, adjusted utstamp.Instant)

// Generator produces strictly increasing instants from a non-monotonic
// clock source. The zero last-emitted value means nothing has been emitted
// yet. Safe for concurrent use.
type Generator struct {
	src      clock.Source
	last     atomic.Int64
	observer atomic.Pointer[RegressionFunc]
}

// New returns a Generator over src. A nil src defaults to the system clock.
func New(src clock.Source) *Generator {
	if src == nil {
		src = clock.SystemSource{}
	}
	return &Generator{src: src}
}

// SetObserver registers fn to be invoked on clock-regression events.
// Last writer wins; a nil fn removes the observer.
func (g *Generator) SetObserver(fn RegressionFunc) {
	if fn == nil {
		g.observer.Store(nil)
		return
	}
	g.observer.Store(&fn)
}

// Now returns an instant strictly greater than every instant this generator
// has returned before. When the source reading does not advance past the
// last emitted value, the result is last + 1ns and the regression observer,
// if any, is invoked with the details.
func (g *Generator) Now() utstamp.Instant {
	reading := int64(g.src.Now())

	for {
		last := g.last.Load()

		next := reading
		regressed := reading <= last
		if regressed {
			next = last + 1
		}

		if !g.last.CompareAndSwap(last, next) {
			continue // another caller advanced the state, recompute
		}

		if regressed {
			expected := utstamp.Instant(last + 1)
			actual := utstamp.Instant(reading)
			adjusted := utstamp.Instant(next)
			if fn := g.observer.Load(); fn != nil {
				(*fn)(expected, actual, adjusted)
			}
			Logger().Warn("clock regression detected",
				zap.Int64("expected", int64(expected)),
				zap.Int64("actual", int64(actual)),
				zap.Int64("adjusted", int64(adjusted)))
		}

		return utstamp.Instant(next)
	}
}
