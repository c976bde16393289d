// Package monotonic generates strictly increasing timestamps from a clock
// source that carries no monotonicity guarantee of its own.
//
// A Generator remembers the last instant it emitted in a single atomic
// value. When the source reading does not advance past that value — the
// clock stalled or stepped backward — the generator synthesizes the last
// value plus one nanosecond and reports the event to an optional observer.
// The update path is a lock-free compare-and-swap loop, so concurrent
// callers can never both succeed with equal values, and an observer is free
// to call the generator re-entrantly.
//
// Each Generator owns its own state, so independent generators (for
// example, one per test) do not interfere. The package also exposes a
// process-wide default over the system clock via Now and SetObserver.
//
// Generator state lives only in process memory: after a restart the first
// reading wins unconditionally, even if the clock stepped backward across
// the restart.
package monotonic
