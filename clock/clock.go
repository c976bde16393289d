package clock

import (
	"time"

	"github.com/chronowerks/utstamp"
)

// Source supplies the current instant. Readings are best-effort wall-clock
// values, UTC-normalized, with no monotonicity guarantee: consecutive calls
// may return equal or decreasing instants.
type Source interface {
	Now() utstamp.Instant
}

// SystemSource reads the host system clock.
type SystemSource struct{}

// Now returns the current wall-clock instant.
func (SystemSource) Now() utstamp.Instant {
	return utstamp.Instant(time.Now().UnixNano())
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func() utstamp.Instant

// Now calls f.
func (f SourceFunc) Now() utstamp.Instant {
	return f()
}
