package utstamp

// Instant is a point in time: signed nanoseconds since 1970-01-01T00:00:00Z.
// The zero value is the Unix epoch. Instants compare with the ordinary
// integer operators and order totally.
type Instant int64

// FromUnixNanos converts a raw nanosecond count into an Instant.
func FromUnixNanos(n int64) Instant {
	return Instant(n)
}

// UnixNanos returns the nanosecond count since the Unix epoch.
func (ts Instant) UnixNanos() int64 {
	return int64(ts)
}

// Before reports whether ts is earlier than other.
func (ts Instant) Before(other Instant) bool {
	return ts < other
}

// After reports whether ts is later than other.
func (ts Instant) After(other Instant) bool {
	return ts > other
}

// Fields is the broken-down calendar form of an Instant. It is always a
// transient decoding produced by calendar.Decode; an Instant is the only
// storage representation.
type Fields struct {
	Year   int // 0-9999 over the validated range
	Month  int // 1-12
	Day    int // 1-31, bounded by month and leap year
	Hour   int // 0-23
	Minute int // 0-59
	Second int // 0-59; 60 (leap second) is rejected
	Nanos  int // fractional second, 0-999999999
}

// MaxFormattedLen is the buffer capacity required to format any Instant:
// 19 fixed digits and separators, "T", "Z", ".", up to 9 fraction digits,
// plus the terminator slot kept for wire compatibility.
const MaxFormattedLen = 32
