package clock

// Precision is the clock resolution observed at runtime. Lower values mean
// higher precision.
type Precision int

const (
	PrecisionNanosecond  Precision = iota // full nanosecond precision
	PrecisionMicrosecond                  // last 3 digits always zero
	PrecisionMillisecond                  // last 6 digits always zero
	PrecisionSecond                       // second precision only
)

var precisionNames = [...]string{"nanosecond", "microsecond", "millisecond", "second"}

func (p Precision) String() string {
	if p < PrecisionNanosecond || p > PrecisionSecond {
		return "unknown"
	}
	return precisionNames[p]
}

const precisionSamples = 100

// DetectPrecision estimates the resolution of src by sampling it repeatedly
// and inspecting how many trailing decimal digits ever carry information.
// The estimate is a lower bound: a coarse clock can never be reported as
// finer than it is, but an idle fine clock may momentarily look coarse.
func DetectPrecision(src Source) Precision {
	var hasNanos, hasMicros, hasMillis bool

	for i := 0; i < precisionSamples; i++ {
		n := src.Now().UnixNanos()
		if n%1_000 != 0 {
			hasNanos = true
		}
		if n%1_000_000 != 0 {
			hasMicros = true
		}
		if n%1_000_000_000 != 0 {
			hasMillis = true
		}
	}

	switch {
	case hasNanos:
		return PrecisionNanosecond
	case hasMicros:
		return PrecisionMicrosecond
	case hasMillis:
		return PrecisionMillisecond
	default:
		return PrecisionSecond
	}
}
