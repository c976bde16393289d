package calendar

// fraction multipliers indexed by digit count - 1: a run of n digits is
// zero-padded on the right to 9 digits of nanoseconds
var fractionScale = [9]int64{
	100_000_000, 10_000_000, 1_000_000, 100_000, 10_000, 1_000, 100, 10, 1,
}

// ParseDigits parses exactly n ASCII digits from the start of b into a
// non-negative integer. It returns -1 if b is shorter than n or any byte is
// not a digit.
func ParseDigits(b []byte, n int) int {
	if len(b) < n {
		return -1
	}
	val := 0
	for i := 0; i < n; i++ {
		c := b[i]
		if c < '0' || c > '9' {
			return -1
		}
		val = val*10 + int(c-'0')
	}
	return val
}

// ParseFraction parses a 1-9 digit fractional-seconds run into nanoseconds,
// zero-padding to 9 digits. It returns -1 if b is empty, longer than 9
// bytes, or contains a non-digit.
func ParseFraction(b []byte) int64 {
	if len(b) < 1 || len(b) > 9 {
		return -1
	}
	var val int64
	for _, c := range b {
		if c < '0' || c > '9' {
			return -1
		}
		val = val*10 + int64(c-'0')
	}
	return val * fractionScale[len(b)-1]
}
