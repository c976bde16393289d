package codec

import (
	"github.com/chronowerks/utstamp"
	"github.com/chronowerks/utstamp/calendar"
	"github.com/chronowerks/utstamp/errors"
)

// Format renders ts in the canonical form YYYY-MM-DDTHH:MM:SS[.f+]Z. The
// fractional part is included only when withNanos is true and the fraction
// is non-zero; trailing fraction zeros are removed.
func Format(ts utstamp.Instant, withNanos bool) string {
	buf := make([]byte, 0, utstamp.MaxFormattedLen)
	return string(Append(buf, ts, withNanos))
}

// Append appends the canonical form of ts to dst and returns the extended
// slice.
func Append(dst []byte, ts utstamp.Instant, withNanos bool) []byte {
	f := calendar.Decode(ts)

	dst = appendPadded(dst, f.Year, 4)
	dst = append(dst, '-')
	dst = appendPadded(dst, f.Month, 2)
	dst = append(dst, '-')
	dst = appendPadded(dst, f.Day, 2)
	dst = append(dst, 'T')
	dst = appendPadded(dst, f.Hour, 2)
	dst = append(dst, ':')
	dst = appendPadded(dst, f.Minute, 2)
	dst = append(dst, ':')
	dst = appendPadded(dst, f.Second, 2)

	if withNanos && f.Nanos > 0 {
		var frac [9]byte
		rem := f.Nanos
		for i := 8; i >= 0; i-- {
			frac[i] = '0' + byte(rem%10)
			rem /= 10
		}
		digits := 9
		for digits > 1 && frac[digits-1] == '0' {
			digits--
		}
		dst = append(dst, '.')
		dst = append(dst, frac[:digits]...)
	}

	return append(dst, 'Z')
}

// Render writes the canonical form of ts into dst and returns the number of
// bytes written. dst must be at least utstamp.MaxFormattedLen bytes; a
// shorter buffer yields a short_buffer error and nothing is written.
func Render(dst []byte, ts utstamp.Instant, withNanos bool) (int, error) {
	if len(dst) < utstamp.MaxFormattedLen {
		return 0, errors.ShortBuffer(utstamp.MaxFormattedLen, len(dst))
	}
	out := Append(dst[:0], ts, withNanos)
	return len(out), nil
}

func appendPadded(dst []byte, v, width int) []byte {
	var tmp [4]byte
	for i := width - 1; i >= 0; i-- {
		tmp[i] = '0' + byte(v%10)
		v /= 10
	}
	return append(dst, tmp[:width]...)
}
