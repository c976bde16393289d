package codec

import (
	"github.com/chronowerks/utstamp"
	"github.com/chronowerks/utstamp/calendar"
	"github.com/chronowerks/utstamp/errors"
)

// ParseStrict parses s in strict mode: uppercase Z designator required, at
// most 9 fractional digits, no offset of any kind.
func ParseStrict(s string) (utstamp.Instant, error) {
	return parse(s, true)
}

// ParseLenient parses s in lenient mode: a missing designator, lowercase z,
// and an explicit zero offset are accepted, and overlong fractions are
// truncated to nanosecond precision.
func ParseLenient(s string) (utstamp.Instant, error) {
	return parse(s, false)
}

func parse(s string, strict bool) (utstamp.Instant, error) {
	if s == "" {
		return 0, errors.EmptyInput(errors.OpParse)
	}

	b := []byte(s)
	if len(b) < 19 {
		return 0, errors.InvalidFormat(s, len(b), "timestamp shorter than YYYY-MM-DDTHH:MM:SS")
	}

	if b[4] != '-' || b[7] != '-' || b[10] != 'T' || b[13] != ':' || b[16] != ':' {
		return 0, errors.InvalidFormat(s, separatorPos(b), "separator mismatch")
	}

	year := calendar.ParseDigits(b[0:4], 4)
	month := calendar.ParseDigits(b[5:7], 2)
	day := calendar.ParseDigits(b[8:10], 2)
	hour := calendar.ParseDigits(b[11:13], 2)
	minute := calendar.ParseDigits(b[14:16], 2)
	second := calendar.ParseDigits(b[17:19], 2)

	if year < 0 || month < 0 || day < 0 || hour < 0 || minute < 0 || second < 0 {
		return 0, errors.InvalidFormat(s, -1, "non-digit in a fixed-width field")
	}

	if second == 60 {
		return 0, errors.LeapSecond(s)
	}
	if hour > 23 {
		return 0, errors.OutOfRange(errors.OpParse, "hour %d exceeds 23", hour)
	}
	if minute > 59 {
		return 0, errors.OutOfRange(errors.OpParse, "minute %d exceeds 59", minute)
	}
	if second > 59 {
		return 0, errors.OutOfRange(errors.OpParse, "second %d exceeds 59", second)
	}

	if !calendar.ValidateDate(year, month, day) {
		return 0, errors.InvalidDate(s, year, month, day)
	}

	var fracNanos int64
	pos := 19

	if pos < len(b) && b[pos] == '.' {
		pos++
		fracStart := pos
		for pos < len(b) && b[pos] >= '0' && b[pos] <= '9' {
			pos++
		}
		fracLen := pos - fracStart

		if fracLen == 0 {
			return 0, errors.InvalidFormat(s, fracStart, "decimal point without digits")
		}
		if fracLen > 9 {
			if strict {
				return 0, errors.FractionTooLong(s, fracLen)
			}
			fracLen = 9 // lenient: truncate to nanosecond precision
		}

		fracNanos = calendar.ParseFraction(b[fracStart : fracStart+fracLen])
	}

	if pos < len(b) {
		switch b[pos] {
		case 'Z':
			pos++
		case 'z':
			if strict {
				return 0, errors.InvalidFormat(s, pos, "lowercase 'z' designator")
			}
			pos++
		case '+', '-':
			if len(b)-pos < 6 || b[pos+3] != ':' {
				return 0, errors.InvalidFormat(s, pos, "malformed offset designator")
			}
			offHour := calendar.ParseDigits(b[pos+1:pos+3], 2)
			offMin := calendar.ParseDigits(b[pos+4:pos+6], 2)
			if offHour < 0 || offMin < 0 {
				return 0, errors.InvalidFormat(s, pos, "non-digit in offset")
			}
			if offHour != 0 || offMin != 0 {
				return 0, errors.UnsupportedOffset(s, pos)
			}
			if strict {
				return 0, errors.UnsupportedOffset(s, pos)
			}
			pos += 6
		default:
			// Unrecognized trailing content is a format error in both
			// modes; the trailing-byte check below reports it for the
			// lenient path.
			if strict {
				return 0, errors.InvalidFormat(s, pos, "expected 'Z' designator")
			}
		}
	} else if strict {
		return 0, errors.InvalidFormat(s, pos, "missing 'Z' designator")
	}

	if pos != len(b) {
		return 0, errors.InvalidFormat(s, pos, "trailing content after timestamp")
	}

	f := utstamp.Fields{
		Year:   year,
		Month:  month,
		Day:    day,
		Hour:   hour,
		Minute: minute,
		Second: second,
		Nanos:  int(fracNanos),
	}
	return calendar.Encode(f), nil
}

// separatorPos returns the offset of the first mismatched literal separator.
func separatorPos(b []byte) int {
	switch {
	case b[4] != '-':
		return 4
	case b[7] != '-':
		return 7
	case b[10] != 'T':
		return 10
	case b[13] != ':':
		return 13
	default:
		return 16
	}
}
