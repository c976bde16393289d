package calendar

import (
	"github.com/chronowerks/utstamp"
)

const (
	nanosPerSecond   = int64(1_000_000_000)
	secondsPerMinute = int64(60)
	secondsPerHour   = int64(3600)
	secondsPerDay    = int64(86400)
)

// month lengths for a common year; index 0 unused
var daysPerMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the number of days in the given month, accounting for
// leap years. It returns 0 when month is outside 1-12; callers must treat
// 0 as invalid.
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return daysPerMonth[month]
}

// ValidateDate reports whether (year, month, day) is a real calendar date
// within the supported year range 0-9999.
func ValidateDate(year, month, day int) bool {
	if year < 0 || year > 9999 {
		return false
	}
	if month < 1 || month > 12 {
		return false
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return false
	}
	return true
}

// daysFromEpoch returns the signed day count from 1970-01-01 to the given
// date, iterating whole years toward the target and then whole months.
func daysFromEpoch(year, month, day int) int64 {
	var days int64

	if year >= 1970 {
		for y := 1970; y < year; y++ {
			if IsLeapYear(y) {
				days += 366
			} else {
				days += 365
			}
		}
	} else {
		for y := year; y < 1970; y++ {
			if IsLeapYear(y) {
				days -= 366
			} else {
				days -= 365
			}
		}
	}

	for m := 1; m < month; m++ {
		days += int64(DaysInMonth(year, m))
	}

	return days + int64(day) - 1
}

// Encode converts broken-down fields to an Instant. It performs no range
// checking; callers validate with ValidateDate first.
func Encode(f utstamp.Fields) utstamp.Instant {
	days := daysFromEpoch(f.Year, f.Month, f.Day)
	seconds := days*secondsPerDay +
		int64(f.Hour)*secondsPerHour +
		int64(f.Minute)*secondsPerMinute +
		int64(f.Second)
	return utstamp.Instant(seconds*nanosPerSecond + int64(f.Nanos))
}

// Decode converts an Instant to broken-down fields. The fraction and
// time-of-day remainders are normalized to be non-negative so the result is
// a valid Fields value for instants before the epoch as well.
func Decode(ts utstamp.Instant) utstamp.Fields {
	totalSeconds := int64(ts) / nanosPerSecond
	remNanos := int64(ts) % nanosPerSecond
	if remNanos < 0 {
		remNanos += nanosPerSecond
		totalSeconds--
	}

	days := totalSeconds / secondsPerDay
	daySeconds := totalSeconds % secondsPerDay
	if daySeconds < 0 {
		daySeconds += secondsPerDay
		days--
	}

	f := utstamp.Fields{
		Hour:   int(daySeconds / secondsPerHour),
		Minute: int((daySeconds % secondsPerHour) / secondsPerMinute),
		Second: int(daySeconds % secondsPerMinute),
		Nanos:  int(remNanos),
	}

	year := 1970
	if days >= 0 {
		for {
			daysInYear := int64(365)
			if IsLeapYear(year) {
				daysInYear = 366
			}
			if days < daysInYear {
				break
			}
			days -= daysInYear
			year++
		}
	} else {
		for days < 0 {
			year--
			if IsLeapYear(year) {
				days += 366
			} else {
				days += 365
			}
		}
	}
	f.Year = year

	month := 1
	for {
		daysInMonth := int64(DaysInMonth(year, month))
		if days < daysInMonth {
			break
		}
		days -= daysInMonth
		month++
	}
	f.Month = month
	f.Day = int(days) + 1

	return f
}
