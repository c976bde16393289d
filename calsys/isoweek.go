package calsys

import (
	"github.com/chronowerks/utstamp"
	"github.com/chronowerks/utstamp/calendar"
)

const nanosPerDay = int64(86400) * 1_000_000_000

// ISOWeek returns the ISO-8601 week-date of ts: the week-numbering year,
// week number 1-53, and weekday 1-7 with Monday = 1. The week-numbering
// year differs from the calendar year for the first and last few days of
// January and December when the week's Thursday falls in the adjacent year.
func ISOWeek(ts utstamp.Instant) (year, week, day int) {
	f := calendar.Decode(ts)

	// 1970-01-01 was a Thursday, so shifting the absolute day count by 3
	// makes Monday land on 0.
	days := int64(ts) / nanosPerDay
	if int64(ts)%nanosPerDay < 0 {
		days--
	}
	dow := int((days + 3) % 7)
	if dow < 0 {
		dow += 7
	}
	day = dow + 1

	dayOfYear := 0
	for m := 1; m < f.Month; m++ {
		dayOfYear += calendar.DaysInMonth(f.Year, m)
	}
	dayOfYear += f.Day

	// The ISO week belongs to the year containing its Thursday.
	thursday := dayOfYear + (3 - dow)

	year = f.Year
	if thursday < 1 {
		year = f.Year - 1
		if calendar.IsLeapYear(year) {
			thursday += 366
		} else {
			thursday += 365
		}
	} else {
		yearDays := 365
		if calendar.IsLeapYear(f.Year) {
			yearDays = 366
		}
		if thursday > yearDays {
			year = f.Year + 1
			thursday -= yearDays
		}
	}

	week = (thursday + 6) / 7
	return year, week, day
}
