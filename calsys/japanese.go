package calsys

import (
	"github.com/chronowerks/utstamp"
	"github.com/chronowerks/utstamp/calendar"
	"github.com/chronowerks/utstamp/errors"
)

// Era identifies a Japanese calendar era (gengō).
type Era int

const (
	Reiwa  Era = iota // 2019-05-01 onwards
	Heisei            // 1989-01-08 to 2019-04-30
	Showa             // 1926-12-25 to 1989-01-07
	Taisho            // 1912-07-30 to 1926-12-24
	Meiji             // 1868-01-25 to 1912-07-29
)

// eraStart is an era table entry: the proleptic Gregorian date the era
// began and its romaji display name. The table is ordered most recent
// first and is immutable for the process lifetime.
type eraStart struct {
	era   Era
	year  int
	month int
	day   int
	name  string
}

var eras = [...]eraStart{
	{Reiwa, 2019, 5, 1, "Reiwa"},
	{Heisei, 1989, 1, 8, "Heisei"},
	{Showa, 1926, 12, 25, "Showa"},
	{Taisho, 1912, 7, 30, "Taisho"},
	{Meiji, 1868, 1, 25, "Meiji"},
}

// String returns the era name in romaji.
func (e Era) String() string {
	for _, entry := range eras {
		if entry.era == e {
			return entry.name
		}
	}
	return "Unknown"
}

// JapaneseEra resolves ts to its Japanese era and the year within that era
// (era-year 1 is the start year). Dates before the Meiji era begin are an
// out_of_range error.
func JapaneseEra(ts utstamp.Instant) (Era, int, error) {
	f := calendar.Decode(ts)

	for _, entry := range eras {
		afterStart := f.Year > entry.year ||
			(f.Year == entry.year && f.Month > entry.month) ||
			(f.Year == entry.year && f.Month == entry.month && f.Day >= entry.day)

		if afterStart {
			return entry.era, f.Year - entry.year + 1, nil
		}
	}

	return 0, 0, errors.OutOfRange(errors.OpConvert,
		"date %04d-%02d-%02d precedes the Meiji era", f.Year, f.Month, f.Day)
}
