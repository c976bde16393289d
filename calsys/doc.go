// Package calsys provides calendar-system conversions over Instants.
//
// Every calendar shares the same internal representation (nanoseconds since
// the Unix epoch); a calendar system only changes how a date is displayed
// or addressed:
//
//   - Thai (Buddhist Era), Dangi (Korean), and Minguo (ROC) years are fixed
//     additive offsets from the Gregorian year.
//   - Japanese eras are resolved against a static table of era start dates,
//     most recent first; dates before the Meiji era are an error.
//   - ISO week-dates address a day as (week-numbering year, week 1-53,
//     weekday 1-7 with Monday = 1), anchored to the Thursday of each week.
//
// All functions are pure and safe for unsynchronized concurrent use.
package calsys
