// Package calendar provides proleptic Gregorian date math over the Instant
// representation.
//
// Encode and Decode convert between broken-down Fields and nanoseconds since
// the Unix epoch; they are exact inverses over the validated range. Day
// counts are resolved by iterating whole years and months away from 1970,
// which keeps the arithmetic table-free and exact in both directions at a
// cost that is negligible for the ~600 year span an int64 of nanoseconds
// can hold.
//
// # Contents
//
//   - calendar.go: leap years, month lengths, validation, Encode/Decode
//   - digits.go: fixed-width ASCII digit and fraction parsing
//
// All functions are pure and safe for unsynchronized concurrent use.
package calendar
