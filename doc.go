// Package utstamp provides deterministic UTC timestamps with nanosecond
// precision: a fixed ISO-8601 text codec, calendar-system conversions, and
// a monotonic timestamp generator that tolerates a backward-moving clock.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	utstamp/             Root package with the Instant value type and Fields
//	├── calendar/        Proleptic Gregorian date math and digit parsing
//	├── codec/           Strict/lenient ISO-8601 parser and formatter
//	├── calsys/          Thai, Dangi, Minguo, Japanese era, ISO week-date
//	├── clock/           Host clock boundary and precision probing
//	├── monotonic/       Strictly increasing timestamp generation
//	├── errors/          Structured error types for parse/format failures
//	└── cmd/utsctl/      Command-line inspector and converter
//
// # Quick Start
//
// Parse, inspect, and re-format a timestamp:
//
//	ts, err := codec.ParseStrict("2024-12-14T03:13:21.123456789Z")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(codec.Format(ts, true)) // identical round-trip
//
// Generate strictly increasing timestamps:
//
//	gen := monotonic.New(clock.SystemSource{})
//	a := gen.Now()
//	b := gen.Now() // always b > a, even if the wall clock stepped back
//
// # Representation
//
// Every timestamp is a single signed 64-bit nanosecond count since
// 1970-01-01T00:00:00Z (roughly years 1677 through 2262). Broken-down
// calendar fields are always a transient decoding, never a storage format.
// All text is UTC: the canonical form is YYYY-MM-DDTHH:MM:SS[.f+]Z with
// trailing fraction zeros removed and no offset ever emitted.
//
// # Thread Safety
//
// calendar, codec, and calsys are pure and reentrant. monotonic.Generator
// keeps one atomic counter and one atomic observer slot; it is lock-free,
// so a regression observer may itself call the generator without deadlock.
//
// # Limitations
//
// Leap seconds are rejected, non-zero UTC offsets are rejected, and the
// monotonic generator's state is not persisted across process restarts.
package utstamp
