// Package clock defines the host clock boundary.
//
// The library never reads the operating system clock directly; everything
// that needs the current time takes a Source. A Source is a best-effort
// wall-clock read with no monotonicity contract — consumers that need
// ordering wrap it in a monotonic.Generator.
//
// SystemSource adapts the Go runtime clock. SourceFunc adapts a plain
// function, which is the usual way to script a clock in tests.
//
// DetectPrecision samples a Source to estimate how many trailing decimal
// digits of a reading carry real information on the current platform.
package clock
