// Package codec implements the textual ISO-8601 subset for Instants.
//
// The grammar is byte-exact with fixed field positions:
//
//	YYYY-MM-DDTHH:MM:SS[.fraction](Z|z|+HH:MM|-HH:MM|<nothing>)
//
// One routine drives both parsing modes; they differ only in which trailing
// designator and fraction-length variants are accepted:
//
//   - Strict: uppercase Z required, at most 9 fraction digits, any offset
//     (including +00:00) rejected.
//   - Lenient: lowercase z, a missing designator (implicit UTC), and a zero
//     offset are accepted; overlong fractions are truncated to 9 digits.
//     A non-zero offset is rejected in both modes, as is any trailing
//     content that does not match one of the designator forms.
//
// The formatter emits the canonical form YYYY-MM-DDTHH:MM:SS[.f+]Z with
// trailing fraction zeros removed (at least one digit kept), uppercase T
// and Z, and never an offset. Render writes into a caller buffer of at
// least utstamp.MaxFormattedLen bytes and fails without writing when the
// buffer is short.
//
// All functions are pure and safe for unsynchronized concurrent use.
package codec
