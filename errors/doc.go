// Package errors provides structured error types for the utstamp library.
//
// Errors are categorized by Op (which operation failed) and Kind (error
// category). The Kind taxonomy is closed: every parse, format, and calendar
// failure maps to exactly one Kind so callers can branch on it.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.OpParse, errors.KindInvalidFormat).
//		Input(s).
//		Pos(10).
//		Detail("separator %q expected", 'T').
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidDate(s, 2023, 2, 29)
//	err := errors.UnsupportedOffset(s, 19)
//
// All errors implement the standard error interface and support errors.Is/As;
// two errors match under errors.Is when their Op and Kind are equal.
package errors
