package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Op indicates which operation the error occurred in
type Op string

const (
	OpParse   Op = "parse"   // text to Instant
	OpFormat  Op = "format"  // Instant to text
	OpConvert Op = "convert" // calendar-system queries
	OpClock   Op = "clock"   // host clock access
)

// Kind categorizes the error. The set is closed.
type Kind string

const (
	KindInvalidFormat     Kind = "invalid_format"     // structural grammar mismatch
	KindInvalidDate       Kind = "invalid_date"       // well-formed but nonexistent calendar date
	KindOutOfRange        Kind = "out_of_range"       // field outside its legal bound
	KindUnsupportedOffset Kind = "unsupported_offset" // non-UTC or disallowed zero offset
	KindFractionTooLong   Kind = "fraction_too_long"  // more than 9 fractional digits
	KindLeapSecond        Kind = "leap_second"        // seconds field equals 60
	KindEmptyInput        Kind = "empty_input"        // required argument absent
	KindShortBuffer       Kind = "short_buffer"       // formatting buffer below MaxFormattedLen
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Op     Op
	Kind   Kind
	Input  string
	Detail string
	Pos    int // byte offset into Input, -1 when not applicable
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Op))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Pos >= 0 {
		b.WriteString(" at byte ")
		b.WriteString(strconv.Itoa(e.Pos))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Input != "" {
		b.WriteString(" in ")
		b.WriteString(strconv.Quote(e.Input))
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Op == t.Op && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(op Op, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Op:   op,
			Kind: kind,
			Pos:  -1,
		},
	}
}

// Input sets the offending input text
func (b *Builder) Input(s string) *Builder {
	b.err.Input = s
	return b
}

// Pos sets the byte offset of the failure within the input
func (b *Builder) Pos(pos int) *Builder {
	b.err.Pos = pos
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidFormat creates a structural grammar mismatch error
func InvalidFormat(input string, pos int, detail string) *Error {
	return &Error{
		Op:     OpParse,
		Kind:   KindInvalidFormat,
		Input:  input,
		Pos:    pos,
		Detail: detail,
	}
}

// InvalidDate creates an error for a nonexistent calendar date
func InvalidDate(input string, year, month, day int) *Error {
	return &Error{
		Op:     OpParse,
		Kind:   KindInvalidDate,
		Input:  input,
		Pos:    -1,
		Detail: fmt.Sprintf("calendar date %04d-%02d-%02d does not exist", year, month, day),
	}
}

// OutOfRange creates an error for a field outside its legal bound
func OutOfRange(op Op, detail string, args ...any) *Error {
	return &Error{
		Op:     op,
		Kind:   KindOutOfRange,
		Pos:    -1,
		Detail: fmt.Sprintf(detail, args...),
	}
}

// UnsupportedOffset creates an error for a disallowed timezone offset
func UnsupportedOffset(input string, pos int) *Error {
	return &Error{
		Op:     OpParse,
		Kind:   KindUnsupportedOffset,
		Input:  input,
		Pos:    pos,
		Detail: "only UTC is representable",
	}
}

// FractionTooLong creates an error for an overlong fractional part
func FractionTooLong(input string, digits int) *Error {
	return &Error{
		Op:     OpParse,
		Kind:   KindFractionTooLong,
		Input:  input,
		Pos:    -1,
		Detail: fmt.Sprintf("%d fractional digits exceed the 9 digit maximum", digits),
	}
}

// LeapSecond creates an error for a seconds field of 60
func LeapSecond(input string) *Error {
	return &Error{
		Op:     OpParse,
		Kind:   KindLeapSecond,
		Input:  input,
		Pos:    17,
		Detail: "leap seconds are not representable",
	}
}

// EmptyInput creates an error for an absent required argument
func EmptyInput(op Op) *Error {
	return &Error{
		Op:     op,
		Kind:   KindEmptyInput,
		Pos:    -1,
		Detail: "input is empty",
	}
}

// ShortBuffer creates an error for an undersized formatting buffer
func ShortBuffer(need, got int) *Error {
	return &Error{
		Op:     OpFormat,
		Kind:   KindShortBuffer,
		Pos:    -1,
		Detail: fmt.Sprintf("buffer of %d bytes is below the %d byte minimum", got, need),
	}
}
