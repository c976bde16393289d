package codec

import (
	stderrors "errors"
	"testing"

	"github.com/chronowerks/utstamp"
	"github.com/chronowerks/utstamp/errors"
)

func kindOf(t *testing.T, err error) errors.Kind {
	t.Helper()
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("error %v is not a *errors.Error", err)
	}
	return e.Kind
}

func TestParseStrictAccepts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  utstamp.Instant
	}{
		{"epoch", "1970-01-01T00:00:00Z", 0},
		{"no fraction", "2024-12-14T03:13:21Z", 1734146001000000000},
		{"full fraction", "2024-12-14T03:13:21.123456789Z", 1734146001123456789},
		{"short fraction", "2024-12-14T03:13:21.5Z", 1734146001500000000},
		{"millisecond fraction", "2024-12-14T03:13:21.123Z", 1734146001123000000},
		{"leap day 2000", "2000-02-29T00:00:00Z", 951782400000000000},
		{"leap day 2024", "2024-02-29T12:30:45Z", 1709209845000000000},
		{"before epoch", "1969-12-31T23:59:59.999999999Z", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStrict(tt.input)
			if err != nil {
				t.Fatalf("ParseStrict(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseStrict(%q): got %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseStrictRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  errors.Kind
	}{
		{"empty", "", errors.KindEmptyInput},
		{"too short", "2024-12-14", errors.KindInvalidFormat},
		{"missing designator", "2024-12-14T03:13:21", errors.KindInvalidFormat},
		{"lowercase z", "2024-12-14T03:13:21z", errors.KindInvalidFormat},
		{"zero offset plus", "2024-12-14T03:13:21+00:00", errors.KindUnsupportedOffset},
		{"zero offset minus", "2024-12-14T03:13:21-00:00", errors.KindUnsupportedOffset},
		{"nonzero offset", "2024-12-14T03:13:21+02:00", errors.KindUnsupportedOffset},
		{"ten fraction digits", "2024-12-14T03:13:21.1234567890Z", errors.KindFractionTooLong},
		{"leap second", "2024-12-14T03:13:60Z", errors.KindLeapSecond},
		{"second 61", "2024-12-14T03:13:61Z", errors.KindOutOfRange},
		{"hour 24", "2024-12-14T24:00:00Z", errors.KindOutOfRange},
		{"minute 60", "2024-12-14T03:60:21Z", errors.KindOutOfRange},
		{"february 29 common year", "2023-02-29T00:00:00Z", errors.KindInvalidDate},
		{"february 29 1900", "1900-02-29T00:00:00Z", errors.KindInvalidDate},
		{"april 31", "2024-04-31T00:00:00Z", errors.KindInvalidDate},
		{"month zero", "2024-00-01T00:00:00Z", errors.KindInvalidDate},
		{"month thirteen", "2024-13-01T00:00:00Z", errors.KindInvalidDate},
		{"day zero", "2024-12-00T00:00:00Z", errors.KindInvalidDate},
		{"space separator", "2024-12-14 03:13:21Z", errors.KindInvalidFormat},
		{"slash separators", "2024/12/14T03:13:21Z", errors.KindInvalidFormat},
		{"letter in year", "20x4-12-14T03:13:21Z", errors.KindInvalidFormat},
		{"letter in second", "2024-12-14T03:13:2xZ", errors.KindInvalidFormat},
		{"dot without digits", "2024-12-14T03:13:21.Z", errors.KindInvalidFormat},
		{"double designator", "2024-12-14T03:13:21ZZ", errors.KindInvalidFormat},
		{"trailing space", "2024-12-14T03:13:21Z ", errors.KindInvalidFormat},
		{"offset without colon", "2024-12-14T03:13:21+0200", errors.KindInvalidFormat},
		{"offset too short", "2024-12-14T03:13:21+02", errors.KindInvalidFormat},
		{"offset with letters", "2024-12-14T03:13:21+ab:cd", errors.KindInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStrict(tt.input)
			if err == nil {
				t.Fatalf("ParseStrict(%q): expected error", tt.input)
			}
			if got := kindOf(t, err); got != tt.kind {
				t.Errorf("ParseStrict(%q): got kind %s, want %s (%v)", tt.input, got, tt.kind, err)
			}
		})
	}
}

func TestParseLenientAccepts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  utstamp.Instant
	}{
		{"missing designator", "2024-12-14T03:13:21", 1734146001000000000},
		{"lowercase z", "2024-12-14T03:13:21z", 1734146001000000000},
		{"zero offset plus", "2024-12-14T03:13:21+00:00", 1734146001000000000},
		{"zero offset minus", "2024-12-14T03:13:21-00:00", 1734146001000000000},
		{"fraction without designator", "2024-12-14T03:13:21.123456789", 1734146001123456789},
		{"overlong fraction truncated", "2024-12-14T03:13:21.1234567890123Z", 1734146001123456789},
		{"uppercase still fine", "2024-12-14T03:13:21Z", 1734146001000000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLenient(tt.input)
			if err != nil {
				t.Fatalf("ParseLenient(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseLenient(%q): got %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLenientRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  errors.Kind
	}{
		{"empty", "", errors.KindEmptyInput},
		{"nonzero offset", "2024-12-14T03:13:21+02:00", errors.KindUnsupportedOffset},
		{"negative offset", "2024-12-14T03:13:21-05:30", errors.KindUnsupportedOffset},
		{"leap second", "2024-12-14T03:13:60", errors.KindLeapSecond},
		{"invalid date", "2023-02-29T00:00:00", errors.KindInvalidDate},
		{"hour 24", "2024-12-14T24:00:00", errors.KindOutOfRange},
		{"dot without digits", "2024-12-14T03:13:21.", errors.KindInvalidFormat},
		{"trailing after z", "2024-12-14T03:13:21zX", errors.KindInvalidFormat},
		{"trailing after offset", "2024-12-14T03:13:21+00:00X", errors.KindInvalidFormat},
		{"offset without colon", "2024-12-14T03:13:21+0200", errors.KindInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLenient(tt.input)
			if err == nil {
				t.Fatalf("ParseLenient(%q): expected error", tt.input)
			}
			if got := kindOf(t, err); got != tt.kind {
				t.Errorf("ParseLenient(%q): got kind %s, want %s (%v)", tt.input, got, tt.kind, err)
			}
		})
	}
}

// Unrecognized trailing content after the time (or after a valid fraction)
// is a format error in both modes, not a tolerated suffix.
func TestUnrecognizedTrailingContentRejectedInBothModes(t *testing.T) {
	inputs := []string{
		"2024-12-14T03:13:21X",
		"2024-12-14T03:13:21.123X",
		"2024-12-14T03:13:21#",
		"2024-12-14T03:13:21.5Q",
	}

	for _, in := range inputs {
		if _, err := ParseStrict(in); kindOf(t, err) != errors.KindInvalidFormat {
			t.Errorf("ParseStrict(%q): want invalid_format, got %v", in, err)
		}
		if _, err := ParseLenient(in); kindOf(t, err) != errors.KindInvalidFormat {
			t.Errorf("ParseLenient(%q): want invalid_format, got %v", in, err)
		}
	}
}

func TestParseModesAgree(t *testing.T) {
	strict, err := ParseStrict("2024-12-14T03:13:21Z")
	if err != nil {
		t.Fatal(err)
	}
	lenient, err := ParseLenient("2024-12-14T03:13:21")
	if err != nil {
		t.Fatal(err)
	}
	if strict != lenient {
		t.Errorf("strict %d != lenient %d", strict, lenient)
	}
}
