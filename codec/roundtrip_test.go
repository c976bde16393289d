package codec

import (
	"math/rand"
	"testing"

	"github.com/chronowerks/utstamp"
)

// parse(format(ts)) must reproduce ts bit-exactly for every representable
// instant.
func TestRoundTrip(t *testing.T) {
	fixed := []utstamp.Instant{
		0,
		1,
		-1,
		999999999,
		1000000000,
		-999999999,
		1734146001123456789,
		951782400000000000,  // 2000-02-29
		1709209845000000000, // 2024-02-29
		-86400000000000,
		-8520336000000000000, // 1700-01-01
		9214646400000000000,  // 2262-01-01
	}

	for _, ts := range fixed {
		s := Format(ts, true)
		got, err := ParseStrict(s)
		if err != nil {
			t.Fatalf("ParseStrict(%q): %v", s, err)
		}
		if got != ts {
			t.Errorf("round trip %d -> %q -> %d", ts, s, got)
		}
	}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		// stay well inside the representable range
		ts := utstamp.Instant(rng.Int63n(18_000_000_000_000_000_000/2) - 4_500_000_000_000_000_000)
		s := Format(ts, true)
		got, err := ParseStrict(s)
		if err != nil {
			t.Fatalf("ParseStrict(%q): %v", s, err)
		}
		if got != ts {
			t.Errorf("round trip %d -> %q -> %d", ts, s, got)
		}
	}
}

// Lenient parsing of the canonical form agrees with strict parsing.
func TestRoundTripLenient(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		ts := utstamp.Instant(rng.Int63n(4_000_000_000_000_000_000))
		s := Format(ts, true)
		strict, err := ParseStrict(s)
		if err != nil {
			t.Fatal(err)
		}
		lenient, err := ParseLenient(s)
		if err != nil {
			t.Fatal(err)
		}
		if strict != lenient || strict != ts {
			t.Errorf("mode mismatch for %q: strict=%d lenient=%d want=%d", s, strict, lenient, ts)
		}
	}
}
