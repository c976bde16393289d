package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/chronowerks/utstamp"
	"github.com/chronowerks/utstamp/calendar"
	"github.com/chronowerks/utstamp/calsys"
	"github.com/chronowerks/utstamp/clock"
	"github.com/chronowerks/utstamp/codec"
	"github.com/chronowerks/utstamp/monotonic"
)

func main() {
	var (
		now         = flag.Bool("now", false, "Print the current timestamp")
		monoCount   = flag.Int("monotonic", 0, "Print N monotonic timestamps")
		parseStr    = flag.String("parse", "", "Parse a timestamp string")
		lenient     = flag.Bool("lenient", false, "Use lenient parsing with -parse")
		formatNanos = flag.String("format", "", "Format a raw nanosecond count")
		noNanos     = flag.Bool("no-nanos", false, "Omit fractional seconds when formatting")
		calendars   = flag.String("calendars", "", "Show calendar conversions for a timestamp or nanosecond count")
		precision   = flag.Bool("precision", false, "Probe the system clock precision")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Log clock regressions and diagnostics")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		monotonic.SetLogger(logger)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var err error
	switch {
	case *now:
		err = printNow(*noNanos)
	case *monoCount > 0:
		err = printMonotonic(*monoCount, *noNanos)
	case *parseStr != "":
		err = printParsed(*parseStr, *lenient)
	case *formatNanos != "":
		err = printFormatted(*formatNanos, *noNanos)
	case *calendars != "":
		err = printCalendars(*calendars)
	case *precision:
		err = printPrecision()
	default:
		fmt.Fprintln(os.Stderr, "Usage: utsctl -now | -monotonic N | -parse TS [-lenient] | -format NS [-no-nanos]")
		fmt.Fprintln(os.Stderr, "       utsctl -calendars TS|NS | -precision | -i")
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printNow(noNanos bool) error {
	ts := clock.SystemSource{}.Now()
	fmt.Println(codec.Format(ts, !noNanos))
	return nil
}

func printMonotonic(n int, noNanos bool) error {
	monotonic.SetObserver(func(expected, actual, adjusted utstamp.Instant) {
		fmt.Fprintf(os.Stderr, "clock regression: read %s, emitted %s\n",
			codec.Format(actual, true), codec.Format(adjusted, true))
	})

	for i := 0; i < n; i++ {
		fmt.Println(codec.Format(monotonic.Now(), !noNanos))
	}
	return nil
}

func printParsed(s string, lenient bool) error {
	ts, err := parseWithMode(s, lenient)
	if err != nil {
		return err
	}

	f := calendar.Decode(ts)
	fmt.Printf("Instant:   %d\n", ts.UnixNanos())
	fmt.Printf("Canonical: %s\n", codec.Format(ts, true))
	fmt.Printf("Fields:    %04d-%02d-%02d %02d:%02d:%02d +%dns\n",
		f.Year, f.Month, f.Day, f.Hour, f.Minute, f.Second, f.Nanos)
	return nil
}

func printFormatted(raw string, noNanos bool) error {
	nanos, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("parse nanosecond count: %w", err)
	}
	fmt.Println(codec.Format(utstamp.FromUnixNanos(nanos), !noNanos))
	return nil
}

func printCalendars(arg string) error {
	ts, err := resolveInstant(arg)
	if err != nil {
		return err
	}

	f := calendar.Decode(ts)
	fmt.Printf("Gregorian: %s\n", codec.Format(ts, true))
	fmt.Printf("Thai:      %d\n", calsys.GregorianToThai(f.Year))
	fmt.Printf("Dangi:     %d\n", calsys.GregorianToDangi(f.Year))
	fmt.Printf("Minguo:    %d\n", calsys.GregorianToMinguo(f.Year))

	if era, eraYear, err := calsys.JapaneseEra(ts); err != nil {
		fmt.Printf("Japanese:  %v\n", err)
	} else {
		fmt.Printf("Japanese:  %s %d\n", era, eraYear)
	}

	isoYear, isoWeek, isoDay := calsys.ISOWeek(ts)
	fmt.Printf("ISO week:  %04d-W%02d-%d\n", isoYear, isoWeek, isoDay)
	return nil
}

func printPrecision() error {
	p := clock.DetectPrecision(clock.SystemSource{})
	fmt.Printf("Clock precision: %s\n", p)
	return nil
}

func parseWithMode(s string, lenient bool) (utstamp.Instant, error) {
	if lenient {
		return codec.ParseLenient(s)
	}
	return codec.ParseStrict(s)
}

// resolveInstant accepts either an ISO-8601 timestamp or a raw nanosecond
// count.
func resolveInstant(arg string) (utstamp.Instant, error) {
	if nanos, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return utstamp.FromUnixNanos(nanos), nil
	}
	return codec.ParseLenient(arg)
}
