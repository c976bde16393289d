package calsys

import "testing"

func TestAdditiveOffsets(t *testing.T) {
	tests := []struct {
		name    string
		to      func(int) int
		from    func(int) int
		in, out int
	}{
		{"thai", GregorianToThai, ThaiToGregorian, 2024, 2567},
		{"dangi", GregorianToDangi, DangiToGregorian, 2024, 4357},
		{"minguo", GregorianToMinguo, MinguoToGregorian, 2024, 113},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.to(tt.in); got != tt.out {
				t.Errorf("to: got %d, want %d", got, tt.out)
			}
			if got := tt.from(tt.out); got != tt.in {
				t.Errorf("from: got %d, want %d", got, tt.in)
			}
		})
	}
}

func TestOffsetsAreExactInverses(t *testing.T) {
	for year := 1868; year <= 2262; year += 7 {
		if got := ThaiToGregorian(GregorianToThai(year)); got != year {
			t.Errorf("thai inverse of %d: got %d", year, got)
		}
		if got := DangiToGregorian(GregorianToDangi(year)); got != year {
			t.Errorf("dangi inverse of %d: got %d", year, got)
		}
		if got := MinguoToGregorian(GregorianToMinguo(year)); got != year {
			t.Errorf("minguo inverse of %d: got %d", year, got)
		}
	}
}

func TestCalendarString(t *testing.T) {
	tests := []struct {
		cal  Calendar
		want string
	}{
		{Gregorian, "gregorian"},
		{Thai, "thai"},
		{Dangi, "dangi"},
		{Minguo, "minguo"},
		{Japanese, "japanese"},
		{ISOWeekDate, "iso-week"},
		{Calendar(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.cal.String(); got != tt.want {
			t.Errorf("Calendar(%d).String(): got %q, want %q", tt.cal, got, tt.want)
		}
	}
}

func TestDefaultCalendar(t *testing.T) {
	if Default() != Gregorian {
		t.Errorf("Default(): got %s", Default())
	}
}
