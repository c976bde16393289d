package calsys

const (
	thaiOffset   = 543
	dangiOffset  = 2333
	minguoOffset = 1911
)

// Calendar names a supported display calendar. Internal calculations are
// always proleptic Gregorian.
type Calendar int

const (
	Gregorian Calendar = iota // default, ISO-8601
	Thai                      // Thai Solar Calendar (Buddhist Era)
	Dangi                     // Korean Dangi Calendar
	Minguo                    // Minguo/ROC Calendar
	Japanese                  // Japanese Era Calendar
	ISOWeekDate               // ISO week-date addressing
)

var calendarNames = [...]string{"gregorian", "thai", "dangi", "minguo", "japanese", "iso-week"}

func (c Calendar) String() string {
	if c < Gregorian || c > ISOWeekDate {
		return "unknown"
	}
	return calendarNames[c]
}

// Default returns the calendar used for all internal date calculations.
func Default() Calendar {
	return Gregorian
}

// GregorianToThai converts a Gregorian year to a Thai Buddhist Era year.
func GregorianToThai(year int) int {
	return year + thaiOffset
}

// ThaiToGregorian converts a Thai Buddhist Era year to a Gregorian year.
func ThaiToGregorian(year int) int {
	return year - thaiOffset
}

// GregorianToDangi converts a Gregorian year to a Korean Dangi year.
func GregorianToDangi(year int) int {
	return year + dangiOffset
}

// DangiToGregorian converts a Korean Dangi year to a Gregorian year.
func DangiToGregorian(year int) int {
	return year - dangiOffset
}

// GregorianToMinguo converts a Gregorian year to a Minguo (ROC) year.
func GregorianToMinguo(year int) int {
	return year - minguoOffset
}

// MinguoToGregorian converts a Minguo (ROC) year to a Gregorian year.
func MinguoToGregorian(year int) int {
	return year + minguoOffset
}
