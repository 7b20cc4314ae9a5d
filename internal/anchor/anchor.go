// Package anchor computes the movable anchor dates of the 1962 rite.
//
// Every function is a pure, deterministic mapping from a civil year to
// a date. The functions are the leaves of the assembly pipeline: block
// placement starts from the dates computed here.
//
// Results are defined for Gregorian years MinYear through MaxYear, the
// validity range of the Easter computation. Callers validate the year
// before calling; out-of-range years are the caller's InvalidYear case.
package anchor

import (
	"time"

	"github.com/roach88/ordo/internal/calendar"
)

// Supported civil-year range (Gregorian calendar adoption through the
// documented validity bound of the Meeus/Jones/Butcher computation).
const (
	MinYear = 1583
	MaxYear = 4099
)

// YearSupported reports whether year lies in the supported range.
func YearSupported(year int) bool {
	return year >= MinYear && year <= MaxYear
}

// EasterSunday computes Easter Sunday using the Meeus/Jones/Butcher
// algorithm for the Gregorian calendar.
func EasterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1
	return calendar.Date(year, time.Month(month), day)
}

// Septuagesima is the start of the pre-Lenten season, 63 days before
// Easter Sunday. It anchors the Resurrection block.
func Septuagesima(year int) time.Time {
	return EasterSunday(year).AddDate(0, 0, -63)
}

// HolyFamilySunday is the first Sunday strictly after Epiphany (Jan 6).
// When Jan 6 itself is a Sunday the feast falls a full week later, on
// Jan 13.
func HolyFamilySunday(year int) time.Time {
	return nextSundayAfter(calendar.Date(year, time.January, 6))
}

// FirstAdventSunday is Nov 27 when that is a Sunday, otherwise the
// first Sunday after Nov 27. Always a Sunday in Nov 27..Dec 3.
func FirstAdventSunday(year int) time.Time {
	return sundayOnOrAfter(calendar.Date(year, time.November, 27))
}

// PostPentecost24Sunday is the 24th (last) Sunday after Pentecost,
// always the Sunday immediately before the first Advent Sunday.
func PostPentecost24Sunday(year int) time.Time {
	return FirstAdventSunday(year).AddDate(0, 0, -7)
}

// SaturdayBeforePostPentecost24 is the end of the potentially empty gap
// between the 23rd and 24th post-Pentecost weeks that opens up when
// Easter is early. The resumed post-Epiphany weeks are laid backwards
// from this date to fill the gap.
func SaturdayBeforePostPentecost24(year int) time.Time {
	return PostPentecost24Sunday(year).AddDate(0, 0, -1)
}

// SeptemberEmberWednesday is the Wednesday after the third Sunday of
// September (the Sunday falling Sep 15..21), per the 1960 rubrics.
func SeptemberEmberWednesday(year int) time.Time {
	return sundayOnOrAfter(calendar.Date(year, time.September, 15)).AddDate(0, 0, 3)
}

// HolyNameSunday is the first Sunday of January, except that a first
// Sunday falling on Jan 1, 6 or 7 moves the feast to Jan 2.
func HolyNameSunday(year int) time.Time {
	d := sundayOnOrAfter(calendar.Date(year, time.January, 1))
	switch d.Day() {
	case 1, 6, 7:
		return calendar.Date(year, time.January, 2)
	}
	return d
}

// ChristKingSunday is the last Sunday of October.
func ChristKingSunday(year int) time.Time {
	d := calendar.Date(year, time.October, 31)
	for d.Weekday() != time.Sunday {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

// ChristmasOctaveSunday is the Sunday falling Dec 26..31, when one
// exists. There is none exactly when Christmas itself is a Sunday.
func ChristmasOctaveSunday(year int) (time.Time, bool) {
	d := sundayOnOrAfter(calendar.Date(year, time.December, 26))
	if d.Year() != year {
		return time.Time{}, false
	}
	return d, true
}

// AllSoulsDay is Nov 2, deferred to Nov 3 when Nov 2 is a Sunday.
func AllSoulsDay(year int) time.Time {
	d := calendar.Date(year, time.November, 2)
	if d.Weekday() == time.Sunday {
		return calendar.Date(year, time.November, 3)
	}
	return d
}

// MatthiasDay is Feb 24, kept on Feb 25 in leap years.
func MatthiasDay(year int) time.Time {
	if calendar.IsLeap(year) {
		return calendar.Date(year, time.February, 25)
	}
	return calendar.Date(year, time.February, 24)
}

// GabrielSorrowsDay is the Feb 27 feast, kept on Feb 28 in leap years.
func GabrielSorrowsDay(year int) time.Time {
	if calendar.IsLeap(year) {
		return calendar.Date(year, time.February, 28)
	}
	return calendar.Date(year, time.February, 27)
}

// sundayOnOrAfter returns d when it is a Sunday, else the next Sunday.
func sundayOnOrAfter(d time.Time) time.Time {
	offset := (int(time.Sunday) - int(d.Weekday()) + 7) % 7
	return d.AddDate(0, 0, offset)
}

// nextSundayAfter returns the first Sunday strictly after d.
func nextSundayAfter(d time.Time) time.Time {
	return sundayOnOrAfter(d.AddDate(0, 0, 1))
}
