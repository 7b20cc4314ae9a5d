package calendar

import (
	"time"

	"github.com/roach88/ordo/internal/liturgy"
)

// DayRecord is the per-date entry of a Store.
//
// Tempora holds the movable-cycle candidates laid down by block
// placement. Celebration is the currently-winning set, and after
// resolution the final one. Commemoration holds secondary observances
// that survive resolution. All three lists are kept in canonical
// rank order (liturgy.SortDays) after every mutation that can disturb it.
type DayRecord struct {
	Date          time.Time
	Tempora       []liturgy.Day
	Celebration   []liturgy.Day
	Commemoration []liturgy.Day
}

// Store is the date-ordered calendar for exactly one civil year.
type Store struct {
	year int
	days []*DayRecord
}

// Date builds the canonical representation of a civil date: midnight UTC.
// Every date flowing through the engine is normalized through here so
// that map keys and comparisons are exact.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// New creates a Store with one empty DayRecord per date of year,
// Jan 1 through Dec 31 in order.
func New(year int) *Store {
	start := Date(year, time.January, 1)
	n := 365
	if IsLeap(year) {
		n = 366
	}

	days := make([]*DayRecord, n)
	for i := range days {
		days[i] = &DayRecord{Date: start.AddDate(0, 0, i)}
	}
	return &Store{year: year, days: days}
}

// Year returns the civil year this Store spans.
func (s *Store) Year() int {
	return s.year
}

// Len returns the number of day records (365, or 366 in leap years).
func (s *Store) Len() int {
	return len(s.days)
}

// Days returns the records in ascending date order. The slice is shared
// with the Store; callers mutate records in place during assembly.
func (s *Store) Days() []*DayRecord {
	return s.days
}

// At returns the record for the given date, or ok=false when the date
// falls outside the Store's year.
func (s *Store) At(date time.Time) (*DayRecord, bool) {
	if date.Year() != s.year {
		return nil, false
	}
	return s.days[date.YearDay()-1], true
}

// Snapshot renders the Store as plain maps and identifier lists, keyed
// by ISO date. The result feeds liturgy.MarshalCanonical for
// byte-deterministic output and golden comparison.
func (s *Store) Snapshot() map[string]any {
	out := make(map[string]any, len(s.days))
	for _, rec := range s.days {
		out[rec.Date.Format("2006-01-02")] = map[string]any{
			"tempora":       ids(rec.Tempora),
			"celebration":   ids(rec.Celebration),
			"commemoration": ids(rec.Commemoration),
		}
	}
	return out
}

func ids(days []liturgy.Day) []any {
	out := make([]any, len(days))
	for i, d := range days {
		out[i] = d.ID
	}
	return out
}
