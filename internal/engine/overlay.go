package engine

import (
	"log/slog"

	"github.com/roach88/ordo/internal/calendar"
	"github.com/roach88/ordo/internal/catalog"
	"github.com/roach88/ordo/internal/liturgy"
)

// overlayFixed attaches every sancti table entry to the date matching
// its month-day, deduplicated by identifier, then re-sorts each touched
// date's celebration list.
func overlayFixed(s *calendar.Store, table []liturgy.Day) {
	for _, rec := range s.Days() {
		m, d := rec.Date.Month(), rec.Date.Day()

		seen := make(map[string]bool, len(rec.Celebration))
		for _, existing := range rec.Celebration {
			seen[existing.ID] = true
		}

		appended := false
		for _, entry := range table {
			em, ed, ok := entry.MonthDay()
			if !ok || em != m || ed != d || seen[entry.ID] {
				continue
			}
			seen[entry.ID] = true
			rec.Celebration = append(rec.Celebration, entry.On(rec.Date))
			appended = true
		}
		if appended {
			liturgy.SortDays(rec.Celebration)
		}
	}
}

// overlaySemiFixed appends the conditionally computed sancti days, each
// followed by a re-sort of its date only.
func overlaySemiFixed(s *calendar.Store, days []catalog.SemiFixedDay) {
	for _, sf := range days {
		rec, ok := s.At(sf.Date)
		if !ok {
			// Semi-fixed dates are always inside the computed year.
			slog.Warn("semi-fixed day outside year", "id", sf.Day.ID)
			continue
		}
		rec.Celebration = append(rec.Celebration, sf.Day.On(sf.Date))
		liturgy.SortDays(rec.Celebration)
	}
}
