package engine

import (
	"log/slog"
	"time"

	"github.com/roach88/ordo/internal/calendar"
	"github.com/roach88/ordo/internal/liturgy"
)

// resolve runs the precedence pass: one strictly sequential sweep over
// the year in ascending date order, evaluating the rule catalog per
// date.
//
// The outbox buffers displacements keyed by target date. Each entry is
// consumed and cleared exactly once, when its date comes up in the
// sweep. Targets must be strictly later than the date that produced
// them; the sweep has already finalized earlier dates, so backward
// displacement is a hard error.
func resolve(s *calendar.Store, rules []Rule) error {
	outbox := make(map[time.Time][]liturgy.Day)

	for _, rec := range s.Days() {
		candidates := rec.Celebration

		// Merge celebrations displaced onto this date, rebinding them
		// here. Consume-and-clear: the outbox entry is gone after this.
		if pending, ok := outbox[rec.Date]; ok {
			delete(outbox, rec.Date)
			for _, d := range pending {
				candidates = append(candidates, d.On(rec.Date))
			}
			liturgy.SortDays(candidates)
		}

		matched := false
		for _, rule := range rules {
			out := rule.Evaluate(rec.Date, candidates)
			if out == nil {
				continue
			}
			matched = true

			slog.Debug("precedence rule matched",
				"rule", rule.ID,
				"date", rec.Date.Format("2006-01-02"),
				"candidates", len(candidates),
			)

			rec.Celebration = out.Celebration
			rec.Commemoration = out.Commemoration
			liturgy.SortDays(rec.Celebration)
			liturgy.SortDays(rec.Commemoration)

			for _, disp := range out.Displacements {
				if !disp.Target.After(rec.Date) {
					return newBackwardDisplacementError(rule.ID, rec.Date, disp.Target)
				}
				if disp.Target.Year() != s.Year() {
					// Year-boundary policy: displacements past Dec 31
					// are clipped, matching block placement.
					slog.Debug("displacement clipped at year boundary",
						"rule", rule.ID, "target", disp.Target.Format("2006-01-02"))
					continue
				}
				outbox[disp.Target] = append(outbox[disp.Target], disp.Days...)
				slog.Debug("displacement buffered",
					"rule", rule.ID,
					"target", disp.Target.Format("2006-01-02"),
					"days", len(disp.Days),
				)
			}
			break
		}

		// No rule matched: the merged candidates stand as the final
		// celebration with no commemoration. This is the common case.
		if !matched {
			rec.Celebration = candidates
			rec.Commemoration = nil
		}
	}
	return nil
}
