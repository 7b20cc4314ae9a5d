package engine

import (
	"log/slog"
	"time"

	"github.com/roach88/ordo/internal/calendar"
	"github.com/roach88/ordo/internal/catalog"
	"github.com/roach88/ordo/internal/liturgy"
)

// placement holds the resolved options of one Place call.
type placement struct {
	reverse   bool
	overwrite bool
	stopDate  time.Time // zero = no stop date
}

// PlaceOption configures a Place call.
type PlaceOption func(*placement)

// WithReverse lays the block backwards: offset i lands on anchor-i, and
// the block's entries are consumed back to front, so the filled dates
// still read in block order ascending.
func WithReverse() PlaceOption {
	return func(p *placement) { p.reverse = true }
}

// WithoutOverwrite halts the whole placement at the first target date
// whose celebration list is already non-empty. Used by the gap-filling
// block so it never clobbers dates the main blocks already own.
func WithoutOverwrite() PlaceOption {
	return func(p *placement) { p.overwrite = false }
}

// WithStopDate halts placement once the date immediately preceding the
// current target equals stop; stop itself is the last date written.
// Keeps a block out of a reserved boundary period (Advent stops at
// Dec 23, leaving Dec 24 to the Vigil of the Nativity).
func WithStopDate(stop time.Time) PlaceOption {
	return func(p *placement) { p.stopDate = stop }
}

// Place lays a block's offsets onto consecutive dates of s starting at
// anchor.
//
// Per offset: an empty identifier set skips its date. Otherwise the
// target's Tempora list is REPLACED (not merged) with freshly bound
// days and Celebration re-initialized as a copy. No rank sorting
// happens here; the fixed-date overlay sorts after merging.
//
// Boundary policy: a target outside the store's year ends the walk.
// Every further offset would fall outside the year as well, so the
// block is clipped at the year boundary.
func Place(s *calendar.Store, anchor time.Time, block catalog.Block, opts ...PlaceOption) {
	p := placement{overwrite: true}
	for _, opt := range opts {
		opt(&p)
	}

	for i := 0; i < block.Len(); i++ {
		set := block.Offsets[i]
		if p.reverse {
			set = block.Offsets[block.Len()-1-i]
		}

		target := anchor.AddDate(0, 0, i)
		if p.reverse {
			target = anchor.AddDate(0, 0, -i)
		}

		rec, ok := s.At(target)
		if !ok {
			slog.Debug("block clipped at year boundary",
				"block", block.Name, "target", target.Format("2006-01-02"))
			break
		}

		// Empty set: leave the date untouched, keep walking.
		if len(set) == 0 {
			continue
		}

		if !p.overwrite && len(rec.Celebration) > 0 {
			slog.Debug("block halted on occupied date",
				"block", block.Name, "target", target.Format("2006-01-02"))
			break
		}

		if !p.stopDate.IsZero() && target.AddDate(0, 0, -1).Equal(p.stopDate) {
			slog.Debug("block halted at stop date",
				"block", block.Name, "stop", p.stopDate.Format("2006-01-02"))
			break
		}

		days := make([]liturgy.Day, len(set))
		for j, d := range set {
			days[j] = d.On(target)
		}
		rec.Tempora = days
		rec.Celebration = make([]liturgy.Day, len(days))
		copy(rec.Celebration, days)
	}
}
