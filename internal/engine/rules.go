package engine

import (
	"strings"
	"time"

	"github.com/roach88/ordo/internal/liturgy"
)

// Displacement moves celebrations onto a later date. The target must be
// strictly later than the date under resolution; the resolver enforces
// this as a hard invariant.
type Displacement struct {
	Target time.Time
	Days   []liturgy.Day
}

// Outcome is a rule's resolution for one date: the final celebration
// and commemoration lists, plus any cross-date displacements.
type Outcome struct {
	Celebration   []liturgy.Day
	Commemoration []liturgy.Day
	Displacements []Displacement
}

// Rule is one entry of the ordered precedence catalog. Evaluate returns
// nil for "no match"; the first non-nil outcome in catalog order wins
// the date. Evaluate must be pure: same (date, candidates), same
// outcome.
type Rule struct {
	ID       string
	Evaluate func(date time.Time, candidates []liturgy.Day) *Outcome
}

// DefaultRules returns the 1962 precedence catalog in declaration
// order.
//
// The order IS the policy: named exceptions are tried before the
// generic rank fallback, because precedence between specific pairs is
// not always a function of rank alone. Reordering entries changes the
// computed calendar. The catalog is statically declared here so the
// policy is reviewable and testable as a plain slice.
func DefaultRules() []Rule {
	return []Rule{
		{ID: "immaculate_conception_on_advent_sunday", Evaluate: ruleImmaculateConception},
		{ID: "first_class_feast_transfer", Evaluate: ruleFirstClassFeastTransfer},
		{ID: "rank_precedence", Evaluate: ruleRankPrecedence},
	}
}

const immaculateConceptionID = "sancti:12-08_conceptione_immaculata_bmv:1"

// ruleImmaculateConception keeps the Dec 8 feast on an Advent Sunday,
// with the Sunday commemorated. This is the rite-defined exception to
// the rule that a first-class Sunday displaces a concurring feast, so
// it must precede the transfer rule.
func ruleImmaculateConception(date time.Time, candidates []liturgy.Day) *Outcome {
	feast, ok := findID(candidates, immaculateConceptionID)
	if !ok || date.Weekday() != time.Sunday {
		return nil
	}
	sunday, ok := findNamePrefix(candidates, "dom_adventus")
	if !ok {
		return nil
	}
	return &Outcome{
		Celebration:   []liturgy.Day{feast},
		Commemoration: []liturgy.Day{sunday},
	}
}

// ruleFirstClassFeastTransfer resolves a first-class sancti feast
// concurring with a first-class tempora day: the tempora day is
// celebrated and the feast is transferred to the following day.
//
// Transfers chain naturally: a feast landing inside Holy Week or the
// Easter octave keeps sliding one day at a time until it reaches the
// first free day (the Annunciation of 2024 ends up on Apr 8, the
// Monday after Low Sunday).
func ruleFirstClassFeastTransfer(date time.Time, candidates []liturgy.Day) *Outcome {
	var kept, displaced, commemorated []liturgy.Day
	for _, c := range candidates {
		switch {
		case c.Flavor == liturgy.FlavorTempora && c.Rank == liturgy.RankFirstClass:
			kept = append(kept, c)
		case c.Flavor == liturgy.FlavorSancti && c.Rank == liturgy.RankFirstClass:
			displaced = append(displaced, c)
		case c.Rank <= liturgy.RankThirdClass:
			commemorated = append(commemorated, c)
		}
	}
	if len(kept) == 0 || len(displaced) == 0 {
		return nil
	}

	liturgy.SortDays(kept)
	liturgy.SortDays(commemorated)
	return &Outcome{
		Celebration:   kept,
		Commemoration: commemorated,
		Displacements: []Displacement{{Target: date.AddDate(0, 0, 1), Days: displaced}},
	}
}

// ruleRankPrecedence is the generic fallback for concurrent
// candidates: the highest by (rank, catalog position) is celebrated,
// the remaining candidates of third class or higher are kept as
// commemorations, fourth-class ferias are omitted.
func ruleRankPrecedence(_ time.Time, candidates []liturgy.Day) *Outcome {
	if len(candidates) < 2 {
		return nil
	}

	sorted := make([]liturgy.Day, len(candidates))
	copy(sorted, candidates)
	liturgy.SortDays(sorted)

	var commemorated []liturgy.Day
	for _, c := range sorted[1:] {
		if c.Rank <= liturgy.RankThirdClass {
			commemorated = append(commemorated, c)
		}
	}
	return &Outcome{
		Celebration:   sorted[:1],
		Commemoration: commemorated,
	}
}

func findID(days []liturgy.Day, id string) (liturgy.Day, bool) {
	for _, d := range days {
		if d.ID == id {
			return d, true
		}
	}
	return liturgy.Day{}, false
}

func findNamePrefix(days []liturgy.Day, prefix string) (liturgy.Day, bool) {
	for _, d := range days {
		if strings.HasPrefix(d.Name, prefix) {
			return d, true
		}
	}
	return liturgy.Day{}, false
}
