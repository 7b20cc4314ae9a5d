package engine

import (
	"log/slog"

	"github.com/roach88/ordo/internal/anchor"
	"github.com/roach88/ordo/internal/calendar"
	"github.com/roach88/ordo/internal/catalog"
)

// Engine computes liturgical calendars from the static catalogs.
//
// The rules slice order never changes after construction: it is the
// precedence policy. New copies the slice to protect the invariant
// against external mutation.
type Engine struct {
	rules []Rule
}

// Option configures an Engine.
type Option func(*Engine)

// WithRules replaces the default precedence catalog. The slice must be
// in declaration order; it is copied.
func WithRules(rules []Rule) Option {
	return func(e *Engine) {
		e.rules = make([]Rule, len(rules))
		copy(e.rules, rules)
	}
}

// New creates an Engine with the default 1962 rule catalog.
func New(opts ...Option) *Engine {
	e := &Engine{rules: DefaultRules()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Compute assembles the full calendar for one civil year.
//
// The pipeline order is fixed: empty store, block placement, fixed
// overlay, semi-fixed overlay, precedence pass. Each stage mutates the
// single owned store in place.
//
// Returns an Error with code INVALID_YEAR for years outside the
// supported range, MALFORMED_CATALOG when the sancti table fails to
// load, and BACKWARD_DISPLACEMENT when a rule violates the
// displacement ordering invariant.
func (e *Engine) Compute(year int) (*calendar.Store, error) {
	if !anchor.YearSupported(year) {
		return nil, newInvalidYearError(year, anchor.MinYear, anchor.MaxYear)
	}

	sancti, err := catalog.Sancti()
	if err != nil {
		return nil, &Error{Code: ErrCodeMalformedCatalog, Message: "load sancti table", Year: year, Err: err}
	}

	slog.Debug("computing calendar", "year", year)
	s := calendar.New(year)

	// Main movable blocks. Order matters: later placements overwrite
	// earlier ones, and the gap filler must run after the Resurrection
	// block so it can stop against it.
	Place(s, anchor.HolyFamilySunday(year), catalog.PostEpiphania)
	Place(s, anchor.Septuagesima(year), catalog.Resurrectionis)
	Place(s, anchor.SaturdayBeforePostPentecost24(year), catalog.PostEpiphania,
		WithReverse(), WithoutOverwrite())
	Place(s, anchor.PostPentecost24Sunday(year), catalog.HebdPostPentecost24)
	Place(s, anchor.FirstAdventSunday(year), catalog.Adventus,
		WithStopDate(calendar.Date(year, 12, 23)))

	// Standalone blocks.
	Place(s, anchor.HolyNameSunday(year), catalog.SanctissimiNominisJesu)
	Place(s, anchor.SeptemberEmberWednesday(year), catalog.QuattuorSeptembris)
	Place(s, anchor.ChristKingSunday(year), catalog.JesuChristiRegis)
	if d, ok := anchor.ChristmasOctaveSunday(year); ok {
		Place(s, d, catalog.DomOctavamNativitatis)
	}

	overlayFixed(s, sancti)
	overlaySemiFixed(s, catalog.SemiFixed(year))

	if err := resolve(s, e.rules); err != nil {
		return nil, err
	}

	slog.Debug("calendar computed", "year", year, "days", s.Len())
	return s, nil
}

// Compute is the package-level entry point: one year through a default
// Engine.
func Compute(year int) (*calendar.Store, error) {
	return New().Compute(year)
}
