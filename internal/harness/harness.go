package harness

import (
	"fmt"
	"slices"
	"time"

	"github.com/roach88/ordo/internal/calendar"
	"github.com/roach88/ordo/internal/engine"
	"github.com/roach88/ordo/internal/liturgy"
)

// Result is the outcome of a scenario run.
type Result struct {
	// Pass indicates every expectation matched.
	Pass bool `json:"pass"`

	// Errors contains expectation failures. Empty when Pass is true.
	Errors []string `json:"errors,omitempty"`

	// Store is the computed year, retained for golden snapshots.
	Store *calendar.Store `json:"-"`
}

// AddError records an expectation failure and marks the result failed.
func (r *Result) AddError(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
	r.Pass = false
}

// Run computes the scenario's year and evaluates its expectations.
// A compute failure is returned as an error; expectation mismatches
// are collected on the Result instead.
func Run(scenario *Scenario) (*Result, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	store, err := engine.Compute(scenario.Year)
	if err != nil {
		return nil, fmt.Errorf("compute year %d: %w", scenario.Year, err)
	}

	result := &Result{Pass: true, Store: store}
	for _, e := range scenario.Expect {
		date, _ := scenario.parseDate(e.Date)
		rec, ok := store.At(date)
		if !ok {
			result.AddError("%s: no record", e.Date)
			continue
		}
		checkList(result, e.Date, "celebration", e.Celebration, rec.Celebration)
		checkList(result, e.Date, "commemoration", e.Commemoration, rec.Commemoration)
		checkList(result, e.Date, "tempora", e.Tempora, rec.Tempora)
	}
	return result, nil
}

// checkList compares an expected identifier list against actual days.
// Order matters: records keep their lists in precedence order and
// scenarios are written against that order.
func checkList(r *Result, date, field string, want []string, got []liturgy.Day) {
	if want == nil {
		return
	}
	ids := make([]string, len(got))
	for i, d := range got {
		ids[i] = d.ID
	}
	if !slices.Equal(want, ids) {
		r.AddError("%s: %s mismatch: want %v, got %v", date, field, want, ids)
	}
}

// windowSnapshot builds the golden-comparison view of the scenario:
// the day records inside the window (the whole year when no window is
// set), keyed by ISO date.
func windowSnapshot(scenario *Scenario, store *calendar.Store) (map[string]any, error) {
	from := calendar.Date(scenario.Year, time.January, 1)
	to := calendar.Date(scenario.Year, time.December, 31)
	if scenario.Window != nil {
		var err error
		if from, err = scenario.parseDate(scenario.Window.From); err != nil {
			return nil, err
		}
		if to, err = scenario.parseDate(scenario.Window.To); err != nil {
			return nil, err
		}
	}

	days := map[string]any{}
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		rec, ok := store.At(d)
		if !ok {
			return nil, fmt.Errorf("no record for %s", d.Format("2006-01-02"))
		}
		days[d.Format("2006-01-02")] = map[string]any{
			"tempora":       idList(rec.Tempora),
			"celebration":   idList(rec.Celebration),
			"commemoration": idList(rec.Commemoration),
		}
	}

	return map[string]any{
		"name": scenario.Name,
		"year": scenario.Year,
		"days": days,
	}, nil
}

func idList(days []liturgy.Day) []any {
	out := make([]any, len(days))
	for i, d := range days {
		out[i] = d.ID
	}
	return out
}
