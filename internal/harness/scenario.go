package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario: one computed year and a
// set of expectations against its day records.
type Scenario struct {
	// Name uniquely identifies this scenario. It doubles as the golden
	// file name for golden comparisons.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Year is the liturgical year to compute.
	Year int `yaml:"year"`

	// Window optionally restricts golden snapshots to a date range.
	// Expectations outside the window are still checked.
	Window *Window `yaml:"window,omitempty"`

	// Expect lists per-day expectations. Dates use ISO form
	// (YYYY-MM-DD) and must fall inside the scenario year.
	Expect []DayExpect `yaml:"expect,omitempty"`
}

// Window is an inclusive date range within the scenario year.
type Window struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// DayExpect is the expected content of a single day record. An omitted
// list leaves that field unchecked; an explicitly empty list ([])
// asserts the field is empty.
type DayExpect struct {
	Date          string   `yaml:"date"`
	Celebration   []string `yaml:"celebration,omitempty"`
	Commemoration []string `yaml:"commemoration,omitempty"`
	Tempora       []string `yaml:"tempora,omitempty"`
}

// LoadScenario reads and validates a single scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &s, nil
}

// LoadScenarios reads every *.yaml scenario under dir, sorted by file
// name for deterministic test ordering.
func LoadScenarios(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	out := make([]*Scenario, 0, len(paths))
	for _, p := range paths {
		s, err := LoadScenario(p)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Validate checks structural invariants before the scenario runs.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if s.Year == 0 {
		return fmt.Errorf("scenario year is required")
	}
	if s.Window != nil {
		from, err := s.parseDate(s.Window.From)
		if err != nil {
			return fmt.Errorf("window from: %w", err)
		}
		to, err := s.parseDate(s.Window.To)
		if err != nil {
			return fmt.Errorf("window to: %w", err)
		}
		if to.Before(from) {
			return fmt.Errorf("window to %s precedes from %s", s.Window.To, s.Window.From)
		}
	}
	for i, e := range s.Expect {
		if _, err := s.parseDate(e.Date); err != nil {
			return fmt.Errorf("expect[%d]: %w", i, err)
		}
	}
	return nil
}

func (s *Scenario) parseDate(raw string) (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad date %q: %w", raw, err)
	}
	if d.Year() != s.Year {
		return time.Time{}, fmt.Errorf("date %s outside scenario year %d", raw, s.Year)
	}
	return d, nil
}
