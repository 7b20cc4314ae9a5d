package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/roach88/ordo/internal/liturgy"
)

//go:embed sancti.yaml
var sanctiYAML []byte

// sanctiDoc is the on-disk shape of the sancti table.
type sanctiDoc struct {
	Version int      `yaml:"version"`
	Days    []string `yaml:"days"`
}

// LoadSancti parses and validates a sancti table. The raw document is
// first checked against the CUE schema (identifier grammar, rank range,
// month-day bounds), then every identifier is parsed into a Day with
// its declaration position. Any failure aborts the load.
func LoadSancti(data []byte) ([]liturgy.Day, error) {
	var doc sanctiDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse sancti table: %w", err)
	}

	if err := validateSancti(doc); err != nil {
		return nil, err
	}

	days := make([]liturgy.Day, 0, len(doc.Days))
	seen := make(map[string]bool, len(doc.Days))
	for pos, id := range doc.Days {
		if seen[id] {
			return nil, &liturgy.ParseError{ID: id, Reason: "duplicate sancti entry"}
		}
		seen[id] = true

		d, err := liturgy.Parse(id, pos)
		if err != nil {
			return nil, err
		}
		if d.Flavor != liturgy.FlavorSancti {
			return nil, &liturgy.ParseError{ID: id, Reason: "sancti table entry with non-sancti flavor"}
		}
		days = append(days, d)
	}
	return days, nil
}

var (
	sanctiOnce sync.Once
	sanctiDays []liturgy.Day
	sanctiErr  error
)

// Sancti returns the embedded sancti table in declaration order.
// The table is loaded and validated once; a malformed embedded catalog
// surfaces as an error on every call rather than a partial table.
func Sancti() ([]liturgy.Day, error) {
	sanctiOnce.Do(func() {
		sanctiDays, sanctiErr = LoadSancti(sanctiYAML)
	})
	return sanctiDays, sanctiErr
}
