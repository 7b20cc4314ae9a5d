package liturgy

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Flavor distinguishes the two celebration cycles.
type Flavor string

const (
	// FlavorTempora marks days of the movable cycle (Easter/Advent anchored).
	FlavorTempora Flavor = "tempora"
	// FlavorSancti marks days bound to a civil month-day.
	FlavorSancti Flavor = "sancti"
)

// Rank bounds for the 1962 classification. Lower value = higher rank.
const (
	RankFirstClass  = 1
	RankSecondClass = 2
	RankThirdClass  = 3
	RankFourthClass = 4
)

// Day is an immutable liturgical day value.
//
// ID is the full identifier and is the unit of equality. Pos is the
// declaration position within the source catalog; it is the total
// tie-break for equal ranks so that sorting is identical on every
// platform regardless of sort stability.
type Day struct {
	ID     string
	Flavor Flavor
	Name   string
	Rank   int
	Pos    int
	Date   time.Time // bound civil date; zero for unplaced catalog entries
}

// ParseError reports an identifier or catalog row that fails to parse
// into its flavor/name/rank (and, for sancti, month-day) components.
type ParseError struct {
	ID     string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed catalog entry %q: %s", e.ID, e.Reason)
}

// Parse parses an identifier into an unbound Day with the given catalog
// position. The identifier grammar is <flavor>:<name>:<rank>.
func Parse(id string, pos int) (Day, error) {
	parts := strings.Split(id, ":")
	if len(parts) != 3 {
		return Day{}, &ParseError{ID: id, Reason: "want <flavor>:<name>:<rank>"}
	}

	flavor := Flavor(parts[0])
	if flavor != FlavorTempora && flavor != FlavorSancti {
		return Day{}, &ParseError{ID: id, Reason: fmt.Sprintf("unknown flavor %q", parts[0])}
	}

	name := parts[1]
	if name == "" {
		return Day{}, &ParseError{ID: id, Reason: "empty name"}
	}

	rank, err := strconv.Atoi(parts[2])
	if err != nil || rank < RankFirstClass || rank > RankFourthClass {
		return Day{}, &ParseError{ID: id, Reason: fmt.Sprintf("rank %q outside 1..4", parts[2])}
	}

	if flavor == FlavorSancti {
		if _, _, err := sanctiMonthDay(name); err != nil {
			return Day{}, &ParseError{ID: id, Reason: err.Error()}
		}
	}

	return Day{ID: id, Flavor: flavor, Name: name, Rank: rank, Pos: pos}, nil
}

// MustParse is Parse for statically declared catalog tables, where a
// malformed identifier is a programming error.
func MustParse(id string, pos int) Day {
	d, err := Parse(id, pos)
	if err != nil {
		panic(err)
	}
	return d
}

// On returns a copy of d bound to the given date.
func (d Day) On(date time.Time) Day {
	d.Date = date
	return d
}

// MonthDay returns the nominal civil month-day of a sancti Day.
// Returns ok=false for tempora days, which have no fixed date.
func (d Day) MonthDay() (month time.Month, day int, ok bool) {
	if d.Flavor != FlavorSancti {
		return 0, 0, false
	}
	m, dd, err := sanctiMonthDay(d.Name)
	if err != nil {
		return 0, 0, false
	}
	return m, dd, true
}

// sanctiMonthDay extracts the MM-DD_ prefix of a sancti name.
func sanctiMonthDay(name string) (time.Month, int, error) {
	if len(name) < 6 || name[2] != '-' || (len(name) > 5 && name[5] != '_') {
		return 0, 0, fmt.Errorf("sancti name %q lacks MM-DD_ prefix", name)
	}
	m, err := strconv.Atoi(name[0:2])
	if err != nil || m < 1 || m > 12 {
		return 0, 0, fmt.Errorf("sancti name %q has invalid month", name)
	}
	d, err := strconv.Atoi(name[3:5])
	if err != nil || d < 1 || d > 31 {
		return 0, 0, fmt.Errorf("sancti name %q has invalid day", name)
	}
	return time.Month(m), d, nil
}

func (d Day) String() string {
	return d.ID
}
