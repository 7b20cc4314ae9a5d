package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ordo/internal/calendar"
	"github.com/roach88/ordo/internal/liturgy"
)

func day(t *testing.T, id string, pos int) liturgy.Day {
	t.Helper()
	d, err := liturgy.Parse(id, pos)
	require.NoError(t, err)
	return d
}

func TestRuleImmaculateConception_OnAdventSunday(t *testing.T) {
	// Dec 8 2019 was the second Sunday of Advent.
	date := calendar.Date(2019, time.December, 8)
	require.Equal(t, time.Sunday, date.Weekday())

	sunday := day(t, "tempora:dom_adventus_2:1", 7).On(date)
	feast := day(t, "sancti:12-08_conceptione_immaculata_bmv:1", 80).On(date)

	out := ruleImmaculateConception(date, []liturgy.Day{sunday, feast})
	require.NotNil(t, out)

	require.Len(t, out.Celebration, 1)
	assert.Equal(t, feast.ID, out.Celebration[0].ID, "the feast is kept, not the Sunday")
	require.Len(t, out.Commemoration, 1)
	assert.Equal(t, sunday.ID, out.Commemoration[0].ID)
	assert.Empty(t, out.Displacements)
}

func TestRuleImmaculateConception_NoMatchOnWeekday(t *testing.T) {
	date := calendar.Date(2025, time.December, 8) // a Monday
	feast := day(t, "sancti:12-08_conceptione_immaculata_bmv:1", 80).On(date)
	feria := day(t, "tempora:f2_hebd_adventus_2:3", 8).On(date)

	assert.Nil(t, ruleImmaculateConception(date, []liturgy.Day{feria, feast}))
}

func TestRuleFirstClassFeastTransfer(t *testing.T) {
	// St Joseph on the third Sunday of Lent (2017-03-19).
	date := calendar.Date(2017, time.March, 19)
	sunday := day(t, "tempora:dom_quadragesima_3:1", 35).On(date)
	feast := day(t, "sancti:03-19_josephi_sponsi_bmv:1", 38).On(date)

	out := ruleFirstClassFeastTransfer(date, []liturgy.Day{sunday, feast})
	require.NotNil(t, out)

	require.Len(t, out.Celebration, 1)
	assert.Equal(t, sunday.ID, out.Celebration[0].ID)
	assert.Empty(t, out.Commemoration)

	require.Len(t, out.Displacements, 1)
	assert.Equal(t, calendar.Date(2017, time.March, 20), out.Displacements[0].Target)
	require.Len(t, out.Displacements[0].Days, 1)
	assert.Equal(t, feast.ID, out.Displacements[0].Days[0].ID)
}

func TestRuleFirstClassFeastTransfer_NoMatchWithoutFirstClassTempora(t *testing.T) {
	date := calendar.Date(2025, time.March, 19)
	feria := day(t, "tempora:f4_hebd_quadragesima_2:3", 30).On(date)
	feast := day(t, "sancti:03-19_josephi_sponsi_bmv:1", 38).On(date)

	assert.Nil(t, ruleFirstClassFeastTransfer(date, []liturgy.Day{feria, feast}))
}

func TestRuleRankPrecedence(t *testing.T) {
	date := calendar.Date(2025, time.January, 21)
	feria := day(t, "tempora:f3_hebd_post_epiphania_2:4", 8).On(date)
	agnes := day(t, "sancti:01-21_agnetis:3", 11).On(date)

	out := ruleRankPrecedence(date, []liturgy.Day{feria, agnes})
	require.NotNil(t, out)

	require.Len(t, out.Celebration, 1)
	assert.Equal(t, agnes.ID, out.Celebration[0].ID)
	assert.Empty(t, out.Commemoration, "fourth-class ferias are omitted, not commemorated")
}

func TestRuleRankPrecedence_KeepsThirdClassCommemoration(t *testing.T) {
	date := calendar.Date(2025, time.December, 3)
	feria := day(t, "tempora:f4_hebd_adventus_1:3", 3).On(date)
	xavier := day(t, "sancti:12-03_francisci_xaverii:3", 79).On(date)

	out := ruleRankPrecedence(date, []liturgy.Day{feria, xavier})
	require.NotNil(t, out)

	// Equal rank: catalog position breaks the tie, the loser is kept
	// as a commemoration.
	require.Len(t, out.Celebration, 1)
	assert.Equal(t, feria.ID, out.Celebration[0].ID)
	require.Len(t, out.Commemoration, 1)
	assert.Equal(t, xavier.ID, out.Commemoration[0].ID)
}

func TestRuleRankPrecedence_SingleCandidatePassesThrough(t *testing.T) {
	date := calendar.Date(2025, time.June, 24)
	feast := day(t, "sancti:06-24_nativitas_joannis_baptistae:1", 50).On(date)

	assert.Nil(t, ruleRankPrecedence(date, []liturgy.Day{feast}))
	assert.Nil(t, ruleRankPrecedence(date, nil))
}

func TestDefaultRules_OrderIsPolicy(t *testing.T) {
	rules := DefaultRules()
	require.Len(t, rules, 3)

	// Named exceptions evaluate before the generic fallback.
	assert.Equal(t, "immaculate_conception_on_advent_sunday", rules[0].ID)
	assert.Equal(t, "first_class_feast_transfer", rules[1].ID)
	assert.Equal(t, "rank_precedence", rules[2].ID)
}
