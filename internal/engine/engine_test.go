package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ordo/internal/calendar"
	"github.com/roach88/ordo/internal/liturgy"
)

func TestCompute_InvalidYear(t *testing.T) {
	for _, year := range []int{1582, 4100, 0, -44} {
		_, err := Compute(year)
		require.Error(t, err, "year %d", year)
		assert.True(t, IsInvalidYear(err), "year %d", year)
	}
}

func TestCompute_OneRecordPerDate(t *testing.T) {
	for _, tc := range []struct {
		year int
		want int
	}{
		{2008, 366},
		{2017, 365},
		{2024, 366},
		{2025, 365},
	} {
		s, err := Compute(tc.year)
		require.NoError(t, err)
		require.Equal(t, tc.want, s.Len(), "year %d", tc.year)

		prev := time.Time{}
		for i, rec := range s.Days() {
			if i > 0 {
				require.Equal(t, prev.AddDate(0, 0, 1), rec.Date, "gap at index %d of %d", i, tc.year)
			}
			prev = rec.Date
		}
	}
}

func TestCompute_Idempotent(t *testing.T) {
	first, err := Compute(2008)
	require.NoError(t, err)
	second, err := Compute(2008)
	require.NoError(t, err)

	a, err := liturgy.MarshalCanonical(first.Snapshot())
	require.NoError(t, err)
	b, err := liturgy.MarshalCanonical(second.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, a, b, "recomputation must be byte-identical")
}

func primaryID(t *testing.T, s *calendar.Store, date time.Time) string {
	t.Helper()
	rec, ok := s.At(date)
	require.True(t, ok)
	require.NotEmpty(t, rec.Celebration, "no celebration on %s", date.Format("2006-01-02"))
	return rec.Celebration[0].ID
}

func TestCompute_MovableCycle2008(t *testing.T) {
	s, err := Compute(2008)
	require.NoError(t, err)

	// Epiphanytide: Jan 6 was a Sunday, so Holy Family falls on Jan 13.
	assert.Equal(t, "sancti:01-06_epiphania_domini:1", primaryID(t, s, calendar.Date(2008, time.January, 6)))
	assert.Equal(t, "tempora:dom_sanctae_familiae:2", primaryID(t, s, calendar.Date(2008, time.January, 13)))
	assert.Equal(t, "tempora:dom_sanctissimi_nominis_jesu:2", primaryID(t, s, calendar.Date(2008, time.January, 2)))

	// The Easter cycle.
	assert.Equal(t, "tempora:dom_septuagesima:2", primaryID(t, s, calendar.Date(2008, time.January, 20)))
	assert.Equal(t, "tempora:f4_cinerum:1", primaryID(t, s, calendar.Date(2008, time.February, 6)))
	assert.Equal(t, "tempora:dom_palmarum:1", primaryID(t, s, calendar.Date(2008, time.March, 16)))
	assert.Equal(t, "tempora:dom_resurrectionis:1", primaryID(t, s, calendar.Date(2008, time.March, 23)))
	assert.Equal(t, "tempora:f5_in_ascensione_domini:1", primaryID(t, s, calendar.Date(2008, time.May, 1)))
	assert.Equal(t, "tempora:dom_pentecostes:1", primaryID(t, s, calendar.Date(2008, time.May, 11)))
	assert.Equal(t, "tempora:dom_sanctissimae_trinitatis:1", primaryID(t, s, calendar.Date(2008, time.May, 18)))
	assert.Equal(t, "tempora:f5_in_festo_corporis_christi:1", primaryID(t, s, calendar.Date(2008, time.May, 22)))

	// Autumn anchors.
	assert.Equal(t, "tempora:f4_quattuor_septembris:2", primaryID(t, s, calendar.Date(2008, time.September, 24)))
	assert.Equal(t, "tempora:dom_jesu_christi_regis:1", primaryID(t, s, calendar.Date(2008, time.October, 26)))
	assert.Equal(t, "tempora:dom_post_pentecost_24:2", primaryID(t, s, calendar.Date(2008, time.November, 23)))
	assert.Equal(t, "tempora:dom_adventus_1:1", primaryID(t, s, calendar.Date(2008, time.November, 30)))
}

func TestCompute_ResumedWeeksFillNovemberGap2008(t *testing.T) {
	// Easter 2008 was very early (Mar 23): the Resurrection block ends
	// Oct 25 and the post-Epiphany weeks resume backwards up to the
	// Saturday before the 24th post-Pentecost Sunday.
	s, err := Compute(2008)
	require.NoError(t, err)

	assert.Equal(t, "tempora:sab_post_pentecost_23:4", primaryID(t, s, calendar.Date(2008, time.October, 25)))
	assert.Equal(t, "tempora:dom_post_epiphania_4:2", primaryID(t, s, calendar.Date(2008, time.November, 2)))
	assert.Equal(t, "tempora:sab_post_epiphania_6:4", primaryID(t, s, calendar.Date(2008, time.November, 22)))
}

func TestCompute_SemiFixedDays(t *testing.T) {
	s2008, err := Compute(2008)
	require.NoError(t, err)

	// 2008: leap year, Nov 2 a Sunday.
	assert.Equal(t, "sancti:02-24_matthiae_apostoli:2", primaryID(t, s2008, calendar.Date(2008, time.February, 25)))
	assert.Equal(t, "sancti:11-02_omnium_fidelium_defunctorum:1", primaryID(t, s2008, calendar.Date(2008, time.November, 3)))

	// Leap year: Gabriel-of-the-Sorrows shifts to Feb 28, where the
	// Lenten feria of equal rank keeps the office.
	gabriel, _ := s2008.At(calendar.Date(2008, time.February, 28))
	assert.Equal(t, "tempora:f5_hebd_quadragesima_3:3", gabriel.Celebration[0].ID)
	require.Len(t, gabriel.Commemoration, 1)
	assert.Equal(t, "sancti:02-27_gabrielis_a_virgine_perdolente:3", gabriel.Commemoration[0].ID)

	s2025, err := Compute(2025)
	require.NoError(t, err)

	// 2025: common year, but Nov 2 is again a Sunday.
	assert.Equal(t, "sancti:02-24_matthiae_apostoli:2", primaryID(t, s2025, calendar.Date(2025, time.February, 24)))
	assert.Equal(t, "sancti:11-02_omnium_fidelium_defunctorum:1", primaryID(t, s2025, calendar.Date(2025, time.November, 3)))

	s2026, err := Compute(2026)
	require.NoError(t, err)
	assert.Equal(t, "sancti:11-02_omnium_fidelium_defunctorum:1", primaryID(t, s2026, calendar.Date(2026, time.November, 2)))
}

func TestCompute_StJosephTransfer2017(t *testing.T) {
	// Mar 19 2017 was the third Sunday of Lent: the Sunday is kept and
	// St Joseph moves to Monday.
	s, err := Compute(2017)
	require.NoError(t, err)

	assert.Equal(t, "tempora:dom_quadragesima_3:1", primaryID(t, s, calendar.Date(2017, time.March, 19)))
	assert.Equal(t, "sancti:03-19_josephi_sponsi_bmv:1", primaryID(t, s, calendar.Date(2017, time.March, 20)))

	rec, _ := s.At(calendar.Date(2017, time.March, 20))
	require.Len(t, rec.Commemoration, 1)
	assert.Equal(t, "tempora:f2_hebd_quadragesima_3:3", rec.Commemoration[0].ID)
	assert.Equal(t, calendar.Date(2017, time.March, 20), rec.Celebration[0].Date,
		"the transferred feast is rebound to its new date")
}

func TestCompute_ImmaculateConceptionOnAdventSunday2019(t *testing.T) {
	s, err := Compute(2019)
	require.NoError(t, err)

	rec, _ := s.At(calendar.Date(2019, time.December, 8))
	require.NotEmpty(t, rec.Celebration)
	assert.Equal(t, "sancti:12-08_conceptione_immaculata_bmv:1", rec.Celebration[0].ID)
	require.Len(t, rec.Commemoration, 1)
	assert.Equal(t, "tempora:dom_adventus_2:1", rec.Commemoration[0].ID)
}

func TestCompute_AdventStopsBeforeVigil(t *testing.T) {
	for _, year := range []int{2008, 2017, 2023, 2025} {
		s, err := Compute(year)
		require.NoError(t, err)

		// Dec 24 belongs to the Vigil, never to an Advent feria.
		assert.Equal(t, "sancti:12-24_vigilia_nativitatis:1",
			primaryID(t, s, calendar.Date(year, time.December, 24)), "year %d", year)
		assert.Equal(t, "sancti:12-25_nativitas_domini:1",
			primaryID(t, s, calendar.Date(year, time.December, 25)), "year %d", year)

		rec, _ := s.At(calendar.Date(year, time.December, 24))
		for _, d := range rec.Tempora {
			assert.NotContains(t, d.Name, "adventus_4", "year %d: Advent overran its stop date", year)
		}
	}
}

func TestCompute_ChristmasOctaveSunday(t *testing.T) {
	s, err := Compute(2008)
	require.NoError(t, err)

	rec, _ := s.At(calendar.Date(2008, time.December, 28))
	require.NotEmpty(t, rec.Celebration)
	assert.Equal(t, "tempora:dom_infra_octavam_nativitatis:2", rec.Celebration[0].ID)
	require.Len(t, rec.Commemoration, 1)
	assert.Equal(t, "sancti:12-28_sanctorum_innocentium:2", rec.Commemoration[0].ID)

	// 2016: Christmas itself was a Sunday, so no octave Sunday exists.
	s2016, err := Compute(2016)
	require.NoError(t, err)
	for _, rec := range s2016.Days() {
		for _, d := range rec.Tempora {
			assert.NotEqual(t, "dom_infra_octavam_nativitatis", d.Name)
		}
	}
}

func TestCompute_SundaysWithCommemorations(t *testing.T) {
	s, err := Compute(2008)
	require.NoError(t, err)

	// First Sunday of Advent 2008 concurs with St Andrew (second
	// class): the Sunday wins, the apostle is commemorated.
	rec, _ := s.At(calendar.Date(2008, time.November, 30))
	require.NotEmpty(t, rec.Celebration)
	assert.Equal(t, "tempora:dom_adventus_1:1", rec.Celebration[0].ID)
	require.Len(t, rec.Commemoration, 1)
	assert.Equal(t, "sancti:11-30_andreae_apostoli:2", rec.Commemoration[0].ID)
}

func TestCompute_CelebrationListsSorted(t *testing.T) {
	s, err := Compute(2024)
	require.NoError(t, err)

	for _, rec := range s.Days() {
		for i := 1; i < len(rec.Celebration); i++ {
			assert.LessOrEqual(t, liturgy.Compare(rec.Celebration[i-1], rec.Celebration[i]), 0,
				"celebration out of order on %s", rec.Date.Format("2006-01-02"))
		}
		for i := 1; i < len(rec.Commemoration); i++ {
			assert.LessOrEqual(t, liturgy.Compare(rec.Commemoration[i-1], rec.Commemoration[i]), 0,
				"commemoration out of order on %s", rec.Date.Format("2006-01-02"))
		}
	}
}

func TestCompute_DistinctYearsIndependent(t *testing.T) {
	// Distinct years may compute in parallel; each run owns its store.
	years := []int{2008, 2017, 2024, 2025}
	results := make([]*calendar.Store, len(years))
	errs := make([]error, len(years))

	done := make(chan int, len(years))
	for i, y := range years {
		go func(i, y int) {
			results[i], errs[i] = Compute(y)
			done <- i
		}(i, y)
	}
	for range years {
		<-done
	}

	for i, y := range years {
		require.NoError(t, errs[i], "year %d", y)
		assert.Equal(t, y, results[i].Year())
	}
}
