package catalog

import (
	"fmt"

	"github.com/roach88/ordo/internal/liturgy"
)

// Block is an ordered sequence of per-offset identifier sets. Offset i
// of a placement run lands on anchor+i (anchor-i when reversed). An
// empty set leaves its date untouched.
type Block struct {
	Name    string
	Offsets [][]liturgy.Day
}

// Len returns the number of offsets the block spans.
func (b Block) Len() int {
	return len(b.Offsets)
}

// The named blocks of the 1962 movable cycle. Built once at package
// initialization; a malformed identifier in these tables is a
// programming error and panics at init.
var (
	// PostEpiphania covers the Holy Family Sunday and the up to six
	// weeks after Epiphany. It is also the source of the "resumed"
	// weeks laid backwards before the 24th post-Pentecost Sunday when
	// an early Easter leaves a gap in November.
	PostEpiphania = newBlock("post_epiphania", postEpiphaniaOffsets())

	// Resurrectionis is the 280-day span from Septuagesima through the
	// Saturday of the 23rd week after Pentecost.
	Resurrectionis = newBlock("resurrectionis", resurrectionisOffsets())

	// HebdPostPentecost24 is the week of the 24th (last) Sunday after
	// Pentecost, placed immediately before Advent.
	HebdPostPentecost24 = newBlock("hebd_post_pentecost_24",
		week("post_pentecost_24", 2, 4))

	// Adventus covers the four Advent weeks. Placement stops at Dec 23;
	// Dec 24 is reserved for the Vigil of the Nativity.
	Adventus = newBlock("adventus", adventusOffsets())

	// SanctissimiNominisJesu is the single-entry Holy Name block.
	SanctissimiNominisJesu = newBlock("sanctissimi_nominis_jesu", [][]string{
		{"tempora:dom_sanctissimi_nominis_jesu:2"},
	})

	// QuattuorSeptembris holds the September Ember days: Wednesday,
	// (skip Thursday), Friday, Saturday.
	QuattuorSeptembris = newBlock("quattuor_septembris", [][]string{
		{"tempora:f4_quattuor_septembris:2"},
		{},
		{"tempora:f6_quattuor_septembris:2"},
		{"tempora:sab_quattuor_septembris:2"},
	})

	// JesuChristiRegis is the single-entry Christ the King block.
	JesuChristiRegis = newBlock("jesu_christi_regis", [][]string{
		{"tempora:dom_jesu_christi_regis:1"},
	})

	// DomOctavamNativitatis is the Sunday within the Christmas octave,
	// placed only in years where that Sunday occurs.
	DomOctavamNativitatis = newBlock("dom_octavam_nativitatis", [][]string{
		{"tempora:dom_infra_octavam_nativitatis:2"},
	})
)

func postEpiphaniaOffsets() [][]string {
	out := weekNamed("dom_sanctae_familiae", 2, "post_epiphania_1", 4)
	for n := 2; n <= 6; n++ {
		out = append(out, week(fmt.Sprintf("post_epiphania_%d", n), 2, 4)...)
	}
	return out
}

func resurrectionisOffsets() [][]string {
	var out [][]string

	// Pre-Lent.
	out = append(out, week("septuagesima", 2, 4)...)
	out = append(out, week("sexagesima", 2, 4)...)
	out = append(out,
		[]string{"tempora:dom_quinquagesima:2"},
		[]string{"tempora:f2_hebd_quinquagesima:4"},
		[]string{"tempora:f3_hebd_quinquagesima:4"},
		[]string{"tempora:f4_cinerum:1"},
		[]string{"tempora:f5_post_cineres:3"},
		[]string{"tempora:f6_post_cineres:3"},
		[]string{"tempora:sab_post_cineres:3"},
	)

	// Lent. First week carries the spring Ember days.
	out = append(out,
		[]string{"tempora:dom_quadragesima_1:1"},
		[]string{"tempora:f2_hebd_quadragesima_1:3"},
		[]string{"tempora:f3_hebd_quadragesima_1:3"},
		[]string{"tempora:f4_quattuor_quadragesimae:2"},
		[]string{"tempora:f5_hebd_quadragesima_1:3"},
		[]string{"tempora:f6_quattuor_quadragesimae:2"},
		[]string{"tempora:sab_quattuor_quadragesimae:2"},
	)
	for n := 2; n <= 4; n++ {
		out = append(out, week(fmt.Sprintf("quadragesima_%d", n), 1, 3)...)
	}

	// Passiontide and Holy Week.
	out = append(out, week("passionis", 1, 3)...)
	out = append(out,
		[]string{"tempora:dom_palmarum:1"},
		[]string{"tempora:f2_hebd_sanctae:1"},
		[]string{"tempora:f3_hebd_sanctae:1"},
		[]string{"tempora:f4_hebd_sanctae:1"},
		[]string{"tempora:f5_in_coena_domini:1"},
		[]string{"tempora:f6_in_parasceve:1"},
		[]string{"tempora:sab_sancto:1"},
	)

	// Easter octave.
	out = append(out,
		[]string{"tempora:dom_resurrectionis:1"},
		[]string{"tempora:f2_paschae:1"},
		[]string{"tempora:f3_paschae:1"},
		[]string{"tempora:f4_paschae:1"},
		[]string{"tempora:f5_paschae:1"},
		[]string{"tempora:f6_paschae:1"},
		[]string{"tempora:sab_in_albis:1"},
	)

	// Paschaltide.
	out = append(out, weekNamed("dom_in_albis", 1, "post_pascha_1", 4)...)
	for n := 2; n <= 4; n++ {
		out = append(out, week(fmt.Sprintf("post_pascha_%d", n), 2, 4)...)
	}

	// Rogation days and Ascension Thursday.
	out = append(out,
		[]string{"tempora:dom_post_pascha_5:2"},
		[]string{"tempora:f2_rogationum:3"},
		[]string{"tempora:f3_rogationum:3"},
		[]string{"tempora:f4_in_vigilia_ascensionis:3"},
		[]string{"tempora:f5_in_ascensione_domini:1"},
		[]string{"tempora:f6_post_ascensionem:4"},
		[]string{"tempora:sab_post_ascensionem:4"},
	)
	out = append(out,
		[]string{"tempora:dom_post_ascensionem:2"},
		[]string{"tempora:f2_hebd_post_ascensionem:4"},
		[]string{"tempora:f3_hebd_post_ascensionem:4"},
		[]string{"tempora:f4_hebd_post_ascensionem:4"},
		[]string{"tempora:f5_hebd_post_ascensionem:4"},
		[]string{"tempora:f6_hebd_post_ascensionem:4"},
		[]string{"tempora:sab_in_vigilia_pentecostes:1"},
	)

	// Pentecost octave with the summer Ember days.
	out = append(out,
		[]string{"tempora:dom_pentecostes:1"},
		[]string{"tempora:f2_pentecostes:1"},
		[]string{"tempora:f3_pentecostes:1"},
		[]string{"tempora:f4_quattuor_pentecostes:1"},
		[]string{"tempora:f5_pentecostes:1"},
		[]string{"tempora:f6_quattuor_pentecostes:1"},
		[]string{"tempora:sab_quattuor_pentecostes:1"},
	)

	// Time after Pentecost. Week 1 carries Trinity Sunday and Corpus
	// Christi, week 2 the Sacred Heart.
	out = append(out,
		[]string{"tempora:dom_sanctissimae_trinitatis:1"},
		[]string{"tempora:f2_hebd_post_pentecost_1:4"},
		[]string{"tempora:f3_hebd_post_pentecost_1:4"},
		[]string{"tempora:f4_hebd_post_pentecost_1:4"},
		[]string{"tempora:f5_in_festo_corporis_christi:1"},
		[]string{"tempora:f6_hebd_post_pentecost_1:4"},
		[]string{"tempora:sab_post_pentecost_1:4"},
	)
	out = append(out,
		[]string{"tempora:dom_post_pentecost_2:2"},
		[]string{"tempora:f2_hebd_post_pentecost_2:4"},
		[]string{"tempora:f3_hebd_post_pentecost_2:4"},
		[]string{"tempora:f4_hebd_post_pentecost_2:4"},
		[]string{"tempora:f5_hebd_post_pentecost_2:4"},
		[]string{"tempora:f6_sanctissimi_cordis_jesu:1"},
		[]string{"tempora:sab_post_pentecost_2:4"},
	)
	for n := 3; n <= 23; n++ {
		out = append(out, week(fmt.Sprintf("post_pentecost_%d", n), 2, 4)...)
	}

	return out
}

func adventusOffsets() [][]string {
	var out [][]string
	out = append(out, week("adventus_1", 1, 3)...)
	out = append(out, week("adventus_2", 1, 3)...)
	// Third week carries the winter Ember days.
	out = append(out,
		[]string{"tempora:dom_adventus_3:1"},
		[]string{"tempora:f2_hebd_adventus_3:3"},
		[]string{"tempora:f3_hebd_adventus_3:3"},
		[]string{"tempora:f4_quattuor_adventus:2"},
		[]string{"tempora:f5_hebd_adventus_3:3"},
		[]string{"tempora:f6_quattuor_adventus:2"},
		[]string{"tempora:sab_quattuor_adventus:2"},
	)
	// Greater ferias of the final Advent week.
	out = append(out, week("adventus_4", 1, 2)...)
	return out
}

// week returns the seven offsets of a regular liturgical week: the
// Sunday dom_<stem>, ferias f2..f6_hebd_<stem>, and sab_<stem>.
func week(stem string, sundayRank, feriaRank int) [][]string {
	return weekNamed("dom_"+stem, sundayRank, stem, feriaRank)
}

// weekNamed is week with an irregular Sunday name (e.g. Holy Family
// Sunday heading the first post-Epiphany week).
func weekNamed(sunday string, sundayRank int, feriaStem string, feriaRank int) [][]string {
	out := [][]string{{fmt.Sprintf("tempora:%s:%d", sunday, sundayRank)}}
	for _, f := range []string{"f2", "f3", "f4", "f5", "f6"} {
		out = append(out, []string{fmt.Sprintf("tempora:%s_hebd_%s:%d", f, feriaStem, feriaRank)})
	}
	return append(out, []string{fmt.Sprintf("tempora:sab_%s:%d", feriaStem, feriaRank)})
}

// newBlock parses a raw offset table into a Block. Positions are
// assigned in declaration order and serve as the equal-rank tie-break.
func newBlock(name string, raw [][]string) Block {
	b := Block{Name: name, Offsets: make([][]liturgy.Day, len(raw))}
	pos := 0
	for i, set := range raw {
		days := make([]liturgy.Day, 0, len(set))
		for _, id := range set {
			days = append(days, liturgy.MustParse(id, pos))
			pos++
		}
		b.Offsets[i] = days
	}
	return b
}
