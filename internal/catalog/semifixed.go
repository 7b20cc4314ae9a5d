package catalog

import (
	"time"

	"github.com/roach88/ordo/internal/anchor"
	"github.com/roach88/ordo/internal/liturgy"
)

// SemiFixedDay is a celebration normally bound to a fixed month-day but
// computed per year: leap years shift the late-February pair, and All
// Souls defers past a Sunday.
type SemiFixedDay struct {
	Date time.Time
	Day  liturgy.Day
}

// Positions continue past the fixed table so the tie-break order stays
// total across both sancti sources.
const semiFixedPosBase = 1000

// SemiFixed returns the conditionally computed sancti days for a year,
// in declaration order.
func SemiFixed(year int) []SemiFixedDay {
	return []SemiFixedDay{
		{
			Date: anchor.AllSoulsDay(year),
			Day:  liturgy.MustParse("sancti:11-02_omnium_fidelium_defunctorum:1", semiFixedPosBase),
		},
		{
			Date: anchor.MatthiasDay(year),
			Day:  liturgy.MustParse("sancti:02-24_matthiae_apostoli:2", semiFixedPosBase+1),
		},
		{
			Date: anchor.GabrielSorrowsDay(year),
			Day:  liturgy.MustParse("sancti:02-27_gabrielis_a_virgine_perdolente:3", semiFixedPosBase+2),
		},
	}
}
