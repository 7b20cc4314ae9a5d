package liturgy

import (
	"slices"
	"strings"
)

// Compare is the total order for celebration lists: rank ascending
// (first class before fourth), then catalog position, then identifier.
// The identifier leg makes the order total even across catalogs whose
// position sequences overlap, so sorted output is identical regardless
// of sort stability.
func Compare(a, b Day) int {
	if a.Rank != b.Rank {
		return a.Rank - b.Rank
	}
	if a.Pos != b.Pos {
		return a.Pos - b.Pos
	}
	return strings.Compare(a.ID, b.ID)
}

// SortDays sorts a celebration, commemoration, or tempora list in place
// into the canonical highest-rank-first order.
func SortDays(days []Day) {
	slices.SortFunc(days, Compare)
}
