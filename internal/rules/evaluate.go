// internal/rules/evaluate.go
package rules

import (
	"fmt"
	"sort"

	"github.com/solatis/gildedrose/internal/types"
)

/*
 * Interval lookup.
 *
 * Finds the single interval of a compiled Table containing a sell_in value.
 * Intervals are sorted and tile (-inf, +inf), so the first interval whose
 * MaxSellBy is above sell_in is the match; binary search finds it.
 *
 * Half-open [min, max) matching is evaluated against the post-decrement
 * sell_in: the rule for "past the sell-by date" fires on the tick the
 * countdown crosses zero, exactly once.
 *
 * A miss means the Table did not come from Compile. That is a defect in the
 * caller, not bad item data, so Lookup panics instead of returning an error.
 */

// Lookup returns the quality change for sellIn.
func (t *Table) Lookup(sellIn int) types.QualityChange {
	return t.lookupInterval(sellIn).Change
}

// lookupInterval returns the interval containing sellIn or panics.
func (t *Table) lookupInterval(sellIn int) types.Interval {
	x := float64(sellIn)
	i := sort.Search(len(t.intervals), func(i int) bool {
		return t.intervals[i].MaxSellBy > x
	})
	if i == len(t.intervals) || !t.intervals[i].Contains(x) {
		panic(fmt.Errorf("%w: sell_in %d", types.ErrNoMatchingInterval, sellIn))
	}
	return t.intervals[i]
}

// Advance applies one tick of the table to a sell_in/quality pair and returns
// the new pair. The countdown is decremented first; the change is chosen by
// the decremented value.
func (t *Table) Advance(sellIn, quality int) (int, int) {
	sellIn -= t.rate
	return sellIn, t.Lookup(sellIn).Apply(quality)
}
