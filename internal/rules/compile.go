// internal/rules/compile.go
package rules

import (
	"fmt"
	"math"
	"sort"

	"github.com/solatis/gildedrose/internal/types"
)

/*
 * Rule table compilation and validation.
 *
 * Compiles types.ItemRules to a Table with intervals sorted by lower bound
 * and the tiling invariant checked once, so lookups never re-validate.
 *
 * Compilation workflow:
 *   1. Validate shape (non-empty, non-negative rate, no NaN, no empty interval)
 *   2. Copy and stable sort intervals by MinSellBy
 *   3. Check the first interval opens at -inf and the last closes at +inf
 *   4. Check every MaxSellBy equals the next MinSellBy (no gap, no overlap)
 *
 * Compile-time validation: a table with a gap or overlap would give some
 * sell_in values zero or several matching rules. Rejecting it here keeps
 * Lookup a total function with no error path.
 *
 * Every failure wraps types.ErrRulesInvalid; callers test with errors.Is.
 */

// Table is a compiled, immutable ruleset for one category.
type Table struct {
	intervals []types.Interval // sorted by MinSellBy, tiling (-inf, +inf)
	rate      int
}

// Compile validates and pre-processes a ruleset for lookup.
func Compile(def *types.ItemRules) (*Table, error) {
	if def == nil || len(def.Intervals) == 0 {
		return nil, fmt.Errorf("%w: no intervals", types.ErrRulesInvalid)
	}
	if def.SellByRateDecrease < 0 {
		return nil, fmt.Errorf("%w: negative sell_by rate decrease %d", types.ErrRulesInvalid, def.SellByRateDecrease)
	}

	intervals := make([]types.Interval, len(def.Intervals))
	copy(intervals, def.Intervals)

	for _, iv := range intervals {
		if err := validateInterval(iv); err != nil {
			return nil, err
		}
	}

	// Stable sort: equal lower bounds keep authoring order so the overlap
	// error names the intervals as written
	sort.SliceStable(intervals, func(i, j int) bool {
		return intervals[i].MinSellBy < intervals[j].MinSellBy
	})

	if err := validateTiling(intervals); err != nil {
		return nil, err
	}

	return &Table{intervals: intervals, rate: def.SellByRateDecrease}, nil
}

// validateInterval rejects NaN bounds and empty intervals.
func validateInterval(iv types.Interval) error {
	if math.IsNaN(iv.MinSellBy) || math.IsNaN(iv.MaxSellBy) {
		return fmt.Errorf("%w: NaN bound in %v", types.ErrRulesInvalid, iv)
	}
	if iv.MinSellBy >= iv.MaxSellBy {
		return fmt.Errorf("%w: empty interval %v", types.ErrRulesInvalid, iv)
	}
	return nil
}

// validateTiling checks sorted intervals cover (-inf, +inf) exactly once.
func validateTiling(intervals []types.Interval) error {
	first := intervals[0]
	if !math.IsInf(first.MinSellBy, -1) {
		return fmt.Errorf("%w: first interval %v does not start at -inf", types.ErrRulesInvalid, first)
	}
	last := intervals[len(intervals)-1]
	if !math.IsInf(last.MaxSellBy, 1) {
		return fmt.Errorf("%w: last interval %v does not end at +inf", types.ErrRulesInvalid, last)
	}

	for i := 0; i < len(intervals)-1; i++ {
		cur, next := intervals[i], intervals[i+1]
		switch {
		case cur.MaxSellBy < next.MinSellBy:
			return fmt.Errorf("%w: gap between %v and %v", types.ErrRulesInvalid, cur, next)
		case cur.MaxSellBy > next.MinSellBy:
			return fmt.Errorf("%w: overlap between %v and %v", types.ErrRulesInvalid, cur, next)
		}
	}
	return nil
}

// SellByRateDecrease is subtracted from sell_in each tick.
func (t *Table) SellByRateDecrease() int {
	return t.rate
}

// Intervals returns a copy of the sorted intervals.
func (t *Table) Intervals() []types.Interval {
	out := make([]types.Interval, len(t.intervals))
	copy(out, t.intervals)
	return out
}

// Pinned reports whether the table never changes an item: no countdown and a
// single zero delta over all time.
func (t *Table) Pinned() bool {
	if t.rate != 0 || len(t.intervals) != 1 {
		return false
	}
	c := t.intervals[0].Change
	return c.Kind() == types.ChangeDelta && c.Amount() == 0
}
