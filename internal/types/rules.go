// internal/types/rules.go
package types

import (
	"fmt"
	"math"
)

/*
 * Domain types for quality rule definitions.
 *
 * Provides Interval, QualityChange, and ItemRules structures used by
 * internal/rules for compilation and lookup. Nothing here is validated;
 * rules.Compile rejects definitions that do not tile the sell-by axis.
 *
 * Key types:
 *   - QualityChange: tagged variant, either Delta(n) or SetTo(n)
 *   - Interval: half-open [MinSellBy, MaxSellBy) range carrying a change
 *   - ItemRules: intervals for one category plus its sell_in decrement
 *
 * Bounds are float64 so a definition can reach math.Inf(-1) and math.Inf(1).
 */

// ChangeKind tags a QualityChange.
type ChangeKind int

const (
	// ChangeDelta adds an amount and clamps into [QualityMin, QualityMax].
	ChangeDelta ChangeKind = iota
	// ChangeSet assigns an amount verbatim, bypassing the clamp.
	ChangeSet
)

// QualityChange is the effect an interval has on quality.
// The zero value is Delta(0).
type QualityChange struct {
	kind   ChangeKind
	amount int
}

// Delta returns a change that adds n to quality, clamped.
func Delta(n int) QualityChange {
	return QualityChange{kind: ChangeDelta, amount: n}
}

// SetTo returns a change that forces quality to exactly n.
func SetTo(n int) QualityChange {
	return QualityChange{kind: ChangeSet, amount: n}
}

// Kind reports which variant the change is.
func (c QualityChange) Kind() ChangeKind { return c.kind }

// Amount is the delta or the assigned value, depending on Kind.
func (c QualityChange) Amount() int { return c.amount }

// Apply returns the quality after the change.
// Delta(0) leaves quality untouched, including out-of-range values held by
// pinned items; any other delta is clamped.
func (c QualityChange) Apply(quality int) int {
	if c.kind == ChangeSet {
		return c.amount
	}
	if c.amount == 0 {
		return quality
	}
	return ClampQuality(quality + c.amount)
}

func (c QualityChange) String() string {
	if c.kind == ChangeSet {
		return fmt.Sprintf("set(%d)", c.amount)
	}
	return fmt.Sprintf("delta(%+d)", c.amount)
}

// ClampQuality bounds q into [QualityMin, QualityMax].
func ClampQuality(q int) int {
	if q < QualityMin {
		return QualityMin
	}
	if q > QualityMax {
		return QualityMax
	}
	return q
}

// Interval applies Change when MinSellBy <= sell_in < MaxSellBy.
type Interval struct {
	MinSellBy float64
	MaxSellBy float64
	Change    QualityChange
}

// Contains reports whether sellIn falls inside the half-open interval.
func (iv Interval) Contains(sellIn float64) bool {
	return iv.MinSellBy <= sellIn && sellIn < iv.MaxSellBy
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%s, %s) %s", formatBound(iv.MinSellBy), formatBound(iv.MaxSellBy), iv.Change)
}

func formatBound(b float64) string {
	switch {
	case math.IsInf(b, -1):
		return "-inf"
	case math.IsInf(b, 1):
		return "+inf"
	default:
		return fmt.Sprintf("%g", b)
	}
}

// ItemRules is the unvalidated ruleset for one category.
type ItemRules struct {
	Intervals          []Interval // any order; sorted during compilation
	SellByRateDecrease int        // subtracted from sell_in each tick
}
