package rules

import (
	"math"

	"github.com/solatis/gildedrose/internal/types"
)

var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)

// Intervals are matched against the already-decremented sell_in, so "< 0"
// means the sell-by date has passed.

// GenericRules degrade by 1 per day, 2 once past the sell-by date.
func GenericRules() types.ItemRules {
	return types.ItemRules{
		Intervals: []types.Interval{
			{MinSellBy: negInf, MaxSellBy: 0, Change: types.Delta(-2)},
			{MinSellBy: 0, MaxSellBy: posInf, Change: types.Delta(-1)},
		},
		SellByRateDecrease: 1,
	}
}

// Catalog returns the compiled-in category rulesets.
func Catalog() map[string]types.ItemRules {
	return map[string]types.ItemRules{
		types.CategoryAgedBrie: {
			Intervals: []types.Interval{
				{MinSellBy: negInf, MaxSellBy: 0, Change: types.Delta(2)},
				{MinSellBy: 0, MaxSellBy: posInf, Change: types.Delta(1)},
			},
			SellByRateDecrease: 1,
		},
		// Legendary: never sold, never changes.
		types.CategorySulfuras: {
			Intervals: []types.Interval{
				{MinSellBy: negInf, MaxSellBy: posInf, Change: types.Delta(0)},
			},
			SellByRateDecrease: 0,
		},
		types.CategoryBackstagePasses: {
			Intervals: []types.Interval{
				{MinSellBy: 10, MaxSellBy: posInf, Change: types.Delta(1)},
				{MinSellBy: 5, MaxSellBy: 10, Change: types.Delta(2)},
				{MinSellBy: 0, MaxSellBy: 5, Change: types.Delta(3)},
				{MinSellBy: negInf, MaxSellBy: 0, Change: types.SetTo(0)},
			},
			SellByRateDecrease: 1,
		},
		types.CategoryConjured: {
			Intervals: []types.Interval{
				{MinSellBy: negInf, MaxSellBy: 0, Change: types.Delta(-4)},
				{MinSellBy: 0, MaxSellBy: posInf, Change: types.Delta(-2)},
			},
			SellByRateDecrease: 1,
		},
	}
}

// defaultRegistry is built once at package initialization. Invalid catalog
// data panics here, before any item is ticked.
var defaultRegistry = MustRegistry(Catalog(), GenericRules())

// Default returns the process-wide registry of compiled-in rules.
func Default() *Registry {
	return defaultRegistry
}
