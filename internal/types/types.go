// Package types provides domain models shared across Gilded Rose components.
//
// Zero-dependency design: types.go, rules.go and errors.go use only the standard
// library so the rule definitions can be authored anywhere without pulling in
// the engine. ID utilities in ids.go import uuid but are isolated.
//
// Separation from compiled state: definitions here are unvalidated input.
// internal/rules owns compilation into immutable lookup tables.
package types

import "fmt"

// Item is a single stock entry. Items are owned by the caller and mutated in
// place by the update engine, once per tick.
type Item struct {
	Name    string
	SellIn  int // days until the sell-by date; negative means past due
	Quality int
}

// String renders the item as "name, sell_in, quality".
func (i Item) String() string {
	return fmt.Sprintf("%s, %d, %d", i.Name, i.SellIn, i.Quality)
}

// Quality bounds applied to every Delta change.
const (
	QualityMin = 0
	QualityMax = 50
)

// Category names with dedicated rules. Matching is exact and case-sensitive;
// any other name falls back to the generic ruleset.
const (
	CategoryAgedBrie        = "Aged Brie"
	CategorySulfuras        = "Sulfuras, Hand of Ragnaros"
	CategoryBackstagePasses = "Backstage passes to a TAFKAL80ETC concert"
	CategoryConjured        = "Conjured Item"
)
