package rules

import (
	"fmt"
	"sort"

	"github.com/agnivade/levenshtein"
	"go.uber.org/multierr"

	"github.com/solatis/gildedrose/internal/types"
)

// Registry maps category names to compiled tables, with a fallback table for
// every other name. It is immutable once built and safe to share.
type Registry struct {
	tables   map[string]*Table
	names    []string // sorted
	fallback *Table
}

// NewRegistry compiles every category and the fallback. All invalid rulesets
// are reported together; each error still matches types.ErrRulesInvalid.
func NewRegistry(categories map[string]types.ItemRules, fallback types.ItemRules) (*Registry, error) {
	r := &Registry{
		tables: make(map[string]*Table, len(categories)),
		names:  make([]string, 0, len(categories)),
	}

	var errs error
	for name, def := range categories {
		table, err := Compile(&def)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("category %q: %w", name, err))
			continue
		}
		r.tables[name] = table
		r.names = append(r.names, name)
	}

	table, err := Compile(&fallback)
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("fallback: %w", err))
	}
	r.fallback = table

	if errs != nil {
		return nil, errs
	}

	sort.Strings(r.names)
	return r, nil
}

// MustRegistry is NewRegistry for static data; it panics on invalid rules.
func MustRegistry(categories map[string]types.ItemRules, fallback types.ItemRules) *Registry {
	r, err := NewRegistry(categories, fallback)
	if err != nil {
		panic(err)
	}
	return r
}

// Resolve returns the table for name. Unknown names get the fallback table
// and ok=false; that is not an error.
func (r *Registry) Resolve(name string) (table *Table, ok bool) {
	if t, found := r.tables[name]; found {
		return t, true
	}
	return r.fallback, false
}

// Fallback returns the table used for unknown categories.
func (r *Registry) Fallback() *Table {
	return r.fallback
}

// Categories returns the registered category names, sorted.
func (r *Registry) Categories() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Suggest returns the registered category closest to name when it is within
// a small edit distance. Exact matches and empty names return false.
func (r *Registry) Suggest(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	if _, ok := r.tables[name]; ok {
		return "", false
	}

	best, bestDist := "", -1
	for _, candidate := range r.names {
		dist := levenshtein.ComputeDistance(name, candidate)
		if dist > levenshteinLimit(len(candidate)) {
			continue
		}
		// names is sorted, so ties keep the alphabetically first candidate
		if bestDist < 0 || dist < bestDist {
			best, bestDist = candidate, dist
		}
	}
	return best, bestDist >= 0
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 12:
		return 2
	default:
		return 3
	}
}
