package rules

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/multierr"

	"github.com/solatis/gildedrose/internal/types"
)

func TestNewRegistry_ResolveExactMatch(t *testing.T) {
	r, err := NewRegistry(Catalog(), GenericRules())
	if err != nil {
		t.Fatalf("NewRegistry() error = %v, want nil", err)
	}

	table, ok := r.Resolve(types.CategorySulfuras)
	if !ok {
		t.Fatalf("Resolve(%q) ok = false, want true", types.CategorySulfuras)
	}
	if !table.Pinned() {
		t.Errorf("Sulfuras table Pinned() = false, want true")
	}
}

func TestNewRegistry_ResolveFallback(t *testing.T) {
	r := Default()

	for _, name := range []string{"Test Item", "", "aged brie", "Aged Brie ", "Conjured Mana Cake"} {
		table, ok := r.Resolve(name)
		if ok {
			t.Errorf("Resolve(%q) ok = true, want false", name)
		}
		if table != r.Fallback() {
			t.Errorf("Resolve(%q) did not return the fallback table", name)
		}
	}
}

func TestRegistry_Categories(t *testing.T) {
	want := []string{
		types.CategoryAgedBrie,
		types.CategoryBackstagePasses,
		types.CategoryConjured,
		types.CategorySulfuras,
	}
	if diff := cmp.Diff(want, Default().Categories()); diff != "" {
		t.Errorf("Categories() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewRegistry_AggregatesInvalidRules(t *testing.T) {
	gap := types.ItemRules{
		Intervals: []types.Interval{
			{MinSellBy: math.Inf(-1), MaxSellBy: 0},
			{MinSellBy: 1, MaxSellBy: math.Inf(1)},
		},
		SellByRateDecrease: 1,
	}
	categories := Catalog()
	categories["Broken A"] = gap
	categories["Broken B"] = types.ItemRules{}

	r, err := NewRegistry(categories, types.ItemRules{})
	if r != nil {
		t.Errorf("NewRegistry() registry = %v, want nil", r)
	}
	if !errors.Is(err, types.ErrRulesInvalid) {
		t.Fatalf("NewRegistry() error = %v, want ErrRulesInvalid", err)
	}

	errs := multierr.Errors(err)
	if len(errs) != 3 {
		t.Fatalf("len(multierr.Errors()) = %d, want 3: %v", len(errs), err)
	}
	msg := err.Error()
	for _, fragment := range []string{`category "Broken A"`, `category "Broken B"`, "fallback"} {
		if !strings.Contains(msg, fragment) {
			t.Errorf("error %q does not mention %s", msg, fragment)
		}
	}
}

func TestMustRegistry_PanicsOnInvalidRules(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, types.ErrRulesInvalid) {
			t.Errorf("panic value = %v, want ErrRulesInvalid", r)
		}
	}()
	MustRegistry(nil, types.ItemRules{})
}

func TestRegistry_Suggest(t *testing.T) {
	r := Default()

	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"Aged brie", types.CategoryAgedBrie, true},
		{"Aged Bree", types.CategoryAgedBrie, true},
		{"Conjured Itme", types.CategoryConjured, true},
		{"Sulfuras, Hand of Ragnaros!", types.CategorySulfuras, true},
		{types.CategoryAgedBrie, "", false},
		{"Test Item", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Suggest(tt.name)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Suggest(%q) = (%q, %v), want (%q, %v)", tt.name, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
