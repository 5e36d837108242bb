// Package gildedrose updates a shop inventory once per day.
//
// Each item's category selects a compiled-in rule table that maps the
// remaining sell-by countdown to a quality change. UpdateQuality advances
// every item by one day in place.
package gildedrose

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/solatis/gildedrose/internal/core/config"
	"github.com/solatis/gildedrose/internal/core/logging"
	"github.com/solatis/gildedrose/internal/rules"
	"github.com/solatis/gildedrose/internal/types"
)

// Item is a single stock entry.
type Item = types.Item

// Option configures the update engine.
type Option = rules.Option

// Quality bounds applied by every non-legendary rule.
const (
	QualityMin = types.QualityMin
	QualityMax = types.QualityMax
)

// WithLogger sets the logger used for tick diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return rules.WithLogger(logger)
}

// WithParallelism sweeps inventories of at least threshold items across up to
// workers goroutines. A threshold of 0 disables it.
func WithParallelism(threshold, workers int) Option {
	return rules.WithParallelism(threshold, workers)
}

// GildedRose owns an inventory and the engine that ages it.
type GildedRose struct {
	Items  []Item
	engine *rules.Engine
}

// New returns a GildedRose over items using the compiled-in rules.
func New(items []Item, opts ...Option) *GildedRose {
	return &GildedRose{
		Items:  items,
		engine: rules.NewEngine(rules.Default(), opts...),
	}
}

// NewFromConfig is New with logging and parallelism taken from a config file
// and GR_* environment variables. An empty path uses environment and defaults.
func NewFromConfig(items []Item, configPath string, opts ...Option) (*GildedRose, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger, err := logging.FromConfig(cfg)
	if err != nil {
		return nil, err
	}

	base := []Option{
		WithLogger(logger),
		WithParallelism(cfg.ParallelThreshold, cfg.MaxWorkers),
	}
	return New(items, append(base, opts...)...), nil
}

// UpdateQuality advances every item by one day.
func (g *GildedRose) UpdateQuality() {
	g.engine.Tick(g.Items)
}

// Day returns how many times UpdateQuality has run.
func (g *GildedRose) Day() int64 {
	return g.engine.Day()
}

// WriteReport writes the inventory for the current day, one item per line.
func (g *GildedRose) WriteReport(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "-------- day %d --------\nname, sellIn, quality\n", g.Day()); err != nil {
		return err
	}
	for _, item := range g.Items {
		if _, err := fmt.Fprintln(w, item); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
