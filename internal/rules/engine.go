package rules

import (
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/solatis/gildedrose/internal/types"
)

/*
 * Update engine.
 *
 * Tick advances every item by one day, in place:
 *   1. Resolve the item's table by exact category name (fallback otherwise)
 *   2. Decrement sell_in by the table's rate
 *   3. Look up the change for the new sell_in
 *   4. Apply it: SetTo assigns, Delta adds and clamps
 *
 * Items are independent, so large inventories may be split into contiguous
 * chunks and updated concurrently. Chunks are disjoint and each item is
 * written by exactly one goroutine; Tick returns after every chunk is done.
 */

// Engine applies a Registry's rules to inventories.
type Engine struct {
	registry *Registry
	logger   *zap.Logger

	parallelThreshold int // 0 disables the parallel sweep
	maxWorkers        int

	day atomic.Int64
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger. Nil is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithParallelism splits inventories of at least threshold items across up
// to workers goroutines. A threshold of 0 keeps every sweep sequential.
func WithParallelism(threshold, workers int) Option {
	return func(e *Engine) {
		if threshold < 0 {
			threshold = 0
		}
		if workers < 1 {
			workers = 1
		}
		e.parallelThreshold = threshold
		e.maxWorkers = workers
	}
}

// NewEngine creates an engine over registry, or over Default() when nil.
func NewEngine(registry *Registry, opts ...Option) *Engine {
	if registry == nil {
		registry = Default()
	}
	e := &Engine{
		registry:   registry,
		logger:     zap.NewNop(),
		maxWorkers: 1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry returns the rules the engine evaluates.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Day returns the number of ticks run so far.
func (e *Engine) Day() int64 {
	return e.day.Load()
}

// Tick advances every item by one day. It never fails; a panic here means a
// table was not built by Compile.
func (e *Engine) Tick(items []types.Item) {
	tickID := types.NewTickID()
	day := e.day.Add(1)

	logger := e.logger.With(zap.String("tick_id", string(tickID)), zap.Int64("day", day))

	workers := e.workersFor(len(items))
	if workers <= 1 {
		e.sweep(items, logger)
	} else {
		e.sweepParallel(items, workers, logger)
	}

	logger.Debug("tick complete", zap.Int("items", len(items)), zap.Int("workers", workers))
}

// workersFor returns how many goroutines to use for n items.
func (e *Engine) workersFor(n int) int {
	if e.parallelThreshold == 0 || n < e.parallelThreshold {
		return 1
	}
	if n < e.maxWorkers {
		return n
	}
	return e.maxWorkers
}

// sweep updates items sequentially.
func (e *Engine) sweep(items []types.Item, logger *zap.Logger) {
	for i := range items {
		e.update(&items[i], logger)
	}
}

// sweepParallel updates contiguous chunks of items concurrently.
func (e *Engine) sweepParallel(items []types.Item, workers int, logger *zap.Logger) {
	var g errgroup.Group
	g.SetLimit(workers)

	size := (len(items) + workers - 1) / workers
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		chunk := items[start:end]
		g.Go(func() error {
			e.sweep(chunk, logger)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors
}

// update applies one tick to a single item.
func (e *Engine) update(item *types.Item, logger *zap.Logger) {
	table, ok := e.registry.Resolve(item.Name)
	if !ok && logger.Core().Enabled(zap.DebugLevel) {
		fields := []zap.Field{zap.String("category", item.Name)}
		if suggestion, found := e.registry.Suggest(item.Name); found {
			fields = append(fields, zap.String("suggestion", suggestion))
		}
		logger.Debug("unknown category, using generic rules", fields...)
	}

	item.SellIn, item.Quality = table.Advance(item.SellIn, item.Quality)
}
