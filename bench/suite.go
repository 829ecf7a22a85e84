package bench

import (
	"context"

	"github.com/amlatyrngom/colbench"
	"github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
	"github.com/v2pro/plz"
	"github.com/v2pro/plz/countlog"
)

var ErrUnknownBenchmark = errors.New("unknown benchmark")

// Suite is not thread safe, can only be used from one goroutine
type Suite struct {
	Config
	gen    *colbench.Generator
	tables *lru.Cache
}

type tableKey struct {
	schema    string
	rowsCount int
}

type benchmark struct {
	name string
	run  func(ctx context.Context, suite *Suite) (Comparison, error)
}

var benchmarks = []benchmark{
	{"filter-cost", func(ctx context.Context, suite *Suite) (Comparison, error) {
		return suite.FilterOrderingCost(ctx, suite.FilterRowsCount)
	}},
	{"filter-selectivity", func(ctx context.Context, suite *Suite) (Comparison, error) {
		return suite.FilterOrderingSelectivity(ctx, suite.FilterRowsCount)
	}},
	{"loop-invariant", func(ctx context.Context, suite *Suite) (Comparison, error) {
		return suite.LoopInvariant(ctx, suite.InvariantRowsCount, suite.FibArg)
	}},
	{"dead-code", func(ctx context.Context, suite *Suite) (Comparison, error) {
		return suite.DeadCode(ctx, suite.DeadCodeRowsCount)
	}},
	{"join-ordering", func(ctx context.Context, suite *Suite) (Comparison, error) {
		return suite.JoinOrdering(ctx,
			suite.JoinSmallRowsCount, suite.JoinMediumRowsCount, suite.JoinLargeRowsCount)
	}},
}

func BenchmarkNames() []string {
	names := make([]string, len(benchmarks))
	for i, bm := range benchmarks {
		names[i] = bm.name
	}
	return names
}

func NewSuite(config Config) (*Suite, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	config.applyDefaults()
	tables, err := lru.New(config.TableCacheSize)
	if err != nil {
		return nil, err
	}
	gen := colbench.NewClockGenerator()
	if config.Seed != 0 {
		gen = colbench.NewGenerator(config.Seed)
	}
	return &Suite{Config: config, gen: gen, tables: tables}, nil
}

// sourceTable is shared between benchmarks, it must only be read
func (suite *Suite) sourceTable(schema colbench.Schema, rowsCount int) (*colbench.Table, error) {
	if rowsCount < 0 {
		return nil, errors.Wrapf(ErrInvalidConfig, "source table of %d rows", rowsCount)
	}
	key := tableKey{schema: schema.String(), rowsCount: rowsCount}
	if cached, found := suite.tables.Get(key); found {
		return cached.(*colbench.Table), nil
	}
	table := colbench.NewTable(suite.gen, schema, rowsCount)
	suite.tables.Add(key, table)
	countlog.Debug("event!bench.generated source table",
		"schema", key.schema, "rowsCount", rowsCount)
	return table, nil
}

// Run executes the named benchmarks in order, all of them if no name given.
// A failed benchmark does not stop the others unless ctx is done.
func (suite *Suite) Run(ctx context.Context, names ...string) ([]Comparison, error) {
	selected, err := selectBenchmarks(names)
	if err != nil {
		return nil, err
	}
	comparisons, errs := suite.runSelected(ctx, selected)
	return comparisons, plz.MergeErrors(errs...)
}

// runSelected stops at the first benchmark interrupted by ctx
func (suite *Suite) runSelected(ctx context.Context, selected []benchmark) ([]Comparison, []error) {
	var comparisons []Comparison
	var errs []error
	for _, bm := range selected {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}
		comparison, err := bm.run(ctx, suite)
		if err != nil {
			errs = append(errs, err)
			if ctx.Err() != nil && errors.Cause(err) == ctx.Err() {
				break
			}
			countlog.Error("event!bench.benchmark failed", "benchmark", bm.name, "err", err)
			continue
		}
		comparisons = append(comparisons, comparison)
	}
	return comparisons, errs
}

func selectBenchmarks(names []string) ([]benchmark, error) {
	if len(names) == 0 {
		return benchmarks, nil
	}
	var selected []benchmark
	for _, name := range names {
		found := false
		for _, bm := range benchmarks {
			if bm.name == name {
				selected = append(selected, bm)
				found = true
				break
			}
		}
		if !found {
			return nil, errors.Wrapf(ErrUnknownBenchmark, "%s", name)
		}
	}
	return selected, nil
}
