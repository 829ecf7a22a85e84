package bench

import (
	"context"

	"github.com/amlatyrngom/colbench"
)

var pairSchema = colbench.Schema{colbench.DistributionSequential, colbench.DistributionSmallDivisor}

// FilterOrderingCost evaluates the cheap filter before the expensive one
func (suite *Suite) FilterOrderingCost(ctx context.Context, rowsCount int) (Comparison, error) {
	source, err := suite.sourceTable(pairSchema, rowsCount)
	if err != nil {
		return Comparison{}, err
	}
	return compare(ctx, suite.Runs, Comparison{
		Benchmark:        "filter-cost",
		OptimizedLabel:   "ordered",
		UnoptimizedLabel: "unordered",
	}, func() (outcome, error) {
		return scanFiltered(source, []Filter{cheapFilter, expensiveFilter})
	}, func() (outcome, error) {
		return scanFiltered(source, []Filter{expensiveFilter, cheapFilter})
	})
}

// FilterOrderingSelectivity evaluates the more selective filter first
func (suite *Suite) FilterOrderingSelectivity(ctx context.Context, rowsCount int) (Comparison, error) {
	source, err := suite.sourceTable(pairSchema, rowsCount)
	if err != nil {
		return Comparison{}, err
	}
	return compare(ctx, suite.Runs, Comparison{
		Benchmark:        "filter-selectivity",
		OptimizedLabel:   "ordered",
		UnoptimizedLabel: "unordered",
	}, func() (outcome, error) {
		return scanFiltered(source, []Filter{selectiveFilter, permissiveFilter})
	}, func() (outcome, error) {
		return scanFiltered(source, []Filter{permissiveFilter, selectiveFilter})
	})
}
