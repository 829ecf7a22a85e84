package bench

import (
	"context"

	"github.com/amlatyrngom/colbench"
)

func fib(n int64) int64 {
	if n < 2 {
		return n
	}
	return fib(n-1) + fib(n-2)
}

// LoopInvariant compares computing fib(fibArg) once before the scan
// with computing it for every matching row
func (suite *Suite) LoopInvariant(ctx context.Context, rowsCount int, fibArg int) (Comparison, error) {
	source, err := suite.sourceTable(pairSchema, rowsCount)
	if err != nil {
		return Comparison{}, err
	}
	arg := int64(fibArg)
	return compare(ctx, suite.Runs, Comparison{
		Benchmark:        "loop-invariant",
		OptimizedLabel:   "moved",
		UnoptimizedLabel: "unmoved",
	}, func() (outcome, error) {
		fibResult := fib(arg)
		return scanAccumulate(source, func() int64 {
			return fibResult
		})
	}, func() (outcome, error) {
		return scanAccumulate(source, func() int64 {
			return fib(arg)
		})
	})
}

func scanAccumulate(source *colbench.Table, increment func() int64) (outcome, error) {
	result := colbench.NewEmptyTable(2)
	var count int64
	cursor := source.Open()
	for cursor.Next() {
		col1, col2, err := readPair(cursor)
		if err != nil {
			return outcome{}, err
		}
		if !invariantFilter(col1, col2) {
			continue
		}
		count += increment()
		if err := fillPair(result, col1, col2); err != nil {
			return outcome{}, err
		}
	}
	if err := result.VerifyRowBoundary(); err != nil {
		return outcome{}, err
	}
	return outcome{result: result, count: count}, nil
}
