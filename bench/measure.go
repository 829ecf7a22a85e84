package bench

import (
	"context"
	"time"

	"github.com/amlatyrngom/colbench"
	"github.com/pkg/errors"
	"github.com/v2pro/plz/countlog"
)

var ErrResultMismatch = errors.New("optimized and unoptimized results differ")

// outcome of one run, result is kept alive until measured so the work can not be skipped
type outcome struct {
	result *colbench.Table
	count  int64
}

type unit func() (outcome, error)

type Measurement struct {
	Average     time.Duration
	Rows        int
	Count       int64
	Fingerprint uint64
}

type Comparison struct {
	Benchmark        string
	OptimizedLabel   string
	UnoptimizedLabel string
	Optimized        Measurement
	Unoptimized      Measurement
}

// Speedup of the optimized variant, 0 if it took no measurable time
func (comparison Comparison) Speedup() float64 {
	if comparison.Optimized.Average == 0 {
		return 0
	}
	return float64(comparison.Unoptimized.Average) / float64(comparison.Optimized.Average)
}

// measure averages the wall clock time of runs invocations,
// the reported result is the one of the last run
func measure(ctx context.Context, benchmark string, variant string, runs int, run unit) (Measurement, error) {
	var total time.Duration
	var last outcome
	for i := 0; i < runs; i++ {
		if err := ctx.Err(); err != nil {
			return Measurement{}, err
		}
		countlog.Trace("event!bench.start timing", "benchmark", benchmark, "variant", variant, "run", i)
		start := time.Now()
		out, err := run()
		elapsed := time.Since(start)
		countlog.Trace("event!bench.end timing", "benchmark", benchmark, "variant", variant,
			"run", i, "elapsed", elapsed)
		if err != nil {
			return Measurement{}, errors.Wrapf(err, "%s %s run %d", benchmark, variant, i)
		}
		total += elapsed
		last = out
		countlog.Debug("event!bench.run finished", "benchmark", benchmark, "variant", variant,
			"count", out.count, "rows", out.result.NumRows())
	}
	if runs <= 0 {
		return Measurement{}, nil
	}
	return Measurement{
		Average:     total / time.Duration(runs),
		Rows:        last.result.NumRows(),
		Count:       last.count,
		Fingerprint: last.result.Fingerprint(),
	}, nil
}

func compare(ctx context.Context, runs int, comparison Comparison, optimized unit, unoptimized unit) (Comparison, error) {
	var err error
	comparison.Optimized, err = measure(ctx, comparison.Benchmark, comparison.OptimizedLabel, runs, optimized)
	if err != nil {
		return comparison, err
	}
	comparison.Unoptimized, err = measure(ctx, comparison.Benchmark, comparison.UnoptimizedLabel, runs, unoptimized)
	if err != nil {
		return comparison, err
	}
	if comparison.Optimized.Fingerprint != comparison.Unoptimized.Fingerprint ||
		comparison.Optimized.Count != comparison.Unoptimized.Count {
		return comparison, errors.Wrapf(ErrResultMismatch, "%s: %s count %d rows %d, %s count %d rows %d",
			comparison.Benchmark,
			comparison.OptimizedLabel, comparison.Optimized.Count, comparison.Optimized.Rows,
			comparison.UnoptimizedLabel, comparison.Unoptimized.Count, comparison.Unoptimized.Rows)
	}
	countlog.Info("event!bench.compared",
		"benchmark", comparison.Benchmark,
		comparison.OptimizedLabel, comparison.Optimized.Average,
		comparison.UnoptimizedLabel, comparison.Unoptimized.Average)
	return comparison, nil
}
