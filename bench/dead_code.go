package bench

import (
	"context"

	"github.com/amlatyrngom/colbench"
)

// DeadCode compares skipping a scan guarded by an impossible filter with running it
func (suite *Suite) DeadCode(ctx context.Context, rowsCount int) (Comparison, error) {
	source, err := suite.sourceTable(pairSchema, rowsCount)
	if err != nil {
		return Comparison{}, err
	}
	return compare(ctx, suite.Runs, Comparison{
		Benchmark:        "dead-code",
		OptimizedLabel:   "eliminated",
		UnoptimizedLabel: "uneliminated",
	}, func() (outcome, error) {
		return outcome{result: colbench.NewEmptyTable(2)}, nil
	}, func() (outcome, error) {
		return scanFiltered(source, []Filter{impossibleFilter})
	})
}
