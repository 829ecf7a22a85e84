package bench

import (
	"context"

	"github.com/amlatyrngom/colbench"
	"github.com/pkg/errors"
)

// ErrJoinIntoInput a scan growing the table it reads would never end
var ErrJoinIntoInput = errors.New("join output is one of its inputs")

// JoinOrdering joins three tables of different sizes in two orders,
// the ordered plan keeps the intermediate table small
func (suite *Suite) JoinOrdering(ctx context.Context, smallRowsCount int, mediumRowsCount int, largeRowsCount int) (Comparison, error) {
	var tables [3]*colbench.Table
	for i, rowsCount := range []int{smallRowsCount, mediumRowsCount, largeRowsCount} {
		table, err := suite.sourceTable(pairSchema, rowsCount)
		if err != nil {
			return Comparison{}, err
		}
		tables[i] = table
	}
	small, medium, large := tables[0], tables[1], tables[2]
	return compare(ctx, suite.Runs, Comparison{
		Benchmark:        "join-ordering",
		OptimizedLabel:   "ordered",
		UnoptimizedLabel: "unordered",
	}, func() (outcome, error) {
		return joinThree(medium, small, large)
	}, func() (outcome, error) {
		return joinThree(large, medium, small)
	})
}

// joinThree computes (first ⋈ second) then (third ⋈ intermediate)
func joinThree(first *colbench.Table, second *colbench.Table, third *colbench.Table) (outcome, error) {
	intermediate := colbench.NewEmptyTable(2)
	if err := nestedLoopJoin(first, second, intermediate); err != nil {
		return outcome{}, err
	}
	final := colbench.NewEmptyTable(2)
	if err := nestedLoopJoin(third, intermediate, final); err != nil {
		return outcome{}, err
	}
	return outcome{result: final, count: countRows(final)}, nil
}

// nestedLoopJoin appends (outer.col1, outer.col2 + inner.col2) for every pair
// with outer.col1 == inner.col1, output must be neither outer nor inner
func nestedLoopJoin(outerTable *colbench.Table, innerTable *colbench.Table, output *colbench.Table) error {
	if output == outerTable || output == innerTable {
		return ErrJoinIntoInput
	}
	outer := outerTable.Open()
	for outer.Next() {
		outerCol1, outerCol2, err := readPair(outer)
		if err != nil {
			return err
		}
		inner := innerTable.Open()
		for inner.Next() {
			innerCol1, innerCol2, err := readPair(inner)
			if err != nil {
				return err
			}
			if outerCol1 != innerCol1 {
				continue
			}
			if err := fillPair(output, outerCol1, outerCol2+innerCol2); err != nil {
				return err
			}
		}
	}
	return output.VerifyRowBoundary()
}

func countRows(table *colbench.Table) int64 {
	var count int64
	cursor := table.Open()
	for cursor.Next() {
		count++
	}
	return count
}
