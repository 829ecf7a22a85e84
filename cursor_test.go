package colbench

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func Test_cursor_traversal(t *testing.T) {
	should := require.New(t)
	for _, rowsCount := range []int{0, 1, 7} {
		table := NewTable(NewGenerator(1), Schema{DistributionSequential}, rowsCount)
		cursor := table.Open()
		visited := 0
		for cursor.Next() {
			value, err := cursor.Column(0)
			should.NoError(err)
			should.Equal(int64(visited), value)
			should.Equal(visited, cursor.Row())
			visited++
		}
		should.Equal(rowsCount, visited)
		should.False(cursor.Next())
	}
}

func Test_cursor_not_positioned(t *testing.T) {
	should := require.New(t)
	table := NewTable(NewGenerator(1), Schema{DistributionSequential}, 1)
	cursor := NewCursor(table)
	_, err := cursor.Column(0)
	should.Equal(ErrOutOfRange, errors.Cause(err))
	should.True(cursor.Next())
	_, err = cursor.Column(1)
	should.Equal(ErrOutOfRange, errors.Cause(err))
	should.False(cursor.Next())
	_, err = cursor.Column(0)
	should.Equal(ErrOutOfRange, errors.Cause(err))
}

func Test_cursor_sees_rows_appended_while_scanning(t *testing.T) {
	should := require.New(t)
	table := NewEmptyTable(1)
	should.NoError(table.FillResult(0))
	cursor := table.Open()
	should.True(cursor.Next())
	should.NoError(table.FillResult(1))
	should.True(cursor.Next())
	value, err := cursor.Column(0)
	should.NoError(err)
	should.Equal(int64(1), value)
	should.False(cursor.Next())
	// exhausted is terminal
	should.NoError(table.FillResult(2))
	should.False(cursor.Next())
}

func Test_filter_into_result_table(t *testing.T) {
	should := require.New(t)
	source := NewTable(NewGenerator(1), Schema{DistributionSequential}, 5)
	result := NewEmptyTable(1)
	cursor := source.Open()
	for cursor.Next() {
		value, err := cursor.Column(0)
		should.NoError(err)
		if value > 2 {
			should.NoError(result.FillResult(value))
		}
	}
	should.Equal(2, result.NumRows())
	value, _ := result.Fetch(0, 0)
	should.Equal(int64(3), value)
	value, _ = result.Fetch(1, 0)
	should.Equal(int64(4), value)
}

func Test_sequential_join_cardinality(t *testing.T) {
	should := require.New(t)
	gen := NewGenerator(1)
	for _, sizes := range [][2]int{{2, 3}, {3, 2}, {0, 4}, {5, 5}} {
		tableA := NewTable(gen, Schema{DistributionSequential}, sizes[0])
		tableB := NewTable(gen, Schema{DistributionSequential}, sizes[1])
		result := NewEmptyTable(2)
		outer := tableA.Open()
		for outer.Next() {
			outerValue, _ := outer.Column(0)
			inner := tableB.Open()
			for inner.Next() {
				innerValue, _ := inner.Column(0)
				if outerValue == innerValue {
					should.NoError(result.FillResult(outerValue))
					should.NoError(result.FillResult(outerValue + innerValue))
				}
			}
		}
		expected := sizes[0]
		if sizes[1] < expected {
			expected = sizes[1]
		}
		should.Equal(expected, result.NumRows())
		for row := 0; row < result.NumRows(); row++ {
			key, _ := result.Fetch(row, 0)
			sum, _ := result.Fetch(row, 1)
			should.Equal(int64(row), key)
			should.Equal(2*key, sum)
		}
	}
}

func Benchmark_cursor_scan(b *testing.B) {
	table := NewTable(NewGenerator(1), Schema{DistributionSequential, DistributionSmallDivisor}, 4096)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cursor := table.Open()
		for cursor.Next() {
			cursor.Column(0)
			cursor.Column(1)
		}
	}
}
