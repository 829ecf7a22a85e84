package bench

import "github.com/amlatyrngom/colbench"

// Filter is evaluated on the first two columns of a row
type Filter func(col1 int64, col2 int64) bool

func cheapFilter(col1 int64, col2 int64) bool {
	return col2 > 8
}

func expensiveFilter(col1 int64, col2 int64) bool {
	return col1 > 0 && col2%col1 > 8
}

// around 10 percent selectivity
func selectiveFilter(col1 int64, col2 int64) bool {
	return col1 > 0 && col2%col1 == 5
}

// around 90 percent selectivity
func permissiveFilter(col1 int64, col2 int64) bool {
	return col2 > 0 && col1%col2 < 6
}

func invariantFilter(col1 int64, col2 int64) bool {
	return col2 > 5
}

func impossibleFilter(col1 int64, col2 int64) bool {
	return 1 > 2
}

// rowMatches stops at the first filter rejecting the row
func rowMatches(col1 int64, col2 int64, filters []Filter) bool {
	for _, filter := range filters {
		if !filter(col1, col2) {
			return false
		}
	}
	return true
}

// scanFiltered copies the rows matching every filter into a new two column table
func scanFiltered(source *colbench.Table, filters []Filter) (outcome, error) {
	result := colbench.NewEmptyTable(2)
	var count int64
	cursor := source.Open()
	for cursor.Next() {
		col1, col2, err := readPair(cursor)
		if err != nil {
			return outcome{}, err
		}
		if !rowMatches(col1, col2, filters) {
			continue
		}
		count++
		if err := fillPair(result, col1, col2); err != nil {
			return outcome{}, err
		}
	}
	if err := result.VerifyRowBoundary(); err != nil {
		return outcome{}, err
	}
	return outcome{result: result, count: count}, nil
}

func readPair(cursor *colbench.Cursor) (int64, int64, error) {
	col1, err := cursor.Column(0)
	if err != nil {
		return 0, 0, err
	}
	col2, err := cursor.Column(1)
	if err != nil {
		return 0, 0, err
	}
	return col1, col2, nil
}

func fillPair(table *colbench.Table, col1 int64, col2 int64) error {
	if err := table.FillResult(col1); err != nil {
		return err
	}
	return table.FillResult(col2)
}
