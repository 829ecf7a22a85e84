package colbench

import "github.com/pkg/errors"

// Cursor borrows the table, it must not outlive it.
// The row count is checked on every Next, so the table may grow while
// scanned, but never by the scan using this cursor.
type Cursor struct {
	table     *Table
	row       int // 1-based, 0 before the first Next
	exhausted bool
}

func NewCursor(table *Table) *Cursor {
	return &Cursor{table: table}
}

func (table *Table) Open() *Cursor {
	return NewCursor(table)
}

// Next returns false once all rows are visited, and keeps returning false after that
func (cursor *Cursor) Next() bool {
	if cursor.exhausted {
		return false
	}
	cursor.row++
	if cursor.row > cursor.table.NumRows() {
		cursor.exhausted = true
		return false
	}
	return true
}

// Row is the 0-based index of the current row
func (cursor *Cursor) Row() int {
	return cursor.row - 1
}

func (cursor *Cursor) Column(col int) (int64, error) {
	if cursor.row == 0 || cursor.exhausted {
		return 0, errors.Wrapf(ErrOutOfRange, "cursor not positioned on a row, col %d", col)
	}
	return cursor.table.Fetch(cursor.row-1, col)
}
