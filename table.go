package colbench

import (
	"encoding/binary"

	"github.com/pkg/errors"
	"github.com/spaolacci/murmur3"
)

type intColumn []int64

// Table owns its columns, all of them have the same length.
// Table is not thread safe.
type Table struct {
	intColumns []intColumn
	pending    *rowBuilder
}

// NewTable generates one column per schema entry, DistributionAny entries are skipped
func NewTable(gen *Generator, schema Schema, rowsCount int) *Table {
	intColumns := make([]intColumn, 0, len(schema))
	for _, kind := range schema {
		column, ok := gen.Generate(kind, rowsCount)
		if !ok {
			continue
		}
		intColumns = append(intColumns, intColumn(column))
	}
	return newTable(intColumns)
}

// NewEmptyTable creates a table with width columns and no rows,
// to be grown by FillResult or FillRow
func NewEmptyTable(width int) *Table {
	intColumns := make([]intColumn, width)
	for i := range intColumns {
		intColumns[i] = intColumn{}
	}
	return newTable(intColumns)
}

func newTable(intColumns []intColumn) *Table {
	return &Table{
		intColumns: intColumns,
		pending:    newRowBuilder(len(intColumns)),
	}
}

// NumRows of a table without columns is 0
func (table *Table) NumRows() int {
	if len(table.intColumns) == 0 {
		return 0
	}
	return len(table.intColumns[0])
}

func (table *Table) NumColumns() int {
	return len(table.intColumns)
}

// PendingValues counts values filled for a row not complete yet
func (table *Table) PendingValues() int {
	return table.pending.pending()
}

func (table *Table) Fetch(row int, col int) (int64, error) {
	if col < 0 || col >= len(table.intColumns) || row < 0 || row >= table.NumRows() {
		return 0, errors.Wrapf(ErrOutOfRange, "fetch row %d col %d of %dx%d table",
			row, col, table.NumRows(), table.NumColumns())
	}
	return table.intColumns[col][row], nil
}

// FillResult must be called once per column in column order,
// the row becomes visible when its last column value is filled
func (table *Table) FillResult(value int64) error {
	if len(table.intColumns) == 0 {
		return errors.Wrap(ErrSchemaMismatch, "fill result into table without columns")
	}
	row, complete := table.pending.add(value)
	if !complete {
		return nil
	}
	table.appendRow(row)
	table.pending.reset()
	return nil
}

// FillRow appends a complete row, mixing it with FillResult is only valid on row boundary
func (table *Table) FillRow(values ...int64) error {
	if pending := table.pending.pending(); pending != 0 {
		return errors.Wrapf(ErrSchemaMismatch, "fill row while %d of %d values pending",
			pending, len(table.intColumns))
	}
	if len(values) != len(table.intColumns) {
		return errors.Wrapf(ErrSchemaMismatch, "fill row with %d values for %d columns",
			len(values), len(table.intColumns))
	}
	table.appendRow(values)
	return nil
}

// VerifyRowBoundary fails if FillResult left a row incomplete
func (table *Table) VerifyRowBoundary() error {
	if pending := table.pending.pending(); pending != 0 {
		return errors.Wrapf(ErrSchemaMismatch, "fill result called %d times for %d columns",
			pending, len(table.intColumns))
	}
	return nil
}

func (table *Table) appendRow(row []int64) {
	for i, value := range row {
		table.intColumns[i] = append(table.intColumns[i], value)
	}
}

// Fingerprint hashes the shape and the values column by column,
// pending values are not included
func (table *Table) Fingerprint() uint64 {
	hasher := murmur3.New64()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(table.NumRows()))
	hasher.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(table.NumColumns()))
	hasher.Write(buf[:])
	for _, column := range table.intColumns {
		for _, value := range column {
			binary.LittleEndian.PutUint64(buf[:], uint64(value))
			hasher.Write(buf[:])
		}
	}
	return hasher.Sum64()
}
