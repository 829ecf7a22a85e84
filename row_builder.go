package colbench

// rowBuilder stages the values of one row until every column has one.
// len(values) < width holds between calls.
type rowBuilder struct {
	width  int
	values []int64
}

func newRowBuilder(width int) *rowBuilder {
	return &rowBuilder{width: width, values: make([]int64, 0, width)}
}

// add returns the complete row once the last column value arrives,
// the returned slice is only valid until reset
func (builder *rowBuilder) add(value int64) ([]int64, bool) {
	builder.values = append(builder.values, value)
	if len(builder.values) < builder.width {
		return nil, false
	}
	return builder.values, true
}

func (builder *rowBuilder) reset() {
	builder.values = builder.values[:0]
}

func (builder *rowBuilder) pending() int {
	return len(builder.values)
}
