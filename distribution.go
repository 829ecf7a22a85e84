package colbench

import (
	"math/rand"
	"strings"
	"time"
)

// Distribution decides how the values of a generated column are drawn
type Distribution int

const (
	DistributionSequential Distribution = iota
	DistributionUniform
	DistributionConstant
	DistributionSmallDivisor
	// DistributionAny generates no column at all
	DistributionAny
)

const (
	uniformMin      = -10000
	uniformMax      = 10000
	smallDivisorMin = 1
	smallDivisorMax = 10
)

func (kind Distribution) String() string {
	switch kind {
	case DistributionSequential:
		return "seq"
	case DistributionUniform:
		return "unif"
	case DistributionConstant:
		return "const"
	case DistributionSmallDivisor:
		return "smalldiv"
	}
	return "any"
}

type Schema []Distribution

func (schema Schema) String() string {
	names := make([]string, len(schema))
	for i, kind := range schema {
		names[i] = kind.String()
	}
	return strings.Join(names, ",")
}

// Generator is not thread safe, can only be used from one goroutine
type Generator struct {
	rand *rand.Rand
}

func NewGenerator(seed int64) *Generator {
	return &Generator{rand: rand.New(rand.NewSource(seed))}
}

// NewClockGenerator seeds from wall clock, two generators created within
// the same nanosecond produce the same stream
func NewClockGenerator() *Generator {
	return NewGenerator(time.Now().UnixNano())
}

// Generate returns false for DistributionAny and unknown kinds
func (gen *Generator) Generate(kind Distribution, rowsCount int) ([]int64, bool) {
	switch kind {
	case DistributionSequential:
		column := make([]int64, rowsCount)
		for i := range column {
			column[i] = int64(i)
		}
		return column, true
	case DistributionUniform:
		return gen.uniformColumn(rowsCount, uniformMin, uniformMax), true
	case DistributionConstant:
		return make([]int64, rowsCount), true
	case DistributionSmallDivisor:
		return gen.uniformColumn(rowsCount, smallDivisorMin, smallDivisorMax), true
	}
	return nil, false
}

// [min, max]
func (gen *Generator) uniformColumn(rowsCount int, min int64, max int64) []int64 {
	column := make([]int64, rowsCount)
	span := max - min + 1
	for i := range column {
		column[i] = min + gen.rand.Int63n(span)
	}
	return column
}
