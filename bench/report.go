package bench

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

func WriteReport(writer io.Writer, comparisons []Comparison) {
	table := tablewriter.NewWriter(writer)
	table.SetHeader([]string{"Benchmark", "Variant", "Avg Time", "Rows", "Count", "Speedup"})
	table.SetAutoMergeCells(true)
	for _, comparison := range comparisons {
		speedup := fmt.Sprintf("%.2fx", comparison.Speedup())
		table.Append(measurementRow(comparison.Benchmark, comparison.OptimizedLabel,
			comparison.Optimized, speedup))
		table.Append(measurementRow(comparison.Benchmark, comparison.UnoptimizedLabel,
			comparison.Unoptimized, speedup))
	}
	table.Render()
}

func measurementRow(benchmark string, variant string, measurement Measurement, speedup string) []string {
	return []string{
		benchmark,
		variant,
		measurement.Average.String(),
		fmt.Sprint(measurement.Rows),
		fmt.Sprint(measurement.Count),
		speedup,
	}
}
