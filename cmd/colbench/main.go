package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/amlatyrngom/colbench/bench"
	"github.com/spf13/cobra"
	"github.com/v2pro/plz/concurrent"
	"github.com/v2pro/plz/countlog"
	"github.com/v2pro/plz/countlog/spi"
)

var (
	config  bench.Config
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "colbench",
	Short: "Micro-benchmarks of query optimizations over an in-memory columnar table",
	Long: `colbench times an optimized and an unoptimized variant of the same scan
and reports the average time of each. Both variants must produce the same
result table, otherwise the benchmark fails.

Examples:
  colbench run
  colbench run filter-cost join-ordering --runs 3 --seed 42
  colbench list`,
}

var runCmd = &cobra.Command{
	Use:   "run [benchmark...]",
	Short: "Run the given benchmarks, all of them by default",
	RunE:  runBenchmarks,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List benchmark names",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(bench.BenchmarkNames(), "\n"))
	},
}

type runResult struct {
	comparisons []bench.Comparison
	err         error
}

func runBenchmarks(cmd *cobra.Command, args []string) error {
	if verbose {
		spi.MinLevel = spi.LevelDebug
	} else {
		spi.MinLevel = spi.LevelInfo
	}
	suite, err := bench.NewSuite(config)
	if err != nil {
		return err
	}
	executor := concurrent.NewUnboundedExecutor()
	defer executor.StopAndWaitForever()
	resultChan := make(chan runResult, 1)
	executor.Go(func(ctx context.Context) {
		comparisons, err := suite.Run(ctx, args...)
		resultChan <- runResult{comparisons: comparisons, err: err}
	})
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt)
	defer signal.Stop(signals)
	var result runResult
	select {
	case result = <-resultChan:
	case <-signals:
		countlog.Info("event!colbench.interrupted, waiting for current run")
		executor.StopAndWaitForever()
		result = <-resultChan
	}
	bench.WriteReport(cmd.OutOrStdout(), result.comparisons)
	return result.err
}

func init() {
	flags := runCmd.Flags()
	flags.IntVar(&config.Runs, "runs", 0, "timed runs per variant (default 10)")
	flags.Int64Var(&config.Seed, "seed", 0, "random seed, 0 seeds from wall clock")
	flags.IntVar(&config.FilterRowsCount, "filter-rows", 0, "rows scanned by filter benchmarks (default 10000000)")
	flags.IntVar(&config.InvariantRowsCount, "invariant-rows", 0, "rows scanned by loop-invariant (default 10000000)")
	flags.IntVar(&config.FibArg, "fib", 0, "fib argument of loop-invariant (default 10)")
	flags.IntVar(&config.DeadCodeRowsCount, "dead-code-rows", 0, "rows scanned by dead-code (default 100000000)")
	flags.IntVar(&config.JoinSmallRowsCount, "join-small", 0, "rows of the small join table (default 1000)")
	flags.IntVar(&config.JoinMediumRowsCount, "join-medium", 0, "rows of the medium join table (default 5000)")
	flags.IntVar(&config.JoinLargeRowsCount, "join-large", 0, "rows of the large join table (default 10000)")
	flags.IntVar(&config.TableCacheSize, "cache-size", 0, "source tables kept in memory (default 8)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
