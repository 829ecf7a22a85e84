package bench

import "github.com/pkg/errors"

var ErrInvalidConfig = errors.New("invalid config")

// Config zero values are replaced by the defaults of NewSuite
type Config struct {
	Runs int
	// Seed 0 seeds the generator from wall clock
	Seed                int64
	FilterRowsCount     int
	InvariantRowsCount  int
	FibArg              int
	DeadCodeRowsCount   int
	JoinSmallRowsCount  int
	JoinMediumRowsCount int
	JoinLargeRowsCount  int
	TableCacheSize      int
}

func (config *Config) applyDefaults() {
	if config.Runs == 0 {
		config.Runs = 10
	}
	if config.FilterRowsCount == 0 {
		config.FilterRowsCount = 10000000
	}
	if config.InvariantRowsCount == 0 {
		config.InvariantRowsCount = 10000000
	}
	if config.FibArg == 0 {
		config.FibArg = 10
	}
	if config.DeadCodeRowsCount == 0 {
		config.DeadCodeRowsCount = 100000000
	}
	if config.JoinSmallRowsCount == 0 {
		config.JoinSmallRowsCount = 1000
	}
	if config.JoinMediumRowsCount == 0 {
		config.JoinMediumRowsCount = 5000
	}
	if config.JoinLargeRowsCount == 0 {
		config.JoinLargeRowsCount = 10000
	}
	if config.TableCacheSize == 0 {
		config.TableCacheSize = 8
	}
}

func (config *Config) validate() error {
	if config.Runs < 0 {
		return errors.Wrapf(ErrInvalidConfig, "runs %d", config.Runs)
	}
	if config.FibArg < 0 {
		return errors.Wrapf(ErrInvalidConfig, "fib arg %d", config.FibArg)
	}
	if config.TableCacheSize < 0 {
		return errors.Wrapf(ErrInvalidConfig, "table cache size %d", config.TableCacheSize)
	}
	rowsCounts := []struct {
		name  string
		count int
	}{
		{"filter rows", config.FilterRowsCount},
		{"invariant rows", config.InvariantRowsCount},
		{"dead code rows", config.DeadCodeRowsCount},
		{"join small rows", config.JoinSmallRowsCount},
		{"join medium rows", config.JoinMediumRowsCount},
		{"join large rows", config.JoinLargeRowsCount},
	}
	for _, rowsCount := range rowsCounts {
		if rowsCount.count < 0 {
			return errors.Wrapf(ErrInvalidConfig, "%s %d", rowsCount.name, rowsCount.count)
		}
	}
	return nil
}
