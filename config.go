package condex

import "runtime"

// Config controls how a Matcher spreads work across goroutines and whether Scan may
// skip input.
//
// Example:
//
//	config := condex.DefaultConfig()
//	config.Parallelism = 1 // always run automata on the calling goroutine
//	m, err := condex.NewMatcherWithConfig(table, config)
type Config struct {
	// Parallelism is the maximum number of goroutines used by one fan-out,
	// both for the per-rune Test and for finalization.
	// 1 disables parallel execution.
	// Default: runtime.GOMAXPROCS(0)
	Parallelism int

	// ParallelThreshold is the minimum number of automata before Test fans out.
	// Below it, dispatching goroutines for every rune costs more than it saves.
	// Default: 64
	ParallelThreshold int

	// EnablePrefilter lets Scan jump over input while every automaton is at rest,
	// straight to the next rune that satisfies some pattern's trigger. Results are
	// identical either way.
	// Default: true
	EnablePrefilter bool
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Parallelism:       runtime.GOMAXPROCS(0),
		ParallelThreshold: 64,
		EnablePrefilter:   true,
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - Parallelism: 1 to 1,024
//   - ParallelThreshold: at least 1
func (c Config) Validate() error {
	if c.Parallelism < 1 || c.Parallelism > 1024 {
		return &ConfigError{
			Field:   "Parallelism",
			Message: "must be between 1 and 1,024",
		}
	}
	if c.ParallelThreshold < 1 {
		return &ConfigError{
			Field:   "ParallelThreshold",
			Message: "must be at least 1",
		}
	}
	return nil
}
