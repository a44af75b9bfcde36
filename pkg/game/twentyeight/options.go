package twentyeight

import (
	"time"

	"twentyeight-server/internal/rng"
)

// Options are options for creating a new game of 28
type Options struct {
	// TrickClearDelay is how long a completed trick stays on display
	// before it is cleared and the winner leads the next trick
	TrickClearDelay time.Duration

	// Rand is the shuffling source. Leave nil for a crypto-backed one.
	Rand rng.Generator
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		TrickClearDelay: time.Second * 2,
	}
}
