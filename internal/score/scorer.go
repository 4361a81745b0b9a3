package score

import (
	"math"
)

// Judgement is a single recorded scoring event.
type Judgement struct {
	Tier     Tier
	Distance int
	// Forced is set when the tier was imposed without measuring a distance,
	// e.g. a hold note released early.
	Forced bool
}

type Journal interface {
	// Begin starts a new run for the named level.
	Begin(level string) error

	// Record stores a judgement made on the given frame.
	Record(frame int, multiplier int, j Judgement) error

	// Summary aggregates every judgement of the current run.
	Summary() (Summary, error)

	Close() error
}

type Summary struct {
	Level  string
	Counts map[Tier]int
	Hits   int
	Mean   float64
	Stdev  float64
}

// stdev of the measured (non forced) distances around mean
func stdev(distances []int, mean float64) float64 {
	if len(distances) < 2 {
		return 0
	}
	sum := 0.0
	for _, d := range distances {
		xi := float64(d) - mean
		sum += xi * xi
	}
	return math.Sqrt(sum / float64(len(distances)-1))
}
