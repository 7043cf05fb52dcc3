package model

import "fmt"

// Policy decides whether a trial's bounding box replaces the best so far.
type Policy string

const (
	PolicyConjunctive Policy = "conjunctive" // Both sides must be no larger than the best
	PolicyArea        Policy = "area"        // Strictly smaller area wins
)

// Algorithm represents the search strategy driving the placement engine.
type Algorithm string

const (
	AlgorithmShuffle Algorithm = "shuffle" // Random restarts over shuffled orderings
	AlgorithmGenetic Algorithm = "genetic" // Genetic search over orderings and rotations
)

// Settings holds the optimizer configuration.
type Settings struct {
	SpaceSize int       `json:"space_size" yaml:"space_size"` // Side of the square region
	Trials    int       `json:"trials" yaml:"trials"`         // Random restarts for the shuffle algorithm
	Margin    int       `json:"margin" yaml:"margin"`         // Empty band on each side of a rectangle
	Policy    Policy    `json:"policy" yaml:"policy"`
	Algorithm Algorithm `json:"algorithm" yaml:"algorithm"`
	Seed      int64     `json:"seed" yaml:"seed"`       // 0 means time-seeded
	Workers   int       `json:"workers" yaml:"workers"` // Concurrent trials; <= 1 runs sequentially, at most 2*Workers in flight
}

func DefaultSettings() Settings {
	return Settings{
		SpaceSize: 100,
		Trials:    100,
		Margin:    1,
		Policy:    PolicyConjunctive,
		Algorithm: AlgorithmShuffle,
		Seed:      0,
		Workers:   1,
	}
}

// Validate checks the settings for values the optimizer cannot run with.
func (s Settings) Validate() error {
	if s.SpaceSize <= 0 {
		return fmt.Errorf("space size must be positive, got %d", s.SpaceSize)
	}
	if s.Trials < 0 {
		return fmt.Errorf("trials cannot be negative, got %d", s.Trials)
	}
	if s.Margin < 0 {
		return fmt.Errorf("margin cannot be negative, got %d", s.Margin)
	}
	switch s.Policy {
	case PolicyConjunctive, PolicyArea:
	default:
		return fmt.Errorf("unknown policy %q (must be %s or %s)", s.Policy, PolicyConjunctive, PolicyArea)
	}
	switch s.Algorithm {
	case AlgorithmShuffle, AlgorithmGenetic:
	default:
		return fmt.Errorf("unknown algorithm %q (must be %s or %s)", s.Algorithm, AlgorithmShuffle, AlgorithmGenetic)
	}
	return nil
}

// Result holds the outcome of an optimization run.
type Result struct {
	Success          bool        `json:"success"`
	Width            int         `json:"width"`  // Best bounding box width
	Height           int         `json:"height"` // Best bounding box height
	SpaceSize        int         `json:"space_size"`
	Trials           int         `json:"trials"`
	SuccessfulTrials int         `json:"successful_trials"`
	BestTrial        int         `json:"best_trial"` // 1-based, 0 when nothing was recorded
	Policy           Policy      `json:"policy"`
	Algorithm        Algorithm   `json:"algorithm"`
	Rectangles       []Rectangle `json:"rectangles"` // Arrangement matching Width x Height
}

// Area returns the area of the best bounding box.
func (r Result) Area() int {
	return r.Width * r.Height
}

// UsedArea returns the total area covered by the placed rectangles.
func (r Result) UsedArea() int {
	return TotalArea(r.Rectangles)
}

// Efficiency returns the usage percentage of the bounding box.
func (r Result) Efficiency() float64 {
	a := r.Area()
	if a == 0 || !r.Success {
		return 0
	}
	return float64(r.UsedArea()) / float64(a) * 100.0
}
