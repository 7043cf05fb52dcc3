// Package generator produces random rectangle sets for packing runs.
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/piwi3910/SquarePack/internal/model"
)

const (
	DefaultMinSide = 1
	DefaultMaxSide = 20
)

// ErrInvalidRange is returned when the side range is empty or non-positive.
var ErrInvalidRange = errors.New("invalid side range")

// Generator draws rectangles with both sides uniform in [Min, Max].
type Generator struct {
	Min int
	Max int
	rng *rand.Rand
}

// New returns a generator with the default [1, 20] range. A seed of 0 seeds
// from the clock.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		Min: DefaultMinSide,
		Max: DefaultMaxSide,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// WithRange sets the side range.
func (g *Generator) WithRange(minSide, maxSide int) (*Generator, error) {
	if minSide < 1 || maxSide < minSide {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, minSide, maxSide)
	}
	g.Min = minSide
	g.Max = maxSide
	return g, nil
}

// Generate returns n unplaced rectangles labelled R1..Rn.
func (g *Generator) Generate(n int) ([]model.Rectangle, error) {
	if n < 0 {
		return nil, fmt.Errorf("rectangle count must not be negative, got %d", n)
	}
	if g.Min < 1 || g.Max < g.Min {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, g.Min, g.Max)
	}

	span := g.Max - g.Min + 1
	rects := make([]model.Rectangle, n)
	for i := range rects {
		w := g.Min + g.rng.Intn(span)
		h := g.Min + g.rng.Intn(span)
		rects[i] = model.NewRectangle(fmt.Sprintf("R%d", i+1), w, h)
	}
	return rects, nil
}
