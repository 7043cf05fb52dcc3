package engine

import (
	"math/rand"
	"sort"

	"github.com/piwi3910/SquarePack/internal/model"
)

// GeneticConfig holds parameters for the genetic algorithm optimizer.
type GeneticConfig struct {
	PopulationSize int
	Generations    int
	MutationRate   float64
	TournamentSize int
	EliteCount     int
}

// DefaultGeneticConfig returns sensible default parameters.
func DefaultGeneticConfig() GeneticConfig {
	return GeneticConfig{
		PopulationSize: 30,
		Generations:    40,
		MutationRate:   0.15,
		TournamentSize: 3,
		EliteCount:     2,
	}
}

// gene represents a single rectangle in the chromosome.
type gene struct {
	index   int  // Index into the input rectangles
	rotated bool // Try this rectangle rotated first
}

// chromosome represents a candidate solution: an ordering with rotation flags.
type chromosome struct {
	genes   []gene
	fitness float64
}

// geneticOptimizer evolves orderings and feeds every decoded arrangement to
// the same tracker the shuffle search uses.
type geneticOptimizer struct {
	settings model.Settings
	config   GeneticConfig
	rects    []model.Rectangle
	region   model.Region
	rng      *rand.Rand
	onEval   func(trial int, out trialOutcome)
	evals    int
}

// optimizeGenetic runs the genetic search. Every decoded chromosome counts
// as one trial in the result.
func (o *Optimizer) optimizeGenetic(rects []model.Rectangle) model.Result {
	best := newTracker(o.Settings, model.AlgorithmGenetic)
	if o.Settings.SpaceSize <= 0 {
		return best.result()
	}

	config := o.Genetic
	// Scale generations for larger problems
	if len(rects) > 20 {
		config.Generations = max(config.Generations, 80)
	}

	g := &geneticOptimizer{
		settings: o.Settings,
		config:   config,
		rects:    rects,
		region:   model.Square(o.Settings.SpaceSize),
		rng:      newRand(o.Settings.Seed),
	}
	g.onEval = func(trial int, out trialOutcome) { o.record(best, trial, out) }
	g.optimize()
	return best.result()
}

func (g *geneticOptimizer) optimize() {
	if g.config.PopulationSize <= 0 {
		return
	}
	if len(g.rects) == 0 {
		// Nothing to order; a single decode records the vacuous success.
		g.evaluate(chromosome{})
		return
	}

	population := g.initPopulation()
	for i := range population {
		population[i].fitness = g.evaluate(population[i])
	}

	for gen := 0; gen < g.config.Generations; gen++ {
		// Sort by fitness descending (higher is better)
		sort.SliceStable(population, func(i, j int) bool {
			return population[i].fitness > population[j].fitness
		})

		newPop := make([]chromosome, 0, g.config.PopulationSize)

		// Elitism: carry over the best individuals unchanged
		eliteCount := min(g.config.EliteCount, len(population))
		for i := 0; i < eliteCount; i++ {
			newPop = append(newPop, g.copyChromosome(population[i]))
		}

		for len(newPop) < g.config.PopulationSize {
			parent1 := g.tournamentSelect(population)
			parent2 := g.tournamentSelect(population)

			child := g.orderCrossover(parent1, parent2)
			g.mutate(&child)

			child.fitness = g.evaluate(child)
			newPop = append(newPop, child)
		}

		population = newPop
	}
}

// initPopulation creates the initial random population, seeded with one
// largest-area-first chromosome.
func (g *geneticOptimizer) initPopulation() []chromosome {
	n := len(g.rects)
	population := make([]chromosome, g.config.PopulationSize)

	for i := range population {
		genes := make([]gene, n)
		perm := g.rng.Perm(n)
		for j := 0; j < n; j++ {
			genes[j] = gene{index: perm[j], rotated: g.rng.Float64() < 0.5}
		}
		population[i] = chromosome{genes: genes}
	}

	population[0] = g.createGreedyChromosome()
	return population
}

// createGreedyChromosome orders rectangles by area descending, unrotated.
func (g *geneticOptimizer) createGreedyChromosome() chromosome {
	n := len(g.rects)
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(i, j int) bool {
		return g.rects[indices[i]].Area() > g.rects[indices[j]].Area()
	})

	genes := make([]gene, n)
	for i, idx := range indices {
		genes[i] = gene{index: idx}
	}
	return chromosome{genes: genes}
}

// decode builds the ordered, pre-rotated sequence a chromosome describes.
func (g *geneticOptimizer) decode(c chromosome) []model.Rectangle {
	ordered := make([]model.Rectangle, len(c.genes))
	for i, gn := range c.genes {
		r := g.rects[gn.index]
		if gn.rotated {
			r = r.Turned()
		}
		ordered[i] = r
	}
	return ordered
}

// evaluate places the decoded sequence, reports it to the tracker and
// returns its fitness. Failed placements score 0; successful ones score in
// (1, 2], higher for a smaller bounding box.
func (g *geneticOptimizer) evaluate(c chromosome) float64 {
	g.evals++
	arrangement, ok := Place(g.region, g.decode(c), g.settings.Margin)
	g.onEval(g.evals, trialOutcome{arrangement: arrangement, ok: ok})
	if !ok {
		return 0
	}

	w, h := model.BoundingBox(arrangement)
	full := float64(g.region.Width() * g.region.Height())
	return 2 - float64(w*h)/full
}

// tournamentSelect picks the best individual from a random tournament.
func (g *geneticOptimizer) tournamentSelect(population []chromosome) chromosome {
	best := population[g.rng.Intn(len(population))]
	for i := 1; i < g.config.TournamentSize; i++ {
		candidate := population[g.rng.Intn(len(population))]
		if candidate.fitness > best.fitness {
			best = candidate
		}
	}
	return g.copyChromosome(best)
}

// orderCrossover implements Order Crossover (OX1) for permutation chromosomes.
// It preserves the relative order of genes from both parents.
func (g *geneticOptimizer) orderCrossover(parent1, parent2 chromosome) chromosome {
	n := len(parent1.genes)
	if n <= 2 {
		return g.copyChromosome(parent1)
	}

	point1 := g.rng.Intn(n)
	point2 := g.rng.Intn(n)
	if point1 > point2 {
		point1, point2 = point2, point1
	}

	child := chromosome{genes: make([]gene, n)}

	inSegment := make(map[int]bool)
	for i := point1; i <= point2; i++ {
		child.genes[i] = parent1.genes[i]
		inSegment[parent1.genes[i].index] = true
	}

	childIdx := (point2 + 1) % n
	for _, pg := range parent2.genes {
		if !inSegment[pg.index] {
			child.genes[childIdx] = pg
			childIdx = (childIdx + 1) % n
		}
	}

	return child
}

// mutate applies swap, rotation and inversion mutations.
func (g *geneticOptimizer) mutate(c *chromosome) {
	n := len(c.genes)
	if n < 2 {
		return
	}

	if g.rng.Float64() < g.config.MutationRate {
		i := g.rng.Intn(n)
		j := g.rng.Intn(n)
		c.genes[i], c.genes[j] = c.genes[j], c.genes[i]
	}

	if g.rng.Float64() < g.config.MutationRate {
		i := g.rng.Intn(n)
		c.genes[i].rotated = !c.genes[i].rotated
	}

	// Inversion is less frequent
	if g.rng.Float64() < g.config.MutationRate*0.5 {
		i := g.rng.Intn(n)
		j := g.rng.Intn(n)
		if i > j {
			i, j = j, i
		}
		for i < j {
			c.genes[i], c.genes[j] = c.genes[j], c.genes[i]
			i++
			j--
		}
	}
}

// copyChromosome creates a deep copy of a chromosome.
func (g *geneticOptimizer) copyChromosome(c chromosome) chromosome {
	genes := make([]gene, len(c.genes))
	copy(genes, c.genes)
	return chromosome{genes: genes, fitness: c.fitness}
}
