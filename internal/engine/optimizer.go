package engine

import (
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/piwi3910/SquarePack/internal/logger"
	"github.com/piwi3910/SquarePack/internal/model"
)

// Optimizer searches for the arrangement with the smallest bounding box by
// driving the placement engine over many orderings of the input.
type Optimizer struct {
	Settings model.Settings
	Genetic  GeneticConfig
	log      *slog.Logger
}

func New(settings model.Settings) *Optimizer {
	return &Optimizer{
		Settings: settings,
		Genetic:  DefaultGeneticConfig(),
		log:      logger.Default,
	}
}

// WithLogger sets the logger used for trial diagnostics.
func (o *Optimizer) WithLogger(l *slog.Logger) *Optimizer {
	if l != nil {
		o.log = l
	}
	return o
}

// Optimize packs rects into the configured square and returns the best
// bounding box found together with the arrangement that produced it.
// rects is not modified.
func (o *Optimizer) Optimize(rects []model.Rectangle) model.Result {
	var result model.Result
	if o.Settings.Algorithm == model.AlgorithmGenetic {
		result = o.optimizeGenetic(rects)
	} else {
		result = o.optimizeShuffle(rects)
	}

	o.log.Info("optimization finished",
		"algorithm", result.Algorithm,
		"policy", result.Policy,
		"rectangles", len(rects),
		"success", result.Success,
		"width", result.Width,
		"height", result.Height,
		"trials", result.Trials,
		"successful_trials", result.SuccessfulTrials,
		"best_trial", result.BestTrial,
	)
	return result
}

// OptimizePlacement runs the default shuffle optimizer over a spaceSize
// square and reports whether any trial placed everything, plus the best
// bounding box. A seed of 0 picks a time-based seed.
func OptimizePlacement(rects []model.Rectangle, spaceSize int, seed int64) (success bool, minWidth, minHeight int) {
	settings := model.DefaultSettings()
	settings.SpaceSize = spaceSize
	settings.Seed = seed
	res := New(settings).WithLogger(logger.Discard()).Optimize(rects)
	return res.Success, res.Width, res.Height
}

// newRand returns a seeded source; seed 0 means seed from the clock.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// trialOutcome is the placement produced by a single trial.
type trialOutcome struct {
	arrangement []model.Rectangle
	ok          bool
}

// optimizeShuffle runs the random-restart search. Every trial reshuffles the
// same working order, so orderings compound from trial to trial.
func (o *Optimizer) optimizeShuffle(rects []model.Rectangle) model.Result {
	best := newTracker(o.Settings, model.AlgorithmShuffle)
	trials := max(o.Settings.Trials, 0)
	if o.Settings.SpaceSize <= 0 {
		return best.result()
	}

	rng := newRand(o.Settings.Seed)
	region := model.Square(o.Settings.SpaceSize)
	order := model.CloneRectangles(rects)

	if o.Settings.Workers <= 1 || trials <= 1 {
		for trial := 1; trial <= trials; trial++ {
			rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
			arrangement, ok := Place(region, order, o.Settings.Margin)
			o.record(best, trial, trialOutcome{arrangement: arrangement, ok: ok})
		}
		return best.result()
	}

	return o.shuffleConcurrently(best, rng, region, order, trials)
}

// trialJob is one ordering handed to a worker.
type trialJob struct {
	trial int
	order []model.Rectangle
}

// trialDone is a worker's outcome for one trial.
type trialDone struct {
	trial int
	out   trialOutcome
}

// shuffleConcurrently runs the trials on Settings.Workers goroutines. Orders
// are drawn in trial order from the single source and outcomes are recorded
// in trial order, so the result equals the sequential run. At most
// 2*Workers trials are in flight, which bounds the live orderings and
// arrangements.
func (o *Optimizer) shuffleConcurrently(best *tracker, rng *rand.Rand, region model.Region, order []model.Rectangle, trials int) model.Result {
	workers := min(o.Settings.Workers, trials)
	window := 2 * workers

	tokens := make(chan struct{}, window)
	jobs := make(chan trialJob)
	done := make(chan trialDone, window)

	go func() {
		defer close(jobs)
		for trial := 1; trial <= trials; trial++ {
			tokens <- struct{}{}
			rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
			jobs <- trialJob{trial: trial, order: model.CloneRectangles(order)}
		}
	}()

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				arrangement, ok := Place(region, job.order, o.Settings.Margin)
				done <- trialDone{trial: job.trial, out: trialOutcome{arrangement: arrangement, ok: ok}}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(done)
	}()

	pending := make(map[int]trialOutcome, window)
	next := 1
	for d := range done {
		pending[d.trial] = d.out
		for {
			out, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			o.record(best, next, out)
			next++
			<-tokens
		}
	}
	return best.result()
}

func (o *Optimizer) record(best *tracker, trial int, out trialOutcome) {
	best.trials++
	if !out.ok {
		o.log.Debug("trial failed", "trial", trial)
		return
	}
	improved, w, h := best.offer(trial, out.arrangement)
	o.log.Debug("trial placed", "trial", trial, "width", w, "height", h, "improved", improved)
}

// tracker keeps the running best box under the configured policy.
type tracker struct {
	res    model.Result
	trials int
}

func newTracker(settings model.Settings, algo model.Algorithm) *tracker {
	policy := settings.Policy
	if policy == "" {
		policy = model.PolicyConjunctive
	}
	return &tracker{res: model.Result{
		Width:     settings.SpaceSize,
		Height:    settings.SpaceSize,
		SpaceSize: settings.SpaceSize,
		Policy:    policy,
		Algorithm: algo,
	}}
}

// offer records a successful arrangement and keeps it when it improves on
// the best box. It returns whether it did, and the arrangement's box.
func (t *tracker) offer(trial int, arrangement []model.Rectangle) (bool, int, int) {
	t.res.Success = true
	t.res.SuccessfulTrials++

	maxX, maxY := model.BoundingBox(arrangement)
	if !improves(t.res.Policy, t.res.BestTrial > 0, maxX, maxY, t.res.Width, t.res.Height) {
		return false, maxX, maxY
	}
	t.res.Width = maxX
	t.res.Height = maxY
	t.res.BestTrial = trial
	t.res.Rectangles = arrangement
	return true, maxX, maxY
}

func (t *tracker) result() model.Result {
	t.res.Trials = t.trials
	return t.res
}

// improves applies the improvement policy. The conjunctive rule only accepts
// a box that is no larger on both sides, so a trial trading width for height
// is dropped even when its area is smaller.
func improves(policy model.Policy, haveBest bool, w, h, bestW, bestH int) bool {
	switch policy {
	case model.PolicyArea:
		return !haveBest || w*h < bestW*bestH
	default:
		return w <= bestW && h <= bestH
	}
}

// OptimizeSmallestSpace searches for a square that holds rects, starting
// at the lower bound and growing about 10% per step. The side stops growing
// at a stack of every rectangle's padded long side, which always fits, so
// the result only fails when no trial runs at all.
func (o *Optimizer) OptimizeSmallestSpace(rects []model.Rectangle) model.Result {
	bound := model.CalculateLowerBound(rects, o.Settings.Margin)
	limit := max(stackedSide(rects, o.Settings.Margin), bound.MinSide, 1)
	side := max(bound.MinSide, 1)

	attempt := *o
	for {
		attempt.Settings.SpaceSize = side
		result := attempt.Optimize(rects)
		if result.Success || side >= limit {
			return result
		}
		o.log.Debug("space too small", "side", side)
		side = min(limit, side+max(1, side/10))
	}
}

// stackedSide is the side of a square in which rects fit stacked one above
// the other.
func stackedSide(rects []model.Rectangle, margin int) int {
	side := 0
	for _, r := range rects {
		side += max(r.Width, r.Height) + 2*margin
	}
	return side
}
