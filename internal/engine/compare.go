package engine

import (
	"fmt"
	"log/slog"

	"github.com/piwi3910/SquarePack/internal/model"
)

// ComparisonScenario defines a named set of settings to compare.
type ComparisonScenario struct {
	Name     string
	Settings model.Settings
}

// ComparisonResult holds the optimization result and computed statistics
// for a single scenario.
type ComparisonResult struct {
	Scenario         ComparisonScenario
	Result           model.Result
	Area       int
	Efficiency float64
}

// CompareScenarios runs optimization for each scenario on the same input and
// returns the results in scenario order.
func CompareScenarios(scenarios []ComparisonScenario, rects []model.Rectangle, log *slog.Logger) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		opt := New(scenario.Settings).WithLogger(log)
		result := opt.Optimize(rects)

		area := 0
		if result.Success {
			area = result.Area()
		}
		results = append(results, ComparisonResult{
			Scenario:   scenario,
			Result:     result,
			Area:       area,
			Efficiency: result.Efficiency(),
		})
	}

	return results
}

// BuildDefaultScenarios generates a set of comparison scenarios based on
// the current settings, varying key parameters to show what-if alternatives.
func BuildDefaultScenarios(base model.Settings) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{
			Name:     "Current Settings",
			Settings: base,
		},
	}

	altPolicy := base
	if base.Policy == model.PolicyArea {
		altPolicy.Policy = model.PolicyConjunctive
		scenarios = append(scenarios, ComparisonScenario{Name: "Conjunctive Policy", Settings: altPolicy})
	} else {
		altPolicy.Policy = model.PolicyArea
		scenarios = append(scenarios, ComparisonScenario{Name: "Area Policy", Settings: altPolicy})
	}

	altAlgo := base
	if base.Algorithm == model.AlgorithmGenetic {
		altAlgo.Algorithm = model.AlgorithmShuffle
		scenarios = append(scenarios, ComparisonScenario{Name: "Shuffle Algorithm", Settings: altAlgo})
	} else {
		altAlgo.Algorithm = model.AlgorithmGenetic
		scenarios = append(scenarios, ComparisonScenario{Name: "Genetic Algorithm", Settings: altAlgo})
	}

	if base.Margin > 0 {
		noMargin := base
		noMargin.Margin = 0
		scenarios = append(scenarios, ComparisonScenario{Name: "No Margin", Settings: noMargin})
	}

	if base.Trials > 0 {
		moreTrials := base
		moreTrials.Trials = base.Trials * 5
		scenarios = append(scenarios, ComparisonScenario{
			Name:     fmt.Sprintf("%d Trials", moreTrials.Trials),
			Settings: moreTrials,
		})
	}

	return scenarios
}
