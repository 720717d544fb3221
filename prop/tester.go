package prop

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/propgo/propgo/model"
	"github.com/rs/zerolog"
)

// Tester runs properties against generated inputs and minimizes failures.
// All trials draw from a single RNG handle, so a run with the same seed and
// budgets reproduces identical trial sequences and identical shrunk
// counterexamples.
type Tester struct {
	// MaxTests is the trial budget per property. Discards consume budget.
	MaxTests int
	// MaxShrinks bounds the number of shrink rounds per failing case.
	MaxShrinks int

	logger zerolog.Logger
	rng    *rand.Rand
	seed   uint64
}

// New returns a Tester seeded with seed.
func New(logger zerolog.Logger, maxTests, maxShrinks int, seed uint64) *Tester {
	t := &Tester{
		MaxTests:   maxTests,
		MaxShrinks: maxShrinks,
		logger:     logger,
	}
	t.Reseed(seed)
	return t
}

// Reseed resets the RNG stream. Reseeding with the same value before each
// property run makes runs reproducible regardless of property order.
func (t *Tester) Reseed(seed uint64) {
	t.seed = seed
	t.rng = rand.New(rand.NewPCG(seed, seed))
}

// Seed returns the seed of the current RNG stream.
func (t *Tester) Seed() uint64 {
	return t.seed
}

// Run executes exactly MaxTests trials of p and returns the per-property
// report. Trials are independent: there is no early stop on first failure,
// so the reported statistics reflect the full budget.
func (t *Tester) Run(p Property) model.Report {
	t.logger.Info().
		Str("property", p.Name).
		Int("max_tests", t.MaxTests).
		Uint64("seed", t.seed).
		Msg("Testing property")

	var cases []model.Case
	var passed, failed, discarded, errored int

	for i := 0; i < t.MaxTests; i++ {
		inputs := make([]any, len(p.Generators))
		for j, g := range p.Generators {
			inputs[j] = g.Generate(t.rng)
		}

		outcome, actual, duration, errMsg := p.Check(inputs)
		c := model.Case{
			Inputs:       inputs,
			Expected:     true,
			Actual:       actual,
			Outcome:      outcome,
			Duration:     duration,
			ErrorMessage: errMsg,
		}

		switch outcome {
		case model.OutcomePass:
			passed++
		case model.OutcomeDiscard:
			discarded++
		case model.OutcomeError:
			errored++
			cases = append(cases, c)
			t.logger.Warn().
				Str("property", p.Name).
				Str("error", errMsg).
				Msg("Predicate error")
		case model.OutcomeFail:
			failed++
			shrunk := t.shrink(p, c)
			cases = append(cases, shrunk)
			t.logger.Warn().
				Str("property", p.Name).
				Interface("inputs", shrunk.Inputs).
				Int("shrink_steps", shrunk.ShrinkSteps).
				Msg("Property violated")
		}

		// Observability only; carries no control-flow meaning.
		if (i+1)%10 == 0 {
			t.logger.Debug().
				Str("property", p.Name).
				Int("trial", i+1).
				Int("max_tests", t.MaxTests).
				Msg("Progress")
		}
	}

	accepted := passed + failed + errored
	var successRate float64
	if accepted > 0 {
		successRate = float64(passed) / float64(accepted) * 100
	}

	// Average over retained cases only (failed + errored); passing and
	// discarded trials are counted but not kept individually.
	var avg time.Duration
	if len(cases) > 0 {
		var total time.Duration
		for _, c := range cases {
			total += c.Duration
		}
		avg = total / time.Duration(len(cases))
	}

	failedCases := make([]model.Case, 0, failed)
	for _, c := range cases {
		if c.Outcome == model.OutcomeFail {
			failedCases = append(failedCases, c)
		}
	}

	return model.Report{
		PropertyName:         p.Name,
		TotalTests:           accepted,
		Passed:               passed,
		Failed:               failed,
		Discarded:            discarded,
		Errors:               errored,
		SuccessRate:          successRate,
		AverageExecutionTime: avg,
		FailedCases:          failedCases,
	}
}

// RunAll runs every property in order and returns one report per property.
func (t *Tester) RunAll(props []Property) []model.Report {
	reports := make([]model.Report, 0, len(props))
	for _, p := range props {
		reports = append(reports, t.Run(p))
	}
	return reports
}

// shrink minimizes a failing case by greedy first-improvement descent: per
// round, scan positions left to right, substitute each shrink candidate, and
// accept the first candidate that still fails, restarting the scan. A full
// barren scan is a local minimum and terminates the search early. Greedy
// single-step descent is deliberate; shrink spaces can be combinatorially
// large, and an exhaustive search would change which counterexample is
// reported.
func (t *Tester) shrink(p Property, failing model.Case) model.Case {
	current := slices.Clone(failing.Inputs)
	steps := 0

	for round := 0; round < t.MaxShrinks; round++ {
		improved := false
		for i, g := range p.Generators {
			for candidate := range g.Shrink(current[i]) {
				trial := slices.Clone(current)
				trial[i] = candidate

				// Only a candidate that reproduces the failure counts;
				// an error during shrink is not progress.
				outcome, _, _, _ := p.Check(trial)
				if outcome == model.OutcomeFail {
					current = trial
					steps++
					improved = true
					break
				}
			}
			if improved {
				break
			}
		}
		if !improved {
			break
		}
	}

	// Re-check the settled tuple for authoritative actual/duration/error.
	outcome, actual, duration, errMsg := p.Check(current)
	return model.Case{
		Inputs:       current,
		Expected:     true,
		Actual:       actual,
		Outcome:      outcome,
		Duration:     duration,
		ErrorMessage: errMsg,
		ShrinkSteps:  steps,
	}
}
