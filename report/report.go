// Package report turns per-property reports into a run artifact: a
// cross-property aggregate, a JSON file, and a console summary.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/propgo/propgo/model"
)

// Number of failed examples retained per property in a run artifact.
const maxFailedExamples = 5

// Aggregate sums per-property counts into a cross-property summary. The
// overall success rate uses the same accepted-trial denominator as the
// per-property rate; discards never appear in it.
func Aggregate(reports []model.Report) model.Summary {
	s := model.Summary{
		TotalProperties: len(reports),
	}
	var totalAvg time.Duration
	for _, r := range reports {
		s.TotalTests += r.TotalTests
		s.TotalPassed += r.Passed
		s.TotalFailed += r.Failed
		totalAvg += r.AverageExecutionTime
	}
	if s.TotalTests > 0 {
		s.OverallSuccessRate = float64(s.TotalPassed) / float64(s.TotalTests) * 100
	}
	if len(reports) > 0 {
		s.AverageExecutionTime = totalAvg / time.Duration(len(reports))
	}
	return s
}

// Summarize builds the truncated per-property views embedded in a run
// artifact, capping failed-example detail at 5 per property.
func Summarize(reports []model.Report) []model.PropertySummary {
	summaries := make([]model.PropertySummary, 0, len(reports))
	for _, r := range reports {
		examples := make([]model.FailedExample, 0, maxFailedExamples)
		for _, c := range r.FailedCases {
			if len(examples) == maxFailedExamples {
				break
			}
			examples = append(examples, model.FailedExample{
				Inputs:      c.Inputs,
				Error:       c.ErrorMessage,
				ShrinkSteps: c.ShrinkSteps,
			})
		}
		summaries = append(summaries, model.PropertySummary{
			Name:           r.PropertyName,
			Tests:          r.TotalTests,
			Passed:         r.Passed,
			Failed:         r.Failed,
			Errors:         r.Errors,
			SuccessRate:    r.SuccessRate,
			FailedExamples: examples,
		})
	}
	return summaries
}

// WriteJSON writes the run artifact as indented JSON to path.
func WriteJSON(path string, run *model.Run) error {
	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal run: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
