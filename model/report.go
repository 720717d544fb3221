package model

import "time"

// Outcome classifies the result of evaluating a property against one input
// tuple.
type Outcome string

const (
	// OutcomePass means the predicate returned true.
	OutcomePass Outcome = "pass"
	// OutcomeFail means the predicate returned false.
	OutcomeFail Outcome = "fail"
	// OutcomeDiscard means the precondition rejected the inputs before the
	// predicate ran.
	OutcomeDiscard Outcome = "discard"
	// OutcomeError means the predicate faulted during evaluation.
	OutcomeError Outcome = "error"
)

// Case is a single property test case. It is immutable once built.
type Case struct {
	// Ordered input values, one per generator
	Inputs []any `json:"inputs"`
	// Expected predicate result (properties should always hold)
	Expected any `json:"expected"`
	// Actual predicate result
	Actual any `json:"actual"`
	// Outcome classification for this case
	Outcome Outcome `json:"outcome"`
	// Wall-clock duration of the predicate evaluation
	Duration time.Duration `json:"execution_time"`
	// Error or violation message, if any
	ErrorMessage string `json:"error_message,omitempty"`
	// Number of accepted shrink reductions applied before this case was
	// finalized (0 for a case that was never shrunk)
	ShrinkSteps int `json:"shrink_steps"`
}

// Report aggregates the outcome of a single property run.
type Report struct {
	// Name of the property that was tested
	PropertyName string `json:"property_name"`
	// Accepted trials (passed + failed + errored; discards excluded)
	TotalTests int `json:"total_tests"`
	// Trials where the predicate returned true
	Passed int `json:"passed"`
	// Trials where the predicate returned false
	Failed int `json:"failed"`
	// Trials rejected by the precondition
	Discarded int `json:"discarded"`
	// Trials where the predicate faulted
	Errors int `json:"errors"`
	// passed / (passed+failed+errors) * 100, 0 when no trials were accepted
	SuccessRate float64 `json:"success_rate"`
	// Mean duration across retained cases (failed and errored only; passing
	// and discarded trials are counted but not retained individually, so
	// this average is biased toward pathological inputs)
	AverageExecutionTime time.Duration `json:"average_execution_time"`
	// Failing cases after shrinking (outcome == fail only)
	FailedCases []Case `json:"failed_cases"`
}

// Summary is the cross-property aggregate of a full run.
type Summary struct {
	// Number of properties tested
	TotalProperties int `json:"total_properties"`
	// Sum of accepted trials across properties
	TotalTests int `json:"total_tests"`
	// Sum of passing trials across properties
	TotalPassed int `json:"total_passed"`
	// Sum of failing trials across properties
	TotalFailed int `json:"total_failed"`
	// total_passed / total_tests * 100, 0 when no trials were accepted
	OverallSuccessRate float64 `json:"overall_success_rate"`
	// Mean of the per-property average execution times
	AverageExecutionTime time.Duration `json:"average_execution_time"`
}

// PropertySummary is the truncated per-property view embedded in a run
// artifact. Failed example detail is capped to bound report size.
type PropertySummary struct {
	Name           string          `json:"name"`
	Tests          int             `json:"tests"`
	Passed         int             `json:"passed"`
	Failed         int             `json:"failed"`
	Errors         int             `json:"errors"`
	SuccessRate    float64         `json:"success_rate"`
	FailedExamples []FailedExample `json:"failed_examples"`
}

// FailedExample is a minimized counterexample retained in a run artifact.
type FailedExample struct {
	Inputs      []any  `json:"inputs"`
	Error       string `json:"error,omitempty"`
	ShrinkSteps int    `json:"shrink_steps"`
}
