package report

// This file renders the human-readable console summary mirroring the JSON
// run artifact.

import (
	"fmt"
	"io"
	"strings"

	"al.essio.dev/pkg/shellescape"
	"github.com/propgo/propgo/model"
)

// RenderConsole writes the console summary of a run to w. For each failing
// property it includes a copy-pasteable command reproducing the run with the
// same seed and budgets.
func RenderConsole(w io.Writer, run *model.Run) {
	fmt.Fprintf(w, "\nProperty-Based Testing Report\n")
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintf(w, "Seed: %d\n", run.Seed)
	fmt.Fprintf(w, "Properties Tested: %d\n", run.Summary.TotalProperties)
	fmt.Fprintf(w, "Total Test Cases: %d\n", run.Summary.TotalTests)
	fmt.Fprintf(w, "Success Rate: %.2f%%\n", run.Summary.OverallSuccessRate)

	failedProps := 0
	for _, p := range run.Properties {
		if p.Failed > 0 || p.Errors > 0 {
			failedProps++
		}
	}
	fmt.Fprintf(w, "Failed Properties: %d\n\n", failedProps)

	for _, p := range run.Properties {
		status := "✓"
		if p.Failed > 0 || p.Errors > 0 {
			status = "✗"
		}
		fmt.Fprintf(w, "%s %s\n", status, p.Name)
		fmt.Fprintf(w, "   tests=%d passed=%d failed=%d errors=%d rate=%.2f%%\n",
			p.Tests, p.Passed, p.Failed, p.Errors, p.SuccessRate)

		for _, example := range p.FailedExamples {
			fmt.Fprintf(w, "   counterexample: %v (shrink_steps=%d)\n",
				example.Inputs, example.ShrinkSteps)
		}
		if p.Failed > 0 || p.Errors > 0 {
			fmt.Fprintf(w, "   Reproduce: %s\n", reproduceCommand(run, p.Name))
		}
		fmt.Fprintln(w)
	}
}

// reproduceCommand renders a shell-safe command that reruns a single
// property with the run's seed and budgets.
func reproduceCommand(run *model.Run, property string) string {
	return fmt.Sprintf("propgo run --seed %d --max-tests %d --max-shrinks %d --property %s",
		run.Seed, run.MaxTests, run.MaxShrinks, shellescape.Quote(property))
}
