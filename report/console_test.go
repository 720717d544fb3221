package report

import (
	"strings"
	"testing"

	"github.com/propgo/propgo/model"
	"github.com/stretchr/testify/require"
)

func TestRenderConsole(t *testing.T) {
	run := &model.Run{
		Seed:       42,
		MaxTests:   100,
		MaxShrinks: 50,
		Summary: model.Summary{
			TotalProperties:    2,
			TotalTests:         200,
			TotalPassed:        193,
			TotalFailed:        7,
			OverallSuccessRate: 96.5,
		},
		Properties: []model.PropertySummary{
			{Name: "I2C Address Validity", Tests: 100, Passed: 100, SuccessRate: 100},
			{
				Name: "Buffer Overflow Prevention", Tests: 100, Passed: 93, Failed: 7,
				SuccessRate: 93,
				FailedExamples: []model.FailedExample{
					{Inputs: []any{[]byte{0}, 16}, ShrinkSteps: 12},
				},
			},
		},
	}

	var sb strings.Builder
	RenderConsole(&sb, run)
	out := sb.String()

	require.Contains(t, out, "Property-Based Testing Report")
	require.Contains(t, out, "Seed: 42")
	require.Contains(t, out, "Properties Tested: 2")
	require.Contains(t, out, "Total Test Cases: 200")
	require.Contains(t, out, "Success Rate: 96.50%")
	require.Contains(t, out, "Failed Properties: 1")
	require.Contains(t, out, "✓ I2C Address Validity")
	require.Contains(t, out, "✗ Buffer Overflow Prevention")
	require.Contains(t, out, "shrink_steps=12")

	// Property names with spaces are quoted for the shell
	require.Contains(t, out,
		"Reproduce: propgo run --seed 42 --max-tests 100 --max-shrinks 50 --property 'Buffer Overflow Prevention'")
	// Passing properties carry no reproduction hint
	require.NotContains(t, out, "--property 'I2C Address Validity'")
}
