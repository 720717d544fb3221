package i2c

import (
	"testing"

	"github.com/propgo/propgo/model"
	"github.com/propgo/propgo/prop"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestSuite_Names(t *testing.T) {
	suite := Suite()
	require.Len(t, suite, 4)

	var names []string
	for _, p := range suite {
		names = append(names, p.Name)
		require.NotEmpty(t, p.Generators)
		require.NotNil(t, p.Predicate)
	}
	require.Equal(t, []string{
		"I2C Address Validity",
		"I2C Transaction Length",
		"I2C Write-Read Consistency",
		"Buffer Overflow Prevention",
	}, names)
}

func TestSuite_WellFormedPropertiesHold(t *testing.T) {
	tester := prop.New(zerolog.Nop(), 200, 50, 42)

	// The first three properties only receive inputs their generators keep
	// within bounds, so they must pass their full budget.
	for _, p := range Suite()[:3] {
		tester.Reseed(42)
		report := tester.Run(p)

		require.Equal(t, 200, report.TotalTests, p.Name)
		require.Equal(t, 200, report.Passed, p.Name)
		require.Zero(t, report.Failed, p.Name)
		require.Zero(t, report.Errors, p.Name)
		require.Empty(t, report.FailedCases, p.Name)
		require.Equal(t, float64(100), report.SuccessRate, p.Name)
	}
}

func TestSuite_BufferOverflowMinimizes(t *testing.T) {
	suite := Suite()
	overflow := suite[len(suite)-1]

	tester := prop.New(zerolog.Nop(), 100, 200, 42)
	report := tester.Run(overflow)

	// Payloads up to 64 bytes against buffers of at most 32 overflow often.
	require.NotZero(t, report.Failed)
	require.Equal(t, 100, report.TotalTests)

	// Greedy descent settles every counterexample at the smallest buffer
	// with a payload exactly one byte too long.
	for _, c := range report.FailedCases {
		require.Equal(t, model.OutcomeFail, c.Outcome)
		data := c.Inputs[0].([]byte)
		bufferSize := c.Inputs[1].(int)
		require.Equal(t, 16, bufferSize)
		require.Len(t, data, 17)
		require.NotZero(t, c.ShrinkSteps)
	}
}
