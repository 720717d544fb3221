package cli

// This file contains the run command: it executes the property suite and
// emits the report artifacts.

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"github.com/propgo/propgo/i2c"
	"github.com/propgo/propgo/model"
	"github.com/propgo/propgo/prop"
	"github.com/propgo/propgo/report"
	"github.com/urfave/cli/v2"
)

func (a *App) run(ctx *cli.Context) error {
	startTime := time.Now()

	seed := ctx.Uint64("seed")
	if !ctx.IsSet("seed") {
		// Derived seeds are logged and recorded so any run can be
		// reproduced after the fact.
		seed = uint64(time.Now().UnixNano())
		a.logger.Info().Uint64("seed", seed).Msg("No seed given, derived from time")
	}
	maxTests := ctx.Int("max-tests")
	maxShrinks := ctx.Int("max-shrinks")
	if maxTests <= 0 {
		return fmt.Errorf("max-tests must be positive, got %d", maxTests)
	}
	if maxShrinks < 0 {
		return fmt.Errorf("max-shrinks must not be negative, got %d", maxShrinks)
	}

	properties := i2c.Suite()
	if name := ctx.String("property"); name != "" {
		var filtered []prop.Property
		for _, p := range properties {
			if p.Name == name {
				filtered = append(filtered, p)
			}
		}
		if len(filtered) == 0 {
			return fmt.Errorf("unknown property: %q", name)
		}
		properties = filtered
	}

	// Generate random 16-byte run ID
	idBytes := make([]byte, 16)
	if _, err := rand.Read(idBytes); err != nil {
		return fmt.Errorf("failed to generate run ID: %w", err)
	}

	run := &model.Run{
		ID:         hex.EncodeToString(idBytes),
		Timestamp:  startTime,
		Args:       os.Args,
		Seed:       seed,
		MaxTests:   maxTests,
		MaxShrinks: maxShrinks,
	}

	// Capture working directory
	if cwd, err := os.Getwd(); err == nil {
		run.WorkDir = cwd
	}

	// Capture git info (non-fatal if it fails)
	if commit, branch, err := a.getGitInfo(); err == nil {
		run.Git = &model.Git{
			Commit: commit,
			Branch: branch,
		}
	}

	tester := prop.New(a.logger, maxTests, maxShrinks, seed)
	reports := tester.RunAll(properties)

	run.Duration = time.Since(startTime)
	run.Summary = report.Aggregate(reports)
	run.Properties = report.Summarize(reports)
	run.Reports = reports

	report.RenderConsole(os.Stdout, run)

	if output := ctx.String("output"); output != "" {
		if err := report.WriteJSON(output, run); err != nil {
			return err
		}
		a.logger.Info().Str("path", output).Msg("Report written")
	}

	// Record the run (non-fatal if it fails)
	if !ctx.Bool("no-record") {
		if err := a.recordRun(run); err != nil {
			a.logger.Warn().Err(err).Msg("Failed to record run")
		}
	}

	if notPassed := run.Summary.TotalTests - run.Summary.TotalPassed; notPassed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d test cases did not pass", notPassed, run.Summary.TotalTests), 1)
	}
	return nil
}
