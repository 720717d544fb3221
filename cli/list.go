package cli

// This file contains the list command for displaying previous runs.

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/propgo/propgo/history"
	"github.com/urfave/cli/v2"
)

func (a *App) list(ctx *cli.Context) error {
	filterPath := ctx.String("path")
	limit := ctx.Int("limit")

	// Get propgo root directory
	propgoRoot, err := history.GetPropgoRoot()
	if err != nil {
		return err
	}

	// Load all recorded runs
	entries, err := history.LoadEntries(a.logger, propgoRoot)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	// Apply path filter if specified
	var filteredEntries []history.Entry
	for _, entry := range entries {
		if filterPath == "" || strings.Contains(entry.Run.WorkDir, filterPath) {
			filteredEntries = append(filteredEntries, entry)
		}
	}

	if len(filteredEntries) == 0 {
		if filterPath != "" {
			fmt.Printf("No runs found matching path: %s\n", filterPath)
		} else {
			fmt.Println("No runs found")
		}
		return nil
	}

	// Sort by timestamp (newest first)
	sort.Slice(filteredEntries, func(i, j int) bool {
		return filteredEntries[i].Run.Timestamp.After(filteredEntries[j].Run.Timestamp)
	})

	// Apply limit
	displayRuns := filteredEntries
	if limit > 0 && limit < len(displayRuns) {
		displayRuns = displayRuns[:limit]
	}

	fmt.Printf("\n=== Runs (%d total) ===\n\n", len(filteredEntries))

	for _, entry := range displayRuns {
		run := entry.Run
		timestamp := run.Timestamp.Format("2006-01-02 15:04:05")

		// Format duration
		duration := run.Duration.Round(time.Millisecond)

		// Determine status indicator
		status := "✓"
		if run.Summary.TotalPassed < run.Summary.TotalTests {
			status = "✗"
		}

		// Show short ID (first 8 chars)
		shortID := run.ID
		if len(shortID) > 8 {
			shortID = shortID[:8]
		}

		fmt.Printf("%s  %s  [%s]  seed=%d  id=%s\n", status, timestamp, duration, run.Seed, shortID)
		fmt.Printf("   Properties: %d  Tests: %d  Passed: %d  Failed: %d  Rate: %.2f%%\n",
			run.Summary.TotalProperties, run.Summary.TotalTests,
			run.Summary.TotalPassed, run.Summary.TotalFailed,
			run.Summary.OverallSuccessRate)
		if run.WorkDir != "" {
			fmt.Printf("   Path: %s\n", run.WorkDir)
		}
		if run.Git != nil && run.Git.Commit != "" {
			shortCommit := run.Git.Commit
			if len(shortCommit) > 8 {
				shortCommit = shortCommit[:8]
			}
			fmt.Printf("   Commit: %s", shortCommit)
			if run.Git.Branch != "" {
				fmt.Printf(" (%s)", run.Git.Branch)
			}
			fmt.Println()
		}
		fmt.Printf("   %s\n", entry.FullPath)
		fmt.Println()
	}

	fmt.Println("\nView a run report: propgo view <ID>")

	return nil
}
