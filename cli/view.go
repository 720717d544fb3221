package cli

// This file contains the view command for re-rendering recorded run reports.

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/propgo/propgo/history"
	"github.com/propgo/propgo/report"
	"github.com/urfave/cli/v2"
)

// resolveRunArg resolves a view argument against entries sorted newest
// first: "0" is the last run, "-1" the one before it, anything else is
// matched as a hex ID prefix.
func resolveRunArg(arg string, entries []history.Entry) (*history.Entry, error) {
	if index, err := strconv.Atoi(arg); err == nil {
		if index > 0 {
			return nil, fmt.Errorf("index must be 0 or negative, got %d", index)
		}
		offset := -index
		if offset >= len(entries) {
			return nil, fmt.Errorf("index %s out of range (%d runs recorded)", arg, len(entries))
		}
		return &entries[offset], nil
	}

	var matches []*history.Entry
	for i := range entries {
		if strings.HasPrefix(entries[i].Run.ID, arg) {
			matches = append(matches, &entries[i])
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no run found with ID prefix %q", arg)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("ID prefix %q is ambiguous (%d matches)", arg, len(matches))
	}
}

func (a *App) view(ctx *cli.Context) error {
	arg := ctx.Args().First()
	if arg == "" {
		arg = "0"
	}

	// Get propgo root directory
	propgoRoot, err := history.GetPropgoRoot()
	if err != nil {
		return err
	}

	entries, err := history.LoadEntries(a.logger, propgoRoot)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("no runs recorded in %s", propgoRoot)
	}

	// Sort by timestamp (newest first)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Run.Timestamp.After(entries[j].Run.Timestamp)
	})

	entry, err := resolveRunArg(arg, entries)
	if err != nil {
		return err
	}

	a.logger.Debug().Str("id", entry.Run.ID).Str("path", entry.FullPath).Msg("Viewing run")
	report.RenderConsole(os.Stdout, &entry.Run)

	return nil
}
