package cli

// This file contains run recording functionality for saving run metadata
// to the history directory.

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/propgo/propgo/model"
)

func (a *App) recordRun(run *model.Run) error {
	// Get repository root
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	output, err := cmd.Output()
	if err != nil {
		return fmt.Errorf("not in a git repository: %w", err)
	}
	repoRoot := strings.TrimSpace(string(output))

	if run.Git != nil {
		run.Git.Repo = filepath.Base(repoRoot)
	}

	// Rewrite WorkDir relative to repo root
	if run.WorkDir != "" {
		if rel, err := filepath.Rel(repoRoot, run.WorkDir); err == nil {
			run.WorkDir = rel
		}
	}

	// Create directory in .propgo/runs/<timestamp>-<id>
	timestamp := run.Timestamp.Format("20060102-150405")
	shortID := run.ID
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}

	runDir := filepath.Join(repoRoot, ".propgo", "runs", fmt.Sprintf("%s-%s", timestamp, shortID))
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return fmt.Errorf("failed to create run directory: %w", err)
	}

	// Write run metadata
	metadataPath := filepath.Join(runDir, "run.json")
	metadataJSON, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal run: %w", err)
	}

	if err := os.WriteFile(metadataPath, metadataJSON, 0644); err != nil {
		return fmt.Errorf("failed to write run metadata: %w", err)
	}

	a.logger.Debug().Str("dir", runDir).Str("id", run.ID).Msg("Recorded run")
	return nil
}
