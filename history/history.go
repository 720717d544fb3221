package history

// This file contains shared utilities for loading and parsing recorded
// property test runs.

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/propgo/propgo/model"
	"github.com/rs/zerolog"
)

type Entry struct {
	Run      model.Run
	FullPath string
}

// GetPropgoRoot returns the .propgo directory path from the git repository root.
func GetPropgoRoot() (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("not in a git repository: %w", err)
	}
	repoRoot := strings.TrimSpace(string(output))
	propgoRoot := filepath.Join(repoRoot, ".propgo")

	// Check if .propgo directory exists
	if _, err := os.Stat(propgoRoot); os.IsNotExist(err) {
		return "", fmt.Errorf("no runs found in %s", propgoRoot)
	}

	return propgoRoot, nil
}

// LoadEntries loads all recorded runs from the .propgo directory.
func LoadEntries(logger zerolog.Logger, propgoRoot string) ([]Entry, error) {
	var entries []Entry

	err := filepath.WalkDir(propgoRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			runPath := filepath.Join(path, "run.json")
			if _, err := os.Stat(runPath); err == nil {
				run, err := parseRunJSON(runPath)
				if err != nil {
					logger.Warn().Err(err).Str("path", runPath).Msg("Failed to parse run.json")
					return nil
				}

				entries = append(entries, Entry{
					Run:      run,
					FullPath: path,
				})
			}
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to walk .propgo directory: %w", err)
	}

	return entries, nil
}

// parseRunJSON parses a run.json file.
func parseRunJSON(runPath string) (model.Run, error) {
	data, err := os.ReadFile(runPath)
	if err != nil {
		return model.Run{}, err
	}

	var run model.Run
	if err := json.Unmarshal(data, &run); err != nil {
		return model.Run{}, err
	}

	return run, nil
}
