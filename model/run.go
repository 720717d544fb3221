package model

import "time"

// Run represents a single propgo execution: the parameters it ran with and
// the reports it produced. Runs are recorded as run.json in the history
// directory.
type Run struct {
	// Unique ID for this run (16 random bytes, hex encoded)
	ID string `json:"id"`
	// Timestamp when the run started
	Timestamp time.Time `json:"timestamp"`
	// Command-line arguments (including command name)
	Args []string `json:"args,omitempty"`
	// Working directory where the run started (relative to repo root)
	WorkDir string `json:"workdir,omitempty"`
	// Duration of the whole run
	Duration time.Duration `json:"duration"`
	// RNG seed used for this run
	Seed uint64 `json:"seed"`
	// Trial budget per property
	MaxTests int `json:"max_tests"`
	// Shrink round budget per failing case
	MaxShrinks int `json:"max_shrinks"`
	// Git information
	Git *Git `json:"git,omitempty"`
	// Cross-property aggregate
	Summary Summary `json:"summary"`
	// Truncated per-property views
	Properties []PropertySummary `json:"properties"`
	// Full per-property reports
	Reports []Report `json:"reports,omitempty"`
}

// Git contains git repository information
type Git struct {
	// Git commit hash at time of execution
	Commit string `json:"commit,omitempty"`
	// Git branch at time of execution
	Branch string `json:"branch,omitempty"`
	// Repository name
	Repo string `json:"repo,omitempty"`
}
