package ports

import (
	"context"
)

// GitInfo holds the repository context shown under the timer title.
type GitInfo struct {
	Branch   string
	Commit   string
	Modified int
}

// GitDetector defines the interface for git context detection.
// This is a driven port (implemented by adapters).
type GitDetector interface {
	// Detect scans workingDir and its parents for a repository.
	Detect(ctx context.Context, workingDir string) (*GitInfo, error)
}
