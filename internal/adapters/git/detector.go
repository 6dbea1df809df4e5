// Package git provides git context detection using go-git.
package git

import (
	"context"
	"fmt"
	"os"

	"github.com/go-git/go-git/v5"
	"github.com/xvierd/pomodoro-cli/internal/ports"
)

// Detector implements the ports.GitDetector interface using go-git.
type Detector struct {
	status func(*git.Worktree) (git.Status, error)
}

// NewDetector creates a new git detector.
func NewDetector() *Detector {
	return &Detector{status: (*git.Worktree).Status}
}

// Ensure Detector implements ports.GitDetector.
var _ ports.GitDetector = (*Detector)(nil)

// Detect opens the repository containing workingDir (or the current
// directory when empty) and reports its branch, HEAD commit and the number
// of modified tracked files. The count is left at zero when the worktree
// scan outlives ctx.
func (d *Detector) Detect(ctx context.Context, workingDir string) (*ports.GitInfo, error) {
	if workingDir == "" {
		var err error
		workingDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	repo, err := git.PlainOpenWithOptions(workingDir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("git repository not found: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to get HEAD: %w", err)
	}

	branch := head.Name().Short()
	if branch == "HEAD" {
		branch = "HEAD detached"
	}

	info := &ports.GitInfo{
		Branch: branch,
		Commit: head.Hash().String(),
	}

	if ctx.Err() != nil {
		return info, nil
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return info, nil
	}
	status, err := d.worktreeStatus(ctx, worktree)
	if err != nil {
		return info, nil
	}
	for _, s := range status {
		if s.Worktree == git.Untracked {
			continue
		}
		if s.Staging != git.Unmodified || s.Worktree != git.Unmodified {
			info.Modified++
		}
	}

	return info, nil
}

type statusResult struct {
	status git.Status
	err    error
}

// worktreeStatus runs the scan in the background so a large repository
// cannot hold up the caller past ctx.
func (d *Detector) worktreeStatus(ctx context.Context, worktree *git.Worktree) (git.Status, error) {
	done := make(chan statusResult, 1)
	go func() {
		status, err := d.status(worktree)
		done <- statusResult{status: status, err: err}
	}()

	select {
	case r := <-done:
		return r.status, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
