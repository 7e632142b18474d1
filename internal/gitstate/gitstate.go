// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package gitstate probes the project's git worktree before packing. It is
// strictly read-only: the packer never stages, commits, or resets anything.
// Implements: prd008-git-integration R1, R2;
//
//	docs/ARCHITECTURE § Git Probe.
package gitstate

import (
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
)

// ErrNoGit is returned when the project directory is not inside a git
// repository. Callers packing outside version control treat this as "not
// dirty" and move on.
var ErrNoGit = errors.New("not a git repository")

// Dirty reports whether the worktree containing projectDir has uncommitted
// changes, staged or unstaged. Packing from a dirty tree risks shipping a
// version that matches no commit, so the packer warns on true.
//
// Implements: prd008-git-integration R1.1, R2.1, R2.2.
func Dirty(projectDir string) (bool, error) {
	repo, err := gogit.PlainOpenWithOptions(projectDir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrNoGit, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("getting worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return false, fmt.Errorf("getting status: %w", err)
	}

	return !status.IsClean(), nil
}
