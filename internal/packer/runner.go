// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package packer implements the packing orchestrator, wiring the export,
// README, and distribution stages into one run.
// Implements: prd001-packer-interface R2;
//
//	docs/ARCHITECTURE § Packer Lifecycle.
package packer

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/petar-djukic/typack/internal/dist"
	"github.com/petar-djukic/typack/internal/export"
	"github.com/petar-djukic/typack/internal/facade"
	"github.com/petar-djukic/typack/internal/gitstate"
	"github.com/petar-djukic/typack/internal/manifest"
	"github.com/petar-djukic/typack/internal/readme"
)

// Deps holds injected dependencies for the runner.
type Deps struct {
	ProjectDir string
	Check      bool // Report drift, write nothing
	Prune      bool // Remove stale generated facades
	NoGit      bool // Skip the dirty-worktree probe
	Out        io.Writer
}

// RunResult holds the outcome of a Runner.Pack invocation. This is the
// internal result type; pkg/packer converts it to the public Result.
type RunResult struct {
	PackageName    string
	PackageVersion string
	Facades        []string
	Pruned         []string
	Drifted        []*facade.Drift
	DistDir        string
	DirtyWorktree  bool
}

// Runner orchestrates the packing lifecycle.
type Runner struct {
	deps Deps
}

// NewRunner creates a Runner with the given dependencies.
func NewRunner(deps Deps) *Runner {
	return &Runner{deps: deps}
}

// Pack executes the full lifecycle: load the manifest once, probe the
// worktree, generate facades, substitute the README, assemble the
// distribution. Fatal errors abort immediately; there is no rollback. In
// check mode the run stops after the drift report and writes nothing.
//
// Implements: prd001-packer-interface R2.1-R2.5.
func (r *Runner) Pack() (*RunResult, error) {
	out := r.deps.Out
	if out == nil {
		out = os.Stdout
	}

	m, err := manifest.Load(r.deps.ProjectDir)
	if err != nil {
		return nil, err
	}

	result := &RunResult{
		PackageName:    m.Package.Name,
		PackageVersion: m.Package.Version,
	}

	if !r.deps.NoGit {
		dirty, err := gitstate.Dirty(r.deps.ProjectDir)
		switch {
		case errors.Is(err, gitstate.ErrNoGit):
			// Packing outside version control is fine.
		case err != nil:
			return result, fmt.Errorf("probing worktree: %w", err)
		case dirty:
			result.DirtyWorktree = true
			fmt.Fprintln(out, "warning: worktree has uncommitted changes; the packed version may match no commit")
		}
	}

	exp, err := export.Run(r.deps.ProjectDir, export.Options{
		Check: r.deps.Check,
		Prune: r.deps.Prune,
		Out:   out,
	})
	if exp != nil {
		result.Facades = exp.Generated
		result.Pruned = exp.Pruned
		result.Drifted = exp.Drifted
	}
	if err != nil {
		return result, fmt.Errorf("generating exports: %w", err)
	}

	if r.deps.Check {
		return result, nil
	}

	if err := readme.Generate(r.deps.ProjectDir, m); err != nil {
		return result, fmt.Errorf("generating README: %w", err)
	}

	distDir, err := dist.Assemble(r.deps.ProjectDir, m)
	if err != nil {
		return result, fmt.Errorf("assembling distribution: %w", err)
	}
	result.DistDir = distDir

	return result, nil
}
