// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd001-packer-interface R4;
//
//	docs/ARCHITECTURE § Packer Interface.
package packer

import (
	"fmt"
	"os"

	internalpacker "github.com/petar-djukic/typack/internal/packer"
)

// New validates the config and returns a ready-to-use Packer. It does not
// touch the project; validation of the package layout happens in Pack.
//
// Implements: prd001-packer-interface R4.1-R4.3.
func New(cfg Config) (Packer, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	runner := internalpacker.NewRunner(internalpacker.Deps{
		ProjectDir: cfg.ProjectDir,
		Check:      cfg.Check,
		Prune:      cfg.Prune,
		NoGit:      cfg.NoGit,
		Out:        cfg.Out,
	})

	return &packerAdapter{runner: runner, check: cfg.Check}, nil
}

// packerAdapter adapts internal/packer.Runner to the public Packer interface.
type packerAdapter struct {
	runner *internalpacker.Runner
	check  bool
}

func (a *packerAdapter) Pack() (*Result, error) {
	ir, err := a.runner.Pack()
	if ir == nil {
		return &Result{}, err
	}

	result := &Result{
		PackageName:    ir.PackageName,
		PackageVersion: ir.PackageVersion,
		Facades:        ir.Facades,
		Pruned:         ir.Pruned,
		DistDir:        ir.DistDir,
		DirtyWorktree:  ir.DirtyWorktree,
	}
	for _, d := range ir.Drifted {
		result.Drifted = append(result.Drifted, d.Path)
	}

	if err != nil {
		return result, err
	}
	if a.check && len(result.Drifted) > 0 {
		return result, ErrDrift
	}
	return result, nil
}

// validateConfig checks that required fields are present.
//
// Implements: prd001-packer-interface R1.5, R1.6.
func validateConfig(cfg Config) error {
	if cfg.ProjectDir == "" {
		return fmt.Errorf("ProjectDir is required")
	}
	if info, err := os.Stat(cfg.ProjectDir); err != nil || !info.IsDir() {
		return fmt.Errorf("ProjectDir %q does not exist or is not a directory", cfg.ProjectDir)
	}
	return nil
}
