// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package packer defines the public interface for typack, a publishing
// helper for Typst packages.
// Implements: prd001-packer-interface R1, R2, R3, R6;
//
//	docs/ARCHITECTURE § Packer Interface.
package packer

import (
	"errors"
	"io"
)

// Error types for the Packer API.
//
// Implements: prd001-packer-interface R6.1-R6.3.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrDrift         = errors.New("generated files are out of date")
)

// Config configures a Packer instance.
//
// Implements: prd001-packer-interface R1.1-R1.6.
type Config struct {
	ProjectDir string    // Package root containing typst.toml (required)
	Check      bool      // Report drift instead of writing anything
	Prune      bool      // Remove stale generated facades after the run
	NoGit      bool      // Skip the dirty-worktree warning
	Out        io.Writer // Progress output (default os.Stdout)
}

// Result holds the outcome of a Packer.Pack invocation.
//
// Implements: prd001-packer-interface R3.1-R3.5.
type Result struct {
	PackageName    string   // package.name from typst.toml
	PackageVersion string   // package.version from typst.toml
	Facades        []string // Facade paths generated (relative to the project root)
	Pruned         []string // Stale facades removed
	Drifted        []string // Check mode: facades missing or out of date
	DistDir        string   // Assembled packed/<version> directory; empty in check mode
	DirtyWorktree  bool     // True when packing from a dirty git worktree
}

// Packer packs a Typst package for publication.
//
// Implements: prd001-packer-interface R2.1-R2.5.
type Packer interface {
	// Pack runs export generation, README generation, and distribution
	// assembly, in that order. In check mode it stops after the drift
	// report and returns ErrDrift when anything is out of date.
	Pack() (*Result, error)
}
