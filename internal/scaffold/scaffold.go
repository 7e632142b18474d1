// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package scaffold creates the skeleton of a new Typst package.
// Implements: prd007-scaffolding R1, R2;
//
//	docs/ARCHITECTURE § Scaffolding.
package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/petar-djukic/typack/internal/manifest"
)

// ErrProjectExists is returned when the target directory already exists.
var ErrProjectExists = errors.New("project directory already exists")

const (
	initialVersion = "0.1.0"
	entrypoint     = "src/lib.typ"
	readmeTemplate = "# Typst package: {{name}}\n"
)

// Create initializes a new package at dir: the src/_impl implementation
// subtree, an empty entrypoint, a README template, and a typst.toml seeded
// with the given name (the directory basename when name is empty).
//
// Implements: prd007-scaffolding R1.1-R1.5, R2.1.
func Create(dir, name string) error {
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("%w: %s", ErrProjectExists, dir)
	}
	if name == "" {
		name = filepath.Base(filepath.Clean(dir))
	}

	if err := os.MkdirAll(filepath.Join(dir, "src", "_impl"), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	files := map[string]string{
		entrypoint:       "",
		".gitignore":     "",
		"README.orig.md": readmeTemplate,
	}
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", rel, err)
		}
	}

	info := struct {
		Package manifest.Package `toml:"package"`
	}{
		Package: manifest.Package{
			Name:       name,
			Version:    initialVersion,
			Entrypoint: entrypoint,
		},
	}
	data, err := toml.Marshal(info)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", manifest.FileName, err)
	}
	if err := os.WriteFile(filepath.Join(dir, manifest.FileName), data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", manifest.FileName, err)
	}

	return nil
}
