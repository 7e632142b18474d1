// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package manifest loads and validates the typst.toml package descriptor.
// The manifest is loaded once per run and passed explicitly to every stage;
// there is no hidden cache.
// Implements: prd004-manifest R1, R2, R3;
//
//	docs/ARCHITECTURE § Manifest.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the fixed manifest name at the project root.
const FileName = "typst.toml"

// ErrInvalidManifest is returned when typst.toml cannot be decoded or lacks
// required fields.
var ErrInvalidManifest = errors.New("invalid package manifest")

// Package holds the typed [package] fields the packer itself consumes.
type Package struct {
	Name       string `toml:"name"`
	Version    string `toml:"version"`
	Entrypoint string `toml:"entrypoint,omitempty"`
}

// Manifest is the parsed typst.toml.
type Manifest struct {
	Package Package
	// Fields holds every [package] key as decoded. README substitution only
	// considers the string-valued entries; everything else passes through
	// as literal {{key}} text.
	Fields map[string]any
}

// StringFields returns the substitutable subset of the package table.
func (m *Manifest) StringFields() map[string]string {
	out := make(map[string]string, len(m.Fields))
	for k, v := range m.Fields {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}

// Load reads typst.toml from the project root. Name and version are
// required strings; anything else in [package] is kept verbatim in Fields.
//
// Implements: prd004-manifest R1.1-R1.3, R2.1, R2.2.
func Load(projectDir string) (*Manifest, error) {
	path := filepath.Join(projectDir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", FileName, err)
	}

	var typed struct {
		Package Package `toml:"package"`
	}
	if err := toml.Unmarshal(data, &typed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}

	var raw struct {
		Package map[string]any `toml:"package"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}

	if typed.Package.Name == "" {
		return nil, fmt.Errorf("%w: package.name is required", ErrInvalidManifest)
	}
	if typed.Package.Version == "" {
		return nil, fmt.Errorf("%w: package.version is required", ErrInvalidManifest)
	}

	return &Manifest{
		Package: typed.Package,
		Fields:  raw.Package,
	}, nil
}
