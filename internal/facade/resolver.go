// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package facade resolves output paths for generated export facades and
// emits their content.
// Implements: prd003-facade-generation R1, R2, R3;
//
//	docs/ARCHITECTURE § Facade Generation.
package facade

import (
	"fmt"
	"path/filepath"
)

// Paths holds the resolved locations for one facade.
type Paths struct {
	// FacadePath is where the facade file is written.
	FacadePath string
	// ImportPath is the relative path from the facade's directory back to
	// the implementation file, slash-separated for embedding in source text.
	ImportPath string
}

// Resolve computes the facade location for an implementation file. With a
// redirect the facade goes to srcDir/redirect verbatim; otherwise it mirrors
// the file's position relative to implDir, one level up under srcDir. The
// import path may walk up (..) since a redirect can place the facade in a
// sibling or ancestor directory of the implementation file.
//
// Implements: prd003-facade-generation R2.1-R2.4.
func Resolve(implPath, srcDir, implDir, redirect string) (Paths, error) {
	var facadePath string
	if redirect != "" {
		facadePath = filepath.Join(srcDir, filepath.FromSlash(redirect))
	} else {
		rel, err := filepath.Rel(implDir, implPath)
		if err != nil {
			return Paths{}, fmt.Errorf("relativizing %s against %s: %w", implPath, implDir, err)
		}
		facadePath = filepath.Join(srcDir, rel)
	}

	importRel, err := filepath.Rel(filepath.Dir(facadePath), implPath)
	if err != nil {
		return Paths{}, fmt.Errorf("computing import path for %s: %w", facadePath, err)
	}

	return Paths{
		FacadePath: facadePath,
		ImportPath: filepath.ToSlash(importRel),
	}, nil
}
