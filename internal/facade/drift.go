// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd003-facade-generation R5 (check mode);
//
//	docs/ARCHITECTURE § Facade Generation.
package facade

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Drift describes how an on-disk facade differs from what a run would
// generate. A nil Drift means the file is up to date.
type Drift struct {
	Path    string // Facade path checked
	Missing bool   // True when the file does not exist at all
	Patch   string // Patch-format diff from on-disk content to generated content
}

func (d *Drift) String() string {
	if d.Missing {
		return fmt.Sprintf("%s: missing", d.Path)
	}
	return fmt.Sprintf("%s: out of date\n%s", d.Path, d.Patch)
}

// Check compares the facade at path against the content a run would write,
// without writing anything.
func Check(path, want string) (*Drift, error) {
	got, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Drift{Path: path, Missing: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if string(got) == want {
		return nil, nil
	}

	dmp := diffmatchpatch.New()
	patches := dmp.PatchMake(string(got), want)
	return &Drift{Path: path, Patch: dmp.PatchToText(patches)}, nil
}
