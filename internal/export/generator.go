// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package export walks the private implementation subtree and regenerates
// the public facade files.
// Implements: prd003-facade-generation R1-R6;
//
//	docs/ARCHITECTURE § Export Walker.
package export

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/petar-djukic/typack/internal/annotation"
	"github.com/petar-djukic/typack/internal/facade"
	"github.com/petar-djukic/typack/internal/manifest"
)

const (
	srcDirName  = "src"
	implDirName = "_impl"
	typExt      = ".typ"
)

// ErrNotAPackage is returned when the project root lacks typst.toml or the
// src/_impl implementation subtree.
var ErrNotAPackage = errors.New("not a valid Typst package")

// ErrDuplicateExport is returned when one implementation file declares the
// same public binding twice. A facade with a duplicate binding only fails
// when a consumer imports it, so the generator rejects it up front.
var ErrDuplicateExport = errors.New("duplicate public declaration")

// Options control a generation run.
type Options struct {
	// Check reports drift against the on-disk facades instead of writing.
	Check bool
	// Prune removes generated facades whose source lost all public
	// declarations. Ignored in check mode, where drifted facades are
	// reported instead.
	Prune bool
	// Out receives per-facade progress lines. Defaults to os.Stdout.
	Out io.Writer
}

// Result summarizes a generation run. Paths are relative to the project
// root, slash-separated.
type Result struct {
	Generated []string        // Facades written (or verified current in check mode)
	Drifted   []*facade.Drift // Check mode: facades missing or out of date
	Pruned    []string        // Stale facades removed by the prune pass
}

// EnsureProject verifies the fixed project layout: a typst.toml at the root
// and a src/_impl directory. It fails before anything is written.
//
// Implements: prd003-facade-generation R6.1, R6.2.
func EnsureProject(projectDir string) error {
	if info, err := os.Stat(filepath.Join(projectDir, manifest.FileName)); err != nil || info.IsDir() {
		return fmt.Errorf("%w: `%s` not found in %s", ErrNotAPackage, manifest.FileName, projectDir)
	}
	implDir := filepath.Join(projectDir, srcDirName, implDirName)
	if info, err := os.Stat(implDir); err != nil || !info.IsDir() {
		return fmt.Errorf("%w: `src/_impl` directory not found in %s", ErrNotAPackage, projectDir)
	}
	return nil
}

// Run regenerates the facade for every implementation file under src/_impl
// that declares at least one public item. Files without exports are skipped
// entirely. The walk is lexical, so output order is deterministic.
//
// Implements: prd003-facade-generation R1.6, R5.1-R5.3, R6.3.
func Run(projectDir string, opts Options) (*Result, error) {
	if err := EnsureProject(projectDir); err != nil {
		return nil, err
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	srcDir := filepath.Join(projectDir, srcDirName)
	implDir := filepath.Join(srcDir, implDirName)

	result := &Result{}
	generated := make(map[string]bool)

	err := filepath.WalkDir(implDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != typExt {
			return nil
		}
		return generateOne(projectDir, srcDir, implDir, path, opts, out, result, generated)
	})
	if err != nil {
		return result, err
	}

	if opts.Prune && !opts.Check {
		if err := prune(projectDir, srcDir, implDir, generated, out, result); err != nil {
			return result, err
		}
	}

	return result, nil
}

// generateOne runs the scan, resolve, and write steps for a single
// implementation file.
func generateOne(projectDir, srcDir, implDir, implPath string, opts Options, out io.Writer, result *Result, generated map[string]bool) error {
	data, err := os.ReadFile(implPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", implPath, err)
	}

	scanned := annotation.Scan(string(data))
	if !scanned.HasExports() {
		return nil
	}

	if err := validateItems(scanned, projectDir, implPath); err != nil {
		return err
	}

	paths, err := facade.Resolve(implPath, srcDir, implDir, scanned.Redirect)
	if err != nil {
		return err
	}

	content := facade.Render(scanned.Doc, scanned.Items, paths.ImportPath)
	facadeRel := projectRel(projectDir, paths.FacadePath)

	if opts.Check {
		drift, err := facade.Check(paths.FacadePath, content)
		if err != nil {
			return err
		}
		if drift != nil {
			drift.Path = facadeRel
			result.Drifted = append(result.Drifted, drift)
			fmt.Fprintln(out, drift)
			return nil
		}
		result.Generated = append(result.Generated, facadeRel)
		generated[paths.FacadePath] = true
		return nil
	}

	if err := facade.Write(paths.FacadePath, content); err != nil {
		return err
	}

	fmt.Fprintf(out, "exporting `%s` to `%s`\n", projectRel(projectDir, implPath), facadeRel)
	result.Generated = append(result.Generated, facadeRel)
	generated[paths.FacadePath] = true
	return nil
}

// validateItems rejects duplicate bindings within one file: a repeated
// declared name, or a repeated exported name after aliasing.
func validateItems(scanned *annotation.ScanResult, projectDir, implPath string) error {
	names := make(map[string]bool, len(scanned.Items))
	exported := make(map[string]bool, len(scanned.Items))
	for _, item := range scanned.Items {
		if names[item.Name] {
			return fmt.Errorf("%w: %q declared twice in `%s`",
				ErrDuplicateExport, item.Name, projectRel(projectDir, implPath))
		}
		names[item.Name] = true
		if exported[item.ExportedAs()] {
			return fmt.Errorf("%w: %q exported twice in `%s`",
				ErrDuplicateExport, item.ExportedAs(), projectRel(projectDir, implPath))
		}
		exported[item.ExportedAs()] = true
	}
	return nil
}

// prune removes .typ files under src (outside src/_impl) that carry the
// generated-file disclaimer but were not regenerated this run. Hand-written
// files never match and are never touched.
func prune(projectDir, srcDir, implDir string, generated map[string]bool, out io.Writer, result *Result) error {
	return filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == implDir {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != typExt || generated[path] {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if !facade.IsGenerated(data) {
			return nil
		}

		if err := os.Remove(path); err != nil {
			return fmt.Errorf("pruning %s: %w", path, err)
		}
		rel := projectRel(projectDir, path)
		fmt.Fprintf(out, "pruning stale facade `%s`\n", rel)
		result.Pruned = append(result.Pruned, rel)
		return nil
	})
}

// projectRel renders a path relative to the project root with forward
// slashes, for progress lines and error messages.
func projectRel(projectDir, path string) string {
	rel, err := filepath.Rel(projectDir, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
