// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd003-facade-generation R1, R4;
//
//	docs/ARCHITECTURE § Facade Generation.
package facade

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/petar-djukic/typack/pkg/types"
)

// Disclaimer is the trailing comment marking a facade as machine-generated.
// The prune pass uses it to tell generated facades from hand-written files.
const Disclaimer = "// This is a program-generated file. Do not edit it directly."

// Render produces the exact facade text: optional doc block, the import
// list in declaration order, and the disclaimer. It is a pure function of
// its inputs; unchanged inputs yield byte-identical output.
//
// Implements: prd003-facade-generation R1.1-R1.5.
func Render(doc string, items []types.PublicItem, importPath string) string {
	var b strings.Builder

	if doc != "" {
		b.WriteString(doc)
		b.WriteString("\n\n")
	}

	fmt.Fprintf(&b, "#import \"%s\": (\n", importPath)
	for _, item := range items {
		if item.Alias != "" {
			fmt.Fprintf(&b, "  %s as %s,\n", item.Name, item.Alias)
		} else {
			fmt.Fprintf(&b, "  %s,\n", item.Name)
		}
	}
	b.WriteString(")\n\n")
	b.WriteString(Disclaimer)
	b.WriteByte('\n')

	return b.String()
}

// Write creates the facade's parent directories as needed and overwrites
// the file atomically. Prior content is never merged.
//
// Implements: prd003-facade-generation R4.1-R4.3.
func Write(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", filepath.Dir(path), err)
	}
	return atomicWrite(path, []byte(content))
}

// ReplaceFile overwrites an existing or new file atomically. Exported for
// the README and scaffolding steps, which share the write discipline.
func ReplaceFile(path string, content []byte) error {
	return atomicWrite(path, content)
}

// atomicWrite writes data to a temp file in the same directory, then renames
// it to the target path. This prevents partial writes from corrupting files.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)

	// Preserve original file permissions if the file exists.
	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	f, err := os.CreateTemp(dir, ".typack-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := f.Name()

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}

	return nil
}

// IsGenerated reports whether content carries the disclaimer as its final
// line, i.e. whether the file was produced by a previous run.
func IsGenerated(content []byte) bool {
	return strings.HasSuffix(string(content), Disclaimer+"\n") ||
		strings.HasSuffix(string(content), Disclaimer)
}
