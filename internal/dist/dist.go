// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package dist assembles the versioned distribution directory for
// submission to the Typst packages repository.
// Implements: prd006-distribution R1, R2;
//
//	docs/ARCHITECTURE § Distribution Assembly.
package dist

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/petar-djukic/typack/internal/manifest"
)

const packedDirName = "packed"

// distEntries is the fixed set of top-level paths copied into the
// distribution. Missing optional entries are skipped silently.
var distEntries = []string{
	"src",
	"assets",
	readmeName,
	"LICENSE.txt",
	manifest.FileName,
}

const readmeName = "README.md"

// Assemble recreates packed/<version> and copies the distributable file set
// into it verbatim. A pre-existing directory for the same version is
// removed first, so the result never mixes runs.
//
// Implements: prd006-distribution R1.1-R1.4, R2.1, R2.2.
func Assemble(projectDir string, m *manifest.Manifest) (string, error) {
	target := filepath.Join(projectDir, packedDirName, m.Package.Version)

	if err := os.RemoveAll(target); err != nil {
		return "", fmt.Errorf("removing stale %s: %w", target, err)
	}
	if err := os.MkdirAll(target, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", target, err)
	}

	for _, name := range distEntries {
		src := filepath.Join(projectDir, name)
		info, err := os.Stat(src)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("stat %s: %w", src, err)
		}

		dst := filepath.Join(target, name)
		if info.IsDir() {
			err = copyTree(src, dst)
		} else {
			err = copyFile(src, dst, info.Mode().Perm())
		}
		if err != nil {
			return "", err
		}
	}

	return target, nil
}

// copyTree copies a directory recursively, preserving file permissions.
func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		return copyFile(path, target, info.Mode().Perm())
	})
}

func copyFile(src, dst string, perm os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", dst, err)
	}
	return nil
}
