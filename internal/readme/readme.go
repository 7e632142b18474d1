// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package readme substitutes package metadata into the README template.
// This is literal {{key}} token replacement over string-valued fields, not
// a templating engine.
// Implements: prd005-readme R1, R2;
//
//	docs/ARCHITECTURE § README Generation.
package readme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/petar-djukic/typack/internal/facade"
	"github.com/petar-djukic/typack/internal/manifest"
)

const (
	// SourceName is the hand-maintained template at the project root.
	SourceName = "README.orig.md"
	// TargetName is the generated README.
	TargetName = "README.md"

	banner = "<!-- This is a program-generated file. Do not edit it directly. -->"
)

// Generate rewrites README.orig.md into README.md line by line. Every
// {{key}} whose key names a string-valued package field is replaced;
// non-string fields are left as literal {{key}} text. A generated-file
// banner is prepended.
//
// Implements: prd005-readme R1.1-R1.4, R2.1.
func Generate(projectDir string, m *manifest.Manifest) error {
	data, err := os.ReadFile(filepath.Join(projectDir, SourceName))
	if err != nil {
		return fmt.Errorf("reading %s: %w", SourceName, err)
	}

	fields := m.StringFields()

	var b strings.Builder
	b.WriteString(banner)
	b.WriteString("\n\n")

	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		for k, v := range fields {
			line = strings.ReplaceAll(line, "{{"+k+"}}", v)
		}
		b.WriteString(line)
		if i < len(lines)-1 {
			b.WriteByte('\n')
		}
	}

	target := filepath.Join(projectDir, TargetName)
	if err := facade.ReplaceFile(target, []byte(b.String())); err != nil {
		return fmt.Errorf("writing %s: %w", TargetName, err)
	}
	return nil
}
