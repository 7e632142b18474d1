// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package annotation extracts export annotations embedded as comments in
// Typst implementation files.
// Implements: prd002-annotation-grammar R1, R2, R3, R4;
//
//	docs/ARCHITECTURE § Annotation Scanner.
package annotation

import (
	"regexp"
	"strings"

	"github.com/petar-djukic/typack/pkg/types"
)

// identPattern is the identifier grammar shared by declaration names and
// aliases: letters, digits, hyphen, underscore; no leading digit.
const identPattern = `[A-Za-z_][A-Za-z0-9\-_]*`

const docPrefix = "///"

var (
	redirectRe   = regexp.MustCompile(`^//\s*->\s+(.+)$`)
	publicItemRe = regexp.MustCompile(
		`^#let\s*/\*\s*pub(?:\s+as\s+(` + identPattern + `))?\s*\*/\s*(` + identPattern + `)`)
)

// ScanResult holds the annotations extracted from one implementation file.
type ScanResult struct {
	Redirect string             // Facade destination relative to the source root; empty if absent
	Doc      string             // Module doc block (prefixes included), trimmed; empty if absent
	Items    []types.PublicItem // Public declarations in source order
}

// HasExports reports whether the file declared at least one public item.
// Files without exports produce no facade.
func (r *ScanResult) HasExports() bool {
	return len(r.Items) > 0
}

// Scan runs a single forward pass over the file's lines. Line 1 alone may
// carry a redirect directive; a contiguous run of /// lines after it forms
// the module doc; every later line matching the declaration pattern adds a
// public item. The scanner is permissive: a line that matches no pattern is
// ordinary implementation code and is skipped, never rejected.
//
// Implements: prd002-annotation-grammar R1.1-R1.4, R2.1-R2.3, R4.1, R4.2.
func Scan(source string) *ScanResult {
	result := &ScanResult{}
	lines := strings.Split(source, "\n")
	i := 0

	// The redirect directive is only recognized on the first line. A first
	// line that does not match re-enters the doc/declaration scan below.
	if len(lines) > 0 {
		if m := redirectRe.FindStringSubmatch(lines[0]); m != nil {
			if dest := strings.TrimSpace(m[1]); dest != "" {
				result.Redirect = dest
				i = 1
			}
		}
	}

	var doc []string
	for ; i < len(lines); i++ {
		if !strings.HasPrefix(lines[i], docPrefix) {
			break
		}
		doc = append(doc, lines[i])
	}
	result.Doc = strings.TrimSpace(strings.Join(doc, "\n"))

	// The first non-doc line is retained for the declaration scan: it may
	// itself be a declaration.
	for ; i < len(lines); i++ {
		m := publicItemRe.FindStringSubmatch(lines[i])
		if m == nil {
			continue
		}
		result.Items = append(result.Items, types.PublicItem{
			Name:  m[2],
			Alias: m[1],
		})
	}

	return result
}
