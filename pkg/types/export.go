// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd002-annotation-grammar R3 (PublicItem);
//
//	prd003-facade-generation R1 (ordering).
package types

// PublicItem is one exported binding parsed from an implementation file.
// Declaration order in the source file is preserved and determines the
// order of the generated import list.
type PublicItem struct {
	Name  string // Identifier declared in the implementation file
	Alias string // Public name in the facade; empty to export under Name
}

// ExportedAs returns the name consumers see in the generated facade.
func (p PublicItem) ExportedAs() string {
	if p.Alias != "" {
		return p.Alias
	}
	return p.Name
}
