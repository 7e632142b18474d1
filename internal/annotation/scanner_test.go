// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package annotation

import (
	"testing"

	"github.com/petar-djukic/typack/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan_DocAndDeclarations(t *testing.T) {
	source := `/// Adds numbers.
#let /* pub */ add = (a, b) => a + b
#let /* pub as plus */ add2 = (a, b) => a + b
`

	result := Scan(source)
	assert.Empty(t, result.Redirect)
	assert.Equal(t, "/// Adds numbers.", result.Doc)
	require.Len(t, result.Items, 2)
	assert.Equal(t, types.PublicItem{Name: "add"}, result.Items[0])
	assert.Equal(t, types.PublicItem{Name: "add2", Alias: "plus"}, result.Items[1])
}

func TestScan_Redirect(t *testing.T) {
	tests := []struct {
		name         string
		source       string
		wantRedirect string
		wantItems    int
	}{
		{
			name:         "redirect on first line",
			source:       "// -> shortcuts.typ\n#let /* pub */ shortcut = 1\n",
			wantRedirect: "shortcuts.typ",
			wantItems:    1,
		},
		{
			name:         "redirect with nested destination",
			source:       "//   ->   util/extra.typ  \n#let /* pub */ helper = 1\n",
			wantRedirect: "util/extra.typ",
			wantItems:    1,
		},
		{
			name:         "redirect only valid on line one",
			source:       "#let x = 1\n// -> shortcuts.typ\n#let /* pub */ y = 2\n",
			wantRedirect: "",
			wantItems:    1,
		},
		{
			name:         "missing path falls through",
			source:       "// ->\n#let /* pub */ x = 1\n",
			wantRedirect: "",
			wantItems:    1,
		},
		{
			name:         "missing arrow falls through",
			source:       "// shortcuts.typ\n#let /* pub */ x = 1\n",
			wantRedirect: "",
			wantItems:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Scan(tt.source)
			assert.Equal(t, tt.wantRedirect, result.Redirect)
			assert.Len(t, result.Items, tt.wantItems)
		})
	}
}

func TestScan_DocBlock(t *testing.T) {
	t.Run("contiguous doc lines after redirect", func(t *testing.T) {
		source := "// -> s.typ\n/// Line one.\n/// Line two.\n#let /* pub */ x = 1\n"
		result := Scan(source)
		assert.Equal(t, "/// Line one.\n/// Line two.", result.Doc)
	})

	t.Run("doc stops at first non-doc line", func(t *testing.T) {
		source := "/// Head.\n#let x = 1\n/// Not doc anymore.\n#let /* pub */ y = 2\n"
		result := Scan(source)
		assert.Equal(t, "/// Head.", result.Doc)
		require.Len(t, result.Items, 1)
		assert.Equal(t, "y", result.Items[0].Name)
	})

	t.Run("no doc lines yields empty doc", func(t *testing.T) {
		result := Scan("#let /* pub */ x = 1\n")
		assert.Empty(t, result.Doc)
	})

	t.Run("first non-redirect line can be a declaration", func(t *testing.T) {
		result := Scan("#let /* pub */ first = 1\n")
		require.Len(t, result.Items, 1)
		assert.Equal(t, "first", result.Items[0].Name)
	})
}

func TestScan_Declarations(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []types.PublicItem
	}{
		{
			name: "plain pub",
			line: "#let /* pub */ add = (a, b) => a + b",
			want: []types.PublicItem{{Name: "add"}},
		},
		{
			name: "pub with alias",
			line: "#let /* pub as plus */ add2 = 1",
			want: []types.PublicItem{{Name: "add2", Alias: "plus"}},
		},
		{
			name: "tight spacing",
			line: "#let/* pub */compact = 1",
			want: []types.PublicItem{{Name: "compact"}},
		},
		{
			name: "hyphen and underscore in identifiers",
			line: "#let /* pub as my-alias_2 */ my_name-3 = 1",
			want: []types.PublicItem{{Name: "my_name-3", Alias: "my-alias_2"}},
		},
		{
			name: "private let is skipped",
			line: "#let internal = 1",
			want: nil,
		},
		{
			name: "comment without pub is skipped",
			line: "#let /* private */ x = 1",
			want: nil,
		},
		{
			name: "alias starting with digit rejects the line",
			line: "#let /* pub as 9lives */ cat = 1",
			want: nil,
		},
		{
			name: "ordinary markup is skipped",
			line: "= A heading with #let mentioned",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Scan(tt.line + "\n")
			assert.Equal(t, tt.want, result.Items)
		})
	}
}

func TestScan_OrderPreserved(t *testing.T) {
	source := `#let /* pub */ zulu = 1
#let helper = 0
#let /* pub */ alpha = 2
#let /* pub as mike */ november = 3
`

	result := Scan(source)
	require.Len(t, result.Items, 3)
	assert.Equal(t, "zulu", result.Items[0].Name)
	assert.Equal(t, "alpha", result.Items[1].Name)
	assert.Equal(t, "november", result.Items[2].Name)
	assert.Equal(t, "mike", result.Items[2].ExportedAs())
}

func TestScan_NoExports(t *testing.T) {
	result := Scan("/// Doc only.\n#let internal = 1\n")
	assert.False(t, result.HasExports())
	assert.Empty(t, result.Items)
}

func TestScan_EmptyFile(t *testing.T) {
	result := Scan("")
	assert.False(t, result.HasExports())
	assert.Empty(t, result.Redirect)
	assert.Empty(t, result.Doc)
}
