// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package packer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"typst.toml":        "[package]\nname = \"geom\"\nversion = \"1.2.0\"\n",
		"README.orig.md":    "# {{name}}\n",
		"src/_impl/ops.typ": "#let /* pub */ op = 1\n",
	}
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestNew_ValidatesConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "empty project dir", cfg: Config{}},
		{name: "nonexistent project dir", cfg: Config{ProjectDir: "/does/not/exist"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestPack(t *testing.T) {
	dir := newProject(t)

	p, err := New(Config{ProjectDir: dir, NoGit: true, Out: &bytes.Buffer{}})
	require.NoError(t, err)

	result, err := p.Pack()
	require.NoError(t, err)
	assert.Equal(t, "geom", result.PackageName)
	assert.Equal(t, "1.2.0", result.PackageVersion)
	assert.Equal(t, []string{"src/ops.typ"}, result.Facades)
	assert.NotEmpty(t, result.DistDir)
}

func TestPack_CheckReturnsErrDrift(t *testing.T) {
	dir := newProject(t)

	p, err := New(Config{ProjectDir: dir, NoGit: true, Check: true, Out: &bytes.Buffer{}})
	require.NoError(t, err)

	result, err := p.Pack()
	assert.ErrorIs(t, err, ErrDrift)
	assert.Equal(t, []string{"src/ops.typ"}, result.Drifted)
}

func TestPack_CheckCleanAfterPack(t *testing.T) {
	dir := newProject(t)

	p, err := New(Config{ProjectDir: dir, NoGit: true, Out: &bytes.Buffer{}})
	require.NoError(t, err)
	_, err = p.Pack()
	require.NoError(t, err)

	c, err := New(Config{ProjectDir: dir, NoGit: true, Check: true, Out: &bytes.Buffer{}})
	require.NoError(t, err)

	result, err := c.Pack()
	require.NoError(t, err)
	assert.Empty(t, result.Drifted)
}
