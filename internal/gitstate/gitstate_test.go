// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package gitstate

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initRepo creates a git repository with one committed file.
func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "typst.toml"), []byte("[package]\nname = \"x\"\nversion = \"0.1.0\"\n"), 0o644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("typst.toml")
	require.NoError(t, err)
	_, err = wt.Commit("initial", &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "test",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	return dir
}

func TestDirty_NotARepo(t *testing.T) {
	_, err := Dirty(t.TempDir())
	assert.ErrorIs(t, err, ErrNoGit)
}

func TestDirty_CleanWorktree(t *testing.T) {
	dir := initRepo(t)

	dirty, err := Dirty(dir)
	require.NoError(t, err)
	assert.False(t, dirty)
}

func TestDirty_UncommittedChanges(t *testing.T) {
	dir := initRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.typ"), []byte("#let x = 1\n"), 0o644))

	dirty, err := Dirty(dir)
	require.NoError(t, err)
	assert.True(t, dirty)
}

func TestDirty_DetectsEnclosingRepo(t *testing.T) {
	dir := initRepo(t)
	nested := filepath.Join(dir, "nested", "project")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "typst.toml"), []byte("[package]\n"), 0o644))

	dirty, err := Dirty(nested)
	require.NoError(t, err)
	assert.True(t, dirty) // The untracked nested file dirties the enclosing tree.
}
