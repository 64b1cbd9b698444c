package gitroot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFind_FromRepoSubdirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))
	sub := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	require.Equal(t, root, Find(sub))
	require.Equal(t, root, Find(root))
}

func TestFind_FromFileStartsAtParent(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))
	file := filepath.Join(root, "main.go")
	require.NoError(t, os.WriteFile(file, []byte("package main\n"), 0o644))

	require.Equal(t, root, Find(file))
}

func TestFind_NearestAncestorWins(t *testing.T) {
	outer := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(outer, ".git"), 0o755))
	inner := filepath.Join(outer, "vendor", "dep")
	require.NoError(t, os.MkdirAll(filepath.Join(inner, ".git"), 0o755))

	require.Equal(t, inner, Find(filepath.Join(inner, "src")))
}

func TestFind_NoRepository(t *testing.T) {
	dir := t.TempDir()
	require.Equal(t, "", Find(dir))
}

func TestFind_GitFileIsNotAMarker(t *testing.T) {
	// A plain file named .git (as in submodule checkouts) does not count.
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".git"), []byte("gitdir: elsewhere\n"), 0o644))

	require.Equal(t, "", Find(dir))
}
