package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkgsmith/pkgsmith/pkg/filesystem"
)

func TestEntriesMissingFileIsEmpty(t *testing.T) {
	w := New(filesystem.NewMemory(), "/data/workspace.toml")
	entries, err := w.Entries()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRegisterAndRead(t *testing.T) {
	fsys := filesystem.NewMemory()
	w := New(fsys, "/data/workspace.toml")

	require.NoError(t, w.Register("Foo", "/dev/Foo"))
	require.NoError(t, w.Register("Bar", "/dev/Bar"))

	entries, err := w.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Foo", entries[0].Name)
	assert.Equal(t, "/dev/Foo", entries[0].Path)
	assert.Equal(t, "Bar", entries[1].Name)
	assert.False(t, entries[0].CreatedAt.IsZero())
}

func TestRegisterReplacesByName(t *testing.T) {
	w := New(filesystem.NewMemory(), "/data/workspace.toml")

	require.NoError(t, w.Register("Foo", "/dev/Foo"))
	require.NoError(t, w.Register("Foo", "/elsewhere/Foo"))

	entries, err := w.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "/elsewhere/Foo", entries[0].Path)
}

func TestEntriesMalformedFile(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, filesystem.WriteText(fsys, "/data/workspace.toml", "not [valid toml"))

	w := New(fsys, "/data/workspace.toml")
	_, err := w.Entries()
	assert.Error(t, err)
}
