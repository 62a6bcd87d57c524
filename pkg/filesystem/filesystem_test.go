package filesystem_test

import (
	"testing"

	"github.com/pkgsmith/pkgsmith/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTextCreatesParents(t *testing.T) {
	fsys := filesystem.NewMemory()

	err := filesystem.WriteText(fsys, "/out/Foo/docs/src/index.md", "# Foo")
	require.NoError(t, err)

	data, err := fsys.ReadFile("/out/Foo/docs/src/index.md")
	require.NoError(t, err)
	assert.Equal(t, "# Foo\n", string(data))
}

func TestWriteTextTrailingNewline(t *testing.T) {
	fsys := filesystem.NewMemory()

	require.NoError(t, filesystem.WriteText(fsys, "/a", "no newline"))
	require.NoError(t, filesystem.WriteText(fsys, "/b", "has newline\n"))

	a, _ := fsys.ReadFile("/a")
	b, _ := fsys.ReadFile("/b")
	assert.Equal(t, "no newline\n", string(a))
	assert.Equal(t, "has newline\n", string(b))
}

func TestWriteTextIdempotent(t *testing.T) {
	fsys := filesystem.NewMemory()

	require.NoError(t, filesystem.WriteText(fsys, "/out/REQUIRE", "julia 1.0"))
	first, err := fsys.ReadFile("/out/REQUIRE")
	require.NoError(t, err)

	require.NoError(t, filesystem.WriteText(fsys, "/out/REQUIRE", "julia 1.0"))
	second, err := fsys.ReadFile("/out/REQUIRE")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExists(t *testing.T) {
	fsys := filesystem.NewMemory()
	assert.False(t, filesystem.Exists(fsys, "/missing"))

	require.NoError(t, filesystem.WriteText(fsys, "/present", "x"))
	assert.True(t, filesystem.Exists(fsys, "/present"))
}

func TestReadFileOnDirectory(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/dir", 0755))

	_, err := fsys.ReadFile("/dir")
	assert.Error(t, err)
}
