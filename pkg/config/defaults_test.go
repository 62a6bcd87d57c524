package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkgsmith/pkgsmith/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsBuiltIn(t *testing.T) {
	opts, err := config.LoadDefaults("", nil)
	require.NoError(t, err)

	assert.Equal(t, "", opts.User)
	assert.Equal(t, "github.com", opts.Host)
	assert.Equal(t, "MIT", opts.License)
	assert.Equal(t, "1.0.0", opts.JuliaVersion)
	assert.False(t, opts.SSH)
	assert.False(t, opts.Manifest)
	assert.True(t, opts.Git)
	assert.True(t, opts.Register)
}

func TestLoadDefaultsUserFileTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "user = \"alice\"\nhost = \"gitlab.com\"\nssh = true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	opts, err := config.LoadDefaults(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "alice", opts.User)
	assert.Equal(t, "gitlab.com", opts.Host)
	assert.True(t, opts.SSH)
	// Untouched keys keep their built-in defaults.
	assert.Equal(t, "MIT", opts.License)
}

func TestLoadDefaultsUserFileYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "user: bob\nlicense: ISC\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	opts, err := config.LoadDefaults(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "bob", opts.User)
	assert.Equal(t, "ISC", opts.License)
}

func TestLoadDefaultsMissingFileIgnored(t *testing.T) {
	opts, err := config.LoadDefaults(filepath.Join(t.TempDir(), "absent.toml"), nil)
	require.NoError(t, err)
	assert.Equal(t, "github.com", opts.Host)
}

func TestLoadDefaultsOverridesWin(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("user = \"alice\"\n"), 0644))

	opts, err := config.LoadDefaults(path, map[string]interface{}{
		"user":    "carol",
		"git":     false,
		"authors": []string{"Jane Doe"},
	})
	require.NoError(t, err)

	assert.Equal(t, "carol", opts.User)
	assert.False(t, opts.Git)
	assert.Equal(t, []string{"Jane Doe"}, opts.Authors)
}
