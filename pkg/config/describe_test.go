package config_test

import (
	"strings"
	"testing"

	"github.com/pkgsmith/pkgsmith/pkg/config"
	"github.com/pkgsmith/pkgsmith/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeNoLicenseNoPlugins(t *testing.T) {
	// End-to-end scenario: identity=alice, no license, ssh off, no plugins.
	opts := config.DefaultOptions()
	opts.User = "alice"
	opts.License = ""
	opts.SSH = false

	cfg, err := config.New(opts, testDeps())
	require.NoError(t, err)

	out := config.Describe(cfg)
	assert.Contains(t, out, "User: alice\n")
	assert.Contains(t, out, "License: None\n")
	assert.Contains(t, out, "Plugins: None\n")
	assert.Contains(t, out, "SSH Remotes: No\n")
	assert.Contains(t, out, "Commit Manifest: No\n")
}

func TestDescribeByteStable(t *testing.T) {
	build := func() string {
		opts := config.DefaultOptions()
		opts.User = "alice"
		opts.Authors = []string{"Jane Doe"}
		opts.Plugins = []types.Plugin{
			&fakePlugin{kind: "Zeta", desc: "Zeta: custom"},
			&fakePlugin{kind: "Alpha", desc: "Alpha: custom"},
			&fakePlugin{kind: "Mid", desc: "Mid: custom"},
		}
		cfg, err := config.New(opts, testDeps())
		require.NoError(t, err)
		return config.Describe(cfg)
	}

	first := build()
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, build())
	}
}

func TestDescribePluginsSorted(t *testing.T) {
	opts := config.DefaultOptions()
	opts.User = "alice"
	opts.Plugins = []types.Plugin{
		&fakePlugin{kind: "Zeta", desc: "Zeta plugin"},
		&fakePlugin{kind: "Alpha", desc: "Alpha plugin"},
	}

	cfg, err := config.New(opts, testDeps())
	require.NoError(t, err)
	out := config.Describe(cfg)

	require.Contains(t, out, "Plugins:\n")
	alphaIdx := strings.Index(out, "Alpha plugin")
	zetaIdx := strings.Index(out, "Zeta plugin")
	require.NotEqual(t, -1, alphaIdx)
	require.NotEqual(t, -1, zetaIdx)
	assert.Less(t, alphaIdx, zetaIdx)

	// Plugin lines are indented under the header.
	assert.Contains(t, out, "    Alpha plugin\n")
}

func TestDescribeFlagsYes(t *testing.T) {
	opts := config.DefaultOptions()
	opts.User = "alice"
	opts.SSH = true
	opts.Manifest = true

	cfg, err := config.New(opts, testDeps())
	require.NoError(t, err)
	out := config.Describe(cfg)

	assert.Contains(t, out, "SSH Remotes: Yes\n")
	assert.Contains(t, out, "Commit Manifest: Yes\n")
	assert.Contains(t, out, "Create Git Repository: Yes\n")
	assert.Contains(t, out, "Register In Workspace: Yes\n")
}
