package plugins

import (
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkgsmith/pkgsmith/pkg/filesystem"
	"github.com/pkgsmith/pkgsmith/pkg/render"
	"github.com/pkgsmith/pkgsmith/pkg/types"
)

func testConfig() *types.Config {
	return &types.Config{
		User:         "jane",
		Host:         "github.com",
		License:      "MIT",
		Authors:      "Jane Doe",
		Dir:          "/dev",
		JuliaVersion: semver.MustParse("1.2.3"),
		Plugins:      map[types.Kind]types.Plugin{},
	}
}

func TestManagedFileGenerate(t *testing.T) {
	templates := templatesWith(t, map[string]string{
		"ci.yml": "julia: {{VERSION}}\npkg: {{PKG}}\ntoken: {{TOKEN}}",
	})
	factory, err := NewKind(Schema{
		Kind:          "CustomCI",
		DefaultSource: "ci.yml",
		Destination:   ".ci.yml",
		Fields:        []FieldSpec{{Name: "token", Default: "secret"}},
	}, templates)
	require.NoError(t, err)

	p, err := factory(Options{})
	require.NoError(t, err)

	out := filesystem.NewMemory()
	files, err := p.Generate(testConfig(), "Foo", out)
	require.NoError(t, err)
	assert.Equal(t, []string{".ci.yml"}, files)

	written, err := out.ReadFile("/dev/Foo/.ci.yml")
	require.NoError(t, err)
	assert.Equal(t, "julia: 1.2\npkg: Foo\ntoken: secret\n", string(written))
}

func TestManagedFileGenerateNoSource(t *testing.T) {
	factory, err := NewKind(Schema{
		Kind:        "Coveralls",
		Destination: ".coveralls.yml",
	}, filesystem.NewMemory())
	require.NoError(t, err)

	p, err := factory(Options{})
	require.NoError(t, err)

	out := filesystem.NewMemory()
	files, err := p.Generate(testConfig(), "Foo", out)
	require.NoError(t, err)
	assert.Empty(t, files)
	assert.False(t, filesystem.Exists(out, "/dev/Foo/.coveralls.yml"))
}

func TestManagedFileContextFieldsWin(t *testing.T) {
	templates := templatesWith(t, map[string]string{
		"ci.yml": "unused",
	})
	factory, err := NewKind(Schema{
		Kind:          "GitLabCI",
		DefaultSource: "ci.yml",
		Destination:   ".gitlab-ci.yml",
		Fields:        []FieldSpec{{Name: "coverage", Default: true}},
		Context:       render.Context{"COVERAGE": false, "EXTRA": "kept"},
	}, templates)
	require.NoError(t, err)

	p, err := factory(Options{Fields: map[string]any{"coverage": false}})
	require.NoError(t, err)

	// Field values are exported under their upper-cased names and shadow
	// the declared context.
	ctx := p.Context()
	assert.Equal(t, false, ctx["COVERAGE"])
	assert.Equal(t, "kept", ctx["EXTRA"])
}

func TestManagedFileString(t *testing.T) {
	templates := templatesWith(t, map[string]string{"ci.yml": "x"})
	factory, err := NewKind(Schema{
		Kind:          "TravisCI",
		DefaultSource: "ci.yml",
		Destination:   ".travis.yml",
	}, templates)
	require.NoError(t, err)

	p, err := factory(Options{})
	require.NoError(t, err)
	assert.Equal(t, "TravisCI: ci.yml -> .travis.yml", p.String())
}
