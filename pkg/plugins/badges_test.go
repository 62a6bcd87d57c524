package plugins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkgsmith/pkgsmith/pkg/types"
)

func TestRenderBadges(t *testing.T) {
	templates := templatesWith(t, map[string]string{"ci.yml": "x"})
	factory, err := NewKind(Schema{
		Kind:          "TravisCI",
		DefaultSource: "ci.yml",
		Destination:   ".travis.yml",
		Badges: []types.Badge{{
			Hover: "Build Status",
			Image: "https://travis-ci.org/{{USER}}/{{PKG}}.jl.svg?branch=master",
			Link:  "https://travis-ci.org/{{USER}}/{{PKG}}.jl",
		}},
	}, templates)
	require.NoError(t, err)

	p, err := factory(Options{})
	require.NoError(t, err)

	lines := RenderBadges(p, testConfig(), "Foo")
	require.Len(t, lines, 1)
	assert.Equal(t,
		"[![Build Status](https://travis-ci.org/jane/Foo.jl.svg?branch=master)](https://travis-ci.org/jane/Foo.jl)",
		lines[0])
}

func TestRenderBadgesEmpty(t *testing.T) {
	factory, err := NewKind(Schema{
		Kind:        "Codecov",
		Destination: ".codecov.yml",
	}, templatesWith(t, nil))
	require.NoError(t, err)

	p, err := factory(Options{})
	require.NoError(t, err)
	assert.Empty(t, RenderBadges(p, testConfig(), "Foo"))
}
