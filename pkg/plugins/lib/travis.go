package lib

import (
	"path"

	"github.com/pkgsmith/pkgsmith/pkg/plugins"
	"github.com/pkgsmith/pkgsmith/pkg/types"
)

// NewTravisCI declares the Travis CI plugin kind: it manages .travis.yml
// from the travis.yml template in dir and contributes the build-status
// badge.
func NewTravisCI(templates types.FS, dir string) (plugins.Factory, error) {
	return plugins.NewKind(plugins.Schema{
		Kind:          types.KindTravisCI,
		DefaultSource: path.Join(dir, "travis.yml"),
		Destination:   ".travis.yml",
		Badges: []types.Badge{{
			Hover: "Build Status",
			Image: "https://travis-ci.org/{{USER}}/{{PKG}}.jl.svg?branch=master",
			Link:  "https://travis-ci.org/{{USER}}/{{PKG}}.jl",
		}},
	}, templates)
}
