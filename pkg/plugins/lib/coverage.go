package lib

import (
	"path"

	"github.com/pkgsmith/pkgsmith/pkg/plugins"
	"github.com/pkgsmith/pkgsmith/pkg/types"
)

// NewCodecov declares the Codecov plugin kind. By default it writes no file;
// passing a source template enables a managed .codecov.yml. Its presence
// alone enables coverage submission in the CI templates.
func NewCodecov(templates types.FS, dir string) (plugins.Factory, error) {
	_ = dir // the default configuration has no source template
	return plugins.NewKind(plugins.Schema{
		Kind:        types.KindCodecov,
		Destination: ".codecov.yml",
		Badges: []types.Badge{{
			Hover: "Codecov",
			Image: "https://codecov.io/gh/{{USER}}/{{PKG}}.jl/branch/master/graph/badge.svg",
			Link:  "https://codecov.io/gh/{{USER}}/{{PKG}}.jl",
		}},
	}, templates)
}

// NewCoveralls declares the Coveralls plugin kind. Like Codecov, it writes
// no file by default and exists for its badge and its effect on the CI
// coverage steps.
func NewCoveralls(templates types.FS, dir string) (plugins.Factory, error) {
	_ = dir
	return plugins.NewKind(plugins.Schema{
		Kind:        types.KindCoveralls,
		Destination: ".coveralls.yml",
		Badges: []types.Badge{{
			Hover: "Coveralls",
			Image: "https://coveralls.io/repos/github/{{USER}}/{{PKG}}.jl/badge.svg?branch=master",
			Link:  "https://coveralls.io/github/{{USER}}/{{PKG}}.jl?branch=master",
		}},
	}, templates)
}

// CodecovConfigSource returns the template path callers pass as the Codecov
// source option to enable the managed .codecov.yml ("comment: false").
func CodecovConfigSource(dir string) string {
	return path.Join(dir, "codecov.yml")
}
