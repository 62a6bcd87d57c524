package lib

import (
	"path"

	"github.com/pkgsmith/pkgsmith/pkg/plugins"
	"github.com/pkgsmith/pkgsmith/pkg/types"
)

// NewAppVeyor declares the AppVeyor plugin kind: it manages .appveyor.yml
// from the appveyor.yml template in dir and contributes the build-status
// badge.
func NewAppVeyor(templates types.FS, dir string) (plugins.Factory, error) {
	return plugins.NewKind(plugins.Schema{
		Kind:          types.KindAppVeyor,
		DefaultSource: path.Join(dir, "appveyor.yml"),
		Destination:   ".appveyor.yml",
		Badges: []types.Badge{{
			Hover: "Build Status",
			Image: "https://ci.appveyor.com/api/projects/status/github/{{USER}}/{{PKG}}.jl?svg=true",
			Link:  "https://ci.appveyor.com/project/{{USER}}/{{PKG}}-jl",
		}},
	}, templates)
}
