package generate

import (
	"fmt"

	"github.com/pkgsmith/pkgsmith/pkg/config"
	"github.com/pkgsmith/pkgsmith/pkg/constants"
	"github.com/pkgsmith/pkgsmith/pkg/types"
)

// writeRequire writes the REQUIRE version-floor file: the language name and
// the two-component minimum version, with a trailing "-" for prerelease
// floors.
func writeRequire(opts Options, _ []types.Plugin, result *Result) error {
	floor := config.VersionFloor(opts.Config.JuliaVersion)
	text := fmt.Sprintf("%s %s", constants.LanguageName, floor)
	return write(opts, result, constants.RequireFile, text)
}
