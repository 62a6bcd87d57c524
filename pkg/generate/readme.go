package generate

import (
	"strings"

	"github.com/pkgsmith/pkgsmith/pkg/constants"
	"github.com/pkgsmith/pkgsmith/pkg/plugins"
	"github.com/pkgsmith/pkgsmith/pkg/types"
)

// writeReadme writes README.md: the package title followed by one badge line
// per configured badge, in plugin order.
func writeReadme(opts Options, ordered []types.Plugin, result *Result) error {
	lines := []string{"# " + opts.PackageName}

	var badges []string
	for _, p := range ordered {
		badges = append(badges, plugins.RenderBadges(p, opts.Config, opts.PackageName)...)
	}
	if len(badges) > 0 {
		lines = append(lines, "")
		lines = append(lines, badges...)
	}

	return write(opts, result, constants.ReadmeFile, strings.Join(lines, "\n"))
}
