package plugins

import (
	"fmt"

	"github.com/pkgsmith/pkgsmith/pkg/render"
	"github.com/pkgsmith/pkgsmith/pkg/types"
)

// RenderBadges renders a plugin's badges into markdown lines. The render
// context merges the user handle and package name beneath the plugin's own
// context, so a plugin may shadow either.
func RenderBadges(p types.Plugin, cfg *types.Config, pkgName string) []string {
	ctx := render.Merge(render.Context{
		"USER": cfg.User,
		"PKG":  pkgName,
	}, p.Context())

	badges := p.Badges()
	lines := make([]string, 0, len(badges))
	for _, b := range badges {
		lines = append(lines, fmt.Sprintf("[![%s](%s)](%s)",
			render.Render(b.Hover, ctx),
			render.Render(b.Image, ctx),
			render.Render(b.Link, ctx)))
	}
	return lines
}
