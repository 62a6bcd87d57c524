package plugins

import (
	"github.com/pkgsmith/pkgsmith/pkg/render"
	"github.com/pkgsmith/pkgsmith/pkg/types"
)

// Base supplies the default answers of the plugin capability contract: no
// ignore patterns, no badges, an empty context, and a no-op file generation.
// Custom plugins embed Base and override only what they need; Kind and
// String remain theirs to implement.
type Base struct{}

func (Base) Gitignore() []string {
	return nil
}

func (Base) Badges() []types.Badge {
	return nil
}

func (Base) Context() render.Context {
	return render.Context{}
}

func (Base) Generate(*types.Config, string, types.FS) ([]string, error) {
	return nil, nil
}
