package plugins

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkgsmith/pkgsmith/pkg/config"
	"github.com/pkgsmith/pkgsmith/pkg/errors"
	"github.com/pkgsmith/pkgsmith/pkg/filesystem"
	"github.com/pkgsmith/pkgsmith/pkg/render"
	"github.com/pkgsmith/pkgsmith/pkg/types"
)

// ManagedFile is the managed-single-file plugin shape: it renders one source
// template to one destination inside the generated package, and contributes
// its declared ignore patterns, badges and context verbatim. Instances are
// built through a Factory returned by NewKind.
type ManagedFile struct {
	kind      types.Kind
	source    string
	dest      string
	templates types.FS
	gitignore []string
	badges    []types.Badge
	context   render.Context
	fields    map[string]any
}

// String renders the one-line description used by Describe and for the
// stable plugin sort order.
func (p *ManagedFile) String() string {
	if p.source == "" {
		return fmt.Sprintf("%s: (no source template) -> %s", p.kind, p.dest)
	}
	return fmt.Sprintf("%s: %s -> %s", p.kind, p.source, p.dest)
}

func (p *ManagedFile) Kind() types.Kind {
	return p.kind
}

func (p *ManagedFile) Gitignore() []string {
	return p.gitignore
}

func (p *ManagedFile) Badges() []types.Badge {
	return p.badges
}

// Context returns the declared context with the plugin's extra fields merged
// on top, each under its upper-cased name, so field values are addressable
// from the source template.
func (p *ManagedFile) Context() render.Context {
	fieldCtx := make(render.Context, len(p.fields))
	for name, value := range p.fields {
		fieldCtx[strings.ToUpper(name)] = value
	}
	return render.Merge(p.context, fieldCtx)
}

// Field returns the value of a declared extra field.
func (p *ManagedFile) Field(name string) (any, bool) {
	v, ok := p.fields[name]
	return v, ok
}

// Source returns the source template path, or "" when the plugin manages no
// file.
func (p *ManagedFile) Source() string {
	return p.source
}

// Destination returns the destination path relative to the package root.
func (p *ManagedFile) Destination() string {
	return p.dest
}

// Generate renders the source template against the configuration-derived
// context merged with the package name and the plugin's own context, and
// writes the result to <cfg.Dir>/<pkgName>/<destination>. A plugin without a
// source template writes nothing and returns an empty result.
func (p *ManagedFile) Generate(cfg *types.Config, pkgName string, fsys types.FS) ([]string, error) {
	if p.source == "" {
		return nil, nil
	}

	raw, err := p.templates.ReadFile(p.source)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTemplateNotFound,
			"reading source template %s for %s", p.source, p.kind)
	}

	extra := render.Merge(render.Context{"PKG": pkgName}, p.Context())
	text := config.Render(string(raw), cfg, extra)

	target := filepath.Join(cfg.Dir, pkgName, p.dest)
	if err := filesystem.WriteText(fsys, target, text); err != nil {
		return nil, err
	}
	return []string{p.dest}, nil
}

var _ types.Plugin = (*ManagedFile)(nil)
