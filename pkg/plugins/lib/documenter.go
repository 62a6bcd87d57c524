package lib

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkgsmith/pkgsmith/pkg/config"
	"github.com/pkgsmith/pkgsmith/pkg/errors"
	"github.com/pkgsmith/pkgsmith/pkg/filesystem"
	"github.com/pkgsmith/pkgsmith/pkg/logging"
	"github.com/pkgsmith/pkgsmith/pkg/plugins"
	"github.com/pkgsmith/pkgsmith/pkg/types"
)

// reservedKwargs are the makedocs keywords the plugin generates itself.
// User-supplied values for these are dropped with a warning rather than
// silently producing a duplicate-keyword script.
var reservedKwargs = map[string]struct{}{
	"modules":  {},
	"format":   {},
	"pages":    {},
	"repo":     {},
	"sitename": {},
	"authors":  {},
	"assets":   {},
}

// Documenter generates the Documenter.jl scaffolding: docs/make.jl and
// docs/src/index.md. It is parameterized by the CI service that will build
// and deploy the documentation, which selects the kind tag, the badges, and
// whether make.jl ends with a deploydocs call.
type Documenter struct {
	plugins.Base

	ci     types.Kind
	assets []string
	kwargs map[string]string
}

// NewDocumenter builds a Documenter plugin deployed by the given CI kind
// (TravisCI or GitLabCI). assets are extra files passed to makedocs; kwargs
// are additional makedocs keywords, each value a literal Julia expression.
// Reserved keywords are dropped with a warning.
func NewDocumenter(ci types.Kind, assets []string, kwargs map[string]string) (*Documenter, error) {
	if ci != types.KindTravisCI && ci != types.KindGitLabCI {
		return nil, errors.Newf(errors.ErrPluginInvalid,
			"documenter cannot deploy through %s", ci)
	}

	logger := logging.GetLogger("plugins.documenter")
	kept := make(map[string]string, len(kwargs))
	for name, value := range kwargs {
		if _, reserved := reservedKwargs[name]; reserved {
			logger.Warn().Str("keyword", name).
				Msg("dropping reserved makedocs keyword")
			continue
		}
		kept[name] = value
	}

	return &Documenter{ci: ci, assets: assets, kwargs: kept}, nil
}

func (p *Documenter) String() string {
	return fmt.Sprintf("%s: (generated) -> docs/", p.Kind())
}

func (p *Documenter) Kind() types.Kind {
	return types.DocumenterKind(p.ci)
}

func (p *Documenter) Gitignore() []string {
	return []string{"/docs/build/", "/docs/site/"}
}

func (p *Documenter) Badges() []types.Badge {
	switch p.ci {
	case types.KindTravisCI:
		return []types.Badge{
			{
				Hover: "Stable",
				Image: "https://img.shields.io/badge/docs-stable-blue.svg",
				Link:  "https://{{USER}}.github.io/{{PKG}}.jl/stable",
			},
			{
				Hover: "Dev",
				Image: "https://img.shields.io/badge/docs-dev-blue.svg",
				Link:  "https://{{USER}}.github.io/{{PKG}}.jl/dev",
			},
		}
	case types.KindGitLabCI:
		return []types.Badge{{
			Hover: "Dev",
			Image: "https://img.shields.io/badge/docs-dev-blue.svg",
			Link:  "https://{{USER}}.gitlab.io/{{PKG}}.jl/dev",
		}}
	}
	return nil
}

// Generate writes docs/make.jl and docs/src/index.md under the package
// root.
func (p *Documenter) Generate(cfg *types.Config, pkgName string, fsys types.FS) ([]string, error) {
	extra := map[string]any{
		"PKG":     pkgName,
		"HOST":    cfg.Host,
		"AUTHORS": cfg.Authors,
	}

	makeJL := config.Render(p.makeScript(), cfg, extra)
	indexMD := config.Render(indexPage, cfg, extra)

	root := filepath.Join(cfg.Dir, pkgName)
	if err := filesystem.WriteText(fsys, filepath.Join(root, "docs", "make.jl"), makeJL); err != nil {
		return nil, err
	}
	if err := filesystem.WriteText(fsys, filepath.Join(root, "docs", "src", "index.md"), indexMD); err != nil {
		return nil, err
	}
	return []string{"docs/make.jl", "docs/src/index.md"}, nil
}

const indexPage = `# {{PKG}}.jl

Documentation for [{{PKG}}.jl](https://{{HOST}}/{{USER}}/{{PKG}}.jl).
`

// makeScript assembles the make.jl source. Extra keywords are emitted in
// sorted order so two runs over the same configuration produce identical
// files.
func (p *Documenter) makeScript() string {
	var b strings.Builder
	b.WriteString("using Documenter, {{PKG}}\n\n")
	b.WriteString("makedocs(;\n")
	b.WriteString("    modules=[{{PKG}}],\n")
	b.WriteString("    format=Documenter.HTML(),\n")
	b.WriteString("    pages=[\n")
	b.WriteString("        \"Home\" => \"index.md\",\n")
	b.WriteString("    ],\n")
	b.WriteString("    repo=\"https://{{HOST}}/{{USER}}/{{PKG}}.jl/blob/{commit}{path}#L{line}\",\n")
	b.WriteString("    sitename=\"{{PKG}}.jl\",\n")
	b.WriteString("    authors=\"{{AUTHORS}}\",\n")

	quoted := make([]string, len(p.assets))
	for i, a := range p.assets {
		quoted[i] = fmt.Sprintf("%q", a)
	}
	fmt.Fprintf(&b, "    assets=[%s],\n", strings.Join(quoted, ", "))

	names := make([]string, 0, len(p.kwargs))
	for name := range p.kwargs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, "    %s=%s,\n", name, p.kwargs[name])
	}
	b.WriteString(")\n")

	if p.ci == types.KindTravisCI {
		b.WriteString("\ndeploydocs(;\n")
		b.WriteString("    repo=\"{{HOST}}/{{USER}}/{{PKG}}.jl\",\n")
		b.WriteString(")\n")
	}
	return b.String()
}

var _ types.Plugin = (*Documenter)(nil)
