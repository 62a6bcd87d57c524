package lib

import (
	"path"

	"github.com/pkgsmith/pkgsmith/pkg/plugins"
	"github.com/pkgsmith/pkgsmith/pkg/types"
)

// GitLabCI wraps the managed .gitlab-ci.yml file with a per-instance
// coverage switch. When reporting is off, the coverage badge is withheld and
// the derived COVERAGE flag does not count this plugin; the instance's own
// template still sees COVERAGE=false through the field context.
type GitLabCI struct {
	*plugins.ManagedFile
}

// ReportsCoverage reports whether this instance's coverage switch is on.
func (p *GitLabCI) ReportsCoverage() bool {
	v, ok := p.Field("coverage")
	if !ok {
		return true
	}
	enabled, ok := v.(bool)
	return !ok || enabled
}

// Badges returns the build-status badge, plus the coverage badge when
// reporting is enabled.
func (p *GitLabCI) Badges() []types.Badge {
	badges := p.ManagedFile.Badges()
	if p.ReportsCoverage() {
		return badges
	}
	kept := make([]types.Badge, 0, len(badges))
	for _, b := range badges {
		if b.Hover == "Coverage" {
			continue
		}
		kept = append(kept, b)
	}
	return kept
}

var _ types.CoverageReporter = (*GitLabCI)(nil)

// NewGitLabCI declares the GitLab CI plugin kind: it manages .gitlab-ci.yml
// from the gitlab-ci.yml template in dir and exposes a "coverage" field
// (default on) that gates the coverage badge and the instance's coverage
// reporting.
func NewGitLabCI(templates types.FS, dir string) (plugins.Factory, error) {
	factory, err := plugins.NewKind(plugins.Schema{
		Kind:          types.KindGitLabCI,
		DefaultSource: path.Join(dir, "gitlab-ci.yml"),
		Destination:   ".gitlab-ci.yml",
		Fields:        []plugins.FieldSpec{{Name: "coverage", Default: true}},
		Badges: []types.Badge{
			{
				Hover: "Build Status",
				Image: "https://gitlab.com/{{USER}}/{{PKG}}.jl/badges/master/build.svg",
				Link:  "https://gitlab.com/{{USER}}/{{PKG}}.jl/pipelines",
			},
			{
				Hover: "Coverage",
				Image: "https://gitlab.com/{{USER}}/{{PKG}}.jl/badges/master/coverage.svg",
				Link:  "https://gitlab.com/{{USER}}/{{PKG}}.jl/commits/master",
			},
		},
	}, templates)
	if err != nil {
		return nil, err
	}

	return func(opts plugins.Options) (types.Plugin, error) {
		p, err := factory(opts)
		if err != nil {
			return nil, err
		}
		return &GitLabCI{ManagedFile: p.(*plugins.ManagedFile)}, nil
	}, nil
}
