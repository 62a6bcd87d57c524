package config

import (
	"fmt"

	"github.com/pkgsmith/pkgsmith/pkg/render"
	"github.com/pkgsmith/pkgsmith/pkg/types"
)

// presenceFlags maps each well-known kind to its substitution flag name.
var presenceFlags = map[types.Kind]string{
	types.KindTravisCI:  "TRAVIS",
	types.KindAppVeyor:  "APPVEYOR",
	types.KindGitLabCI:  "GITLABCI",
	types.KindCodecov:   "CODECOV",
	types.KindCoveralls: "COVERALLS",
}

// SubstitutionContext builds the configuration-derived substitution context:
// the user handle, the two-component minimum-version string, one presence
// flag per well-known plugin kind, and the derived COVERAGE flag. extra is
// merged on top and wins on key collision.
func SubstitutionContext(cfg *types.Config, extra render.Context) render.Context {
	ctx := render.Context{
		"USER": cfg.User,
		"VERSION": fmt.Sprintf("%d.%d",
			cfg.JuliaVersion.Major(), cfg.JuliaVersion.Minor()),
		"DOCUMENTER": cfg.HasDocumenter(),
		"COVERAGE":   coverageEnabled(cfg),
	}
	for kind, flag := range presenceFlags {
		ctx[flag] = cfg.HasPlugin(kind)
	}
	return render.Merge(ctx, extra)
}

// coverageEnabled computes the "any coverage-reporting plugin present" flag.
// It checks the known coverage-producing kinds: Codecov, Coveralls, and
// GitLabCI when that instance's own coverage switch is on. User-defined
// coverage plugins are not detected.
func coverageEnabled(cfg *types.Config) bool {
	if cfg.HasPlugin(types.KindCodecov) || cfg.HasPlugin(types.KindCoveralls) {
		return true
	}
	if p, ok := cfg.Plugins[types.KindGitLabCI]; ok {
		if reporter, ok := p.(types.CoverageReporter); ok {
			return reporter.ReportsCoverage()
		}
	}
	return false
}

// Render substitutes placeholders in template against the configuration-
// derived context merged with extra.
func Render(template string, cfg *types.Config, extra render.Context) string {
	return render.Render(template, SubstitutionContext(cfg, extra))
}
