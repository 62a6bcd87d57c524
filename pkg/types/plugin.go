package types

import (
	"fmt"
	"strings"

	"github.com/pkgsmith/pkgsmith/pkg/render"
)

// Kind identifies a plugin kind. Kinds are the identity used for
// deduplication and lookup inside a Config: a Config holds at most one
// plugin per Kind. Parameterized kinds embed their parameter, e.g.
// "Documenter{TravisCI}" is a distinct kind from "Documenter{GitLabCI}".
type Kind string

// Well-known plugin kinds. The generator special-cases these for badge
// ordering and for the derived substitution flags.
const (
	KindTravisCI  Kind = "TravisCI"
	KindAppVeyor  Kind = "AppVeyor"
	KindGitLabCI  Kind = "GitLabCI"
	KindCodecov   Kind = "Codecov"
	KindCoveralls Kind = "Coveralls"
)

// documenterPrefix tags the parameterized documentation plugin kinds.
const documenterPrefix = "Documenter{"

// DocumenterKind returns the kind tag for a Documenter plugin deployed by
// the given CI kind.
func DocumenterKind(ci Kind) Kind {
	return Kind(documenterPrefix + string(ci) + "}")
}

// IsDocumenterKind reports whether k is a Documenter kind, for any CI
// parameter.
func IsDocumenterKind(k Kind) bool {
	return strings.HasPrefix(string(k), documenterPrefix)
}

// Badge is an immutable hover-text/image/link triple rendered into the
// generated README. Each field is a template string that may contain
// placeholders resolved at render time.
type Badge struct {
	Hover string
	Image string
	Link  string
}

// Plugin is the capability contract every plugin satisfies. Plugins answer
// three declarative queries (ignore patterns, badges, substitution context)
// and one procedure (file generation). All four have sensible no-op
// defaults; see the plugins package for the embeddable base type.
type Plugin interface {
	fmt.Stringer

	// Kind returns the plugin's identity tag.
	Kind() Kind

	// Gitignore returns patterns this plugin contributes to the generated
	// ignore file.
	Gitignore() []string

	// Badges returns the badges this plugin contributes to the README.
	Badges() []Badge

	// Context returns the plugin's own substitution context. It is merged
	// over the configuration-derived context (plugin wins) when rendering
	// the plugin's artifacts.
	Context() render.Context

	// Generate writes the plugin's files under <cfg.Dir>/<pkgName> and
	// returns the relative paths of files it wrote.
	Generate(cfg *Config, pkgName string, fsys FS) ([]string, error)
}

// CoverageReporter is implemented by plugins whose coverage reporting can be
// switched off per instance. The derived COVERAGE flag only counts such a
// plugin when reporting is enabled.
type CoverageReporter interface {
	ReportsCoverage() bool
}
