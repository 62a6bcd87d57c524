// Package config implements the project configuration aggregate: a single
// validating constructor, a deterministic human-readable rendering, the
// configuration-derived substitution context, and koanf-backed loading of
// user defaults.
package config

import (
	"net/url"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/pkgsmith/pkgsmith/pkg/constants"
	"github.com/pkgsmith/pkgsmith/pkg/errors"
	"github.com/pkgsmith/pkgsmith/pkg/identity"
	"github.com/pkgsmith/pkgsmith/pkg/licenses"
	"github.com/pkgsmith/pkgsmith/pkg/logging"
	"github.com/pkgsmith/pkgsmith/pkg/paths"
	"github.com/pkgsmith/pkgsmith/pkg/types"
)

// Options carries the caller's choices into New. Zero values fall back to
// the documented defaults (see DefaultOptions) or to external lookups.
type Options struct {
	// User is the hosting-service handle. Empty falls back to
	// Deps.Identity.CurrentUser(); construction fails if both are empty.
	User string

	// Host may be a bare hostname or a full URL; only the host component is
	// retained.
	Host string

	// License is the short license identifier; "" means no license.
	License string

	// Authors lists author names, joined with ", ". Empty falls back to
	// Deps.Identity.CurrentAuthor() (non-fatal when that is empty too).
	Authors []string

	// Dir is the output directory; home-relative and relative inputs are
	// resolved at construction time.
	Dir string

	// JuliaVersion is the minimum supported language version string.
	JuliaVersion string

	// Flags. See types.Config for their meaning.
	SSH      bool
	Manifest bool
	Git      bool
	Register bool

	// Plugins are deduplicated by kind: the last instance of each kind
	// survives, and a collapse is reported as a non-fatal warning.
	Plugins []types.Plugin
}

// Deps are the external collaborators construction consults.
type Deps struct {
	Identity identity.Lookup
	Licenses licenses.Store
}

// DefaultOptions returns the default choice set: HTTPS remotes, ignored
// lockfile, git repository creation and workspace registration on, MIT
// license, github.com hosting.
func DefaultOptions() Options {
	return Options{
		Host:         constants.DefaultHost,
		License:      constants.DefaultLicense,
		Dir:          ".",
		JuliaVersion: constants.DefaultJuliaVersion,
		Git:          true,
		Register:     true,
	}
}

// New validates opts and builds the immutable configuration. Failures are
// reported in field order, each as a distinct error code carrying the
// offending value.
func New(opts Options, deps Deps) (*types.Config, error) {
	log := logging.GetLogger("config")

	// 1. Identity.
	user := opts.User
	if user == "" && deps.Identity != nil {
		user = deps.Identity.CurrentUser()
	}
	if user == "" {
		return nil, errors.New(errors.ErrInvalidInput,
			"user is required and could not be determined from the local git configuration")
	}

	// 2. Host: accept a bare host or a full URL, keep the host component.
	host, err := normalizeHost(opts.Host)
	if err != nil {
		return nil, err
	}

	// 3. License must exist in the store; "" means no license.
	if opts.License != "" {
		if deps.Licenses == nil || !deps.Licenses.Exists(opts.License) {
			return nil, errors.Newf(errors.ErrLicenseUnknown, "license %q is not known", opts.License).
				WithDetail("license", opts.License)
		}
	}

	// 4. Authors: join list input, fall back to the local author identity.
	authors := strings.Join(opts.Authors, ", ")
	if authors == "" && deps.Identity != nil {
		authors = deps.Identity.CurrentAuthor()
	}

	// 5. Output directory: expand home, make absolute.
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	dir, err = paths.Normalize(dir)
	if err != nil {
		return nil, err
	}

	// 6. Minimum language version.
	versionStr := opts.JuliaVersion
	if versionStr == "" {
		versionStr = constants.DefaultJuliaVersion
	}
	version, err := semver.NewVersion(versionStr)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput,
			"julia version %q is not a valid version number", versionStr)
	}

	// 7. Plugins: dedup by kind, last instance wins. Collapsing is lossy
	// but deliberate, so it warns per collapsed kind instead of failing.
	pluginMap := make(map[types.Kind]types.Plugin, len(opts.Plugins))
	count := make(map[types.Kind]int, len(opts.Plugins))
	keptIndex := make(map[types.Kind]int, len(opts.Plugins))
	for i, p := range opts.Plugins {
		kind := p.Kind()
		pluginMap[kind] = p
		count[kind]++
		keptIndex[kind] = i
	}
	warned := make(map[types.Kind]bool)
	for _, p := range opts.Plugins {
		kind := p.Kind()
		if count[kind] > 1 && !warned[kind] {
			warned[kind] = true
			log.Warn().
				Str("kind", string(kind)).
				Int("kept_index", keptIndex[kind]).
				Msg("duplicate plugin kind collapsed; the last instance wins")
		}
	}

	return &types.Config{
		User:         user,
		Host:         host,
		License:      opts.License,
		Authors:      authors,
		Dir:          dir,
		JuliaVersion: version,
		SSH:          opts.SSH,
		Manifest:     opts.Manifest,
		Git:          opts.Git,
		Register:     opts.Register,
		Plugins:      pluginMap,
	}, nil
}

// normalizeHost reduces a bare host or full URL to its host component,
// assuming the default scheme when none is given.
func normalizeHost(host string) (string, error) {
	if host == "" {
		host = constants.DefaultHost
	}
	raw := host
	if !strings.Contains(raw, "://") {
		raw = constants.DefaultScheme + "://" + raw
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return "", errors.Newf(errors.ErrHostInvalid, "host %q is not a valid hostname or URL", host).
			WithDetail("host", host)
	}
	return parsed.Host, nil
}
