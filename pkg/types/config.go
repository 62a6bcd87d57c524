package types

import "github.com/Masterminds/semver/v3"

// Config is the immutable project configuration: identity, hosting,
// license, versioning and flags, plus the plugin set keyed by kind.
//
// A Config is built once through config.New, which validates every field.
// The Plugins map may still be mutated in place by callers that add or
// replace plugins after construction; doing so bypasses the scalar-field
// validations, which do not re-run.
type Config struct {
	// User is the hosting-service user or organization handle.
	User string

	// Host is the normalized hostname of the hosting service, without
	// scheme or path ("github.com").
	Host string

	// License is the short license identifier, or "" for no license.
	License string

	// Authors is the author attribution written into the license file.
	// List inputs are joined with ", " at construction time.
	Authors string

	// Dir is the absolute output directory new packages are generated in.
	Dir string

	// JuliaVersion is the minimum supported language version.
	JuliaVersion *semver.Version

	// SSH selects the SSH remote URL shape over HTTPS.
	SSH bool

	// Manifest commits the dependency lockfile instead of ignoring it.
	Manifest bool

	// Git creates and populates a version-control repository after
	// generation.
	Git bool

	// Register records the generated package in the local development
	// workspace.
	Register bool

	// Plugins maps each plugin kind to its single configured instance.
	Plugins map[Kind]Plugin
}

// HasPlugin reports whether a plugin of the given kind is configured.
func (c *Config) HasPlugin(kind Kind) bool {
	_, ok := c.Plugins[kind]
	return ok
}

// HasDocumenter reports whether any Documenter kind is configured,
// regardless of which CI deploys it.
func (c *Config) HasDocumenter() bool {
	for kind := range c.Plugins {
		if IsDocumenterKind(kind) {
			return true
		}
	}
	return false
}
