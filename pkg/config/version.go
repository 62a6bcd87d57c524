package config

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// VersionFloor derives the minimum-language-version string written to the
// REQUIRE file. Release versions render as "major.minor". A prerelease
// carries a trailing marker ("1.0-") signalling "at least the upcoming
// release". The output is already in floor form, so applying the rule to a
// version parsed back from it yields the same string.
func VersionFloor(v *semver.Version) string {
	if v.Prerelease() != "" {
		return fmt.Sprintf("%d.%d-", v.Major(), v.Minor())
	}
	return fmt.Sprintf("%d.%d", v.Major(), v.Minor())
}
