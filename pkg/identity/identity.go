// Package identity resolves fallback user and author identities from the
// local version-control configuration. The configuration aggregate consults
// it only when the caller does not supply explicit values.
package identity

import (
	"os/exec"
	"strings"

	"github.com/pkgsmith/pkgsmith/pkg/logging"
)

// Lookup answers identity queries. Either answer may be empty when nothing
// is configured locally.
type Lookup interface {
	// CurrentUser returns the hosting-service handle of the local user.
	CurrentUser() string

	// CurrentAuthor returns the display name used for license attribution.
	CurrentAuthor() string
}

// GitLookup resolves identities from git's global configuration.
type GitLookup struct{}

// NewGitLookup returns a Lookup backed by `git config`.
func NewGitLookup() *GitLookup {
	return &GitLookup{}
}

func (g *GitLookup) CurrentUser() string {
	return gitConfig("github.user")
}

func (g *GitLookup) CurrentAuthor() string {
	return gitConfig("user.name")
}

// gitConfig reads a single git configuration key, returning "" when the key
// is unset or git is unavailable.
func gitConfig(key string) string {
	out, err := exec.Command("git", "config", "--get", key).Output()
	if err != nil {
		log := logging.GetLogger("identity")
		log.Debug().Str("key", key).Err(err).Msg("git config lookup failed")
		return ""
	}
	return strings.TrimSpace(string(out))
}

// Static is a fixed-answer Lookup, used in tests and for fully explicit
// configurations.
type Static struct {
	User   string
	Author string
}

func (s Static) CurrentUser() string   { return s.User }
func (s Static) CurrentAuthor() string { return s.Author }
