// Package vcs creates and populates the version-control repository of a
// freshly generated package.
package vcs

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/pkgsmith/pkgsmith/pkg/constants"
	"github.com/pkgsmith/pkgsmith/pkg/errors"
	"github.com/pkgsmith/pkgsmith/pkg/logging"
)

// RemoteURL builds the origin URL for a generated package. The repository
// name carries the language suffix ("Foo.jl"); ssh selects the SCP-style
// shape over HTTPS.
func RemoteURL(host, user, pkg string, ssh bool) string {
	if ssh {
		return fmt.Sprintf("git@%s:%s/%s.jl.git", host, user, pkg)
	}
	return fmt.Sprintf("%s://%s/%s/%s.jl", constants.DefaultScheme, host, user, pkg)
}

// Initializer turns a generated directory into a repository with an origin
// remote and an initial commit.
type Initializer interface {
	Init(ctx context.Context, dir, remoteURL string) error
}

// GitCLI is the Initializer over the git executable.
type GitCLI struct {
	// Branch is the initial branch name; empty means the default.
	Branch string
}

// NewGitCLI returns a GitCLI using the default initial branch.
func NewGitCLI() *GitCLI {
	return &GitCLI{Branch: constants.DefaultBranch}
}

// Init runs git init, points origin at remoteURL, stages everything and
// creates the initial commit.
func (g *GitCLI) Init(ctx context.Context, dir, remoteURL string) error {
	logger := logging.GetLogger("vcs")
	logger.Debug().Str("dir", dir).Str("remote", remoteURL).Msg("initializing repository")

	branch := g.Branch
	if branch == "" {
		branch = constants.DefaultBranch
	}

	steps := [][]string{
		{"init"},
		{"checkout", "-b", branch},
		{"remote", "add", "origin", remoteURL},
		{"add", "-A"},
		{"commit", "-m", "Initial commit"},
	}
	for _, args := range steps {
		cmd := exec.CommandContext(ctx, "git", args...)
		cmd.Dir = dir
		if out, err := cmd.CombinedOutput(); err != nil {
			return errors.Wrapf(err, errors.ErrVCSFailed,
				"git %s: %s", strings.Join(args, " "), strings.TrimSpace(string(out)))
		}
	}
	return nil
}

var _ Initializer = (*GitCLI)(nil)
