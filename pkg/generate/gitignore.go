package generate

import (
	"strings"

	"github.com/pkgsmith/pkgsmith/pkg/constants"
	"github.com/pkgsmith/pkgsmith/pkg/types"
)

// writeGitignore writes .gitignore: the baseline patterns, the dependency
// lockfile when it is not committed, then each plugin's contributions in
// plugin order. Duplicate patterns keep their first position.
func writeGitignore(opts Options, ordered []types.Plugin, result *Result) error {
	var patterns []string
	seen := make(map[string]bool)
	add := func(ps ...string) {
		for _, p := range ps {
			if !seen[p] {
				seen[p] = true
				patterns = append(patterns, p)
			}
		}
	}

	add(constants.BaselineGitignore...)
	if !opts.Config.Manifest {
		add(constants.ManifestFile)
	}
	for _, p := range ordered {
		add(p.Gitignore()...)
	}

	return write(opts, result, constants.GitignoreFile, strings.Join(patterns, "\n"))
}
