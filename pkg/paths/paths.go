// Package paths provides centralized path handling for pkgsmith: home
// expansion, absolute-path normalization, and the XDG directory layout used
// for the user configuration file and the workspace registry.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/pkgsmith/pkgsmith/pkg/constants"
	"github.com/pkgsmith/pkgsmith/pkg/errors"
)

// ExpandHome replaces a leading "~" or "~/" with the current user's home
// directory. Paths without a home reference are returned unchanged.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidInput, "cannot resolve home directory")
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}

// Normalize expands a leading home reference and resolves the result to an
// absolute path.
func Normalize(path string) (string, error) {
	expanded, err := ExpandHome(path)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve %s to an absolute path", path)
	}
	return abs, nil
}

// ConfigFile returns the path of the user defaults file,
// $XDG_CONFIG_HOME/pkgsmith/config.toml.
func ConfigFile() string {
	return filepath.Join(xdg.ConfigHome, constants.AppName, "config.toml")
}

// WorkspaceFile returns the path of the local development workspace
// registry, $XDG_DATA_HOME/pkgsmith/workspace.toml.
func WorkspaceFile() string {
	return filepath.Join(xdg.DataHome, constants.AppName, "workspace.toml")
}
