// Package workspace records generated packages in a local development
// registry, a TOML file under the user's data directory. The record is
// advisory: entries point at package roots so other tooling can find them.
package workspace

import (
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/pkgsmith/pkgsmith/pkg/errors"
	"github.com/pkgsmith/pkgsmith/pkg/filesystem"
	"github.com/pkgsmith/pkgsmith/pkg/logging"
	"github.com/pkgsmith/pkgsmith/pkg/paths"
	"github.com/pkgsmith/pkgsmith/pkg/types"
)

// Entry is one registered package.
type Entry struct {
	Name      string    `toml:"name"`
	Path      string    `toml:"path"`
	CreatedAt time.Time `toml:"created_at"`
}

// registryFile is the on-disk shape of the workspace registry.
type registryFile struct {
	Packages []Entry `toml:"packages"`
}

// Workspace reads and writes one registry file.
type Workspace struct {
	fsys types.FS
	path string
}

// New returns a Workspace over the registry at path.
func New(fsys types.FS, path string) *Workspace {
	return &Workspace{fsys: fsys, path: path}
}

// Default returns the Workspace at the standard per-user location.
func Default(fsys types.FS) *Workspace {
	return New(fsys, paths.WorkspaceFile())
}

// Entries returns all registered packages. A missing registry file is an
// empty workspace, not an error.
func (w *Workspace) Entries() ([]Entry, error) {
	if !filesystem.Exists(w.fsys, w.path) {
		return nil, nil
	}
	raw, err := w.fsys.ReadFile(w.path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrWorkspaceFailed,
			"reading workspace registry %s", w.path)
	}

	var reg registryFile
	if err := toml.Unmarshal(raw, &reg); err != nil {
		return nil, errors.Wrapf(err, errors.ErrWorkspaceFailed,
			"parsing workspace registry %s", w.path)
	}
	return reg.Packages, nil
}

// Register records a package in the registry, replacing any entry with the
// same name.
func (w *Workspace) Register(name, path string) error {
	entries, err := w.Entries()
	if err != nil {
		return err
	}

	entry := Entry{Name: name, Path: path, CreatedAt: time.Now().UTC()}
	replaced := false
	for i, e := range entries {
		if e.Name == name {
			entries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, entry)
	}

	data, err := toml.Marshal(registryFile{Packages: entries})
	if err != nil {
		return errors.Wrapf(err, errors.ErrWorkspaceFailed,
			"encoding workspace registry")
	}
	if err := filesystem.WriteText(w.fsys, w.path, string(data)); err != nil {
		return err
	}

	logger := logging.GetLogger("workspace")
	logger.Debug().
		Str("package", name).Str("path", path).
		Msg("registered package")
	return nil
}
