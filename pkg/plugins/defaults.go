package plugins

import (
	"embed"

	"github.com/pkgsmith/pkgsmith/pkg/filesystem"
	"github.com/pkgsmith/pkgsmith/pkg/types"
)

//go:embed defaults
var defaultTemplates embed.FS

// DefaultTemplatesDir is the directory name of the built-in template set on
// the filesystem returned by DefaultTemplates.
const DefaultTemplatesDir = "defaults"

// DefaultTemplates returns the built-in source templates as a read-only
// filesystem. Callers who maintain their own template set pass any other
// types.FS and directory to the plugin factories instead.
func DefaultTemplates() types.FS {
	return filesystem.NewReadOnlyIOFS(defaultTemplates)
}
