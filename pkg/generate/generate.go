package generate

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkgsmith/pkgsmith/pkg/config"
	"github.com/pkgsmith/pkgsmith/pkg/errors"
	"github.com/pkgsmith/pkgsmith/pkg/filesystem"
	"github.com/pkgsmith/pkgsmith/pkg/licenses"
	"github.com/pkgsmith/pkgsmith/pkg/logging"
	"github.com/pkgsmith/pkgsmith/pkg/types"
)

// Options parameterize one generation run.
type Options struct {
	// Config is the validated project configuration.
	Config *types.Config

	// PackageName is the bare package name, without path or language
	// suffix.
	PackageName string

	// FS is the filesystem the package is written to.
	FS types.FS

	// Licenses serves the license body named by Config.License.
	Licenses licenses.Store
}

// Result reports what a generation run produced.
type Result struct {
	// Root is the absolute package root directory.
	Root string

	// Files are the generated paths relative to Root, in write order.
	Files []string
}

// invalidNameChars are rejected in package names: path separators and
// characters that are unsafe in directory names on common platforms.
const invalidNameChars = `/\:*?"<>|`

// badgeOrder fixes the README badge ordering for the well-known kinds.
// Documentation badges lead, then CI, then coverage; plugins of any other
// kind follow in their stable description order.
var badgeOrder = []types.Kind{
	types.DocumenterKind(types.KindTravisCI),
	types.DocumenterKind(types.KindGitLabCI),
	types.KindTravisCI,
	types.KindAppVeyor,
	types.KindGitLabCI,
	types.KindCodecov,
	types.KindCoveralls,
}

// Run generates a new package under opts.Config.Dir. The target directory
// must not already exist.
func Run(opts Options) (*Result, error) {
	logger := logging.GetLogger("generate")
	cfg := opts.Config

	if err := validateName(opts.PackageName); err != nil {
		return nil, err
	}

	root := filepath.Join(cfg.Dir, opts.PackageName)
	if filesystem.Exists(opts.FS, root) {
		return nil, errors.Newf(errors.ErrAlreadyExists,
			"directory %s already exists", root).
			WithDetail("path", root)
	}
	if err := opts.FS.MkdirAll(root, 0o755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate,
			"creating package root %s", root)
	}

	logger.Info().
		Str("package", opts.PackageName).
		Str("root", root).
		Int("plugins", len(cfg.Plugins)).
		Msg("generating package")

	result := &Result{Root: root}
	ordered := orderedPlugins(cfg)

	for _, p := range ordered {
		files, err := p.Generate(cfg, opts.PackageName, opts.FS)
		if err != nil {
			return nil, errors.Wrapf(err, errors.GetErrorCode(err),
				"plugin %s", p.Kind())
		}
		for _, f := range files {
			logger.Debug().Str("plugin", string(p.Kind())).Str("file", f).
				Msg("plugin wrote file")
		}
		result.Files = append(result.Files, files...)
	}

	steps := []func(Options, []types.Plugin, *Result) error{
		writeReadme,
		writeGitignore,
		writeLicense,
		writeRequire,
		writeTests,
	}
	for _, step := range steps {
		if err := step(opts, ordered, result); err != nil {
			return nil, err
		}
	}

	logger.Info().Int("files", len(result.Files)).Msg("package generated")
	return result, nil
}

func validateName(name string) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "package name cannot be empty")
	}
	if strings.ContainsAny(name, invalidNameChars) {
		return errors.Newf(errors.ErrInvalidInput,
			"package name %q contains invalid characters", name)
	}
	return nil
}

// orderedPlugins returns the configured plugins in generation order: the
// well-known kinds in badge order first, every other kind after, sorted by
// description. The order is total and deterministic, so repeated runs over
// one configuration produce identical artifacts.
func orderedPlugins(cfg *types.Config) []types.Plugin {
	seen := make(map[types.Kind]bool, len(cfg.Plugins))
	ordered := make([]types.Plugin, 0, len(cfg.Plugins))

	for _, kind := range badgeOrder {
		if p, ok := cfg.Plugins[kind]; ok {
			ordered = append(ordered, p)
			seen[kind] = true
		}
	}

	rest := make([]types.Plugin, 0, len(cfg.Plugins))
	for kind, p := range cfg.Plugins {
		if !seen[kind] {
			rest = append(rest, p)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i].String() < rest[j].String() })

	return append(ordered, rest...)
}

// write records a driver-generated file: the text takes a final substitution
// pass, so plugin-contributed fragments may themselves carry placeholders,
// then lands under root and its relative path joins the result.
func write(opts Options, result *Result, rel, text string) error {
	text = config.Render(text, opts.Config, map[string]any{"PKG": opts.PackageName})
	if err := filesystem.WriteText(opts.FS, filepath.Join(result.Root, rel), text); err != nil {
		return err
	}
	result.Files = append(result.Files, rel)
	return nil
}
