package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/pkgsmith/pkgsmith/pkg/config"
	"github.com/pkgsmith/pkgsmith/pkg/constants"
	"github.com/pkgsmith/pkgsmith/pkg/errors"
	"github.com/pkgsmith/pkgsmith/pkg/filesystem"
	"github.com/pkgsmith/pkgsmith/pkg/generate"
	"github.com/pkgsmith/pkgsmith/pkg/identity"
	"github.com/pkgsmith/pkgsmith/pkg/licenses"
	"github.com/pkgsmith/pkgsmith/pkg/paths"
	"github.com/pkgsmith/pkgsmith/pkg/plugins"
	"github.com/pkgsmith/pkgsmith/pkg/plugins/lib"
	"github.com/pkgsmith/pkgsmith/pkg/types"
	"github.com/pkgsmith/pkgsmith/pkg/vcs"
	"github.com/pkgsmith/pkgsmith/pkg/workspace"
)

var newFlags struct {
	user         string
	host         string
	license      string
	authors      []string
	dir          string
	juliaVersion string
	ssh          bool
	manifest     bool
	git          bool
	register     bool
	plugins      []string
	templatesDir string
	configFile   string
	preview      bool
}

var newCmd = &cobra.Command{
	Use:   "new <PackageName>",
	Short: "Generate a new package",
	Long: `Generate a new package skeleton. Configuration is layered: built-in
defaults, then the user configuration file, then any flags set on the
command line.`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func init() {
	f := newCmd.Flags()
	f.StringVar(&newFlags.user, "user", "", "Hosting-service username or organization")
	f.StringVar(&newFlags.host, "host", "", "Code hosting service (hostname or URL)")
	f.StringVar(&newFlags.license, "license", "", "License identifier (empty for none)")
	f.StringSliceVar(&newFlags.authors, "authors", nil, "Author names for license attribution")
	f.StringVar(&newFlags.dir, "dir", "", "Directory to generate the package in")
	f.StringVar(&newFlags.juliaVersion, "julia", "", "Minimum supported Julia version")
	f.BoolVar(&newFlags.ssh, "ssh", false, "Use an SSH remote URL instead of HTTPS")
	f.BoolVar(&newFlags.manifest, "manifest", false, "Commit the dependency lockfile instead of ignoring it")
	f.BoolVar(&newFlags.git, "git", true, "Create a git repository with an initial commit")
	f.BoolVar(&newFlags.register, "register", true, "Record the package in the local workspace")
	f.StringSliceVar(&newFlags.plugins, "plugins", nil,
		"Plugins to enable (travis, appveyor, gitlabci, codecov, coveralls, documenter-travis, documenter-gitlab)")
	f.StringVar(&newFlags.templatesDir, "templates-dir", "", "Directory with custom source templates")
	f.StringVar(&newFlags.configFile, "config", "", "Configuration file (default "+paths.ConfigFile()+")")
	f.BoolVar(&newFlags.preview, "preview", false, "Preview the resolved configuration and generated README without writing")
}

// flagOverrideKeys maps each flag to its configuration key; only flags the
// user actually set override the file-based layers.
var flagOverrideKeys = map[string]struct {
	key   string
	value func() any
}{
	"user":     {"user", func() any { return newFlags.user }},
	"host":     {"host", func() any { return newFlags.host }},
	"license":  {"license", func() any { return newFlags.license }},
	"authors":  {"authors", func() any { return newFlags.authors }},
	"dir":      {"dir", func() any { return newFlags.dir }},
	"julia":    {"julia_version", func() any { return newFlags.juliaVersion }},
	"ssh":      {"ssh", func() any { return newFlags.ssh }},
	"manifest": {"manifest", func() any { return newFlags.manifest }},
	"git":      {"git", func() any { return newFlags.git }},
	"register": {"register", func() any { return newFlags.register }},
}

func runNew(cmd *cobra.Command, args []string) error {
	pkgName := args[0]

	overrides := make(map[string]interface{})
	for flag, o := range flagOverrideKeys {
		if cmd.Flags().Changed(flag) {
			overrides[o.key] = o.value()
		}
	}

	configFile := newFlags.configFile
	if configFile == "" {
		configFile = paths.ConfigFile()
	}
	opts, err := config.LoadDefaults(configFile, overrides)
	if err != nil {
		return err
	}

	selected, err := buildPlugins(newFlags.plugins, newFlags.templatesDir)
	if err != nil {
		return err
	}
	opts.Plugins = selected

	store := licenses.NewEmbedded()
	cfg, err := config.New(opts, config.Deps{
		Identity: identity.NewGitLookup(),
		Licenses: store,
	})
	if err != nil {
		return err
	}

	if newFlags.preview {
		return preview(cfg, pkgName, store)
	}

	fsys := filesystem.NewOS()
	result, err := generate.Run(generate.Options{
		Config:      cfg,
		PackageName: pkgName,
		FS:          fsys,
		Licenses:    store,
	})
	if err != nil {
		return err
	}

	if cfg.Git {
		remote := vcs.RemoteURL(cfg.Host, cfg.User, pkgName, cfg.SSH)
		if err := vcs.NewGitCLI().Init(cmd.Context(), result.Root, remote); err != nil {
			return err
		}
	}
	if cfg.Register {
		if err := workspace.Default(fsys).Register(pkgName, result.Root); err != nil {
			return err
		}
	}

	pterm.Success.Printfln("Generated %s in %s", pkgName, result.Root)
	for _, f := range result.Files {
		pterm.Println("  " + f)
	}
	return nil
}

// buildPlugins resolves the named plugin factories against either the
// built-in template set or the user's templates directory.
func buildPlugins(names []string, templatesDir string) ([]types.Plugin, error) {
	if len(names) == 0 {
		return nil, nil
	}

	templates := plugins.DefaultTemplates()
	dir := plugins.DefaultTemplatesDir
	if templatesDir != "" {
		templates = filesystem.NewOS()
		dir = templatesDir
	}

	reg, err := lib.Builtins(templates, dir)
	if err != nil {
		return nil, err
	}

	selected := make([]types.Plugin, 0, len(names))
	for _, name := range names {
		factory, err := reg.Get(strings.TrimSpace(name))
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrPluginInvalid,
				"unknown plugin %q (available: %s)", name, strings.Join(reg.List(), ", "))
		}
		p, err := factory(plugins.Options{})
		if err != nil {
			return nil, err
		}
		selected = append(selected, p)
	}
	return selected, nil
}

// dryRun assembles the package on an in-memory filesystem and returns the
// generated README text plus the file list, leaving the real filesystem
// untouched.
func dryRun(cfg *types.Config, pkgName string, store licenses.Store) (string, []string, error) {
	fsys := filesystem.NewMemory()
	result, err := generate.Run(generate.Options{
		Config:      cfg,
		PackageName: pkgName,
		FS:          fsys,
		Licenses:    store,
	})
	if err != nil {
		return "", nil, err
	}
	raw, err := fsys.ReadFile(filepath.Join(result.Root, constants.ReadmeFile))
	if err != nil {
		return "", nil, err
	}
	return string(raw), result.Files, nil
}

// preview prints the resolved configuration and the generated README, the
// latter through glamour when stdout is a terminal.
func preview(cfg *types.Config, pkgName string, store licenses.Store) error {
	readme, files, err := dryRun(cfg, pkgName, store)
	if err != nil {
		return err
	}

	fmt.Print(config.Describe(cfg))
	fmt.Println()

	printed := false
	if isatty.IsTerminal(os.Stdout.Fd()) {
		if rendered, err := glamour.Render(readme, "auto"); err == nil {
			fmt.Print(rendered)
			printed = true
		}
	}
	if !printed {
		fmt.Print(readme)
	}

	pterm.Println()
	pterm.Println("Would generate:")
	for _, f := range files {
		pterm.Println("  " + f)
	}
	return nil
}
