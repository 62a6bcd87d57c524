// Package constants provides shared constants used across the pkgsmith
// codebase. This package has no dependencies to avoid circular imports.
package constants

// Names of generated artifacts, relative to the package root.
const (
	ReadmeFile    = "README.md"
	GitignoreFile = ".gitignore"
	LicenseFile   = "LICENSE"
	RequireFile   = "REQUIRE"
	TestDir       = "test"
	TestEntryFile = "runtests.jl"
)

// LanguageName is the language identifier written into the version-floor file.
const LanguageName = "julia"

// ManifestFile is the dependency lockfile pattern added to the ignore file
// when the lockfile is not committed.
const ManifestFile = "Manifest.toml"

// Configuration defaults.
const (
	DefaultHost         = "github.com"
	DefaultLicense      = "MIT"
	DefaultScheme       = "https"
	DefaultJuliaVersion = "1.0.0"
	DefaultBranch       = "main"
)

// BaselineGitignore is the fixed set of OS/editor and language tooling
// patterns every generated package ignores.
var BaselineGitignore = []string{
	".DS_Store",
	"*.jl.cov",
	"*.jl.*.cov",
	"*.jl.mem",
}

// AppName is used for XDG directory layout and log file naming.
const AppName = "pkgsmith"
