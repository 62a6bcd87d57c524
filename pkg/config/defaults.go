package config

import (
	_ "embed"
	"os"
	"path/filepath"

	ktoml "github.com/knadh/koanf/parsers/toml"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/pkgsmith/pkgsmith/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultsToml []byte

// rawBytesProvider implements a koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "not implemented")
}

// optionsSchema mirrors the defaults file layout.
type optionsSchema struct {
	User         string   `koanf:"user"`
	Host         string   `koanf:"host"`
	License      string   `koanf:"license"`
	Authors      []string `koanf:"authors"`
	Dir          string   `koanf:"dir"`
	JuliaVersion string   `koanf:"julia_version"`
	SSH          bool     `koanf:"ssh"`
	Manifest     bool     `koanf:"manifest"`
	Git          bool     `koanf:"git"`
	Register     bool     `koanf:"register"`
}

// LoadDefaults layers the effective option defaults: embedded defaults
// first, then the user configuration file at userFile (TOML or YAML,
// skipped when the path is empty or absent), then explicit overrides
// (typically set command-line flags). Later layers win.
func LoadDefaults(userFile string, overrides map[string]interface{}) (Options, error) {
	k := koanf.New(".")

	// 1. Embedded defaults.
	if err := k.Load(&rawBytesProvider{bytes: defaultsToml}, ktoml.Parser()); err != nil {
		return Options{}, errors.Wrap(err, errors.ErrConfigLoad, "loading built-in defaults")
	}

	// 2. User configuration file, when present.
	if userFile != "" {
		if _, err := os.Stat(userFile); err == nil {
			var parser koanf.Parser = ktoml.Parser()
			if ext := filepath.Ext(userFile); ext == ".yaml" || ext == ".yml" {
				parser = kyaml.Parser()
			}
			if err := k.Load(file.Provider(userFile), parser); err != nil {
				return Options{}, errors.Wrapf(err, errors.ErrConfigLoad,
					"loading user configuration from %s", userFile)
			}
		}
	}

	// 3. Explicit overrides.
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return Options{}, errors.Wrap(err, errors.ErrConfigLoad, "applying overrides")
		}
	}

	var schema optionsSchema
	if err := k.Unmarshal("", &schema); err != nil {
		return Options{}, errors.Wrap(err, errors.ErrConfigLoad, "unmarshaling configuration")
	}

	return Options{
		User:         schema.User,
		Host:         schema.Host,
		License:      schema.License,
		Authors:      schema.Authors,
		Dir:          schema.Dir,
		JuliaVersion: schema.JuliaVersion,
		SSH:          schema.SSH,
		Manifest:     schema.Manifest,
		Git:          schema.Git,
		Register:     schema.Register,
	}, nil
}
