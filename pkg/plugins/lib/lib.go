package lib

import (
	"github.com/pkgsmith/pkgsmith/pkg/errors"
	"github.com/pkgsmith/pkgsmith/pkg/plugins"
	"github.com/pkgsmith/pkgsmith/pkg/registry"
	"github.com/pkgsmith/pkgsmith/pkg/types"
)

// Registry names of the built-in plugin factories.
const (
	NameTravisCI         = "travis"
	NameAppVeyor         = "appveyor"
	NameGitLabCI         = "gitlabci"
	NameCodecov          = "codecov"
	NameCoveralls        = "coveralls"
	NameDocumenterTravis = "documenter-travis"
	NameDocumenterGitLab = "documenter-gitlab"
)

// Builtins registers every built-in plugin factory against the given
// template set and returns the registry. dir is the directory on templates
// holding the default source files.
func Builtins(templates types.FS, dir string) (registry.Registry[plugins.Factory], error) {
	reg := registry.New[plugins.Factory]()

	managed := map[string]func(types.FS, string) (plugins.Factory, error){
		NameTravisCI:  NewTravisCI,
		NameAppVeyor:  NewAppVeyor,
		NameGitLabCI:  NewGitLabCI,
		NameCodecov:   NewCodecov,
		NameCoveralls: NewCoveralls,
	}
	for name, declare := range managed {
		factory, err := declare(templates, dir)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrPluginInvalid,
				"declaring built-in plugin %s", name)
		}
		if err := reg.Register(name, factory); err != nil {
			return nil, err
		}
	}

	if err := reg.Register(NameDocumenterTravis, documenterFactory(types.KindTravisCI)); err != nil {
		return nil, err
	}
	if err := reg.Register(NameDocumenterGitLab, documenterFactory(types.KindGitLabCI)); err != nil {
		return nil, err
	}
	return reg, nil
}

// documenterFactory adapts NewDocumenter to the common factory signature.
// The "assets" field carries extra makedocs asset paths and "kwargs" extra
// makedocs keywords.
func documenterFactory(ci types.Kind) plugins.Factory {
	return func(opts plugins.Options) (types.Plugin, error) {
		if opts.Source != nil {
			return nil, errors.Newf(errors.ErrPluginInvalid,
				"%s does not take a source template", types.DocumenterKind(ci))
		}

		var assets []string
		var kwargs map[string]string
		for name, value := range opts.Fields {
			switch name {
			case "assets":
				v, ok := value.([]string)
				if !ok {
					return nil, errors.Newf(errors.ErrInvalidInput,
						"documenter field %q must be a string list", name)
				}
				assets = v
			case "kwargs":
				v, ok := value.(map[string]string)
				if !ok {
					return nil, errors.Newf(errors.ErrInvalidInput,
						"documenter field %q must be a string map", name)
				}
				kwargs = v
			default:
				return nil, errors.Newf(errors.ErrPluginInvalid,
					"%s has no field named %q", types.DocumenterKind(ci), name)
			}
		}
		return NewDocumenter(ci, assets, kwargs)
	}
}
