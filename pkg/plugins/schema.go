package plugins

import (
	"github.com/pkgsmith/pkgsmith/pkg/errors"
	"github.com/pkgsmith/pkgsmith/pkg/filesystem"
	"github.com/pkgsmith/pkgsmith/pkg/render"
	"github.com/pkgsmith/pkgsmith/pkg/types"
)

// FieldSpec declares an extra attribute of a managed-file plugin kind. A
// field without a default is required at construction time.
type FieldSpec struct {
	Name    string
	Default any
}

// Schema declares a managed-single-file plugin kind as data: the kind tag,
// the default source template (empty for "no file"), the fixed destination,
// extra fields, and the default ignore/badge/context contributions.
type Schema struct {
	Kind          types.Kind
	DefaultSource string
	Destination   string
	Fields        []FieldSpec
	Gitignore     []string
	Badges        []types.Badge
	Context       render.Context
}

// Options parameterize one plugin instance built by a Factory. A nil Source
// keeps the declared default; a pointer to "" disables file generation.
type Options struct {
	Source *string
	Fields map[string]any
}

// Factory builds plugin instances of one declared kind.
type Factory func(opts Options) (types.Plugin, error)

// NewKind turns a schema into a plugin factory. The declared default source,
// when non-empty, must exist on templates at declaration time; likewise any
// caller-supplied non-default source is checked when an instance is built.
// Both failures are configuration errors naming the missing path.
func NewKind(schema Schema, templates types.FS) (Factory, error) {
	if schema.Kind == "" {
		return nil, errors.New(errors.ErrPluginInvalid, "plugin kind cannot be empty")
	}
	if schema.Destination == "" {
		return nil, errors.Newf(errors.ErrPluginInvalid, "plugin kind %s declares no destination", schema.Kind)
	}
	if schema.DefaultSource != "" && !filesystem.Exists(templates, schema.DefaultSource) {
		return nil, errors.Newf(errors.ErrTemplateNotFound,
			"source template %s declared for %s does not exist", schema.DefaultSource, schema.Kind).
			WithDetail("path", schema.DefaultSource)
	}

	declared := make(map[string]FieldSpec, len(schema.Fields))
	for _, f := range schema.Fields {
		declared[f.Name] = f
	}

	return func(opts Options) (types.Plugin, error) {
		source := schema.DefaultSource
		if opts.Source != nil {
			source = *opts.Source
		}
		if source != "" && source != schema.DefaultSource && !filesystem.Exists(templates, source) {
			return nil, errors.Newf(errors.ErrTemplateNotFound,
				"source template %s for %s does not exist", source, schema.Kind).
				WithDetail("path", source)
		}

		for name := range opts.Fields {
			if _, ok := declared[name]; !ok {
				return nil, errors.Newf(errors.ErrPluginInvalid,
					"%s has no field named %q", schema.Kind, name)
			}
		}

		fields := make(map[string]any, len(schema.Fields))
		for _, f := range schema.Fields {
			if v, ok := opts.Fields[f.Name]; ok {
				fields[f.Name] = v
				continue
			}
			if f.Default == nil {
				return nil, errors.Newf(errors.ErrInvalidInput,
					"%s requires a value for field %q", schema.Kind, f.Name)
			}
			fields[f.Name] = f.Default
		}

		return &ManagedFile{
			kind:      schema.Kind,
			source:    source,
			dest:      schema.Destination,
			templates: templates,
			gitignore: schema.Gitignore,
			badges:    schema.Badges,
			context:   schema.Context,
			fields:    fields,
		}, nil
	}, nil
}
