// Package licenses provides the license store consumed by the configuration
// aggregate and the file-generation driver. The default store serves license
// bodies embedded into the binary; the generated LICENSE file prepends the
// copyright line, so the stored texts carry none.
package licenses

import (
	"embed"
	"fmt"
	"sort"

	"github.com/pkgsmith/pkgsmith/pkg/errors"
)

//go:embed embedded/*.txt
var embeddedTexts embed.FS

// License pairs a short identifier with its display name.
type License struct {
	ID   string
	Name string
}

// Store answers license queries for the configuration aggregate and the
// generation driver.
type Store interface {
	// Exists reports whether id names a known license.
	Exists(id string) bool

	// Text returns the full license body for id.
	Text(id string) (string, error)

	// Known returns all available licenses in a stable display order.
	Known() []License
}

// known is the fixed catalogue of embedded licenses, in display order.
var known = []License{
	{ID: "MIT", Name: "MIT \"Expat\" License"},
	{ID: "BSD-2-Clause", Name: "Simplified \"2-clause\" BSD License"},
	{ID: "BSD-3-Clause", Name: "Modified \"3-clause\" BSD License"},
	{ID: "ISC", Name: "Internet Systems Consortium License"},
}

// Embedded is the Store implementation over the compiled-in license texts.
type Embedded struct{}

// NewEmbedded returns the store of compiled-in licenses.
func NewEmbedded() *Embedded {
	return &Embedded{}
}

func (e *Embedded) Exists(id string) bool {
	for _, l := range known {
		if l.ID == id {
			return true
		}
	}
	return false
}

func (e *Embedded) Text(id string) (string, error) {
	if !e.Exists(id) {
		return "", errors.Newf(errors.ErrLicenseUnknown, "license %q is not known", id).
			WithDetail("license", id)
	}
	data, err := embeddedTexts.ReadFile(fmt.Sprintf("embedded/%s.txt", id))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInternal, "reading embedded license %s", id)
	}
	return string(data), nil
}

func (e *Embedded) Known() []License {
	out := make([]License, len(known))
	copy(out, known)
	return out
}

// Static is a Store over a fixed id -> text mapping, used as a test double.
type Static map[string]string

func (s Static) Exists(id string) bool {
	_, ok := s[id]
	return ok
}

func (s Static) Text(id string) (string, error) {
	text, ok := s[id]
	if !ok {
		return "", errors.Newf(errors.ErrLicenseUnknown, "license %q is not known", id)
	}
	return text, nil
}

func (s Static) Known() []License {
	out := make([]License, 0, len(s))
	for id := range s {
		out = append(out, License{ID: id, Name: id})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
