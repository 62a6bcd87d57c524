package render

import (
	"fmt"
	"regexp"
	"strings"
)

// tagPattern matches a single template tag: {{KEY}}, {{#KEY}}, {{^KEY}} or
// {{/KEY}}. Keys are restricted to identifier characters plus dots.
var tagPattern = regexp.MustCompile(`\{\{([#^/]?)\s*([A-Za-z0-9_.]+)\s*\}\}`)

// Render substitutes placeholders in template using ctx. A nil context is
// treated as empty. Tags that cannot be resolved into a well-formed section
// (a stray {{/KEY}}, or an unclosed {{#KEY}}) are emitted literally rather
// than failing, so rendering never returns an error.
func Render(template string, ctx Context) string {
	if ctx == nil {
		ctx = Context{}
	}
	var b strings.Builder
	b.Grow(len(template))
	renderInto(&b, template, ctx)
	return b.String()
}

func renderInto(b *strings.Builder, tmpl string, ctx Context) {
	for {
		loc := tagPattern.FindStringSubmatchIndex(tmpl)
		if loc == nil {
			b.WriteString(tmpl)
			return
		}

		b.WriteString(tmpl[:loc[0]])
		sigil := tmpl[loc[2]:loc[3]]
		key := tmpl[loc[4]:loc[5]]
		tag := tmpl[loc[0]:loc[1]]
		rest := tmpl[loc[1]:]

		switch sigil {
		case "":
			b.WriteString(stringValue(ctx[key]))
			tmpl = rest

		case "#", "^":
			body, after, ok := sectionBody(rest, key)
			if !ok {
				// Unclosed section: emit the tag as-is and move on.
				b.WriteString(tag)
				tmpl = rest
				continue
			}
			include := truthy(ctx[key])
			if sigil == "^" {
				include = !include
			}
			if include {
				inner := ctx
				if nested, isNested := ctx[key].(Context); isNested && sigil == "#" {
					// A nested context scopes the section body; outer keys
					// remain visible unless shadowed.
					inner = Merge(ctx, nested)
				}
				renderInto(b, body, inner)
			}
			tmpl = after

		case "/":
			// Close tag without a matching open: emit literally.
			b.WriteString(tag)
			tmpl = rest
		}
	}
}

// sectionBody splits tmpl (starting immediately after an open tag for key)
// into the section body and the remainder after the matching close tag.
// Sections of the same key nest.
func sectionBody(tmpl, key string) (body, after string, ok bool) {
	depth := 1
	offset := 0
	for {
		loc := tagPattern.FindStringSubmatchIndex(tmpl[offset:])
		if loc == nil {
			return "", "", false
		}
		sigil := tmpl[offset+loc[2] : offset+loc[3]]
		k := tmpl[offset+loc[4] : offset+loc[5]]
		if k == key {
			switch sigil {
			case "#", "^":
				depth++
			case "/":
				depth--
				if depth == 0 {
					return tmpl[:offset+loc[0]], tmpl[offset+loc[1]:], true
				}
			}
		}
		offset += loc[1]
	}
}

func stringValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", val)
	}
}
