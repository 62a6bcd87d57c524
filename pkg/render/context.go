package render

// Context is a substitution context: a mapping from placeholder name to a
// value. Values may be strings, booleans, or nested Contexts. Key order is
// irrelevant; precedence is established only by merging.
type Context map[string]any

// Merge combines two contexts into a new one. Keys in over win on collision.
// Neither input is mutated.
func Merge(base, over Context) Context {
	merged := make(Context, len(base)+len(over))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range over {
		merged[k] = v
	}
	return merged
}

// truthy reports whether a context value enables a {{#KEY}} section.
// Booleans are taken at face value; strings are truthy when non-empty;
// nested contexts are truthy when non-empty; absent values are falsy.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case Context:
		return len(val) > 0
	default:
		return true
	}
}
