// Package plugins implements the plugin capability model and the
// declarative facility for defining new managed-single-file plugin kinds.
//
// Every plugin answers four queries: ignore patterns, badges, a substitution
// context, and a file-generation procedure. Base provides no-op defaults for
// embedding. ManagedFile implements the common "render one template to one
// destination" shape, and NewKind turns a Schema into a factory for such
// plugins without any code generation. Plugins with bespoke behavior (such
// as the documentation plugin under lib/documenter) implement the contract
// directly.
package plugins
