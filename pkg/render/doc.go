// Package render implements the placeholder substitution engine used for
// every piece of generated text: README badges, CI configuration templates,
// documentation skeletons and ignore files.
//
// Templates use a double-brace syntax: {{KEY}} substitutes the value of KEY,
// {{#KEY}}...{{/KEY}} includes the enclosed text when KEY is truthy, and
// {{^KEY}}...{{/KEY}} is the negation. Missing keys render as empty text and
// take the negative branch. Rendering is deterministic and has no side
// effects, so text without any placeholder syntax passes through unchanged.
package render
