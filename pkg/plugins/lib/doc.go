// Package lib provides the built-in plugin kinds: the CI services
// (TravisCI, AppVeyor, GitLabCI), the coverage services (Codecov,
// Coveralls), and the Documenter documentation plugin. Builtins registers
// all of them against a template set so callers can resolve factories by
// name.
package lib
