// Package types defines the shared types of the scaffolding core: the
// project configuration aggregate, the plugin capability contract, and the
// filesystem abstraction. It sits at the bottom of the dependency graph so
// that the configuration, plugin and generation packages can all refer to
// the same contracts without importing each other.
package types
