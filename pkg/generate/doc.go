// Package generate implements the file-generation driver: it creates the
// package directory, runs every configured plugin, and writes the standard
// artifacts (README, ignore file, license, version floor, test skeleton).
//
// Generation is not atomic. A failure partway leaves the files written so far
// in place; callers that need a clean slate remove the package root and run
// again.
package generate
