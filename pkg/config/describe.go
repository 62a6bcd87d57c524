package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkgsmith/pkgsmith/pkg/types"
)

// Describe renders a configuration as deterministic multi-line text. The
// output is byte-stable for identical input: scalar fields appear in a fixed
// order and plugins are sorted lexicographically by their own one-line
// rendering. Regression tests rely on this stability.
func Describe(cfg *types.Config) string {
	var b strings.Builder

	b.WriteString("Package Template:\n")
	writeField(&b, "User", cfg.User)
	writeField(&b, "Host", cfg.Host)
	writeField(&b, "License", orNone(cfg.License))
	writeField(&b, "Authors", orNone(cfg.Authors))
	writeField(&b, "Directory", cfg.Dir)
	writeField(&b, "Julia Version", cfg.JuliaVersion.String())
	writeField(&b, "SSH Remotes", yesNo(cfg.SSH))
	writeField(&b, "Commit Manifest", yesNo(cfg.Manifest))
	writeField(&b, "Create Git Repository", yesNo(cfg.Git))
	writeField(&b, "Register In Workspace", yesNo(cfg.Register))

	if len(cfg.Plugins) == 0 {
		writeField(&b, "Plugins", "None")
		return b.String()
	}

	lines := make([]string, 0, len(cfg.Plugins))
	for _, p := range cfg.Plugins {
		lines = append(lines, p.String())
	}
	sort.Strings(lines)

	b.WriteString("  Plugins:\n")
	for _, line := range lines {
		fmt.Fprintf(&b, "    %s\n", line)
	}
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "  %s: %s\n", label, value)
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
