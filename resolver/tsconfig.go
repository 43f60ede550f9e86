package resolver

import (
	"path"
	"sort"
	"strings"
)

// resolveAlias applies tsconfig-style path aliases to a module specifier.
// Patterns are matched longest-prefix first for deterministic outcomes.
func (r *Resolver) resolveAlias(module string) string {
	cfg := r.project.TypeConfig
	if cfg == nil || len(cfg.Paths) == 0 {
		return ""
	}

	patterns := make([]string, 0, len(cfg.Paths))
	for pattern := range cfg.Paths {
		patterns = append(patterns, pattern)
	}
	sort.Slice(patterns, func(i, j int) bool {
		if len(patterns[i]) != len(patterns[j]) {
			return len(patterns[i]) > len(patterns[j])
		}
		return patterns[i] < patterns[j]
	})

	for _, pattern := range patterns {
		matched, ok := matchAlias(pattern, module)
		if !ok {
			continue
		}
		for _, target := range cfg.Paths[pattern] {
			substituted := strings.Replace(target, "*", matched, 1)
			if resolved := r.lookup(path.Join(cfg.BaseURL, substituted)); resolved != "" {
				return resolved
			}
		}
	}
	return ""
}

// matchAlias matches a specifier against a single-wildcard tsconfig pattern,
// returning the text captured by the wildcard.
func matchAlias(pattern, module string) (string, bool) {
	star := strings.Index(pattern, "*")
	if star < 0 {
		return "", pattern == module
	}
	prefix, suffix := pattern[:star], pattern[star+1:]
	if !strings.HasPrefix(module, prefix) || !strings.HasSuffix(module, suffix) {
		return "", false
	}
	if len(module) < len(prefix)+len(suffix) {
		return "", false
	}
	return module[len(prefix) : len(module)-len(suffix)], true
}
