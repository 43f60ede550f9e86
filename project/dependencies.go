package project

import (
	"sort"
	"strings"

	"golang.org/x/mod/semver"
)

// MergeDependencies folds extra dependency versions into the base table.
// When both tables pin the same package the higher semantic version wins;
// versions that do not parse keep the base entry.
func MergeDependencies(base, extra map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(extra))
	for name, version := range base {
		merged[name] = version
	}
	for name, version := range extra {
		current, ok := merged[name]
		if !ok || newerVersion(version, current) {
			merged[name] = version
		}
	}
	return merged
}

// newerVersion reports whether candidate is a strictly higher semantic
// version than current. Range prefixes such as ^ and ~ are stripped before
// comparison.
func newerVersion(candidate, current string) bool {
	c := canonicalVersion(candidate)
	cur := canonicalVersion(current)
	if !semver.IsValid(c) || !semver.IsValid(cur) {
		return false
	}
	return semver.Compare(c, cur) > 0
}

// canonicalVersion converts an npm version constraint to semver form
func canonicalVersion(version string) string {
	v := strings.TrimSpace(version)
	v = strings.TrimLeft(v, "^~=v")
	if v == "" {
		return ""
	}
	return "v" + v
}

// DependencyNames returns the sorted package names of a dependency table
func DependencyNames(deps map[string]string) []string {
	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
