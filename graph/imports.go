package graph

import (
	"sort"
	"strings"
)

// ImportSpecifier represents one bound name of an import statement.
// Exactly one of the default, namespace or named-with-optional-alias forms holds.
type ImportSpecifier struct {
	Name        string // imported name; local name for default imports
	Alias       string // local alias for named imports, empty when not aliased
	IsDefault   bool
	IsNamespace bool
}

// Local returns the name the specifier binds in the importing scope
func (s ImportSpecifier) Local() string {
	if s.Alias != "" {
		return s.Alias
	}
	return s.Name
}

// ImportInfo represents one import statement
type ImportInfo struct {
	Module       string // module specifier as written
	Specifiers   []ImportSpecifier
	IsRelative   bool   // module starts with "." or "/"
	ResolvedPath string // project-relative path when resolution succeeded
}

// IsRelativeModule reports whether a module specifier denotes a path import
func IsRelativeModule(module string) bool {
	return strings.HasPrefix(module, ".") || strings.HasPrefix(module, "/")
}

// Key returns the deduplication key: module plus the sorted specifier name set.
// Two imports with the same key bind the same effective names.
func (i *ImportInfo) Key() string {
	names := make([]string, 0, len(i.Specifiers))
	for _, spec := range i.Specifiers {
		switch {
		case spec.IsDefault:
			names = append(names, "default:"+spec.Name)
		case spec.IsNamespace:
			names = append(names, "*:"+spec.Name)
		default:
			names = append(names, spec.Name)
		}
	}
	sort.Strings(names)
	return i.Module + "|" + strings.Join(names, ",")
}

// BoundNames returns the local names the import introduces
func (i *ImportInfo) BoundNames() []string {
	names := make([]string, 0, len(i.Specifiers))
	for _, spec := range i.Specifiers {
		if local := spec.Local(); local != "" {
			names = append(names, local)
		}
	}
	return names
}

// DependencyContext is the analysis result for one fragment
type DependencyContext struct {
	Imports            []*ImportInfo
	UsedIdentifiers    []string          // sorted
	MissingIdentifiers []string          // sorted; subset of UsedIdentifiers
	ResolvedModules    map[string]string // module specifier -> resolved path
}

// Uses reports whether the fragment references the given identifier
func (c *DependencyContext) Uses(name string) bool {
	return contains(c.UsedIdentifiers, name)
}

// Missing reports whether the identifier remained unresolved after analysis
func (c *DependencyContext) Missing(name string) bool {
	return contains(c.MissingIdentifiers, name)
}

func contains(sorted []string, name string) bool {
	idx := sort.SearchStrings(sorted, name)
	return idx < len(sorted) && sorted[idx] == name
}
