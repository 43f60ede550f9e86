package assembler

import (
	"path"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/yunfengsay/part-render/graph"
)

// builtinEntry describes one row of the fixed name-to-module lookup table
type builtinEntry struct {
	Module    string
	Name      string // imported name when it differs from the identifier
	IsDefault bool
}

// builtinTable maps well-known identifiers to the modules that provide them.
// Catalog matches take precedence; this table is the second and last
// heuristic source.
var builtinTable = map[string]builtinEntry{
	// react hooks and helpers
	"useState":        {Module: "react"},
	"useEffect":       {Module: "react"},
	"useLayoutEffect": {Module: "react"},
	"useCallback":     {Module: "react"},
	"useMemo":         {Module: "react"},
	"useRef":          {Module: "react"},
	"useContext":      {Module: "react"},
	"useReducer":      {Module: "react"},
	"useTransition":   {Module: "react"},
	"useId":           {Module: "react"},
	"Fragment":        {Module: "react"},
	"Component":       {Module: "react"},
	"PureComponent":   {Module: "react"},
	"Suspense":        {Module: "react"},
	"createContext":   {Module: "react"},
	"createElement":   {Module: "react"},
	"cloneElement":    {Module: "react"},
	"forwardRef":      {Module: "react"},
	"memo":            {Module: "react"},
	"lazy":            {Module: "react"},
	"el":              {Module: "react", Name: "createElement"},
	// common default imports
	"ReactDOM":   {Module: "react-dom", IsDefault: true},
	"PropTypes":  {Module: "prop-types", IsDefault: true},
	"classNames": {Module: "classnames", IsDefault: true},
	"clsx":       {Module: "clsx", IsDefault: true},
	"axios":      {Module: "axios", IsDefault: true},
	"styled":     {Module: "styled-components", IsDefault: true},
	"moment":     {Module: "moment", IsDefault: true},
	"dayjs":      {Module: "dayjs", IsDefault: true},
	"_":          {Module: "lodash", IsDefault: true},
}

// Suggester produces import suggestions for missing identifiers, consulting
// the component catalog first and the builtin table second. Suggestions are
// memoized per instance.
type Suggester struct {
	cache *lru.Cache[string, *graph.ImportInfo]
}

// NewSuggester creates a Suggester with an empty memoization cache
func NewSuggester() *Suggester {
	cache, _ := lru.New[string, *graph.ImportInfo](512)
	return &Suggester{cache: cache}
}

// Reset drops every memoized suggestion. Must be called when the catalog the
// suggestions were derived from is replaced; stale entries would point into
// the previous corpus snapshot.
func (s *Suggester) Reset() {
	s.cache.Purge()
}

// Suggest returns an import that would satisfy the identifier, or nil when
// neither the catalog nor the builtin table knows it.
func (s *Suggester) Suggest(name string, catalog *graph.Catalog, fromPath string) *graph.ImportInfo {
	key := name + "|" + fromPath
	if cached, ok := s.cache.Get(key); ok {
		return cloneImport(cached)
	}
	suggested := suggest(name, catalog, fromPath)
	s.cache.Add(key, suggested)
	return cloneImport(suggested)
}

func suggest(name string, catalog *graph.Catalog, fromPath string) *graph.ImportInfo {
	if component := catalog.Lookup(name); component != nil {
		spec := graph.ImportSpecifier{Name: name, IsDefault: component.IsDefaultExport}
		return &graph.ImportInfo{
			Module:       relativeModule(fromPath, component.FilePath),
			Specifiers:   []graph.ImportSpecifier{spec},
			IsRelative:   true,
			ResolvedPath: component.FilePath,
		}
	}
	if entry, ok := builtinTable[name]; ok {
		spec := graph.ImportSpecifier{Name: name, IsDefault: entry.IsDefault}
		if entry.Name != "" {
			spec.Name = entry.Name
			spec.Alias = name
		}
		return &graph.ImportInfo{Module: entry.Module, Specifiers: []graph.ImportSpecifier{spec}}
	}
	return nil
}

// relativeModule renders a project-relative target path as a module specifier
// relative to the importing file, without its extension.
func relativeModule(fromPath, target string) string {
	target = strings.TrimSuffix(target, path.Ext(target))
	base := "."
	if fromPath != "" {
		base = path.Dir(fromPath)
	}
	rel := relPath(base, target)
	if !strings.HasPrefix(rel, ".") {
		rel = "./" + rel
	}
	return rel
}

// relPath computes a slash-separated relative path without touching the OS
// file system semantics.
func relPath(base, target string) string {
	if base == "." || base == "" {
		return target
	}
	baseParts := strings.Split(path.Clean(base), "/")
	targetParts := strings.Split(path.Clean(target), "/")
	shared := 0
	for shared < len(baseParts) && shared < len(targetParts) && baseParts[shared] == targetParts[shared] {
		shared++
	}
	var out []string
	for i := shared; i < len(baseParts); i++ {
		out = append(out, "..")
	}
	out = append(out, targetParts[shared:]...)
	return path.Join(out...)
}

func cloneImport(info *graph.ImportInfo) *graph.ImportInfo {
	if info == nil {
		return nil
	}
	clone := *info
	clone.Specifiers = append([]graph.ImportSpecifier(nil), info.Specifiers...)
	return &clone
}
