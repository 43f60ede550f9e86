package resolver

import (
	"path"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/yunfengsay/part-render/graph"
)

// candidate extensions and index files tried in order during resolution
var extensions = []string{"", ".tsx", ".ts", ".jsx", ".js", ".json"}

// Resolver maps module specifiers to concrete project-relative paths.
// Resolution results, including misses, are memoized per instance; concurrent
// callers sharing one instance must serialize access or use their own.
type Resolver struct {
	project *graph.Project
	cache   *lru.Cache[string, string]
}

// New creates a Resolver over the given corpus snapshot
func New(project *graph.Project) *Resolver {
	cache, _ := lru.New[string, string](1024)
	return &Resolver{project: project, cache: cache}
}

// Resolve maps a module specifier to a project-relative path, or "" when the
// specifier is external or unresolvable. Resolution misses are not errors;
// the caller passes the specifier through to the bundler's own policy.
func (r *Resolver) Resolve(module, fromPath string) string {
	key := module + "|" + cacheScope(fromPath)
	if resolved, ok := r.cache.Get(key); ok {
		return resolved
	}
	resolved := r.resolve(module, fromPath)
	r.cache.Add(key, resolved)
	return resolved
}

func (r *Resolver) resolve(module, fromPath string) string {
	if r.project == nil {
		return ""
	}

	// Path-alias resolution from the type config wins when it applies.
	if resolved := r.resolveAlias(module); resolved != "" {
		return resolved
	}

	if graph.IsRelativeModule(module) {
		base := "."
		if fromPath != "" {
			base = path.Dir(fromPath)
		}
		return r.lookup(path.Join(base, module))
	}

	// Bare specifiers resolve against the configured base path, if any.
	if cfg := r.project.TypeConfig; cfg != nil && cfg.BaseURL != "" {
		if resolved := r.lookup(path.Join(cfg.BaseURL, module)); resolved != "" {
			return resolved
		}
	}

	// External package: deferred to the bundler.
	return ""
}

// lookup applies the ecosystem file-resolution order against the corpus:
// exact path, known extensions, then directory index files.
func (r *Resolver) lookup(cleaned string) string {
	cleaned = path.Clean(cleaned)
	for _, ext := range extensions {
		if candidate := cleaned + ext; r.project.HasPath(candidate) {
			return candidate
		}
	}
	for _, ext := range extensions[1:] {
		if candidate := path.Join(cleaned, "index"+ext); r.project.HasPath(candidate) {
			return candidate
		}
	}
	return ""
}

func cacheScope(fromPath string) string {
	if fromPath == "" {
		return "root"
	}
	return fromPath
}
