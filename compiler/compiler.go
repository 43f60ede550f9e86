package compiler

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/yunfengsay/part-render/analyzer"
	"github.com/yunfengsay/part-render/assembler"
	"github.com/yunfengsay/part-render/catalog"
	"github.com/yunfengsay/part-render/graph"
	"github.com/yunfengsay/part-render/resolver"
)

// Request describes one fragment compilation
type Request struct {
	Fragment          string
	Path              string // optional fragment path, used for relative resolution
	AdditionalImports []*graph.ImportInfo
	MockProps         map[string]interface{}
}

// Compiler orchestrates the partial-compilation pipeline: analysis, module
// resolution, import synthesis, assembly and the hand-off to the bundler.
// One Compiler owns its resolver and suggestion caches; independent pipelines
// use independent instances. Operations are not safe for concurrent use of a
// shared instance.
type Compiler struct {
	config *graph.Config
	log    *logrus.Logger

	project  *graph.Project
	analyzer *analyzer.Analyzer
	resolver *resolver.Resolver
	builder  *catalog.Builder
	asm      *assembler.Assembler
	bundler  Bundler

	catalog     *graph.Catalog
	fingerprint uint64
}

// New creates a Compiler with the provided configuration
func New(config *graph.Config, log *logrus.Logger) *Compiler {
	if config == nil {
		config = graph.DefaultConfig()
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Compiler{
		config:   config,
		log:      log,
		analyzer: analyzer.New(config),
		builder:  catalog.NewBuilder(config, log),
		asm:      assembler.New(config),
		bundler:  NopBundler{},
	}
}

// SetBundler installs the transpile/bundle collaborator
func (c *Compiler) SetBundler(bundler Bundler) {
	if bundler == nil {
		bundler = NopBundler{}
	}
	c.bundler = bundler
}

// SetProject installs a corpus snapshot, rebuilding the resolver and the
// component catalog. The catalog rebuild is skipped when the corpus
// fingerprint is unchanged; the new catalog replaces the old one wholesale.
func (c *Compiler) SetProject(project *graph.Project) {
	c.project = project
	c.resolver = resolver.New(project)
	if project == nil {
		c.catalog = graph.NewCatalog(nil)
		c.fingerprint = 0
		c.asm.Reset()
		return
	}
	fingerprint, err := graph.Fingerprint(project.Files)
	if err == nil && fingerprint == c.fingerprint && c.catalog != nil {
		return
	}
	c.catalog = c.builder.Build(project)
	c.fingerprint = fingerprint
	c.asm.Reset()
	c.log.WithFields(logrus.Fields{
		"files":      len(project.Files),
		"components": c.catalog.Len(),
	}).Debug("component catalog rebuilt")
}

// Catalog returns the current catalog snapshot
func (c *Compiler) Catalog() *graph.Catalog {
	if c.catalog == nil {
		c.catalog = graph.NewCatalog(nil)
	}
	return c.catalog
}

// Analyze exposes the fragment analysis step, for callers that want the
// DependencyContext without assembling, such as AI-assisted completion.
func (c *Compiler) Analyze(fragment, fragmentPath string) (*graph.DependencyContext, error) {
	return c.analyzer.Analyze([]byte(fragment), fragmentPath)
}

// Compile runs the full pipeline on one fragment. Failures of any stage are
// converted into a structured result; nothing propagates past this boundary.
func (c *Compiler) Compile(ctx context.Context, req *Request) (result *graph.CompilationResult) {
	defer func() {
		if r := recover(); r != nil {
			result = graph.Failed(fmt.Sprintf("compilation panic: %v", r), nil)
		}
	}()

	depCtx, err := c.analyzer.Analyze([]byte(req.Fragment), req.Path)
	if err != nil {
		return graph.Failed(err.Error(), nil)
	}

	var warnings []string
	if c.resolver != nil {
		warnings = c.resolveImports(depCtx, req.Path)
	}

	code, merged, asmWarnings := c.asm.Assemble(req.Fragment, depCtx, c.Catalog(),
		req.AdditionalImports, req.MockProps, req.Path)
	warnings = append(warnings, asmWarnings...)

	build := &graph.BuildRequest{Code: code, ResolvedModules: resolutionMap(merged, depCtx)}
	output, err := c.bundler.Build(ctx, build)
	if err != nil {
		return graph.Failed(fmt.Sprintf("build failed: %v", err), warnings)
	}
	return graph.Compiled(output, warnings)
}

// CompileBatch compiles fragments sequentially, preserving input order
func (c *Compiler) CompileBatch(ctx context.Context, reqs []*Request) []*graph.CompilationResult {
	results := make([]*graph.CompilationResult, len(reqs))
	for i, req := range reqs {
		results[i] = c.Compile(ctx, req)
	}
	return results
}

// resolveImports maps every fragment import to a corpus path. Misses are
// never fatal: the specifier passes through to the bundler's own external
// module policy, with a warning when the package is not a known dependency.
func (c *Compiler) resolveImports(depCtx *graph.DependencyContext, fromPath string) []string {
	var warnings []string
	for _, imp := range depCtx.Imports {
		resolved := c.resolver.Resolve(imp.Module, fromPath)
		if resolved != "" {
			imp.ResolvedPath = resolved
			depCtx.ResolvedModules[imp.Module] = resolved
			continue
		}
		if imp.IsRelative {
			warnings = append(warnings, fmt.Sprintf("could not resolve %q; passed through as external", imp.Module))
		} else if c.project != nil && c.project.Dependencies != nil {
			if _, known := c.project.Dependencies[packageName(imp.Module)]; !known {
				warnings = append(warnings, fmt.Sprintf("module %q is not a known dependency; passed through as external", imp.Module))
			}
		}
		c.log.WithField("module", imp.Module).Debug("module left unresolved")
	}
	return warnings
}

// resolutionMap collects the resolved paths of all merged imports for the
// bundler's module-resolution hook.
func resolutionMap(merged []*graph.ImportInfo, depCtx *graph.DependencyContext) map[string]string {
	out := make(map[string]string, len(depCtx.ResolvedModules))
	for module, resolved := range depCtx.ResolvedModules {
		out[module] = resolved
	}
	for _, imp := range merged {
		if imp.ResolvedPath != "" {
			out[imp.Module] = imp.ResolvedPath
		}
	}
	return out
}

// packageName strips any subpath from a bare module specifier, honoring
// scoped package names.
func packageName(module string) string {
	parts := 1
	if len(module) > 0 && module[0] == '@' {
		parts = 2
	}
	idx := 0
	for seen := 0; idx < len(module); idx++ {
		if module[idx] == '/' {
			seen++
			if seen == parts {
				break
			}
		}
	}
	return module[:idx]
}
