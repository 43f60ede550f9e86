package assembler

import (
	"fmt"
	"strings"

	"github.com/yunfengsay/part-render/graph"
)

// Assembler merges a fragment's own imports with suggested and explicitly
// requested ones, and produces a single compilable source unit.
type Assembler struct {
	config    *graph.Config
	suggester *Suggester
}

// New creates an Assembler with the provided configuration
func New(config *graph.Config) *Assembler {
	if config == nil {
		config = graph.DefaultConfig()
	}
	return &Assembler{config: config, suggester: NewSuggester()}
}

// Reset clears the suggestion memoization; call after the catalog changes
func (a *Assembler) Reset() {
	a.suggester.Reset()
}

// Assemble produces one compilable source unit from the fragment, its
// dependency context, and the catalog. It returns the unit, the merged
// import list in emission order, and warnings for identifiers that neither
// the catalog nor the builtin table could satisfy.
func (a *Assembler) Assemble(fragment string, ctx *graph.DependencyContext, catalog *graph.Catalog,
	additional []*graph.ImportInfo, mockProps map[string]interface{}, fragmentPath string) (string, []*graph.ImportInfo, []string) {

	var warnings []string
	merged := newImportSet()

	for _, imp := range ctx.Imports {
		merged.add(imp)
	}

	for _, name := range ctx.MissingIdentifiers {
		suggested := a.suggester.Suggest(name, catalog, fragmentPath)
		if suggested == nil {
			warnings = append(warnings, fmt.Sprintf("no import found for identifier %q", name))
			continue
		}
		merged.add(suggested)
	}

	for _, imp := range additional {
		merged.add(imp)
	}

	// The base UI runtime default import is always present.
	if !merged.hasDefaultOf(a.config.RuntimeModule) {
		merged.prepend(&graph.ImportInfo{
			Module:     a.config.RuntimeModule,
			Specifiers: []graph.ImportSpecifier{{Name: a.config.RuntimeGlobal, IsDefault: true}},
		})
	}

	mergedImports := merged.imports()
	builder := &strings.Builder{}
	for _, imp := range mergedImports {
		builder.WriteString(EmitImport(imp))
		builder.WriteString("\n")
	}
	builder.WriteString("\n")
	builder.WriteString(strings.Trim(stripImports(fragment), "\n"))
	builder.WriteString("\n")

	if !hasExport(fragment) {
		name := detectComponentName(fragment)
		if name == "" {
			name = a.config.FallbackComponent
		}
		builder.WriteString("\n")
		builder.WriteString(buildWrapper(name, mockProps))
	}

	return builder.String(), mergedImports, warnings
}

// importSet deduplicates imports keyed by module plus effective specifier
// set, preserving insertion order; the first writer of a key wins.
type importSet struct {
	keys  []string
	byKey map[string]*graph.ImportInfo
}

func newImportSet() *importSet {
	return &importSet{byKey: make(map[string]*graph.ImportInfo)}
}

func (s *importSet) add(imp *graph.ImportInfo) {
	key := imp.Key()
	if _, ok := s.byKey[key]; ok {
		return
	}
	s.keys = append(s.keys, key)
	s.byKey[key] = imp
}

func (s *importSet) prepend(imp *graph.ImportInfo) {
	key := imp.Key()
	if _, ok := s.byKey[key]; ok {
		return
	}
	s.keys = append([]string{key}, s.keys...)
	s.byKey[key] = imp
}

func (s *importSet) imports() []*graph.ImportInfo {
	out := make([]*graph.ImportInfo, 0, len(s.keys))
	for _, key := range s.keys {
		out = append(out, s.byKey[key])
	}
	return out
}

func (s *importSet) hasDefaultOf(module string) bool {
	for _, imp := range s.byKey {
		if imp.Module != module {
			continue
		}
		for _, spec := range imp.Specifiers {
			if spec.IsDefault {
				return true
			}
		}
	}
	return false
}
