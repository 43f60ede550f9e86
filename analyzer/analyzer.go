package analyzer

import (
	"context"
	"errors"
	"fmt"
	"sort"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"

	"github.com/yunfengsay/part-render/graph"
)

// ErrParse indicates the input was not syntactically analyzable. A fragment
// that fails to parse never yields a partial DependencyContext.
var ErrParse = errors.New("parse error")

// Analyzer extracts import statements from a source fragment and classifies
// every referenced identifier as declared, built-in, or missing.
type Analyzer struct {
	config *graph.Config
}

// New creates an Analyzer with the provided configuration
func New(config *graph.Config) *Analyzer {
	if config == nil {
		config = graph.DefaultConfig()
	}
	return &Analyzer{config: config}
}

// Parse parses source text into a syntax tree using the TSX grammar, which
// accepts plain JS, JSX, TS and TSX surfaces alike.
func Parse(src []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(tsx.GetLanguage())
	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}
	return tree, nil
}

// ParseScript parses source text with the plain JavaScript grammar
func ParseScript(src []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(javascript.GetLanguage())
	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}
	return tree, nil
}

// Analyze parses a fragment and returns its DependencyContext. The optional
// filePath is used in error messages only. Analysis is a pure function of the
// fragment text plus the fixed builtin set.
func (a *Analyzer) Analyze(source []byte, filePath string) (*graph.DependencyContext, error) {
	tree, err := Parse(source)
	if err != nil {
		return nil, err
	}
	root := tree.RootNode()
	if root.HasError() {
		if filePath == "" {
			filePath = "fragment"
		}
		return nil, fmt.Errorf("%w: %s is not syntactically analyzable", ErrParse, filePath)
	}

	imports := collectImports(root, source)

	declared := make(map[string]struct{})
	used := make(map[string]struct{})
	collectIdentifiers(root, source, declared, used)

	// Import-bound names are declarations too.
	for _, imp := range imports {
		for _, name := range imp.BoundNames() {
			declared[name] = struct{}{}
		}
	}

	ctx := &graph.DependencyContext{
		Imports:         imports,
		ResolvedModules: map[string]string{},
	}
	for name := range used {
		ctx.UsedIdentifiers = append(ctx.UsedIdentifiers, name)
	}
	sort.Strings(ctx.UsedIdentifiers)

	for _, name := range ctx.UsedIdentifiers {
		if _, ok := declared[name]; ok {
			continue
		}
		if IsBuiltin(name) {
			continue
		}
		ctx.MissingIdentifiers = append(ctx.MissingIdentifiers, name)
	}
	return ctx, nil
}
