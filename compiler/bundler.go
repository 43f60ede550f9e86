package compiler

import (
	"context"

	"github.com/yunfengsay/part-render/graph"
)

// Bundler is the transpile/bundle collaborator boundary. It receives one
// assembled source unit plus a resolution map that its module-resolution
// hook must honor verbatim before falling back to its own resolution.
type Bundler interface {
	Build(ctx context.Context, req *graph.BuildRequest) (string, error)
}

// NopBundler passes the assembled source through unchanged, for pipelines
// that only need assembly.
type NopBundler struct{}

// Build returns the assembled source as-is
func (NopBundler) Build(_ context.Context, req *graph.BuildRequest) (string, error) {
	return req.Code, nil
}
