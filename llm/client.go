package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/yunfengsay/part-render/graph"
	genai "google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// CompletionContext carries the analysis evidence given to the model when a
// fragment cannot be completed mechanically.
type CompletionContext struct {
	Fragment           string   `json:"fragment"`
	MissingIdentifiers []string `json:"missingIdentifiers"`
	Imports            []string `json:"imports"`
	Components         []string `json:"components"`
}

// Client is a thin wrapper around the official genai client. It only focuses
// on the completion call itself; callers re-run analysis on the returned code.
type Client struct {
	cli   *genai.Client
	model string
}

// NewClient creates a Gemini-backed completion client. The API key is read
// from the environment by the underlying client.
func NewClient(ctx context.Context, model string) (*Client, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	if model == "" {
		model = defaultModel
	}
	return &Client{cli: cli, model: model}, nil
}

// NewCompletionContext distills a dependency analysis into the prompt payload
func NewCompletionContext(fragment string, depCtx *graph.DependencyContext, catalog *graph.Catalog) *CompletionContext {
	result := &CompletionContext{
		Fragment:           fragment,
		MissingIdentifiers: depCtx.MissingIdentifiers,
	}
	for _, imp := range depCtx.Imports {
		result.Imports = append(result.Imports, imp.Module)
	}
	if catalog != nil {
		for _, component := range catalog.Components {
			result.Components = append(result.Components, component.Name)
		}
	}
	return result
}

// Complete asks the model to rewrite the fragment into a self-contained
// component, supplying the identifiers analysis could not resolve. The
// returned source should be fed back through the regular pipeline.
func (c *Client) Complete(ctx context.Context, completion *CompletionContext) (string, error) {
	prompt := buildPrompt(completion)
	resp, err := c.cli.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		&genai.GenerateContentConfig{},
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate completion: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty completion response")
	}
	return stripFences(resp.Candidates[0].Content.Parts[0].Text), nil
}

func buildPrompt(completion *CompletionContext) string {
	var builder strings.Builder
	builder.WriteString("Complete the following React component fragment so it compiles on its own.\n")
	builder.WriteString("Return only the source code, no explanation.\n")
	if len(completion.MissingIdentifiers) > 0 {
		builder.WriteString("\nUnresolved identifiers: ")
		builder.WriteString(strings.Join(completion.MissingIdentifiers, ", "))
		builder.WriteString("\n")
	}
	if len(completion.Components) > 0 {
		builder.WriteString("Project components available for import: ")
		builder.WriteString(strings.Join(completion.Components, ", "))
		builder.WriteString("\n")
	}
	builder.WriteString("\nFragment:\n")
	builder.WriteString(completion.Fragment)
	return builder.String()
}

// stripFences removes a surrounding markdown code fence when present
func stripFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	lines := strings.Split(trimmed, "\n")
	if len(lines) < 2 {
		return trimmed
	}
	lines = lines[1:]
	if strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
