package agent

import (
	"context"

	"github.com/shrey-c/resume-chatbot/internal/llm"
)

// Generator is the workflow's view of the language model backend. It is a
// single-shot prompt/completion interface; stages are unaware of how the
// completion is produced.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts llm.GenerateOptions) (string, error)
	CheckHealth(ctx context.Context) bool
}

// ContextProvider supplies the grounding text for one workflow run. Primary
// (site content) is preferred over fallback (structured resume data); either
// may be empty.
type ContextProvider interface {
	Context(ctx context.Context) (primary, fallback string)
}
