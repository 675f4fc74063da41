package agent

import (
	"context"
	"sync"

	"github.com/shrey-c/resume-chatbot/internal/llm"
)

// stubResult scripts one Generate outcome.
type stubResult struct {
	text string
	err  error
}

// stubGateway is a scriptable Generator. Results are consumed in call order;
// the last result repeats once the script is exhausted.
type stubGateway struct {
	mu      sync.Mutex
	results []stubResult
	healthy bool

	calls   int
	prompts []string
	opts    []llm.GenerateOptions
}

func (g *stubGateway) Generate(_ context.Context, prompt string, opts llm.GenerateOptions) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.calls++
	g.prompts = append(g.prompts, prompt)
	g.opts = append(g.opts, opts)

	if len(g.results) == 0 {
		return "", nil
	}
	idx := g.calls - 1
	if idx >= len(g.results) {
		idx = len(g.results) - 1
	}
	return g.results[idx].text, g.results[idx].err
}

func (g *stubGateway) CheckHealth(context.Context) bool {
	return g.healthy
}

// panicGateway simulates a crash inside a stage call.
type panicGateway struct{}

func (panicGateway) Generate(context.Context, string, llm.GenerateOptions) (string, error) {
	panic("gateway crashed")
}

func (panicGateway) CheckHealth(context.Context) bool { return false }

// fixedContext is a ContextProvider returning constant blobs.
type fixedContext struct {
	primary  string
	fallback string
}

func (f fixedContext) Context(context.Context) (string, string) {
	return f.primary, f.fallback
}
