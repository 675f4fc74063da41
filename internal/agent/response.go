package agent

import (
	"context"

	"github.com/shrey-c/resume-chatbot/internal/agent/model"
	"github.com/shrey-c/resume-chatbot/internal/agent/prompts"
	"github.com/shrey-c/resume-chatbot/internal/llm"
	logx "github.com/shrey-c/resume-chatbot/pkg/logger"
)

// degradedResponse is the single static sentence substituted when the model
// cannot produce a draft. It is intentionally simpler than the keyword-routed
// fallback generator, which only runs when the whole workflow fails.
const degradedResponse = "I'd be happy to discuss my experience. Based on my background at Telstra working on GenAI and ML projects, I can share insights about my work. Could you please rephrase your question?"

// ResponseStage drafts a natural-language answer from the research findings
// via one higher-temperature model call.
type ResponseStage struct {
	gw        Generator
	modelCfg  model.ResponseModelConfig
	promptCfg model.PromptConfig
}

// NewResponseStage builds the stage.
func NewResponseStage(gw Generator, modelCfg model.ResponseModelConfig, promptCfg model.PromptConfig) *ResponseStage {
	return &ResponseStage{gw: gw, modelCfg: modelCfg, promptCfg: promptCfg}
}

// Generate writes DraftResponse on the state. A gateway failure substitutes
// the static degraded sentence and the pipeline proceeds to validation.
func (s *ResponseStage) Generate(ctx context.Context, st *model.ConversationState) {
	prompt, err := prompts.RenderResponse(s.promptCfg, st.UserQuery, st.ResearchFindings)
	if err != nil {
		st.DraftResponse = degradedResponse
		st.ResponseDegraded = true
		st.AppendTrace("response degraded: prompt render failed")
		logx.Error().Err(err).Msg("Response prompt render failed")
		return
	}

	draft, err := s.gw.Generate(ctx, prompt, llm.GenerateOptions{
		Temperature: s.modelCfg.Temperature,
		TopP:        s.modelCfg.TopP,
		MaxTokens:   s.modelCfg.MaxTokens,
	})
	if err != nil {
		st.DraftResponse = degradedResponse
		st.ResponseDegraded = true
		st.AppendTrace("response degraded: " + truncate(err.Error(), 120))
		logx.Warn().Err(err).Msg("Response stage degraded, substituting static draft")
		return
	}

	st.DraftResponse = draft
	st.ResponseDegraded = false
	st.AppendTrace("draft generated: " + truncate(draft, 200))
}
