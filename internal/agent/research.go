package agent

import (
	"context"
	"fmt"

	"github.com/shrey-c/resume-chatbot/internal/agent/model"
	"github.com/shrey-c/resume-chatbot/internal/agent/prompts"
	"github.com/shrey-c/resume-chatbot/internal/llm"
	logx "github.com/shrey-c/resume-chatbot/pkg/logger"
)

// ResearchStage turns the user query plus resume context into a bulleted
// findings list via one low-temperature model call.
type ResearchStage struct {
	gw        Generator
	modelCfg  model.ResearchModelConfig
	promptCfg model.PromptConfig
}

// NewResearchStage builds the stage.
func NewResearchStage(gw Generator, modelCfg model.ResearchModelConfig, promptCfg model.PromptConfig) *ResearchStage {
	return &ResearchStage{gw: gw, modelCfg: modelCfg, promptCfg: promptCfg}
}

// Analyze writes ResearchFindings on the state. A gateway failure is not
// propagated: the findings field receives a degraded placeholder and the
// pipeline proceeds, so a model outage never aborts the conversation.
func (s *ResearchStage) Analyze(ctx context.Context, st *model.ConversationState) {
	contextText, contextSource := st.ActiveContext()

	prompt, err := prompts.RenderResearch(s.promptCfg, st.UserQuery, contextText, contextSource)
	if err != nil {
		st.ResearchFindings = fmt.Sprintf("research degraded: %v", err)
		st.ResearchDegraded = true
		st.AppendTrace("research degraded: prompt render failed")
		logx.Error().Err(err).Msg("Research prompt render failed")
		return
	}

	findings, err := s.gw.Generate(ctx, prompt, llm.GenerateOptions{
		Temperature: s.modelCfg.Temperature,
		TopP:        s.modelCfg.TopP,
		MaxTokens:   s.modelCfg.MaxTokens,
	})
	if err != nil {
		st.ResearchFindings = fmt.Sprintf("research degraded: %v", err)
		st.ResearchDegraded = true
		st.AppendTrace("research degraded: " + truncate(err.Error(), 120))
		logx.Warn().Err(err).Msg("Research stage degraded, continuing with placeholder findings")
		return
	}

	st.ResearchFindings = findings
	st.ResearchDegraded = false
	st.AppendTrace("research completed: " + truncate(findings, 200))
	logx.Debug().Str("context_source", contextSource).Msg("Research stage completed")
}
