// Package agent implements the multi-stage conversational core: a research ->
// response -> validation pipeline over a local language model, with bounded
// revision retries and a deterministic fallback path.
package agent

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/shrey-c/resume-chatbot/internal/agent/model"
	"github.com/shrey-c/resume-chatbot/internal/resume"
	logx "github.com/shrey-c/resume-chatbot/pkg/logger"
)

// RedirectMessage is returned for messages rejected by the safety pre-check.
const RedirectMessage = "I can only answer questions about my professional background and experience. Please ask something related to my resume."

// Config composes everything needed to build the chatbot end-to-end, mirroring
// the per-component envconfig structs in internal/agent/model.
type Config struct {
	Research   model.ResearchModelConfig
	Response   model.ResponseModelConfig
	Validation model.ValidationConfig
	Prompt     model.PromptConfig
	Workflow   model.WorkflowConfig
}

// Chatbot is the orchestrator the HTTP shell talks to. Chat never lets a
// model or workflow failure escape as an error.
type Chatbot struct {
	gw       Generator
	provider ContextProvider
	workflow *Workflow
}

// NewChatbot builds the three stages and the workflow around the given
// gateway and context provider.
func NewChatbot(gw Generator, provider ContextProvider, cfg Config) *Chatbot {
	research := NewResearchStage(gw, cfg.Research, cfg.Prompt)
	response := NewResponseStage(gw, cfg.Response, cfg.Prompt)
	validation := NewValidationStage(cfg.Validation)

	return &Chatbot{
		gw:       gw,
		provider: provider,
		workflow: NewWorkflow(research, response, validation, cfg.Workflow),
	}
}

// Chat processes one user message through the workflow and always returns a
// non-empty answer: the validated response, the redirect for rejected input,
// or a deterministic fallback when the pipeline cannot produce one.
//
// The message pre-check repeats the HTTP boundary's validation so a rejected
// message never reaches the model even if the shell's check is bypassed.
func (c *Chatbot) Chat(ctx context.Context, userMessage string) string {
	trimmed, err := resume.ValidateChatMessage(userMessage)
	if err != nil {
		logx.Warn().Err(err).Msg("Chat message rejected by safety pre-check")
		return RedirectMessage
	}

	runID := uuid.NewString()
	primary, fallback := c.provider.Context(ctx)

	st := model.NewConversationState(trimmed, primary, fallback)
	st.AppendTrace("run " + runID + " started")

	answer := c.runSafely(ctx, runID, st)
	logx.Info().
		Str("run_id", runID).
		Bool("validated", st.ValidationPassed).
		Int("revision_count", st.RevisionCount).
		Msg("Chat completed")
	return answer
}

// runSafely executes the workflow and converts any panic into the fallback
// answer. This is the last line of defense: no failure inside the state
// machine may reach the caller of Chat.
func (c *Chatbot) runSafely(ctx context.Context, runID string, st *model.ConversationState) (answer string) {
	defer func() {
		if r := recover(); r != nil {
			logx.Error().
				Str("run_id", runID).
				Str("panic", fmt.Sprint(r)).
				Msg("Workflow panicked, returning fallback answer")
			answer = Fallback(st.UserQuery)
		}
	}()

	c.workflow.Run(ctx, st)

	// A degraded draft can pass validation (the substitute sentence is benign
	// and on-topic), but it carries no information about the actual question.
	// Route it to the keyword fallback instead of presenting it as an answer.
	if st.FinalResponse != "" && !st.ResponseDegraded {
		return st.FinalResponse
	}
	return Fallback(st.UserQuery)
}

// CheckHealth reports whether the language model backend is reachable.
func (c *Chatbot) CheckHealth(ctx context.Context) bool {
	return c.gw.CheckHealth(ctx)
}
