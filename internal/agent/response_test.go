package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shrey-c/resume-chatbot/internal/agent/model"
	"github.com/shrey-c/resume-chatbot/internal/llm"
)

func TestResponsePromptCarriesFindings(t *testing.T) {
	gw := &stubGateway{results: []stubResult{{text: "a draft"}}}
	cfg := testConfig()
	stage := NewResponseStage(gw, cfg.Response, cfg.Prompt)

	st := model.NewConversationState("What is your role?", "ctx", "")
	st.ResearchFindings = "- KEY FINDING ALPHA"
	stage.Generate(context.Background(), st)

	require.Len(t, gw.prompts, 1)
	assert.Contains(t, gw.prompts[0], "KEY FINDING ALPHA")
	assert.Contains(t, gw.prompts[0], "What is your role?")
	assert.Equal(t, "a draft", st.DraftResponse)
	assert.False(t, st.ResponseDegraded)
}

func TestResponseSubstitutesStaticDraftOnGatewayFailure(t *testing.T) {
	gw := &stubGateway{results: []stubResult{{err: llm.ErrTimeout}}}
	cfg := testConfig()
	stage := NewResponseStage(gw, cfg.Response, cfg.Prompt)

	st := model.NewConversationState("q", "ctx", "")
	stage.Generate(context.Background(), st)

	assert.Equal(t, degradedResponse, st.DraftResponse)
	assert.True(t, st.ResponseDegraded)
}

func TestResponseClearsDegradedFlagOnRecovery(t *testing.T) {
	gw := &stubGateway{results: []stubResult{
		{err: llm.ErrTimeout},
		{text: "I am an ML Engineer at Telstra working on GenAI projects."},
	}}
	cfg := testConfig()
	stage := NewResponseStage(gw, cfg.Response, cfg.Prompt)

	st := model.NewConversationState("q", "ctx", "")
	stage.Generate(context.Background(), st)
	require.True(t, st.ResponseDegraded)

	stage.Generate(context.Background(), st)
	assert.False(t, st.ResponseDegraded)
	assert.NotEqual(t, degradedResponse, st.DraftResponse)
}
