package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shrey-c/resume-chatbot/internal/agent/model"
)

func newTestWorkflow(gw Generator) *Workflow {
	cfg := testConfig()
	return NewWorkflow(
		NewResearchStage(gw, cfg.Research, cfg.Prompt),
		NewResponseStage(gw, cfg.Response, cfg.Prompt),
		NewValidationStage(cfg.Validation),
		cfg.Workflow,
	)
}

func TestWorkflowRevisionCountBoundedByCap(t *testing.T) {
	gw := &stubGateway{
		results: []stubResult{
			{text: "- findings"},
			{text: "ok"}, // always fails validation
		},
	}
	st := model.NewConversationState("Tell me about your projects", "ctx", "")

	newTestWorkflow(gw).Run(context.Background(), st)

	assert.Equal(t, 2, st.RevisionCount)
	assert.False(t, st.ValidationPassed)
	assert.Empty(t, st.FinalResponse)
	// Research runs once; the response stage never runs more than cap times.
	assert.Equal(t, 3, gw.calls)
}

func TestWorkflowTerminalStateExclusivity(t *testing.T) {
	passing := "I am an ML Engineer at Telstra working on GenAI projects."

	tests := []struct {
		name  string
		draft string
	}{
		{"validated answer", passing},
		{"rejected draft", "nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &stubGateway{results: []stubResult{
				{text: "- findings"},
				{text: tt.draft},
			}}
			st := model.NewConversationState("question about work", "ctx", "")

			newTestWorkflow(gw).Run(context.Background(), st)

			if st.ValidationPassed {
				assert.Equal(t, tt.draft, st.FinalResponse)
			} else {
				assert.Empty(t, st.FinalResponse)
			}
		})
	}
}

func TestWorkflowRevisionRerunsResponseWithSamePrompt(t *testing.T) {
	gw := &stubGateway{
		results: []stubResult{
			{text: "- findings"},
			{text: "ok"},
		},
	}
	st := model.NewConversationState("Tell me about your projects", "ctx", "")

	newTestWorkflow(gw).Run(context.Background(), st)

	// Validation feedback stays in the trace. The revision prompt carries no
	// feedback and is identical to the first response prompt.
	require.Len(t, gw.prompts, 3)
	assert.Equal(t, gw.prompts[1], gw.prompts[2])
}

func TestWorkflowProceedsWhenResearchDegrades(t *testing.T) {
	gw := &stubGateway{
		results: []stubResult{
			{err: context.DeadlineExceeded},
			{text: "Despite limited findings, I can say I work as an ML Engineer at Telstra."},
		},
	}
	st := model.NewConversationState("What is your role?", "ctx", "")

	newTestWorkflow(gw).Run(context.Background(), st)

	assert.True(t, st.ResearchDegraded)
	assert.Contains(t, st.ResearchFindings, "research degraded:")
	assert.True(t, st.ValidationPassed)
	assert.NotEmpty(t, st.FinalResponse)
}

func TestWorkflowStageSamplingOptions(t *testing.T) {
	gw := &stubGateway{
		results: []stubResult{
			{text: "- findings"},
			{text: "I am an ML Engineer at Telstra working on GenAI projects."},
		},
	}
	st := model.NewConversationState("question about work", "ctx", "")

	newTestWorkflow(gw).Run(context.Background(), st)

	require.Len(t, gw.opts, 2)
	assert.Less(t, gw.opts[0].Temperature, gw.opts[1].Temperature, "research samples colder than response")
}
