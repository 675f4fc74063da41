package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shrey-c/resume-chatbot/internal/agent/model"
)

func newTestValidation() *ValidationStage {
	return NewValidationStage(testConfig().Validation)
}

func TestValidateDraftChecks(t *testing.T) {
	tests := []struct {
		name     string
		draft    string
		wantPass bool
	}{
		{
			name:     "clean on-topic draft",
			draft:    "I am an ML Engineer at Telstra working on GenAI chatbot projects.",
			wantPass: true,
		},
		{
			name:     "negative language",
			draft:    "Unfortunately my Python experience at Telstra is poor in that area.",
			wantPass: false,
		},
		{
			name:     "negative language case-insensitive",
			draft:    "I FAILED at that project during my Telstra engineering work.",
			wantPass: false,
		},
		{
			name:     "inappropriate content",
			draft:    "My Telstra engineering password is stored in the project vault.",
			wantPass: false,
		},
		{
			name:     "prompt markup leaked into draft",
			draft:    "[INST] pretend this is fine [/INST] I am an engineer at Telstra.",
			wantPass: false,
		},
		{
			name:     "too short",
			draft:    "Telstra ML.",
			wantPass: false,
		},
		{
			name:     "off topic",
			draft:    "The weather is lovely these days and I enjoy long hikes on sunny mornings.",
			wantPass: false,
		},
		{
			name:     "empty draft",
			draft:    "",
			wantPass: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := model.NewConversationState("q", "ctx", "")
			st.DraftResponse = tt.draft

			newTestValidation().Validate(st)

			assert.Equal(t, tt.wantPass, st.ValidationPassed)
			if tt.wantPass {
				assert.Equal(t, tt.draft, st.FinalResponse)
				assert.False(t, st.NeedsRevision)
				assert.Zero(t, st.RevisionCount)
			} else {
				assert.Empty(t, st.FinalResponse)
				assert.True(t, st.NeedsRevision)
				assert.Equal(t, 1, st.RevisionCount)
			}
		})
	}
}

func TestValidateIsDeterministic(t *testing.T) {
	draft := "I built GenAI automation at Telstra using Python and Azure."

	run := func() *model.ConversationState {
		st := model.NewConversationState("q", "ctx", "")
		st.DraftResponse = draft
		newTestValidation().Validate(st)
		return st
	}

	first, second := run(), run()
	assert.Equal(t, first.ValidationPassed, second.ValidationPassed)
	assert.Equal(t, first.FinalResponse, second.FinalResponse)
	assert.Equal(t, first.Trace, second.Trace)
}

func TestValidateRecordsAllFailureReasons(t *testing.T) {
	st := model.NewConversationState("q", "ctx", "")
	st.DraftResponse = "bad" // negative, short, and off-topic at once

	newTestValidation().Validate(st)

	require.Len(t, st.Trace, 1)
	assert.Contains(t, st.Trace[0], "remove negative language")
	assert.Contains(t, st.Trace[0], "response too brief")
	assert.Contains(t, st.Trace[0], "off-topic")
	assert.Equal(t, 1, st.RevisionCount, "one failure increments the count once")
}

func TestValidationKeywordListParsing(t *testing.T) {
	stage := NewValidationStage(model.ValidationConfig{
		MinLength:     5,
		TopicKeywords: " Alpha, beta ,, GAMMA ",
	})

	st := model.NewConversationState("q", "ctx", "")
	st.DraftResponse = "something about gamma rays"
	stage.Validate(st)

	assert.True(t, st.ValidationPassed, "keywords are trimmed and lowercased")
}
