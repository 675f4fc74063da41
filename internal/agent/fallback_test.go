package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackBucketRouting(t *testing.T) {
	tests := []struct {
		name    string
		message string
		wantIn  string
	}{
		{"experience keyword", "Tell me about your experience", "ML Engineer at Telstra"},
		{"role keyword", "What is your current role?", "ML Engineer at Telstra"},
		{"skill keyword", "What skills do you have?", "AI/ML technologies"},
		{"tech keyword uppercase", "What TECH do you use?", "AI/ML technologies"},
		{"project keyword", "Which projects did you do?", "AskTelstra (reduced costs by 88%)"},
		{"built keyword", "What have you built?", "AskTelstra (reduced costs by 88%)"},
		{"education keyword", "Where did you study?", "VJTI"},
		{"no keyword", "Hello there", "What specific aspect of my background"},
		{"empty message", "", "What specific aspect of my background"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, Fallback(tt.message), tt.wantIn)
		})
	}
}

func TestFallbackBucketPriorityOrder(t *testing.T) {
	// "work" sits in the first bucket; a message also matching later buckets
	// still routes to it.
	answer := Fallback("Tell me about the work on your projects and skills")
	assert.Contains(t, answer, "ML Engineer at Telstra")
}

func TestFallbackIsDeterministic(t *testing.T) {
	msg := "What projects have you developed?"
	assert.Equal(t, Fallback(msg), Fallback(msg))
}
