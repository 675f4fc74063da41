package agent

import (
	"regexp"
	"strings"

	"github.com/shrey-c/resume-chatbot/internal/agent/model"
	logx "github.com/shrey-c/resume-chatbot/pkg/logger"
)

// Deterministic draft checks. Validation deliberately makes no model call so
// the verdict is reproducible and not itself subject to hallucination.
var negativePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(bad|poor|terrible|awful|weak|failed|failure|unable|can't|cannot)\b`),
	regexp.MustCompile(`(?i)\b(inexperienced|beginner|junior|entry-level)\b`),
	regexp.MustCompile(`(?i)\b(doesn't know|don't know|no experience|never worked)\b`),
}

var inappropriatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(password|secret|confidential|private)\b`),
	regexp.MustCompile(`(?i)\b(hack|exploit|vulnerability)\b`),
	regexp.MustCompile(`(?i)\[INST\]|\[/INST\]|<system>|</system>`),
}

// ValidationStage is the pure, rule-based pass/fail judgment on a draft.
type ValidationStage struct {
	minLength     int
	topicKeywords []string
}

// NewValidationStage parses the configured comma-separated topic keyword list.
func NewValidationStage(cfg model.ValidationConfig) *ValidationStage {
	var keywords []string
	for _, kw := range strings.Split(cfg.TopicKeywords, ",") {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return &ValidationStage{
		minLength:     cfg.MinLength,
		topicKeywords: keywords,
	}
}

// Validate runs the four checks on DraftResponse and always returns a fully
// populated state: either FinalResponse is set, or RevisionCount has been
// incremented and the failure reasons appended to the trace.
//
// The feedback list is diagnostic only. It is never re-injected into the next
// response prompt; a revision reruns the response stage unchanged and relies
// on sampling variance to change the draft.
func (s *ValidationStage) Validate(st *model.ConversationState) {
	draft := st.DraftResponse

	hasNegative := matchAny(negativePatterns, draft)
	hasInappropriate := matchAny(inappropriatePatterns, draft)
	tooShort := len(strings.TrimSpace(draft)) < s.minLength
	staysOnTopic := s.onTopic(draft)

	if hasNegative || hasInappropriate || tooShort || !staysOnTopic {
		st.ValidationPassed = false
		st.NeedsRevision = true
		st.RevisionCount++

		var feedback []string
		if hasNegative {
			feedback = append(feedback, "remove negative language")
		}
		if hasInappropriate {
			feedback = append(feedback, "contains inappropriate content")
		}
		if tooShort {
			feedback = append(feedback, "response too brief")
		}
		if !staysOnTopic {
			feedback = append(feedback, "off-topic, focus on resume")
		}

		st.AppendTrace("validation failed: " + strings.Join(feedback, ", "))
		logx.Debug().
			Int("revision_count", st.RevisionCount).
			Strs("feedback", feedback).
			Msg("Draft failed validation")
		return
	}

	st.ValidationPassed = true
	st.NeedsRevision = false
	st.FinalResponse = draft
	st.AppendTrace("validation passed: response approved")
}

func (s *ValidationStage) onTopic(draft string) bool {
	lower := strings.ToLower(draft)
	for _, kw := range s.topicKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func matchAny(patterns []*regexp.Regexp, text string) bool {
	for _, p := range patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// truncate limits trace entries to a readable length.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
