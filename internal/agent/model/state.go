package model

// ConversationState is the single mutable record threaded through one workflow
// run. The workflow owns it exclusively: stages receive it, write only their
// designated fields, and hold no reference beyond their own invocation. It is
// created fresh per chat request and discarded once the response is returned.
type ConversationState struct {
	// UserQuery is immutable after creation.
	UserQuery string

	// Context blobs, loaded once before the run. PrimaryContext (site content)
	// is preferred over FallbackContext (structured resume data) whenever it
	// is non-empty; the two are never blended.
	PrimaryContext  string
	FallbackContext string

	// ResearchFindings is overwritten on each research pass.
	ResearchFindings string
	// ResearchDegraded marks findings that are a placeholder written after a
	// gateway failure rather than real model output.
	ResearchDegraded bool
	// DraftResponse is overwritten on each revision.
	DraftResponse string
	// ResponseDegraded marks a draft that is the static substitute written
	// after a gateway failure. A degraded draft may still pass validation, but
	// the orchestrator routes it to the fallback generator instead of
	// returning it as the answer.
	ResponseDegraded bool
	// FinalResponse is set only on validation success and is terminal.
	FinalResponse string

	ValidationPassed bool
	NeedsRevision    bool
	// RevisionCount increments exactly once per validation failure and is
	// bounded by the workflow's revision cap.
	RevisionCount int

	// Trace is an append-only audit log of stage transitions. It is never
	// read for control flow.
	Trace []string
}

// NewConversationState creates a fresh state for one workflow run.
func NewConversationState(query, primaryContext, fallbackContext string) *ConversationState {
	return &ConversationState{
		UserQuery:       query,
		PrimaryContext:  primaryContext,
		FallbackContext: fallbackContext,
	}
}

// ActiveContext returns the context the research stage must use and a label
// naming its origin. The primary (site content) source wins whenever present.
func (s *ConversationState) ActiveContext() (text, source string) {
	if s.PrimaryContext != "" {
		return s.PrimaryContext, "website content"
	}
	return s.FallbackContext, "structured resume data"
}

// AppendTrace records one diagnostic entry.
func (s *ConversationState) AppendTrace(entry string) {
	s.Trace = append(s.Trace, entry)
}
