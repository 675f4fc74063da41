package agent

import (
	"context"

	"github.com/shrey-c/resume-chatbot/internal/agent/model"
	logx "github.com/shrey-c/resume-chatbot/pkg/logger"
)

// workflowState enumerates the orchestration state machine. An explicit enum
// plus transition function keeps the bounded-retry guarantee checkable: the
// only backward edge is VALIDATION -> RESPONSE, taken while the revision
// count is under the cap.
type workflowState int

const (
	stateResearch workflowState = iota
	stateResponse
	stateValidation
	stateTerminal
)

func (s workflowState) String() string {
	switch s {
	case stateResearch:
		return "research"
	case stateResponse:
		return "response"
	case stateValidation:
		return "validation"
	default:
		return "terminal"
	}
}

// Workflow sequences research -> response -> validation with a bounded
// revision loop. Stage calls within one run are strictly sequential; states
// across runs share nothing.
type Workflow struct {
	research     *ResearchStage
	response     *ResponseStage
	validation   *ValidationStage
	maxRevisions int
}

// NewWorkflow wires the three stages under one revision cap.
func NewWorkflow(research *ResearchStage, response *ResponseStage, validation *ValidationStage, cfg model.WorkflowConfig) *Workflow {
	return &Workflow{
		research:     research,
		response:     response,
		validation:   validation,
		maxRevisions: cfg.MaxRevisions,
	}
}

// Run drives the state machine to termination, mutating st in place. Reaching
// the revision cap without a validated answer is a normal terminal outcome,
// not an error; the caller decides what to return from the final state.
func (w *Workflow) Run(ctx context.Context, st *model.ConversationState) {
	current := stateResearch
	for current != stateTerminal {
		next := w.step(ctx, current, st)
		logx.Debug().
			Str("from", current.String()).
			Str("to", next.String()).
			Int("revision_count", st.RevisionCount).
			Msg("Workflow transition")
		current = next
	}
}

func (w *Workflow) step(ctx context.Context, current workflowState, st *model.ConversationState) workflowState {
	switch current {
	case stateResearch:
		w.research.Analyze(ctx, st)
		return stateResponse
	case stateResponse:
		w.response.Generate(ctx, st)
		return stateValidation
	case stateValidation:
		w.validation.Validate(st)
		return w.afterValidation(st)
	default:
		return stateTerminal
	}
}

// afterValidation is the single conditional edge: loop back to the response
// stage only while the draft failed and revisions remain.
func (w *Workflow) afterValidation(st *model.ConversationState) workflowState {
	if st.ValidationPassed {
		return stateTerminal
	}
	if st.RevisionCount >= w.maxRevisions {
		st.AppendTrace("max revisions reached, terminating")
		return stateTerminal
	}
	return stateResponse
}
