package model

// ================ Config ================

// ResearchModelConfig tunes the findings-extraction model call. Low
// temperature favors factual consistency over creativity.
type ResearchModelConfig struct {
	Temperature float32 `envconfig:"RESEARCH_TEMPERATURE" default:"0.3"`
	TopP        float32 `envconfig:"RESEARCH_TOP_P" default:"0.9"`
	MaxTokens   int     `envconfig:"RESEARCH_MAX_TOKENS" default:"600"`
}

// ResponseModelConfig tunes the answer-drafting model call. Higher temperature
// than research favors natural phrasing; revision retries rely on this
// sampling variance to produce a different draft.
type ResponseModelConfig struct {
	Temperature float32 `envconfig:"RESPONSE_TEMPERATURE" default:"0.7"`
	TopP        float32 `envconfig:"RESPONSE_TOP_P" default:"0.95"`
	MaxTokens   int     `envconfig:"RESPONSE_MAX_TOKENS" default:"500"`
}

// ValidationConfig tunes the deterministic draft checks.
type ValidationConfig struct {
	MinLength     int    `envconfig:"VALIDATION_MIN_LENGTH" default:"20"`
	TopicKeywords string `envconfig:"VALIDATION_TOPIC_KEYWORDS" default:"telstra, ml, ai, genai, engineer, developer, python, project, experience, skill, work, built, developed, azure, nlp, chatbot, automation"`
}

// PromptConfig carries the subject identity rendered into stage prompts.
type PromptConfig struct {
	SubjectName string `envconfig:"PROMPT_SUBJECT_NAME" default:"Shreyansh Chheda"`
	SubjectRole string `envconfig:"PROMPT_SUBJECT_ROLE" default:"ML Engineer at Telstra"`
}

// WorkflowConfig bounds the revision loop.
type WorkflowConfig struct {
	MaxRevisions int `envconfig:"WORKFLOW_MAX_REVISIONS" default:"2"`
}
