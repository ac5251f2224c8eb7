package pipeline

import "promptmaster/internal/specialists"

// State bag keys.
const (
	KeyState = "pipeline_state"
)

// Request is the immutable input to a pipeline run.
type Request struct {
	Prompt           string
	Goal             string
	ForcedSpecialist string
	PriorContext     string
}

// State is the mutable, run-scoped record accumulated across pipeline
// stages. Fields are set monotonically as stages complete and never cleared
// within a run. Each run owns its State exclusively; concurrent runs share
// only the immutable catalog and corpus.
type State struct {
	Prompt       string `json:"prompt"`
	Goal         string `json:"goal"`
	Forced       string `json:"forced,omitempty"`
	PriorContext string `json:"prior_context,omitempty"`

	Specialist specialists.Kind `json:"specialist"`
	Confidence float64          `json:"confidence"`
	Rationale  string           `json:"rationale"`

	Context string `json:"context"`

	Score           int            `json:"score"`
	Breakdown       map[string]int `json:"breakdown"`
	Feedback        string         `json:"feedback"`
	OptimizedPrompt string         `json:"optimized_prompt"`
	Error           string         `json:"error,omitempty"`
}
