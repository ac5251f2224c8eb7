// Package optimizations implements the prompt-optimization domain. It runs
// the pipeline for optimize and analyze requests, persists history entries
// for identified callers, and enforces the per-caller history cap.
package optimizations

import (
	"time"

	"github.com/google/uuid"
)

// Input bounds enforced before a pipeline run.
const (
	MaxPromptLength = 10000
	MaxGoalLength   = 1000
)

// Stored-text truncation limits for history entries.
const (
	maxStoredPrompt    = 1000
	maxStoredOptimized = 2000
)

// Optimization is a persisted history entry for one successful run.
// PromptText and OptimizedPrompt are truncated at write time.
type Optimization struct {
	ID              uuid.UUID  `json:"id"`
	CallerID        string     `json:"caller_id"`
	ProjectID       *uuid.UUID `json:"project_id"`
	PromptText      string     `json:"prompt_text"`
	Goal            string     `json:"goal"`
	Specialist      string     `json:"specialist"`
	Confidence      float64    `json:"confidence"`
	Rationale       string     `json:"rationale"`
	Score           int        `json:"score"`
	Feedback        string     `json:"feedback"`
	OptimizedPrompt string     `json:"optimized_prompt"`
	CreatedAt       time.Time  `json:"created_at"`
}

// OptimizeCommand carries the data needed to run a full optimization.
// ForceSpecialist bypasses classification when it names a catalog member;
// unrecognized values are treated as absent. CallerID is opaque and optional
// and arrives via the X-Caller-Id header, never the body; anonymous runs are
// not persisted. ProjectID injects the project's assembled context into the
// evaluation.
type OptimizeCommand struct {
	Prompt          string     `json:"prompt"`
	Goal            string     `json:"goal"`
	ForceSpecialist string     `json:"force_specialist,omitempty"`
	CallerID        string     `json:"-"`
	ProjectID       *uuid.UUID `json:"project_id,omitempty"`
}

// AnalyzeCommand carries the data needed for a classification-only run.
type AnalyzeCommand struct {
	Prompt string `json:"prompt"`
	Goal   string `json:"goal"`
}

// Routing reports the classification decision within a Result.
type Routing struct {
	Confidence float64 `json:"confidence"`
	Rationale  string  `json:"rationale"`
}

// Result is the full optimization output contract.
type Result struct {
	OriginalPrompt  string         `json:"original_prompt"`
	Goal            string         `json:"goal"`
	Specialist      string         `json:"specialist"`
	Routing         Routing        `json:"routing"`
	Score           int            `json:"score"`
	RubricBreakdown map[string]int `json:"rubric_breakdown,omitempty"`
	Feedback        string         `json:"feedback"`
	OptimizedPrompt string         `json:"optimized_prompt"`
	Error           string         `json:"error,omitempty"`
}

// Analysis is the classification-only output contract.
type Analysis struct {
	Specialist string  `json:"specialist"`
	Confidence float64 `json:"confidence"`
	Rationale  string  `json:"rationale"`
}

// truncate limits s to n runes, preserving UTF-8 boundaries.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
