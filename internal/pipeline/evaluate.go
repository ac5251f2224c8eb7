package pipeline

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"promptmaster/internal/specialists"
	"promptmaster/pkg/formatting"
)

type evaluatorResponse struct {
	Score           int            `json:"score"`
	RubricBreakdown map[string]int `json:"rubric_breakdown"`
	Feedback        string         `json:"feedback"`
	OptimizedPrompt string         `json:"optimized_prompt"`
}

// EvaluateNode returns a state node that runs the evaluator for one catalog
// specialist. A model-call error or unrecoverable parse failure produces a
// terminal zero-score result with the original prompt preserved; the run
// still completes and is reported to the caller.
func EvaluateNode(rt *Runtime, kind specialists.Kind) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		ps, err := extractState(s)
		if err != nil {
			return s, fmt.Errorf("evaluate %s: %w", kind, err)
		}

		def, err := specialists.Lookup(kind)
		if err != nil {
			return s, fmt.Errorf("evaluate %s: %w", kind, err)
		}

		evaluate(ctx, rt, def, ps)

		rt.Logger.InfoContext(
			ctx, "evaluate node complete",
			"specialist", kind,
			"score", ps.Score,
			"errored", ps.Error != "",
		)

		s = s.Set(KeyState, *ps)
		return s, nil
	})
}

func evaluate(ctx context.Context, rt *Runtime, def specialists.Definition, ps *State) {
	fail := func(err error) {
		ps.Score = 0
		ps.Feedback = fmt.Sprintf("Error during evaluation: %s", err)
		ps.OptimizedPrompt = ps.Prompt
		ps.Error = err.Error()
	}

	content, err := rt.Evaluator.Complete(ctx, composeEvaluationPrompt(def, ps))
	if err != nil {
		fail(err)
		return
	}

	parsed, err := formatting.Parse[evaluatorResponse](content)
	if err != nil {
		fail(err)
		return
	}

	ps.Score = clampScore(parsed.Score)
	ps.Breakdown = clampBreakdown(parsed.RubricBreakdown)
	ps.Feedback = parsed.Feedback
	ps.OptimizedPrompt = parsed.OptimizedPrompt

	if ps.OptimizedPrompt == "" {
		ps.OptimizedPrompt = ps.Prompt
	}
}

// Model-returned numeric values are clamped to [0,100] rather than rejected;
// an out-of-range score is a quality defect, not a run failure.
func clampScore(v int) int {
	return max(min(v, 100), 0)
}

func clampBreakdown(breakdown map[string]int) map[string]int {
	if breakdown == nil {
		return nil
	}
	clamped := make(map[string]int, len(breakdown))
	for k, v := range breakdown {
		clamped[k] = clampScore(v)
	}
	return clamped
}
