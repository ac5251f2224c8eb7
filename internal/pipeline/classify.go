package pipeline

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"promptmaster/internal/specialists"
	"promptmaster/pkg/formatting"
)

type routerResponse struct {
	Agent      string  `json:"agent"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// Routing is the classification verdict for a request.
type Routing struct {
	Specialist specialists.Kind `json:"specialist"`
	Confidence float64          `json:"confidence"`
	Rationale  string           `json:"rationale"`
}

// ClassifyNode returns a state node that selects a specialist for the run.
// A valid forced specialist bypasses the model call with confidence fixed at
// 1.0. Otherwise a single router call classifies the prompt; decode failure
// or an unknown identifier falls back to the default specialist rather than
// aborting the run.
func ClassifyNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		ps, err := extractState(s)
		if err != nil {
			return s, fmt.Errorf("classify: %w", err)
		}

		routing := classify(ctx, rt, ps)
		ps.Specialist = routing.Specialist
		ps.Confidence = routing.Confidence
		ps.Rationale = routing.Rationale

		rt.Logger.InfoContext(
			ctx, "classify node complete",
			"specialist", ps.Specialist,
			"confidence", ps.Confidence,
		)

		s = s.Set(KeyState, *ps)
		return s, nil
	})
}

func classify(ctx context.Context, rt *Runtime, ps *State) Routing {
	if ps.Forced != "" {
		if kind, err := specialists.ParseKind(ps.Forced); err == nil {
			return Routing{
				Specialist: kind,
				Confidence: 1.0,
				Rationale:  "Agent manually selected",
			}
		}
		// Unrecognized forced values fall through to classification.
	}

	return Classify(ctx, rt, ps.Prompt, ps.Goal)
}

// Classify issues a single router call for the prompt and goal. It never
// fails: any call or decode error degrades to the default specialist with
// confidence 0.5 and a rationale stating the fallback reason.
func Classify(ctx context.Context, rt *Runtime, promptText, goal string) Routing {
	fallback := func(reason string) Routing {
		rt.Logger.WarnContext(ctx, "classification fallback", "reason", reason)
		return Routing{
			Specialist: specialists.DefaultKind,
			Confidence: 0.5,
			Rationale:  fmt.Sprintf("Fallback due to classification error: %s", reason),
		}
	}

	content, err := rt.Router.Complete(ctx, composeRouterPrompt(promptText, goal))
	if err != nil {
		return fallback(err.Error())
	}

	parsed, err := formatting.Parse[routerResponse](content)
	if err != nil {
		return fallback(err.Error())
	}

	kind, err := specialists.ParseKind(parsed.Agent)
	if err != nil {
		return fallback(fmt.Sprintf("unknown specialist %q", parsed.Agent))
	}

	return Routing{
		Specialist: kind,
		Confidence: parsed.Confidence,
		Rationale:  parsed.Reasoning,
	}
}
