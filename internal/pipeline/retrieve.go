package pipeline

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"
)

// RetrieveNode returns a state node that assembles the knowledge context for
// the run. Retrieval never fails; an empty match set degrades to the corpus
// fallback context.
func RetrieveNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		ps, err := extractState(s)
		if err != nil {
			return s, fmt.Errorf("retrieve: %w", err)
		}

		ps.Context = rt.Corpus.Retrieve(ps.Prompt, ps.Goal, string(ps.Specialist))

		rt.Logger.InfoContext(
			ctx, "retrieve node complete",
			"specialist", ps.Specialist,
			"context_bytes", len(ps.Context),
		)

		s = s.Set(KeyState, *ps)
		return s, nil
	})
}
