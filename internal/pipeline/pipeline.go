// Package pipeline implements the prompt-optimization state graph:
// classify → retrieve → one evaluator per catalog specialist → finalize.
// A single State record is carried through the graph; earlier stages can
// never halt a run (they degrade to fallbacks), and evaluator failures
// terminate with a fully-formed zero-score result.
package pipeline

import (
	"context"
	"fmt"

	gaoconfig "github.com/JaimeStill/go-agents-orchestration/pkg/config"
	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"promptmaster/internal/specialists"
)

// Execute runs the full optimization pipeline for a single request. It
// builds the state graph, seeds the state bag with the request fields,
// executes the graph, and extracts the terminal State.
func Execute(ctx context.Context, rt *Runtime, req Request) (*State, error) {
	graph, err := buildGraph(rt)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	initial := state.New(nil)
	initial = initial.Set(KeyState, State{
		Prompt:       req.Prompt,
		Goal:         req.Goal,
		Forced:       req.ForcedSpecialist,
		PriorContext: req.PriorContext,
	})

	final, err := graph.Execute(ctx, initial)
	if err != nil {
		return nil, fmt.Errorf("execute graph: %w", err)
	}

	return extractState(final)
}

// Analyze is the classification-only entry point: it runs the router stage
// for callers who want routing information without a full evaluation.
func Analyze(ctx context.Context, rt *Runtime, promptText, goal string) Routing {
	return Classify(ctx, rt, promptText, goal)
}

func buildGraph(rt *Runtime) (state.StateGraph, error) {
	cfg := gaoconfig.DefaultGraphConfig("promptmaster-optimize")
	cfg.Observer = "noop"

	graph, err := state.NewGraph(cfg)
	if err != nil {
		return nil, err
	}

	if err := graph.AddNode("classify", ClassifyNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("retrieve", RetrieveNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("finalize", FinalizeNode(rt)); err != nil {
		return nil, err
	}

	// classify → retrieve (unconditional)
	if err := graph.AddEdge("classify", "retrieve", nil); err != nil {
		return nil, err
	}

	// retrieve → evaluate-<kind> (one conditional edge per catalog member;
	// the dispatch is total since classify only returns catalog members)
	for _, kind := range specialists.Kinds() {
		node := fmt.Sprintf("evaluate-%s", kind)

		if err := graph.AddNode(node, EvaluateNode(rt, kind)); err != nil {
			return nil, err
		}

		if err := graph.AddEdge("retrieve", node, selectedIs(kind)); err != nil {
			return nil, err
		}

		if err := graph.AddEdge(node, "finalize", nil); err != nil {
			return nil, err
		}
	}

	if err := graph.SetEntryPoint("classify"); err != nil {
		return nil, err
	}

	if err := graph.SetExitPoint("finalize"); err != nil {
		return nil, err
	}

	return graph, nil
}

// FinalizeNode returns the terminal node. The evaluator has already
// produced the complete result; this node only records run completion.
func FinalizeNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		ps, err := extractState(s)
		if err != nil {
			return s, fmt.Errorf("finalize: %w", err)
		}

		rt.Logger.InfoContext(
			ctx, "pipeline run complete",
			"specialist", ps.Specialist,
			"score", ps.Score,
			"errored", ps.Error != "",
		)

		return s, nil
	})
}

func selectedIs(kind specialists.Kind) func(state.State) bool {
	return func(s state.State) bool {
		ps, err := extractState(s)
		if err != nil {
			return false
		}
		return ps.Specialist == kind
	}
}

func extractState(s state.State) (*State, error) {
	val, ok := s.Get(KeyState)
	if !ok {
		return nil, fmt.Errorf("missing %s in state", KeyState)
	}

	ps, ok := val.(State)
	if !ok {
		return nil, fmt.Errorf("%s is not pipeline State", KeyState)
	}

	return &ps, nil
}
