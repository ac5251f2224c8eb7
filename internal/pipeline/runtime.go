package pipeline

import (
	"log/slog"

	"promptmaster/internal/knowledge"
)

// Runtime bundles the dependencies that pipeline nodes require.
// It is constructed by higher-level composition code from finalized agent
// configs and the loaded knowledge corpus. The corpus and specialist catalog
// are immutable, so a single Runtime is safe for concurrent runs.
type Runtime struct {
	Router    Completer
	Evaluator Completer
	Corpus    *knowledge.Corpus
	Logger    *slog.Logger
}
