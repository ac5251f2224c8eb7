package api

import (
	"promptmaster/internal/config"
	"promptmaster/internal/infrastructure"
	"promptmaster/internal/knowledge"
	"promptmaster/internal/pipeline"
	"promptmaster/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration and the
// assembled pipeline runtime (agent completers plus the loaded corpus).
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination pagination.Config
	Pipeline   *pipeline.Runtime
	HistoryCap int
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	logger := infra.Logger.With("module", "api")

	rt := &pipeline.Runtime{
		Router:    pipeline.NewCompleter(cfg.Agents.Router),
		Evaluator: pipeline.NewCompleter(cfg.Agents.Evaluator),
		Corpus:    knowledge.Load(cfg.Pipeline.KnowledgePath, logger),
		Logger:    logger.With("workflow", "optimize"),
	}

	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    logger,
			Database:  infra.Database,
			Storage:   infra.Storage,
		},
		Pagination: cfg.API.Pagination,
		Pipeline:   rt,
		HistoryCap: cfg.Pipeline.HistoryCap,
	}
}
