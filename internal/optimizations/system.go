package optimizations

import (
	"context"

	"github.com/google/uuid"

	"promptmaster/pkg/pagination"
)

// System defines the public contract for optimization domain operations.
type System interface {
	Handler() *Handler

	Optimize(ctx context.Context, cmd OptimizeCommand) (*Result, error)
	Analyze(ctx context.Context, cmd AnalyzeCommand) (*Analysis, error)

	History(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Optimization], error)

	Find(ctx context.Context, id uuid.UUID) (*Optimization, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
