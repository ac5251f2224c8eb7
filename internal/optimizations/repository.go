package optimizations

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"promptmaster/internal/pipeline"
	"promptmaster/internal/projects"
	"promptmaster/pkg/pagination"
	"promptmaster/pkg/query"
	"promptmaster/pkg/repository"
)

// DefaultHistoryCap is the per-caller history retention limit applied when
// configuration does not override it.
const DefaultHistoryCap = 10

type repo struct {
	db         *sql.DB
	rt         *pipeline.Runtime
	projects   projects.System
	logger     *slog.Logger
	pagination pagination.Config
	historyCap int
}

// New creates an optimization repository implementing the System interface.
func New(
	db *sql.DB,
	rt *pipeline.Runtime,
	projects projects.System,
	logger *slog.Logger,
	pagination pagination.Config,
	historyCap int,
) System {
	if historyCap <= 0 {
		historyCap = DefaultHistoryCap
	}
	return &repo{
		db:         db,
		rt:         rt,
		projects:   projects,
		logger:     logger.With("system", "optimizations"),
		pagination: pagination,
		historyCap: historyCap,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

// Optimize runs the full pipeline for one request. Runs by identified
// callers that complete without an evaluator error are appended to history,
// after which the caller's entry count is trimmed to the history cap.
func (r *repo) Optimize(ctx context.Context, cmd OptimizeCommand) (*Result, error) {
	if err := validate(cmd.Prompt, cmd.Goal); err != nil {
		return nil, err
	}

	ps, err := pipeline.Execute(ctx, r.rt, pipeline.Request{
		Prompt:           cmd.Prompt,
		Goal:             cmd.Goal,
		ForcedSpecialist: cmd.ForceSpecialist,
		PriorContext:     r.priorContext(ctx, cmd),
	})
	if err != nil {
		return nil, fmt.Errorf("optimize prompt: %w", err)
	}

	if cmd.CallerID != "" && ps.Error == "" {
		if err := r.append(ctx, cmd, ps); err != nil {
			// History is best-effort; the caller still gets the result.
			r.logger.Warn("history append failed", "caller_id", cmd.CallerID, "error", err)
		}
	}

	r.logger.Info("prompt optimized",
		"specialist", ps.Specialist,
		"score", ps.Score,
		"errored", ps.Error != "",
	)

	return &Result{
		OriginalPrompt:  cmd.Prompt,
		Goal:            cmd.Goal,
		Specialist:      string(ps.Specialist),
		Routing:         Routing{Confidence: ps.Confidence, Rationale: ps.Rationale},
		Score:           ps.Score,
		RubricBreakdown: ps.Breakdown,
		Feedback:        ps.Feedback,
		OptimizedPrompt: ps.OptimizedPrompt,
		Error:           ps.Error,
	}, nil
}

// Analyze runs classification only and never fails past input validation.
func (r *repo) Analyze(ctx context.Context, cmd AnalyzeCommand) (*Analysis, error) {
	if err := validate(cmd.Prompt, cmd.Goal); err != nil {
		return nil, err
	}

	routing := pipeline.Analyze(ctx, r.rt, cmd.Prompt, cmd.Goal)

	return &Analysis{
		Specialist: string(routing.Specialist),
		Confidence: routing.Confidence,
		Rationale:  routing.Rationale,
	}, nil
}

func (r *repo) History(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Optimization], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "PromptText", "Goal", "Feedback")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count optimizations: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanOptimization)
	if err != nil {
		return nil, fmt.Errorf("query optimizations: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Optimization, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	o, err := repository.QueryOne(ctx, r.db, q, args, scanOptimization)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &o, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM optimizations WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("optimization deleted", "id", id)
	return nil
}

// priorContext resolves a project's assembled context for the run.
// Resolution failures degrade to no context rather than failing the run.
func (r *repo) priorContext(ctx context.Context, cmd OptimizeCommand) string {
	if cmd.ProjectID == nil || cmd.CallerID == "" {
		return ""
	}

	text, err := r.projects.Context(ctx, cmd.CallerID, *cmd.ProjectID)
	if err != nil {
		r.logger.Warn("project context unavailable",
			"project_id", *cmd.ProjectID,
			"error", err,
		)
		return ""
	}
	return text
}

// append inserts a history entry and trims the caller's history to the cap
// in one transaction. Oldest entries beyond the cap are deleted, ordered by
// creation time.
func (r *repo) append(ctx context.Context, cmd OptimizeCommand, ps *pipeline.State) error {
	insertQ := `
		INSERT INTO optimizations(
			caller_id, project_id, prompt_text, goal, specialist,
			confidence, rationale, score, feedback, optimized_prompt
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	capQ := `
		DELETE FROM optimizations
		WHERE caller_id = $1
		AND id NOT IN (
			SELECT id FROM optimizations
			WHERE caller_id = $1
			ORDER BY created_at DESC
			LIMIT $2
		)`

	insertArgs := []any{
		cmd.CallerID,
		cmd.ProjectID,
		truncate(cmd.Prompt, maxStoredPrompt),
		cmd.Goal,
		string(ps.Specialist),
		ps.Confidence,
		ps.Rationale,
		ps.Score,
		ps.Feedback,
		truncate(ps.OptimizedPrompt, maxStoredOptimized),
	}

	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if _, err := tx.ExecContext(ctx, insertQ, insertArgs...); err != nil {
			return struct{}{}, fmt.Errorf("insert optimization: %w", err)
		}

		if _, err := tx.ExecContext(ctx, capQ, cmd.CallerID, r.historyCap); err != nil {
			return struct{}{}, fmt.Errorf("enforce history cap: %w", err)
		}

		return struct{}{}, nil
	})

	return err
}

func validate(promptText, goal string) error {
	if promptText == "" || len([]rune(promptText)) > MaxPromptLength {
		return ErrInvalidPrompt
	}
	if goal == "" || len([]rune(goal)) > MaxGoalLength {
		return ErrInvalidGoal
	}
	return nil
}
