package optimizations

import (
	"net/url"

	"github.com/google/uuid"

	"promptmaster/pkg/query"
	"promptmaster/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "optimizations", "o").
	Project("id", "ID").
	Project("caller_id", "CallerID").
	Project("project_id", "ProjectID").
	Project("prompt_text", "PromptText").
	Project("goal", "Goal").
	Project("specialist", "Specialist").
	Project("confidence", "Confidence").
	Project("rationale", "Rationale").
	Project("score", "Score").
	Project("feedback", "Feedback").
	Project("optimized_prompt", "OptimizedPrompt").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for history queries.
// Nil fields are ignored. All fields use exact matching.
type Filters struct {
	CallerID   *string    `json:"caller_id,omitempty"`
	ProjectID  *uuid.UUID `json:"project_id,omitempty"`
	Specialist *string    `json:"specialist,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("CallerID", f.CallerID).
		WhereEquals("ProjectID", f.ProjectID).
		WhereEquals("Specialist", f.Specialist)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if c := values.Get("caller_id"); c != "" {
		f.CallerID = &c
	}

	if p := values.Get("project_id"); p != "" {
		if id, err := uuid.Parse(p); err == nil {
			f.ProjectID = &id
		}
	}

	if s := values.Get("specialist"); s != "" {
		f.Specialist = &s
	}

	return f
}

func scanOptimization(s repository.Scanner) (Optimization, error) {
	var o Optimization

	err := s.Scan(
		&o.ID,
		&o.CallerID,
		&o.ProjectID,
		&o.PromptText,
		&o.Goal,
		&o.Specialist,
		&o.Confidence,
		&o.Rationale,
		&o.Score,
		&o.Feedback,
		&o.OptimizedPrompt,
		&o.CreatedAt,
	)

	return o, err
}
