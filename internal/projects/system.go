package projects

import (
	"context"

	"github.com/google/uuid"

	"promptmaster/pkg/pagination"
	"promptmaster/pkg/storage"
)

// System defines the public contract for project domain operations.
// Every operation is scoped to an opaque caller id; a project is only
// visible to the caller that created it.
type System interface {
	Handler(maxUploadSize int64) *Handler

	List(
		ctx context.Context,
		callerID string,
		page pagination.PageRequest,
	) (*pagination.PageResult[Project], error)

	Find(ctx context.Context, callerID string, id uuid.UUID) (*Project, error)
	Create(ctx context.Context, callerID string, cmd CreateCommand) (*Project, error)
	Update(ctx context.Context, callerID string, id uuid.UUID, cmd UpdateCommand) (*Project, error)
	Delete(ctx context.Context, callerID string, id uuid.UUID) error

	Entries(ctx context.Context, callerID string, projectID uuid.UUID) ([]ContextEntry, error)
	AddContext(ctx context.Context, callerID string, projectID uuid.UUID, cmd AddContextCommand) (*ContextEntry, error)
	RemoveContext(ctx context.Context, callerID string, projectID, entryID uuid.UUID) error
	Download(ctx context.Context, callerID string, projectID, entryID uuid.UUID) (*storage.DownloadResult, string, error)

	Context(ctx context.Context, callerID string, projectID uuid.UUID) (string, error)
}
