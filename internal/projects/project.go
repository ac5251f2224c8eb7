// Package projects implements caller-scoped project workspaces. A project
// groups context entries (caption text plus an optional raw attachment in
// blob storage) whose assembled text is injected into prompt optimization
// runs as prior context.
package projects

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a caller-owned grouping of optimization context.
type Project struct {
	ID          uuid.UUID `json:"id"`
	CallerID    string    `json:"caller_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ContextEntry is one unit of project context. Attachment fields are nil for
// caption-only entries. Attachment contents are stored raw; no text is
// extracted from them.
type ContextEntry struct {
	ID          uuid.UUID `json:"id"`
	ProjectID   uuid.UUID `json:"project_id"`
	Caption     string    `json:"caption"`
	Filename    *string   `json:"filename"`
	ContentType *string   `json:"content_type"`
	SizeBytes   *int64    `json:"size_bytes"`
	StorageKey  *string   `json:"storage_key"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateCommand carries the data needed to create a project.
type CreateCommand struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateCommand carries the data needed to update a project's metadata.
type UpdateCommand struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AddContextCommand carries the data needed to add a context entry.
// Data holds optional raw attachment bytes.
type AddContextCommand struct {
	Caption     string
	Data        []byte
	Filename    string
	ContentType string
}
