package projects

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"promptmaster/pkg/pagination"
	"promptmaster/pkg/query"
	"promptmaster/pkg/repository"
	"promptmaster/pkg/storage"
)

const entryColumns = "id, project_id, caption, filename, content_type, size_bytes, storage_key, created_at"

type repo struct {
	db         *sql.DB
	storage    storage.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a project repository implementing the System interface.
func New(
	db *sql.DB,
	store storage.System,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		storage:    store,
		logger:     logger.With("system", "projects"),
		pagination: pagination,
	}
}

func (r *repo) Handler(maxUploadSize int64) *Handler {
	return NewHandler(r, r.logger, r.pagination, maxUploadSize)
}

func (r *repo) List(
	ctx context.Context,
	callerID string,
	page pagination.PageRequest,
) (*pagination.PageResult[Project], error) {
	if callerID == "" {
		return nil, ErrCallerRequired
	}

	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("CallerID", callerID).
		WhereSearch(page.Search, "Name", "Description")

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count projects: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanProject)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, callerID string, id uuid.UUID) (*Project, error) {
	if callerID == "" {
		return nil, ErrCallerRequired
	}

	q, args := query.
		NewBuilder(projection).
		WhereEquals("ID", id).
		WhereEquals("CallerID", callerID).
		BuildSingleOrNull()

	p, err := repository.QueryOne(ctx, r.db, q, args, scanProject)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &p, nil
}

func (r *repo) Create(ctx context.Context, callerID string, cmd CreateCommand) (*Project, error) {
	if callerID == "" {
		return nil, ErrCallerRequired
	}
	if strings.TrimSpace(cmd.Name) == "" {
		return nil, ErrInvalidProject
	}

	q := `
		INSERT INTO projects(caller_id, name, description)
		VALUES ($1, $2, $3)
		RETURNING id, caller_id, name, description, created_at, updated_at`

	p, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Project, error) {
		return repository.QueryOne(ctx, tx, q, []any{callerID, cmd.Name, cmd.Description}, scanProject)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("project created", "id", p.ID, "name", p.Name)
	return &p, nil
}

func (r *repo) Update(ctx context.Context, callerID string, id uuid.UUID, cmd UpdateCommand) (*Project, error) {
	if callerID == "" {
		return nil, ErrCallerRequired
	}
	if strings.TrimSpace(cmd.Name) == "" {
		return nil, ErrInvalidProject
	}

	q := `
		UPDATE projects
		SET name = $1, description = $2, updated_at = NOW()
		WHERE id = $3 AND caller_id = $4
		RETURNING id, caller_id, name, description, created_at, updated_at`

	p, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Project, error) {
		return repository.QueryOne(ctx, tx, q, []any{cmd.Name, cmd.Description, id, callerID}, scanProject)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("project updated", "id", p.ID)
	return &p, nil
}

// Delete removes a project, its context entries, and their attachments.
// Rows are deleted transactionally first; blob deletion fans out afterward
// over bounded concurrency, with failures logged rather than surfaced since
// the rows are already gone.
func (r *repo) Delete(ctx context.Context, callerID string, id uuid.UUID) error {
	if _, err := r.Find(ctx, callerID, id); err != nil {
		return err
	}

	keys, err := r.attachmentKeys(ctx, id)
	if err != nil {
		return err
	}

	_, err = repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if _, err := tx.ExecContext(ctx,
			"DELETE FROM project_context WHERE project_id = $1", id,
		); err != nil {
			return struct{}{}, fmt.Errorf("delete context entries: %w", err)
		}

		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM projects WHERE id = $1 AND caller_id = $2",
			id, callerID,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.deleteBlobs(ctx, keys)

	r.logger.Info("project deleted", "id", id, "attachments", len(keys))
	return nil
}

func (r *repo) Entries(ctx context.Context, callerID string, projectID uuid.UUID) ([]ContextEntry, error) {
	if _, err := r.Find(ctx, callerID, projectID); err != nil {
		return nil, err
	}

	q := fmt.Sprintf(
		"SELECT %s FROM project_context WHERE project_id = $1 ORDER BY created_at",
		entryColumns,
	)

	entries, err := repository.QueryMany(ctx, r.db, q, []any{projectID}, scanEntry)
	if err != nil {
		return nil, fmt.Errorf("query context entries: %w", err)
	}
	return entries, nil
}

func (r *repo) AddContext(
	ctx context.Context,
	callerID string,
	projectID uuid.UUID,
	cmd AddContextCommand,
) (*ContextEntry, error) {
	if strings.TrimSpace(cmd.Caption) == "" {
		return nil, ErrInvalidEntry
	}

	if _, err := r.Find(ctx, callerID, projectID); err != nil {
		return nil, err
	}

	id := uuid.New()

	var filename, contentType, key *string
	var sizeBytes *int64

	if len(cmd.Data) > 0 {
		name := sanitizeFilename(cmd.Filename)
		k := buildStorageKey(projectID, id, name)
		size := int64(len(cmd.Data))

		if err := r.storage.Upload(ctx, k, bytes.NewReader(cmd.Data), cmd.ContentType); err != nil {
			return nil, fmt.Errorf("upload attachment blob: %w", err)
		}

		filename = &cmd.Filename
		contentType = &cmd.ContentType
		sizeBytes = &size
		key = &k
	}

	q := fmt.Sprintf(`
		INSERT INTO project_context(id, project_id, caption, filename, content_type, size_bytes, storage_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s`, entryColumns)

	insertArgs := []any{id, projectID, cmd.Caption, filename, contentType, sizeBytes, key}

	e, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (ContextEntry, error) {
		return repository.QueryOne(ctx, tx, q, insertArgs, scanEntry)
	})

	if err != nil {
		if key != nil {
			if delErr := r.storage.Delete(ctx, *key); delErr != nil {
				r.logger.Warn("compensating blob delete failed", "key", *key, "error", delErr)
			}
		}
		return nil, repository.MapError(err, ErrEntryNotFound, ErrDuplicate)
	}

	r.logger.Info("context entry added", "id", e.ID, "project_id", projectID)
	return &e, nil
}

func (r *repo) RemoveContext(ctx context.Context, callerID string, projectID, entryID uuid.UUID) error {
	if _, err := r.Find(ctx, callerID, projectID); err != nil {
		return err
	}

	q := fmt.Sprintf(
		"SELECT %s FROM project_context WHERE id = $1 AND project_id = $2",
		entryColumns,
	)

	e, err := repository.QueryOne(ctx, r.db, q, []any{entryID, projectID}, scanEntry)
	if err != nil {
		return repository.MapError(err, ErrEntryNotFound, ErrDuplicate)
	}

	_, err = repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM project_context WHERE id = $1",
			entryID,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrEntryNotFound, ErrDuplicate)
	}

	if e.StorageKey != nil {
		if delErr := r.storage.Delete(ctx, *e.StorageKey); delErr != nil {
			r.logger.Warn(
				"blob delete failed after DB delete",
				"key", *e.StorageKey,
				"error", delErr,
			)
		}
	}

	r.logger.Info("context entry removed", "id", entryID, "project_id", projectID)
	return nil
}

// Download streams a context entry's attachment. Returns the blob stream and
// the original filename. Caption-only entries yield ErrEntryNotFound.
func (r *repo) Download(
	ctx context.Context,
	callerID string,
	projectID, entryID uuid.UUID,
) (*storage.DownloadResult, string, error) {
	if _, err := r.Find(ctx, callerID, projectID); err != nil {
		return nil, "", err
	}

	q := fmt.Sprintf(
		"SELECT %s FROM project_context WHERE id = $1 AND project_id = $2",
		entryColumns,
	)

	e, err := repository.QueryOne(ctx, r.db, q, []any{entryID, projectID}, scanEntry)
	if err != nil {
		return nil, "", repository.MapError(err, ErrEntryNotFound, ErrDuplicate)
	}

	if e.StorageKey == nil {
		return nil, "", ErrEntryNotFound
	}

	result, err := r.storage.Download(ctx, *e.StorageKey)
	if err != nil {
		return nil, "", fmt.Errorf("download attachment blob: %w", err)
	}

	filename := "attachment"
	if e.Filename != nil {
		filename = *e.Filename
	}

	return result, filename, nil
}

// Context assembles a project's entries into the prior-context text injected
// into optimization runs. Attachment bytes are not read; only captions (and
// filenames, as labels) participate.
func (r *repo) Context(ctx context.Context, callerID string, projectID uuid.UUID) (string, error) {
	entries, err := r.Entries(ctx, callerID, projectID)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, e := range entries {
		if e.Filename != nil {
			fmt.Fprintf(&sb, "[%s]\n", *e.Filename)
		}
		sb.WriteString(e.Caption)
		sb.WriteString("\n\n")
	}

	return strings.TrimSpace(sb.String()), nil
}

func (r *repo) attachmentKeys(ctx context.Context, projectID uuid.UUID) ([]string, error) {
	q := "SELECT storage_key FROM project_context WHERE project_id = $1 AND storage_key IS NOT NULL"

	keys, err := repository.QueryMany(ctx, r.db, q, []any{projectID},
		func(s repository.Scanner) (string, error) {
			var key string
			err := s.Scan(&key)
			return key, err
		})
	if err != nil {
		return nil, fmt.Errorf("query attachment keys: %w", err)
	}
	return keys, nil
}

func (r *repo) deleteBlobs(ctx context.Context, keys []string) {
	if len(keys) == 0 {
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(deleteWorkerCount(len(keys)))

	for _, key := range keys {
		g.Go(func() error {
			if err := r.storage.Delete(gctx, key); err != nil {
				r.logger.Warn("blob delete failed after DB delete", "key", key, "error", err)
			}
			return nil
		})
	}

	g.Wait()
}

func deleteWorkerCount(keyCount int) int {
	return max(min(runtime.NumCPU(), keyCount), 1)
}

func buildStorageKey(projectID, entryID uuid.UUID, filename string) string {
	return fmt.Sprintf("projects/%s/%s/%s", projectID, entryID, filename)
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	if name == "." || name == "" {
		name = "attachment"
	}
	return url.PathEscape(name)
}
