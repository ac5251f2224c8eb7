package projects_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"promptmaster/internal/projects"
	"promptmaster/pkg/pagination"
	"promptmaster/pkg/storage"
)

type mockSystem struct {
	listFn          func(ctx context.Context, callerID string, page pagination.PageRequest) (*pagination.PageResult[projects.Project], error)
	findFn          func(ctx context.Context, callerID string, id uuid.UUID) (*projects.Project, error)
	createFn        func(ctx context.Context, callerID string, cmd projects.CreateCommand) (*projects.Project, error)
	updateFn        func(ctx context.Context, callerID string, id uuid.UUID, cmd projects.UpdateCommand) (*projects.Project, error)
	deleteFn        func(ctx context.Context, callerID string, id uuid.UUID) error
	entriesFn       func(ctx context.Context, callerID string, projectID uuid.UUID) ([]projects.ContextEntry, error)
	addContextFn    func(ctx context.Context, callerID string, projectID uuid.UUID, cmd projects.AddContextCommand) (*projects.ContextEntry, error)
	removeContextFn func(ctx context.Context, callerID string, projectID, entryID uuid.UUID) error
	downloadFn      func(ctx context.Context, callerID string, projectID, entryID uuid.UUID) (*storage.DownloadResult, string, error)
	contextFn       func(ctx context.Context, callerID string, projectID uuid.UUID) (string, error)
}

func (m *mockSystem) Handler(maxUploadSize int64) *projects.Handler {
	return projects.NewHandler(
		m,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		pagination.Config{DefaultPageSize: 20, MaxPageSize: 100},
		maxUploadSize,
	)
}

func (m *mockSystem) List(ctx context.Context, callerID string, page pagination.PageRequest) (*pagination.PageResult[projects.Project], error) {
	return m.listFn(ctx, callerID, page)
}

func (m *mockSystem) Find(ctx context.Context, callerID string, id uuid.UUID) (*projects.Project, error) {
	return m.findFn(ctx, callerID, id)
}

func (m *mockSystem) Create(ctx context.Context, callerID string, cmd projects.CreateCommand) (*projects.Project, error) {
	return m.createFn(ctx, callerID, cmd)
}

func (m *mockSystem) Update(ctx context.Context, callerID string, id uuid.UUID, cmd projects.UpdateCommand) (*projects.Project, error) {
	return m.updateFn(ctx, callerID, id, cmd)
}

func (m *mockSystem) Delete(ctx context.Context, callerID string, id uuid.UUID) error {
	return m.deleteFn(ctx, callerID, id)
}

func (m *mockSystem) Entries(ctx context.Context, callerID string, projectID uuid.UUID) ([]projects.ContextEntry, error) {
	return m.entriesFn(ctx, callerID, projectID)
}

func (m *mockSystem) AddContext(ctx context.Context, callerID string, projectID uuid.UUID, cmd projects.AddContextCommand) (*projects.ContextEntry, error) {
	return m.addContextFn(ctx, callerID, projectID, cmd)
}

func (m *mockSystem) RemoveContext(ctx context.Context, callerID string, projectID, entryID uuid.UUID) error {
	return m.removeContextFn(ctx, callerID, projectID, entryID)
}

func (m *mockSystem) Download(ctx context.Context, callerID string, projectID, entryID uuid.UUID) (*storage.DownloadResult, string, error) {
	return m.downloadFn(ctx, callerID, projectID, entryID)
}

func (m *mockSystem) Context(ctx context.Context, callerID string, projectID uuid.UUID) (string, error) {
	return m.contextFn(ctx, callerID, projectID)
}

func setupMux(t *testing.T, sys *mockSystem) *http.ServeMux {
	t.Helper()

	mux := http.NewServeMux()
	group := sys.Handler(1 << 20).Routes()

	for _, route := range group.Routes {
		pattern := route.Method + " " + group.Prefix + route.Pattern
		mux.HandleFunc(pattern, route.Handler)
	}

	return mux
}

func sampleProject(callerID string) *projects.Project {
	return &projects.Project{
		ID:          uuid.New(),
		CallerID:    callerID,
		Name:        "api-docs",
		Description: "prompts for API documentation",
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
}

func sampleEntry(projectID uuid.UUID) *projects.ContextEntry {
	filename := "style-guide.md"
	contentType := "text/markdown"
	size := int64(512)
	key := fmt.Sprintf("projects/%s/%s/style-guide.md", projectID, uuid.New())

	return &projects.ContextEntry{
		ID:          uuid.New(),
		ProjectID:   projectID,
		Caption:     "house style guide",
		Filename:    &filename,
		ContentType: &contentType,
		SizeBytes:   &size,
		StorageKey:  &key,
		CreatedAt:   time.Now().UTC(),
	}
}

func TestHandlerList(t *testing.T) {
	project := *sampleProject("caller-1")

	var gotCaller string
	var gotPage pagination.PageRequest

	sys := &mockSystem{
		listFn: func(_ context.Context, callerID string, page pagination.PageRequest) (*pagination.PageResult[projects.Project], error) {
			gotCaller = callerID
			gotPage = page
			result := pagination.NewPageResult([]projects.Project{project}, 1, page.Page, page.PageSize)
			return &result, nil
		},
	}
	mux := setupMux(t, sys)

	req := httptest.NewRequest("GET", "/projects?page=2&page_size=5", nil)
	req.Header.Set(projects.CallerHeader, "caller-1")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if gotCaller != "caller-1" {
		t.Errorf("callerID = %q, want caller-1", gotCaller)
	}
	if gotPage.Page != 2 || gotPage.PageSize != 5 {
		t.Errorf("page = %d/%d, want 2/5", gotPage.Page, gotPage.PageSize)
	}

	var result pagination.PageResult[projects.Project]
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(result.Data) != 1 || result.Data[0].Name != "api-docs" {
		t.Errorf("unexpected items: %+v", result.Data)
	}
}

func TestHandlerListMissingCaller(t *testing.T) {
	sys := &mockSystem{
		listFn: func(context.Context, string, pagination.PageRequest) (*pagination.PageResult[projects.Project], error) {
			t.Fatal("List should not be called without a caller id")
			return nil, nil
		},
	}
	mux := setupMux(t, sys)

	req := httptest.NewRequest("GET", "/projects", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandlerCreate(t *testing.T) {
	var gotCmd projects.CreateCommand

	sys := &mockSystem{
		createFn: func(_ context.Context, callerID string, cmd projects.CreateCommand) (*projects.Project, error) {
			gotCmd = cmd
			p := sampleProject(callerID)
			p.Name = cmd.Name
			p.Description = cmd.Description
			return p, nil
		},
	}
	mux := setupMux(t, sys)

	body, _ := json.Marshal(projects.CreateCommand{Name: "api-docs", Description: "doc prompts"})
	req := httptest.NewRequest("POST", "/projects", bytes.NewReader(body))
	req.Header.Set(projects.CallerHeader, "caller-1")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
	if gotCmd.Name != "api-docs" || gotCmd.Description != "doc prompts" {
		t.Errorf("command = %+v", gotCmd)
	}
}

func TestHandlerCreateInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
		want int
	}{
		{"malformed body", "{not json", nil, http.StatusBadRequest},
		{"empty name", `{"name": ""}`, projects.ErrInvalidProject, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := &mockSystem{
				createFn: func(context.Context, string, projects.CreateCommand) (*projects.Project, error) {
					return nil, tt.err
				},
			}
			mux := setupMux(t, sys)

			req := httptest.NewRequest("POST", "/projects", strings.NewReader(tt.body))
			req.Header.Set(projects.CallerHeader, "caller-1")
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestHandlerFind(t *testing.T) {
	project := sampleProject("caller-1")

	sys := &mockSystem{
		findFn: func(_ context.Context, callerID string, id uuid.UUID) (*projects.Project, error) {
			if id != project.ID {
				return nil, projects.ErrNotFound
			}
			return project, nil
		},
	}
	mux := setupMux(t, sys)

	t.Run("found", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/projects/"+project.ID.String(), nil)
		req.Header.Set(projects.CallerHeader, "caller-1")
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}

		var got projects.Project
		if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if got.ID != project.ID {
			t.Errorf("id = %s, want %s", got.ID, project.ID)
		}
	})

	t.Run("invalid uuid", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/projects/not-a-uuid", nil)
		req.Header.Set(projects.CallerHeader, "caller-1")
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("not found", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/projects/"+uuid.NewString(), nil)
		req.Header.Set(projects.CallerHeader, "caller-1")
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
	})

	t.Run("missing caller", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/projects/"+project.ID.String(), nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})
}

func TestHandlerUpdate(t *testing.T) {
	project := sampleProject("caller-1")

	var gotCmd projects.UpdateCommand

	sys := &mockSystem{
		updateFn: func(_ context.Context, callerID string, id uuid.UUID, cmd projects.UpdateCommand) (*projects.Project, error) {
			gotCmd = cmd
			updated := *project
			updated.Name = cmd.Name
			return &updated, nil
		},
	}
	mux := setupMux(t, sys)

	body, _ := json.Marshal(projects.UpdateCommand{Name: "renamed", Description: "doc prompts"})
	req := httptest.NewRequest("PUT", "/projects/"+project.ID.String(), bytes.NewReader(body))
	req.Header.Set(projects.CallerHeader, "caller-1")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if gotCmd.Name != "renamed" {
		t.Errorf("command name = %q, want renamed", gotCmd.Name)
	}
}

func TestHandlerDelete(t *testing.T) {
	project := sampleProject("caller-1")

	sys := &mockSystem{
		deleteFn: func(_ context.Context, callerID string, id uuid.UUID) error {
			if id != project.ID {
				return projects.ErrNotFound
			}
			return nil
		},
	}
	mux := setupMux(t, sys)

	t.Run("deleted", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/projects/"+project.ID.String(), nil)
		req.Header.Set(projects.CallerHeader, "caller-1")
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
		}
	})

	t.Run("not found", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/projects/"+uuid.NewString(), nil)
		req.Header.Set(projects.CallerHeader, "caller-1")
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
	})
}

func TestHandlerEntries(t *testing.T) {
	projectID := uuid.New()
	entry := *sampleEntry(projectID)

	sys := &mockSystem{
		entriesFn: func(_ context.Context, callerID string, id uuid.UUID) ([]projects.ContextEntry, error) {
			return []projects.ContextEntry{entry}, nil
		},
	}
	mux := setupMux(t, sys)

	req := httptest.NewRequest("GET", fmt.Sprintf("/projects/%s/context", projectID), nil)
	req.Header.Set(projects.CallerHeader, "caller-1")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var entries []projects.ContextEntry
	if err := json.NewDecoder(rec.Body).Decode(&entries); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(entries) != 1 || entries[0].Caption != "house style guide" {
		t.Errorf("unexpected entries: %+v", entries)
	}
}

func multipartBody(t *testing.T, caption string, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("caption", caption); err != nil {
		t.Fatalf("write caption field: %v", err)
	}

	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		if err != nil {
			t.Fatalf("create file part: %v", err)
		}
		if _, err := part.Write(data); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}

	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	return &buf, writer.FormDataContentType()
}

func TestHandlerAddContext(t *testing.T) {
	projectID := uuid.New()

	var gotCmd projects.AddContextCommand

	sys := &mockSystem{
		addContextFn: func(_ context.Context, callerID string, id uuid.UUID, cmd projects.AddContextCommand) (*projects.ContextEntry, error) {
			gotCmd = cmd
			return sampleEntry(id), nil
		},
	}
	mux := setupMux(t, sys)

	t.Run("with file", func(t *testing.T) {
		body, contentType := multipartBody(t, "style guide", "style-guide.md", []byte("# Style\n\nUse active voice."))

		req := httptest.NewRequest("POST", fmt.Sprintf("/projects/%s/context", projectID), body)
		req.Header.Set(projects.CallerHeader, "caller-1")
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
		}
		if gotCmd.Caption != "style guide" {
			t.Errorf("caption = %q, want style guide", gotCmd.Caption)
		}
		if gotCmd.Filename != "style-guide.md" {
			t.Errorf("filename = %q, want style-guide.md", gotCmd.Filename)
		}
		if len(gotCmd.Data) == 0 {
			t.Error("expected attachment data to be forwarded")
		}
		if gotCmd.ContentType == "" {
			t.Error("expected a detected content type")
		}
	})

	t.Run("caption only", func(t *testing.T) {
		body, contentType := multipartBody(t, "target audience is SREs", "", nil)

		req := httptest.NewRequest("POST", fmt.Sprintf("/projects/%s/context", projectID), body)
		req.Header.Set(projects.CallerHeader, "caller-1")
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
		}
		if gotCmd.Caption != "target audience is SREs" {
			t.Errorf("caption = %q", gotCmd.Caption)
		}
		if gotCmd.Data != nil {
			t.Errorf("expected no attachment data, got %d bytes", len(gotCmd.Data))
		}
	})

	t.Run("not multipart", func(t *testing.T) {
		req := httptest.NewRequest("POST", fmt.Sprintf("/projects/%s/context", projectID), strings.NewReader(`{"caption": "x"}`))
		req.Header.Set(projects.CallerHeader, "caller-1")
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusRequestEntityTooLarge {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusRequestEntityTooLarge)
		}
	})
}

func TestHandlerRemoveContext(t *testing.T) {
	projectID := uuid.New()
	entryID := uuid.New()

	sys := &mockSystem{
		removeContextFn: func(_ context.Context, callerID string, pid, eid uuid.UUID) error {
			if eid != entryID {
				return projects.ErrEntryNotFound
			}
			return nil
		},
	}
	mux := setupMux(t, sys)

	t.Run("removed", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", fmt.Sprintf("/projects/%s/context/%s", projectID, entryID), nil)
		req.Header.Set(projects.CallerHeader, "caller-1")
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
		}
	})

	t.Run("invalid entry id", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", fmt.Sprintf("/projects/%s/context/nope", projectID), nil)
		req.Header.Set(projects.CallerHeader, "caller-1")
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("unknown entry", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", fmt.Sprintf("/projects/%s/context/%s", projectID, uuid.New()), nil)
		req.Header.Set(projects.CallerHeader, "caller-1")
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
	})
}

func TestHandlerDownload(t *testing.T) {
	projectID := uuid.New()
	entryID := uuid.New()
	content := []byte("# Style\n\nUse active voice.")

	sys := &mockSystem{
		downloadFn: func(_ context.Context, callerID string, pid, eid uuid.UUID) (*storage.DownloadResult, string, error) {
			if eid != entryID {
				return nil, "", projects.ErrEntryNotFound
			}
			return &storage.DownloadResult{
				Body:          io.NopCloser(bytes.NewReader(content)),
				ContentType:   "text/markdown",
				ContentLength: int64(len(content)),
			}, "style-guide.md", nil
		},
	}
	mux := setupMux(t, sys)

	t.Run("streams attachment", func(t *testing.T) {
		req := httptest.NewRequest("GET", fmt.Sprintf("/projects/%s/context/%s/download", projectID, entryID), nil)
		req.Header.Set(projects.CallerHeader, "caller-1")
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		if got := rec.Header().Get("Content-Type"); got != "text/markdown" {
			t.Errorf("Content-Type = %q, want text/markdown", got)
		}
		if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename="style-guide.md"` {
			t.Errorf("Content-Disposition = %q", got)
		}
		if !bytes.Equal(rec.Body.Bytes(), content) {
			t.Errorf("body = %q, want %q", rec.Body.String(), content)
		}
	})

	t.Run("caption-only entry", func(t *testing.T) {
		req := httptest.NewRequest("GET", fmt.Sprintf("/projects/%s/context/%s/download", projectID, uuid.New()), nil)
		req.Header.Set(projects.CallerHeader, "caller-1")
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
	})
}

type brokenReader struct {
	data []byte
	read bool
}

func (r *brokenReader) Read(p []byte) (int, error) {
	if !r.read {
		r.read = true
		return copy(p, r.data), nil
	}
	return 0, fmt.Errorf("blob connection reset")
}

func (r *brokenReader) Close() error { return nil }

func TestHandlerDownloadStreamFailure(t *testing.T) {
	projectID := uuid.New()
	entryID := uuid.New()

	sys := &mockSystem{
		downloadFn: func(_ context.Context, _ string, _, _ uuid.UUID) (*storage.DownloadResult, string, error) {
			return &storage.DownloadResult{
				Body:          &brokenReader{data: []byte("# Style")},
				ContentType:   "text/markdown",
				ContentLength: 512,
			}, "style-guide.md", nil
		},
	}

	var logBuf bytes.Buffer
	handler := projects.NewHandler(
		sys,
		slog.New(slog.NewTextHandler(&logBuf, nil)),
		pagination.Config{DefaultPageSize: 20, MaxPageSize: 100},
		1<<20,
	)

	mux := http.NewServeMux()
	group := handler.Routes()
	for _, route := range group.Routes {
		mux.HandleFunc(route.Method+" "+group.Prefix+route.Pattern, route.Handler)
	}

	req := httptest.NewRequest("GET", fmt.Sprintf("/projects/%s/context/%s/download", projectID, entryID), nil)
	req.Header.Set(projects.CallerHeader, "caller-1")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Body.String(); got != "# Style" {
		t.Errorf("body = %q, want partial content %q", got, "# Style")
	}
	if !strings.Contains(logBuf.String(), "attachment stream interrupted") {
		t.Errorf("log output = %q, want attachment stream interrupted", logBuf.String())
	}
	if !strings.Contains(logBuf.String(), "blob connection reset") {
		t.Errorf("log output = %q, want stream error detail", logBuf.String())
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", projects.ErrNotFound, http.StatusNotFound},
		{"entry not found", projects.ErrEntryNotFound, http.StatusNotFound},
		{"duplicate", projects.ErrDuplicate, http.StatusConflict},
		{"caller required", projects.ErrCallerRequired, http.StatusBadRequest},
		{"invalid project", projects.ErrInvalidProject, http.StatusBadRequest},
		{"invalid entry", projects.ErrInvalidEntry, http.StatusBadRequest},
		{"file too large", projects.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := projects.MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
