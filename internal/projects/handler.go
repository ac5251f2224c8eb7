package projects

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"promptmaster/pkg/handlers"
	"promptmaster/pkg/pagination"
	"promptmaster/pkg/routes"
)

// CallerHeader carries the opaque caller id on project requests.
// Identity verification is an upstream concern; the value is trusted as-is.
const CallerHeader = "X-Caller-Id"

// Handler provides HTTP endpoints for project operations.
type Handler struct {
	sys           System
	logger        *slog.Logger
	pagination    pagination.Config
	maxUploadSize int64
}

// NewHandler creates a Handler with the given system, logger, pagination config, and upload size limit.
func NewHandler(
	sys System,
	logger *slog.Logger,
	pagination pagination.Config,
	maxUploadSize int64,
) *Handler {
	return &Handler{
		sys:           sys,
		logger:        logger.With("handler", "projects"),
		pagination:    pagination,
		maxUploadSize: maxUploadSize,
	}
}

// Routes returns the route group definition for project endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/projects",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "POST", Pattern: "", Handler: h.Create},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "PUT", Pattern: "/{id}", Handler: h.Update},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete},
			{Method: "GET", Pattern: "/{id}/context", Handler: h.Entries},
			{Method: "POST", Pattern: "/{id}/context", Handler: h.AddContext},
			{Method: "DELETE", Pattern: "/{id}/context/{entryId}", Handler: h.RemoveContext},
			{Method: "GET", Pattern: "/{id}/context/{entryId}/download", Handler: h.Download},
		},
	}
}

// List returns a paginated list of the caller's projects.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	callerID := callerID(r)
	if callerID == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrCallerRequired)
		return
	}

	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)

	result, err := h.sys.List(r.Context(), callerID, page)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Find returns a single project by its UUID path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	callerID, id, ok := h.scope(w, r)
	if !ok {
		return
	}

	p, err := h.sys.Find(r.Context(), callerID, id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, p)
}

// Create registers a new project by decoding a CreateCommand JSON body.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	callerID := callerID(r)
	if callerID == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrCallerRequired)
		return
	}

	var cmd CreateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	p, err := h.sys.Create(r.Context(), callerID, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, p)
}

// Update overwrites a project's metadata by decoding an UpdateCommand JSON body.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	callerID, id, ok := h.scope(w, r)
	if !ok {
		return
	}

	var cmd UpdateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	p, err := h.sys.Update(r.Context(), callerID, id, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, p)
}

// Delete removes a project, its context entries, and their attachments.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	callerID, id, ok := h.scope(w, r)
	if !ok {
		return
	}

	if err := h.sys.Delete(r.Context(), callerID, id); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Entries returns a project's context entries in creation order.
func (h *Handler) Entries(w http.ResponseWriter, r *http.Request) {
	callerID, id, ok := h.scope(w, r)
	if !ok {
		return
	}

	entries, err := h.sys.Entries(r.Context(), callerID, id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, entries)
}

// AddContext processes a multipart form containing a caption and an optional
// attachment file, adding a context entry to the project.
func (h *Handler) AddContext(w http.ResponseWriter, r *http.Request) {
	callerID, id, ok := h.scope(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		handlers.RespondError(w, h.logger, http.StatusRequestEntityTooLarge, ErrFileTooLarge)
		return
	}

	cmd := AddContextCommand{
		Caption: r.FormValue("caption"),
	}

	if file, header, err := r.FormFile("file"); err == nil {
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidEntry)
			return
		}

		cmd.Data = data
		cmd.Filename = header.Filename
		cmd.ContentType = detectContentType(header.Header.Get("Content-Type"), data)
	}

	e, err := h.sys.AddContext(r.Context(), callerID, id, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, e)
}

// RemoveContext deletes a context entry and its attachment.
func (h *Handler) RemoveContext(w http.ResponseWriter, r *http.Request) {
	callerID, id, ok := h.scope(w, r)
	if !ok {
		return
	}

	entryID, err := uuid.Parse(r.PathValue("entryId"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrEntryNotFound)
		return
	}

	if err := h.sys.RemoveContext(r.Context(), callerID, id, entryID); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Download streams a context entry's attachment with its original filename.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	callerID, id, ok := h.scope(w, r)
	if !ok {
		return
	}

	entryID, err := uuid.Parse(r.PathValue("entryId"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrEntryNotFound)
		return
	}

	result, filename, err := h.sys.Download(r.Context(), callerID, id, entryID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	defer result.Body.Close()

	w.Header().Set("Content-Type", result.ContentType)
	if result.ContentLength > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(result.ContentLength, 10))
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, result.Body); err != nil {
		h.logger.Warn("attachment stream interrupted", "entry", entryID, "error", err)
	}
}

func (h *Handler) scope(w http.ResponseWriter, r *http.Request) (string, uuid.UUID, bool) {
	caller := callerID(r)
	if caller == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrCallerRequired)
		return "", uuid.Nil, false
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrNotFound)
		return "", uuid.Nil, false
	}

	return caller, id, true
}

func callerID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(CallerHeader))
}

func detectContentType(header string, data []byte) string {
	header = strings.TrimSpace(header)
	if header != "" && header != "application/octet-stream" {
		return header
	}
	return http.DetectContentType(data)
}
