package specialists

import (
	"log/slog"
	"net/http"

	"promptmaster/pkg/handlers"
	"promptmaster/pkg/routes"
)

// Handler provides HTTP endpoints for the specialist catalog.
type Handler struct {
	logger *slog.Logger
}

// Listing is the public catalog entry shape returned by the list endpoint.
type Listing struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NewHandler creates a Handler with the given logger.
func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{
		logger: logger.With("handler", "specialists"),
	}
}

// Routes returns the route group definition for specialist endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/specialists",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
		},
	}
}

// List returns the name and routing description of every catalog specialist.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	defs := Catalog()

	listings := make([]Listing, 0, len(defs))
	for _, def := range defs {
		listings = append(listings, Listing{
			Name:        string(def.Kind),
			Description: def.Description,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, listings)
}
