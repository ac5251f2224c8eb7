package api

import (
	"net/http"

	"promptmaster/internal/config"
	"promptmaster/internal/specialists"
	"promptmaster/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
	runtime *Runtime,
) {
	routes.Register(
		mux,
		specialists.NewHandler(runtime.Logger).Routes(),
		domain.Optimizations.Handler().Routes(),
		domain.Projects.Handler(cfg.API.MaxUploadSizeBytes()).Routes(),
	)
}
