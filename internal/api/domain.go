package api

import (
	"promptmaster/internal/optimizations"
	"promptmaster/internal/projects"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Projects      projects.System
	Optimizations optimizations.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	projectsSystem := projects.New(
		runtime.Database.Connection(),
		runtime.Storage,
		runtime.Logger,
		runtime.Pagination,
	)

	optimizationsSystem := optimizations.New(
		runtime.Database.Connection(),
		runtime.Pipeline,
		projectsSystem,
		runtime.Logger,
		runtime.Pagination,
		runtime.HistoryCap,
	)

	return &Domain{
		Projects:      projectsSystem,
		Optimizations: optimizationsSystem,
	}
}
