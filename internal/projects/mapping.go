package projects

import (
	"promptmaster/pkg/query"
	"promptmaster/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "projects", "p").
	Project("id", "ID").
	Project("caller_id", "CallerID").
	Project("name", "Name").
	Project("description", "Description").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "UpdatedAt",
	Descending: true,
}

func scanProject(s repository.Scanner) (Project, error) {
	var p Project

	err := s.Scan(
		&p.ID,
		&p.CallerID,
		&p.Name,
		&p.Description,
		&p.CreatedAt,
		&p.UpdatedAt,
	)

	return p, err
}

func scanEntry(s repository.Scanner) (ContextEntry, error) {
	var e ContextEntry

	err := s.Scan(
		&e.ID,
		&e.ProjectID,
		&e.Caption,
		&e.Filename,
		&e.ContentType,
		&e.SizeBytes,
		&e.StorageKey,
		&e.CreatedAt,
	)

	return e, err
}
