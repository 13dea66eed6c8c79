package project

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for projects
type Repository interface {
	// FindByID finds a project by its ID, returning shared.ErrNotFound when absent
	FindByID(ctx context.Context, id uuid.UUID) (*Project, error)
	// FindAll returns all projects, newest first
	FindAll(ctx context.Context) ([]Project, error)
	// Save persists a new project
	Save(ctx context.Context, project *Project) error
	// Update persists changes to an existing project
	Update(ctx context.Context, project *Project) error
}
