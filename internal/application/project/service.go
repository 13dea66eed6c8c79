package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/inteligent/dashboard/internal/domain/project"
	"github.com/inteligent/dashboard/internal/domain/shared"
	"go.uber.org/zap"
)

// CreateProjectInput carries a new project record
type CreateProjectInput struct {
	Name         string
	ClientID     *uuid.UUID
	Location     string
	Categories   []string
	Requirements string
}

// UpdateProjectInput carries a full project update
type UpdateProjectInput struct {
	Name         string
	ClientID     *uuid.UUID
	Location     string
	Categories   []string
	Requirements string
	Status       project.Status
}

// Service manages dashboard projects
type Service struct {
	repo   project.Repository
	logger *zap.Logger
}

// NewService creates the project service
func NewService(repo project.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger}
}

// Create registers a new project in the preparing state
func (s *Service) Create(ctx context.Context, in CreateProjectInput) (*project.Project, error) {
	p, err := project.NewProject(in.Name, in.ClientID, in.Location, in.Categories, in.Requirements)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to save project: %w", err)
	}

	s.logger.Info("project created",
		zap.String("id", p.ID.String()),
		zap.String("name", p.Name))
	return p, nil
}

// Get returns one project
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns all projects, newest first
func (s *Service) List(ctx context.Context) ([]project.Project, error) {
	return s.repo.FindAll(ctx)
}

// Update replaces the project's record wholesale
func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateProjectInput) (*project.Project, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Project name cannot be empty")
	}

	p.Name = in.Name
	p.ClientID = in.ClientID
	p.Location = in.Location
	p.Categories = in.Categories
	p.Requirements = in.Requirements
	if err := p.SetStatus(in.Status); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return p, nil
}
