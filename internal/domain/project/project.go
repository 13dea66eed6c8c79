package project

import (
	"time"

	"github.com/google/uuid"
	"github.com/inteligent/dashboard/internal/domain/shared"
)

// Status tracks project execution
type Status string

const (
	StatusPreparing  Status = "v pripravi"
	StatusConfirmed  Status = "potrjeno"
	StatusInProgress Status = "v izvedbi"
	StatusCompleted  Status = "zaključeno"
	StatusOnHold     Status = "na čakanju"
)

// IsValid checks if the value is a known project status
func (s Status) IsValid() bool {
	switch s {
	case StatusPreparing, StatusConfirmed, StatusInProgress, StatusCompleted, StatusOnHold:
		return true
	}
	return false
}

// Project is a customer engagement tracked on the dashboard
type Project struct {
	shared.BaseEntity
	Name         string
	ClientID     *uuid.UUID
	Location     string
	Categories   []string
	Requirements string
	Status       Status
}

// NewProject creates a new project in the preparing state
func NewProject(name string, clientID *uuid.UUID, location string, categories []string, requirements string) (*Project, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Project name cannot be empty")
	}

	return &Project{
		BaseEntity:   shared.NewBaseEntity(),
		Name:         name,
		ClientID:     clientID,
		Location:     location,
		Categories:   categories,
		Requirements: requirements,
		Status:       StatusPreparing,
	}, nil
}

// SetStatus moves the project to a new status
func (p *Project) SetStatus(status Status) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", "Invalid project status")
	}
	p.Status = status
	p.UpdatedAt = time.Now()
	return nil
}
