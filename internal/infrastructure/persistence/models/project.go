package models

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/inteligent/dashboard/internal/domain/project"
)

// ProjectModel is the persistence model for the Project domain entity.
// Categories are stored as a JSON string array.
type ProjectModel struct {
	BaseModel
	Name         string     `gorm:"type:varchar(200);not null"`
	ClientID     *uuid.UUID `gorm:"type:uuid;index"`
	Location     string     `gorm:"type:varchar(300)"`
	Categories   string     `gorm:"type:jsonb"`
	Requirements string     `gorm:"type:text"`
	Status       string     `gorm:"type:varchar(20);not null;default:'v pripravi'"`
}

// TableName returns the table name for GORM
func (ProjectModel) TableName() string {
	return "projects"
}

// ToDomain converts the persistence model to a domain Project
func (m *ProjectModel) ToDomain() (*project.Project, error) {
	var categories []string
	if m.Categories != "" {
		if err := json.Unmarshal([]byte(m.Categories), &categories); err != nil {
			return nil, fmt.Errorf("project %s has unreadable categories: %w", m.ID, err)
		}
	}

	return &project.Project{
		BaseEntity:   m.BaseModel.ToDomain(),
		Name:         m.Name,
		ClientID:     m.ClientID,
		Location:     m.Location,
		Categories:   categories,
		Requirements: m.Requirements,
		Status:       project.Status(m.Status),
	}, nil
}

// FromDomain populates the persistence model from a domain Project
func (m *ProjectModel) FromDomain(p *project.Project) error {
	encoded, err := json.Marshal(p.Categories)
	if err != nil {
		return fmt.Errorf("failed to encode project categories: %w", err)
	}

	m.FromDomainBaseEntity(p.BaseEntity)
	m.Name = p.Name
	m.ClientID = p.ClientID
	m.Location = p.Location
	m.Categories = string(encoded)
	m.Requirements = p.Requirements
	m.Status = string(p.Status)
	return nil
}
