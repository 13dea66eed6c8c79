package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/inteligent/dashboard/internal/domain/project"
	"github.com/inteligent/dashboard/internal/domain/shared"
	"github.com/inteligent/dashboard/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormProjectRepository implements project.Repository using GORM
type GormProjectRepository struct {
	db *gorm.DB
}

// NewGormProjectRepository creates a new GormProjectRepository
func NewGormProjectRepository(db *gorm.DB) *GormProjectRepository {
	return &GormProjectRepository{db: db}
}

// FindByID finds a project by its ID
func (r *GormProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	var model models.ProjectModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindAll returns all projects, newest first
func (r *GormProjectRepository) FindAll(ctx context.Context) ([]project.Project, error) {
	var rows []models.ProjectModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	projects := make([]project.Project, 0, len(rows))
	for i := range rows {
		p, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	return projects, nil
}

// Save persists a new project
func (r *GormProjectRepository) Save(ctx context.Context, p *project.Project) error {
	var model models.ProjectModel
	if err := model.FromDomain(p); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&model).Error
}

// Update persists changes to an existing project
func (r *GormProjectRepository) Update(ctx context.Context, p *project.Project) error {
	var model models.ProjectModel
	if err := model.FromDomain(p); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Model(&models.ProjectModel{}).
		Where("id = ?", p.ID).
		Select("*").Omit("id", "created_at").
		Updates(&model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
