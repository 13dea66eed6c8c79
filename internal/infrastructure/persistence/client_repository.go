package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/inteligent/dashboard/internal/domain/partner"
	"github.com/inteligent/dashboard/internal/domain/shared"
	"github.com/inteligent/dashboard/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormClientRepository implements partner.ClientRepository using GORM
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GormClientRepository
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// FindByID finds a client by its ID
func (r *GormClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Client, error) {
	var model models.ClientModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all clients ordered by creation time
func (r *GormClientRepository) FindAll(ctx context.Context) ([]partner.Client, error) {
	var rows []models.ClientModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	clients := make([]partner.Client, 0, len(rows))
	for i := range rows {
		clients = append(clients, *rows[i].ToDomain())
	}
	return clients, nil
}

// Save persists a new client
func (r *GormClientRepository) Save(ctx context.Context, client *partner.Client) error {
	var model models.ClientModel
	model.FromDomain(client)
	return r.db.WithContext(ctx).Create(&model).Error
}

// Update persists changes to an existing client
func (r *GormClientRepository) Update(ctx context.Context, client *partner.Client) error {
	var model models.ClientModel
	model.FromDomain(client)
	result := r.db.WithContext(ctx).Model(&models.ClientModel{}).
		Where("id = ?", client.ID).
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

// Count returns the number of clients
func (r *GormClientRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ClientModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
