package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/inteligent/dashboard/internal/domain/catalog"
	"github.com/inteligent/dashboard/internal/domain/shared"
	"github.com/inteligent/dashboard/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormItemRepository implements catalog.ItemRepository using GORM
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GormItemRepository
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// FindByID finds a price-list item by its ID
func (r *GormItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Item, error) {
	var model models.ItemModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all items ordered by name
func (r *GormItemRepository) FindAll(ctx context.Context) ([]catalog.Item, error) {
	var rows []models.ItemModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]catalog.Item, 0, len(rows))
	for i := range rows {
		items = append(items, *rows[i].ToDomain())
	}
	return items, nil
}

// Save persists a new item
func (r *GormItemRepository) Save(ctx context.Context, item *catalog.Item) error {
	var model models.ItemModel
	model.FromDomain(item)
	return r.db.WithContext(ctx).Create(&model).Error
}

// Update persists changes to an existing item
func (r *GormItemRepository) Update(ctx context.Context, item *catalog.Item) error {
	var model models.ItemModel
	model.FromDomain(item)
	result := r.db.WithContext(ctx).Model(&models.ItemModel{}).
		Where("id = ?", item.ID).
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

// Count returns the number of items
func (r *GormItemRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ItemModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
