package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/inteligent/dashboard/internal/domain/quote"
	"github.com/inteligent/dashboard/internal/domain/shared"
	"github.com/inteligent/dashboard/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormQuoteRepository implements quote.Repository using GORM
type GormQuoteRepository struct {
	db *gorm.DB
}

// NewGormQuoteRepository creates a new GormQuoteRepository
func NewGormQuoteRepository(db *gorm.DB) *GormQuoteRepository {
	return &GormQuoteRepository{db: db}
}

// FindByID finds an offer document by its ID
func (r *GormQuoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*quote.Quote, error) {
	var model models.QuoteModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindLatestInChain returns the chain's highest-version document, active or not
func (r *GormQuoteRepository) FindLatestInChain(ctx context.Context, chainID uuid.UUID) (*quote.Quote, error) {
	var model models.QuoteModel
	if err := r.db.WithContext(ctx).
		Where("chain_id = ?", chainID).
		Order("version DESC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// ListActive returns up to limit active documents, most recently updated first
func (r *GormQuoteRepository) ListActive(ctx context.Context, limit int) ([]quote.Quote, error) {
	var rows []models.QuoteModel
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("updated_at DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	quotes := make([]quote.Quote, 0, len(rows))
	for i := range rows {
		q, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, *q)
	}
	return quotes, nil
}

// Save persists a new offer document version
func (r *GormQuoteRepository) Save(ctx context.Context, q *quote.Quote) error {
	var model models.QuoteModel
	if err := model.FromDomain(q); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&model).Error
}

// UpdateContent persists the mutable content columns only
func (r *GormQuoteRepository) UpdateContent(ctx context.Context, q *quote.Quote) error {
	lines, err := models.EncodeLines(q.Lines)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&models.QuoteModel{}).
		Where("id = ?", q.ID).
		Updates(map[string]any{
			"client_id":  q.ClientID,
			"lines":      lines,
			"discount":   q.Discount,
			"updated_at": q.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// UpdatePDFPath persists only the rendered artifact path
func (r *GormQuoteRepository) UpdatePDFPath(ctx context.Context, id uuid.UUID, path string) error {
	result := r.db.WithContext(ctx).Model(&models.QuoteModel{}).
		Where("id = ?", id).
		Update("pdf_path", path)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// SetActive persists only the active flag
func (r *GormQuoteRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := r.db.WithContext(ctx).Model(&models.QuoteModel{}).
		Where("id = ?", id).
		Update("active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
