package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/inteligent/dashboard/internal/domain/catalog"
	"github.com/inteligent/dashboard/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CreateItemInput carries a new price-list item
type CreateItemInput struct {
	Name           string
	Unit           string
	UnitPrice      decimal.Decimal
	TaxRatePercent decimal.Decimal
}

// UpdateItemInput carries a price-list item update
type UpdateItemInput struct {
	Name           string
	Unit           string
	UnitPrice      decimal.Decimal
	TaxRatePercent decimal.Decimal
}

// Service manages the price list
type Service struct {
	repo   catalog.ItemRepository
	logger *zap.Logger
}

// NewService creates the price-list service
func NewService(repo catalog.ItemRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger}
}

// Create adds a new item to the price list
func (s *Service) Create(ctx context.Context, in CreateItemInput) (*catalog.Item, error) {
	item, err := catalog.NewItem(in.Name, in.Unit, in.UnitPrice, in.TaxRatePercent)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to save price-list item: %w", err)
	}

	s.logger.Info("price-list item created",
		zap.String("id", item.ID.String()),
		zap.String("name", item.Name))
	return item, nil
}

// Get returns one price-list item
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*catalog.Item, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns the full price list ordered by name
func (s *Service) List(ctx context.Context) ([]catalog.Item, error) {
	return s.repo.FindAll(ctx)
}

// Update changes an item's name, unit and pricing. Existing quotes pick up
// the new price automatically on their next read.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateItemInput) (*catalog.Item, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Item name cannot be empty")
	}
	if err := item.UpdatePricing(in.UnitPrice, in.TaxRatePercent); err != nil {
		return nil, err
	}
	item.Name = in.Name
	if in.Unit != "" {
		item.Unit = in.Unit
	}
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update price-list item: %w", err)
	}
	return item, nil
}
