package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/inteligent/dashboard/internal/domain/catalog"
	"github.com/inteligent/dashboard/internal/domain/quote"
	"github.com/inteligent/dashboard/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Engine prices submitted quote lines against the live price list. It has no
// state of its own: the result is a pure function of the input and the
// catalog snapshot at call time.
type Engine struct {
	items catalog.ItemRepository
}

// NewEngine creates a pricing engine backed by the given price list
func NewEngine(items catalog.ItemRepository) *Engine {
	return &Engine{items: items}
}

// PriceLines resolves every line's catalog item, computes per-line net and
// gross totals and aggregates them. The discount fraction applies to the
// tax-inclusive grand total only.
func (e *Engine) PriceLines(ctx context.Context, lines []quote.LineInput, discount decimal.Decimal) (*quote.PriceResult, error) {
	if len(lines) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "At least one line item is required")
	}
	if discount.IsNegative() || discount.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Discount must be a fraction in [0,1)")
	}

	priced := make([]quote.PricedLine, 0, len(lines))
	for _, line := range lines {
		if line.Quantity.LessThanOrEqual(decimal.Zero) {
			return nil, shared.NewDomainError("INVALID_INPUT", "Line quantity must be positive")
		}

		item, err := e.items.FindByID(ctx, line.ItemID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("NOT_FOUND", fmt.Sprintf("Price-list item %s does not exist", line.ItemID))
			}
			return nil, fmt.Errorf("failed to resolve price-list item: %w", err)
		}

		priced = append(priced, quote.PriceLine(item.ID, item.Name, item.Unit, line.Quantity, item.UnitPrice, item.TaxRatePercent))
	}

	return quote.Summarize(priced, discount), nil
}

// PriceAdHoc prices lines that carry their own unit price and tax rate, such
// as the settings preview sample. The catalog is not consulted.
func PriceAdHoc(items []AdHocItem, discount decimal.Decimal) *quote.PriceResult {
	priced := make([]quote.PricedLine, 0, len(items))
	for _, item := range items {
		priced = append(priced, quote.PriceLine(item.ItemID, item.Name, item.Unit, item.Quantity, item.UnitPrice, item.TaxRatePercent))
	}
	return quote.Summarize(priced, discount)
}

// AdHocItem is a self-priced line used by render-only previews
type AdHocItem struct {
	ItemID         uuid.UUID
	Name           string
	Unit           string
	Quantity       decimal.Decimal
	UnitPrice      decimal.Decimal
	TaxRatePercent decimal.Decimal
}
