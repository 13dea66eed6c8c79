package catalog

import (
	"time"

	"github.com/inteligent/dashboard/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DefaultTaxRatePercent is applied when an item is created without an
// explicit tax rate (standard Slovenian VAT).
var DefaultTaxRatePercent = decimal.NewFromInt(22)

// Item is a sellable price-list entry. Quotes reference items by ID and
// re-resolve name, unit price and tax rate at pricing time.
type Item struct {
	shared.BaseEntity
	Name           string
	Unit           string
	UnitPrice      decimal.Decimal
	TaxRatePercent decimal.Decimal
}

// NewItem creates a new price-list item
func NewItem(name, unit string, unitPrice, taxRatePercent decimal.Decimal) (*Item, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Item name cannot be empty")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Unit price cannot be negative")
	}
	if taxRatePercent.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Tax rate cannot be negative")
	}
	if taxRatePercent.IsZero() {
		taxRatePercent = DefaultTaxRatePercent
	}
	if unit == "" {
		unit = "kos"
	}

	return &Item{
		BaseEntity:     shared.NewBaseEntity(),
		Name:           name,
		Unit:           unit,
		UnitPrice:      unitPrice,
		TaxRatePercent: taxRatePercent,
	}, nil
}

// UpdatePricing replaces the unit price and tax rate
func (i *Item) UpdatePricing(unitPrice, taxRatePercent decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Unit price cannot be negative")
	}
	if taxRatePercent.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Tax rate cannot be negative")
	}
	i.UnitPrice = unitPrice
	i.TaxRatePercent = taxRatePercent
	i.UpdatedAt = time.Now()
	return nil
}
