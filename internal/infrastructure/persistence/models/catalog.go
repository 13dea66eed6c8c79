package models

import (
	"github.com/inteligent/dashboard/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ItemModel is the persistence model for a price-list item
type ItemModel struct {
	BaseModel
	Name           string          `gorm:"type:varchar(200);not null"`
	Unit           string          `gorm:"type:varchar(20);not null;default:'kos'"`
	UnitPrice      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	TaxRatePercent decimal.Decimal `gorm:"type:decimal(6,2);not null;default:22"`
}

// TableName returns the table name for GORM
func (ItemModel) TableName() string {
	return "price_list_items"
}

// ToDomain converts the persistence model to a domain Item
func (m *ItemModel) ToDomain() *catalog.Item {
	return &catalog.Item{
		BaseEntity:     m.BaseModel.ToDomain(),
		Name:           m.Name,
		Unit:           m.Unit,
		UnitPrice:      m.UnitPrice,
		TaxRatePercent: m.TaxRatePercent,
	}
}

// FromDomain populates the persistence model from a domain Item
func (m *ItemModel) FromDomain(item *catalog.Item) {
	m.FromDomainBaseEntity(item.BaseEntity)
	m.Name = item.Name
	m.Unit = item.Unit
	m.UnitPrice = item.UnitPrice
	m.TaxRatePercent = item.TaxRatePercent
}
