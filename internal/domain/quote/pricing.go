package quote

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PricedLine is one quote line after resolving its catalog item. Derived on
// every read, never persisted.
type PricedLine struct {
	ItemID         uuid.UUID
	Name           string
	Unit           string
	Quantity       decimal.Decimal
	UnitPrice      decimal.Decimal
	NetTotal       decimal.Decimal
	TaxRatePercent decimal.Decimal
	GrossTotal     decimal.Decimal
}

// PriceResult aggregates priced lines into document totals. The discount
// multiplies the tax-inclusive grand total, never individual lines.
type PriceResult struct {
	Lines                []PricedLine
	NetTotal             decimal.Decimal
	TaxTotal             decimal.Decimal
	GrossTotal           decimal.Decimal
	DiscountedGrossTotal decimal.Decimal
}

var oneHundred = decimal.NewFromInt(100)

// PriceLine computes net and gross totals for a single resolved line
func PriceLine(itemID uuid.UUID, name, unit string, quantity, unitPrice, taxRatePercent decimal.Decimal) PricedLine {
	net := unitPrice.Mul(quantity)
	gross := net.Mul(decimal.NewFromInt(1).Add(taxRatePercent.Div(oneHundred)))
	return PricedLine{
		ItemID:         itemID,
		Name:           name,
		Unit:           unit,
		Quantity:       quantity,
		UnitPrice:      unitPrice,
		NetTotal:       net,
		TaxRatePercent: taxRatePercent,
		GrossTotal:     gross,
	}
}

// Summarize aggregates priced lines and applies the discount fraction to the
// gross total.
func Summarize(lines []PricedLine, discount decimal.Decimal) *PriceResult {
	net := decimal.Zero
	gross := decimal.Zero
	for _, line := range lines {
		net = net.Add(line.NetTotal)
		gross = gross.Add(line.GrossTotal)
	}
	return &PriceResult{
		Lines:                lines,
		NetTotal:             net,
		TaxTotal:             gross.Sub(net),
		GrossTotal:           gross,
		DiscountedGrossTotal: gross.Mul(decimal.NewFromInt(1).Sub(discount)),
	}
}
