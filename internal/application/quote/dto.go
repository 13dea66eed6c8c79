package quote

import (
	"time"

	"github.com/google/uuid"
	"github.com/inteligent/dashboard/internal/domain/partner"
	"github.com/inteligent/dashboard/internal/domain/quote"
	"github.com/shopspring/decimal"
)

// CreateOfferInput starts a new offer chain
type CreateOfferInput struct {
	ClientID uuid.UUID
	Lines    []quote.LineInput
	Discount decimal.Decimal
}

// UpdateOfferInput replaces an offer's content in place; number and version
// are not part of the input because they never change on update.
type UpdateOfferInput struct {
	ClientID uuid.UUID
	Lines    []quote.LineInput
	Discount decimal.Decimal
}

// ClientInfo is the recipient summary embedded in offer responses
type ClientInfo struct {
	ID        uuid.UUID
	Name      string
	Company   string
	Address   string
	TaxNumber string
}

// OfferDetail is a single offer priced against the live price list at read
// time. Totals belong to the response, not to the stored document.
type OfferDetail struct {
	ID                   uuid.UUID
	ChainID              uuid.UUID
	Number               string
	Version              int
	Client               ClientInfo
	Lines                []quote.PricedLine
	Discount             decimal.Decimal
	NetTotal             decimal.Decimal
	TaxTotal             decimal.Decimal
	GrossTotal           decimal.Decimal
	DiscountedGrossTotal decimal.Decimal
	PDFPath              string
	Active               bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// OfferSummary is one row of the offer list
type OfferSummary struct {
	ID         uuid.UUID
	ChainID    uuid.UUID
	Number     string
	Version    int
	Client     ClientInfo
	GrossTotal decimal.Decimal
	PDFPath    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func clientInfo(c *partner.Client) ClientInfo {
	if c == nil {
		return ClientInfo{}
	}
	return ClientInfo{
		ID:        c.ID,
		Name:      c.Name,
		Company:   c.Company,
		Address:   c.Address,
		TaxNumber: c.TaxNumber,
	}
}

func toDetail(q *quote.Quote, c *partner.Client, priced *quote.PriceResult) *OfferDetail {
	d := &OfferDetail{
		ID:        q.ID,
		ChainID:   q.ChainID,
		Number:    q.Number,
		Version:   q.Version,
		Client:    clientInfo(c),
		Discount:  q.Discount,
		PDFPath:   q.PDFPath,
		Active:    q.Active,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
	if priced != nil {
		d.Lines = priced.Lines
		d.NetTotal = priced.NetTotal
		d.TaxTotal = priced.TaxTotal
		d.GrossTotal = priced.GrossTotal
		d.DiscountedGrossTotal = priced.DiscountedGrossTotal
	}
	return d
}
