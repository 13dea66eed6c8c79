package models

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/inteligent/dashboard/internal/domain/quote"
	"github.com/shopspring/decimal"
)

// QuoteModel is the persistence model for one offer document version. Lines
// are stored as a JSON array of item references; prices are resolved at read
// time and never persisted.
type QuoteModel struct {
	BaseModel
	ChainID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_quote_chain_version,priority:1"`
	Number   string          `gorm:"type:varchar(30);not null;uniqueIndex"`
	Version  int             `gorm:"not null;uniqueIndex:idx_quote_chain_version,priority:2"`
	ClientID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Lines    string          `gorm:"type:jsonb;not null"`
	Discount decimal.Decimal `gorm:"type:decimal(6,4);not null;default:0"`
	PDFPath  string          `gorm:"type:varchar(255)"`
	Active   bool            `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (QuoteModel) TableName() string {
	return "quotes"
}

type lineRecord struct {
	ItemID   uuid.UUID       `json:"itemId"`
	Quantity decimal.Decimal `json:"quantity"`
}

// ToDomain converts the persistence model to a domain Quote
func (m *QuoteModel) ToDomain() (*quote.Quote, error) {
	var records []lineRecord
	if err := json.Unmarshal([]byte(m.Lines), &records); err != nil {
		return nil, fmt.Errorf("offer %s has unreadable lines: %w", m.ID, err)
	}
	lines := make([]quote.LineInput, 0, len(records))
	for _, rec := range records {
		lines = append(lines, quote.LineInput{ItemID: rec.ItemID, Quantity: rec.Quantity})
	}

	return &quote.Quote{
		BaseEntity: m.BaseModel.ToDomain(),
		ChainID:    m.ChainID,
		Number:     m.Number,
		Version:    m.Version,
		ClientID:   m.ClientID,
		Lines:      lines,
		Discount:   m.Discount,
		PDFPath:    m.PDFPath,
		Active:     m.Active,
	}, nil
}

// FromDomain populates the persistence model from a domain Quote
func (m *QuoteModel) FromDomain(q *quote.Quote) error {
	records := make([]lineRecord, 0, len(q.Lines))
	for _, line := range q.Lines {
		records = append(records, lineRecord{ItemID: line.ItemID, Quantity: line.Quantity})
	}
	encoded, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode offer lines: %w", err)
	}

	m.FromDomainBaseEntity(q.BaseEntity)
	m.ChainID = q.ChainID
	m.Number = q.Number
	m.Version = q.Version
	m.ClientID = q.ClientID
	m.Lines = string(encoded)
	m.Discount = q.Discount
	m.PDFPath = q.PDFPath
	m.Active = q.Active
	return nil
}

// EncodeLines serializes quote lines the way QuoteModel stores them
func EncodeLines(lines []quote.LineInput) (string, error) {
	records := make([]lineRecord, 0, len(lines))
	for _, line := range lines {
		records = append(records, lineRecord{ItemID: line.ItemID, Quantity: line.Quantity})
	}
	encoded, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("failed to encode offer lines: %w", err)
	}
	return string(encoded), nil
}

// NumberSequenceModel backs yearly offer number allocation. One row per year;
// seq is advanced atomically with an upsert.
type NumberSequenceModel struct {
	Year int   `gorm:"primaryKey"`
	Seq  int64 `gorm:"not null"`
}

// TableName returns the table name for GORM
func (NumberSequenceModel) TableName() string {
	return "number_sequences"
}
