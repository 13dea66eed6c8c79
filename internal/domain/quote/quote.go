package quote

import (
	"time"

	"github.com/google/uuid"
	"github.com/inteligent/dashboard/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// LineInput is an ordered quote line exactly as submitted: a price-list item
// reference plus a quantity. Prices are not stored here; every read re-prices
// the lines against the live catalog.
type LineInput struct {
	ItemID   uuid.UUID
	Quantity decimal.Decimal
}

// Quote is one version of an offer document. Versions of the same offer share
// a ChainID (the ID of the first version); the latest version is the one with
// the highest Version value in the chain, active or not.
type Quote struct {
	shared.BaseEntity
	ChainID  uuid.UUID
	Number   string
	Version  int
	ClientID uuid.UUID
	Lines    []LineInput
	Discount decimal.Decimal
	PDFPath  string
	Active   bool
}

// NewQuote creates the root version of a new offer chain. The chain ID equals
// the document's own ID.
func NewQuote(number string, clientID uuid.UUID, lines []LineInput, discount decimal.Decimal) (*Quote, error) {
	if err := ValidateContent(clientID, lines, discount); err != nil {
		return nil, err
	}
	if number == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Offer number cannot be empty")
	}

	q := &Quote{
		BaseEntity: shared.NewBaseEntity(),
		Number:     number,
		Version:    1,
		ClientID:   clientID,
		Lines:      lines,
		Discount:   discount,
		Active:     true,
	}
	q.ChainID = q.ID
	return q, nil
}

// NewVersionOf clones the given quote's content into a new document at the
// next version of its chain. The caller is responsible for passing the
// chain-latest document and for serializing version assignment per chain.
func NewVersionOf(latest *Quote, nextVersion int) (*Quote, error) {
	if latest == nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Source offer is required")
	}
	if nextVersion <= latest.Version {
		return nil, shared.NewDomainError("INVALID_INPUT", "Version numbers must increase within a chain")
	}

	q := &Quote{
		BaseEntity: shared.NewBaseEntity(),
		ChainID:    latest.ChainID,
		Number:     VersionNumber(latest.Number, nextVersion),
		Version:    nextVersion,
		ClientID:   latest.ClientID,
		Lines:      append([]LineInput(nil), latest.Lines...),
		Discount:   latest.Discount,
		Active:     true,
	}
	return q, nil
}

// ValidateContent checks the mutable parts of a quote: client reference,
// submitted lines and discount fraction.
func ValidateContent(clientID uuid.UUID, lines []LineInput, discount decimal.Decimal) error {
	if clientID == uuid.Nil {
		return shared.NewDomainError("INVALID_INPUT", "Client is required")
	}
	if len(lines) == 0 {
		return shared.NewDomainError("INVALID_INPUT", "At least one line item is required")
	}
	for _, line := range lines {
		if line.ItemID == uuid.Nil {
			return shared.NewDomainError("INVALID_INPUT", "Line item reference is required")
		}
		if line.Quantity.LessThanOrEqual(decimal.Zero) {
			return shared.NewDomainError("INVALID_INPUT", "Line quantity must be positive")
		}
	}
	if discount.IsNegative() || discount.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return shared.NewDomainError("INVALID_INPUT", "Discount must be a fraction in [0,1)")
	}
	return nil
}

// UpdateContent replaces the quote's client, lines and discount in place.
// The number, version and chain membership never change on update.
func (q *Quote) UpdateContent(clientID uuid.UUID, lines []LineInput, discount decimal.Decimal) error {
	if err := ValidateContent(clientID, lines, discount); err != nil {
		return err
	}
	q.ClientID = clientID
	q.Lines = lines
	q.Discount = discount
	q.UpdatedAt = time.Now()
	return nil
}

// AttachPDF records the rendered artifact's relative path
func (q *Quote) AttachPDF(path string) {
	q.PDFPath = path
	q.UpdatedAt = time.Now()
}

// Deactivate soft-deletes the quote. Deactivating an already inactive quote
// is a no-op; version and number are never touched.
func (q *Quote) Deactivate() {
	if !q.Active {
		return
	}
	q.Active = false
	q.UpdatedAt = time.Now()
}

// IsRoot reports whether this document is the first version of its chain
func (q *Quote) IsRoot() bool {
	return q.Version == 1
}
