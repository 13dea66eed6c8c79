package partner

import (
	"time"

	"github.com/inteligent/dashboard/internal/domain/shared"
)

// ClientType distinguishes companies from private persons
type ClientType string

const (
	ClientTypeCompany ClientType = "podjetje"
	ClientTypePerson  ClientType = "oseba"
)

// IsValid checks if the value is a known client type
func (t ClientType) IsValid() bool {
	return t == ClientTypeCompany || t == ClientTypePerson
}

// ClientStatus tracks where a client is in the sales pipeline
type ClientStatus string

const (
	ClientStatusActive     ClientStatus = "aktivna"
	ClientStatusInProgress ClientStatus = "v obdelavi"
	ClientStatusInactive   ClientStatus = "neaktivna"
)

// IsValid checks if the value is a known client status
func (s ClientStatus) IsValid() bool {
	return s == ClientStatusActive || s == ClientStatusInProgress || s == ClientStatusInactive
}

// Client is a CRM record. Quotes and projects reference clients by ID but do
// not own them.
type Client struct {
	shared.BaseEntity
	Name      string
	Company   string
	Type      ClientType
	TaxNumber string
	Email     string
	Phone     string
	Address   string
	Status    ClientStatus
	Note      string
}

// NewClient creates a new client record
func NewClient(name, company string, clientType ClientType, taxNumber, email, phone, address string) (*Client, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Client name cannot be empty")
	}
	if email == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Client email cannot be empty")
	}
	if !clientType.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid client type")
	}
	// Companies must carry a VAT number, persons may omit it.
	if clientType == ClientTypeCompany && taxNumber == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Tax number is required for companies")
	}

	return &Client{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Company:    company,
		Type:       clientType,
		TaxNumber:  taxNumber,
		Email:      email,
		Phone:      phone,
		Address:    address,
		Status:     ClientStatusActive,
	}, nil
}

// SetStatus updates the pipeline status
func (c *Client) SetStatus(status ClientStatus) {
	c.Status = status
	c.UpdatedAt = time.Now()
}

// SetNote replaces the free-form note
func (c *Client) SetNote(note string) {
	c.Note = note
	c.UpdatedAt = time.Now()
}
