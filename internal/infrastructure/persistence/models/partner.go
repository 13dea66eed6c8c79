package models

import (
	"github.com/inteligent/dashboard/internal/domain/partner"
)

// ClientModel is the persistence model for the Client domain entity
type ClientModel struct {
	BaseModel
	Name      string `gorm:"type:varchar(200);not null"`
	Company   string `gorm:"type:varchar(200)"`
	Type      string `gorm:"type:varchar(20);not null"`
	TaxNumber string `gorm:"type:varchar(30)"`
	Email     string `gorm:"type:varchar(200);not null"`
	Phone     string `gorm:"type:varchar(50)"`
	Address   string `gorm:"type:varchar(300)"`
	Status    string `gorm:"type:varchar(20);not null;default:'aktivna'"`
	Note      string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ClientModel) TableName() string {
	return "clients"
}

// ToDomain converts the persistence model to a domain Client
func (m *ClientModel) ToDomain() *partner.Client {
	return &partner.Client{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Company:    m.Company,
		Type:       partner.ClientType(m.Type),
		TaxNumber:  m.TaxNumber,
		Email:      m.Email,
		Phone:      m.Phone,
		Address:    m.Address,
		Status:     partner.ClientStatus(m.Status),
		Note:       m.Note,
	}
}

// FromDomain populates the persistence model from a domain Client
func (m *ClientModel) FromDomain(c *partner.Client) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.Company = c.Company
	m.Type = string(c.Type)
	m.TaxNumber = c.TaxNumber
	m.Email = c.Email
	m.Phone = c.Phone
	m.Address = c.Address
	m.Status = string(c.Status)
	m.Note = c.Note
}
