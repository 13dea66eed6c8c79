package partner

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/inteligent/dashboard/internal/domain/partner"
	"github.com/inteligent/dashboard/internal/domain/shared"
	"go.uber.org/zap"
)

// CreateClientInput carries a new client record
type CreateClientInput struct {
	Name      string
	Company   string
	Type      partner.ClientType
	TaxNumber string
	Email     string
	Phone     string
	Address   string
	Note      string
}

// UpdateClientInput carries a full client update. Empty strings clear the
// optional fields; identity and creation time are untouched.
type UpdateClientInput struct {
	Name      string
	Company   string
	Type      partner.ClientType
	TaxNumber string
	Email     string
	Phone     string
	Address   string
	Status    partner.ClientStatus
	Note      string
}

// Service manages CRM client records
type Service struct {
	repo   partner.ClientRepository
	logger *zap.Logger
}

// NewService creates the client service
func NewService(repo partner.ClientRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger}
}

// Create registers a new client
func (s *Service) Create(ctx context.Context, in CreateClientInput) (*partner.Client, error) {
	client, err := partner.NewClient(in.Name, in.Company, in.Type, in.TaxNumber, in.Email, in.Phone, in.Address)
	if err != nil {
		return nil, err
	}
	if in.Note != "" {
		client.SetNote(in.Note)
	}
	if err := s.repo.Save(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to save client: %w", err)
	}

	s.logger.Info("client created",
		zap.String("id", client.ID.String()),
		zap.String("name", client.Name))
	return client, nil
}

// Get returns one client
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*partner.Client, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns all clients
func (s *Service) List(ctx context.Context) ([]partner.Client, error) {
	return s.repo.FindAll(ctx)
}

// Update replaces the client's record wholesale
func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateClientInput) (*partner.Client, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Client name cannot be empty")
	}
	if in.Email == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Client email cannot be empty")
	}
	if !in.Type.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid client type")
	}
	if in.Type == partner.ClientTypeCompany && in.TaxNumber == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Tax number is required for companies")
	}
	if !in.Status.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid client status")
	}

	client.Name = in.Name
	client.Company = in.Company
	client.Type = in.Type
	client.TaxNumber = in.TaxNumber
	client.Email = in.Email
	client.Phone = in.Phone
	client.Address = in.Address
	client.SetStatus(in.Status)
	client.SetNote(in.Note)

	if err := s.repo.Update(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return client, nil
}
