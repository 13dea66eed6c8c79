package quote

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/inteligent/dashboard/internal/application/pricing"
	"github.com/inteligent/dashboard/internal/domain/partner"
	"github.com/inteligent/dashboard/internal/domain/quote"
	"github.com/inteligent/dashboard/internal/domain/settings"
	"github.com/inteligent/dashboard/internal/domain/shared"
	"github.com/inteligent/dashboard/internal/infrastructure/rendering"
	"go.uber.org/zap"
)

// DocumentRenderer renders a composed offer into a PDF
type DocumentRenderer interface {
	RenderOffer(ctx context.Context, data *rendering.OfferData) ([]byte, error)
}

// ArtifactStorage stores rendered documents and resolves stored paths
type ArtifactStorage interface {
	Store(filename string, data []byte) (string, error)
	Open(relPath string) (string, error)
}

// SettingsSource supplies the offer-template settings at render time
type SettingsSource interface {
	Get(ctx context.Context) (settings.TemplateSettings, error)
}

// ServiceConfig wires the offer service's collaborators
type ServiceConfig struct {
	Repo     quote.Repository
	Sequence quote.NumberSequence
	Clients  partner.ClientRepository
	Engine   *pricing.Engine
	Renderer DocumentRenderer
	Storage  ArtifactStorage
	Settings SettingsSource
	Logger   *zap.Logger
	// Now overrides time.Now for number allocation (tests only)
	Now func() time.Time
}

// Service manages offer chains: creation, versioning, content updates,
// soft deletion and the rendered PDF artifacts. Every read re-prices the
// stored lines against the live price list; stored documents carry only
// item references and quantities.
type Service struct {
	repo     quote.Repository
	sequence quote.NumberSequence
	clients  partner.ClientRepository
	engine   *pricing.Engine
	renderer DocumentRenderer
	storage  ArtifactStorage
	settings SettingsSource
	logger   *zap.Logger
	now      func() time.Time

	// one mutex per chain, so version assignment is serialized per chain
	// while unrelated chains proceed in parallel
	chainLocks sync.Map
}

// NewService creates the offer service
func NewService(cfg ServiceConfig) *Service {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Service{
		repo:     cfg.Repo,
		sequence: cfg.Sequence,
		clients:  cfg.Clients,
		engine:   cfg.Engine,
		renderer: cfg.Renderer,
		storage:  cfg.Storage,
		settings: cfg.Settings,
		logger:   cfg.Logger,
		now:      cfg.Now,
	}
}

// Create starts a new offer chain: allocates the next yearly number, persists
// version 1 and renders the PDF. Rendering is best effort; a render failure
// leaves the offer stored without an artifact and is reported in the log, not
// to the caller.
func (s *Service) Create(ctx context.Context, in CreateOfferInput) (*OfferDetail, error) {
	client, err := s.resolveClient(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}

	priced, err := s.engine.PriceLines(ctx, in.Lines, in.Discount)
	if err != nil {
		return nil, err
	}

	year := s.now().Year()
	seq, err := s.sequence.Next(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate offer number: %w", err)
	}

	q, err := quote.NewQuote(quote.FormatNumber(seq, year), in.ClientID, in.Lines, in.Discount)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, q); err != nil {
		return nil, fmt.Errorf("failed to save offer: %w", err)
	}

	s.logger.Info("offer created",
		zap.String("id", q.ID.String()),
		zap.String("number", q.Number))

	s.render(ctx, q, client, priced)
	return toDetail(q, client, priced), nil
}

// NewVersion appends the next version to the offer's chain. The new document
// clones the content of the chain's current latest version, which is not
// necessarily the document the caller pointed at. Concurrent calls against
// the same chain are serialized so version numbers within a chain are gapless
// and strictly increasing.
func (s *Service) NewVersion(ctx context.Context, id uuid.UUID) (*OfferDetail, error) {
	origin, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := s.appendVersion(ctx, origin.ChainID)
	if err != nil {
		return nil, err
	}

	client, err := s.resolveClient(ctx, next.ClientID)
	if err != nil {
		return nil, err
	}
	priced, err := s.engine.PriceLines(ctx, next.Lines, next.Discount)
	if err != nil {
		return nil, err
	}

	s.logger.Info("offer version created",
		zap.String("id", next.ID.String()),
		zap.String("chainId", next.ChainID.String()),
		zap.String("number", next.Number),
		zap.Int("version", next.Version))

	s.render(ctx, next, client, priced)
	return toDetail(next, client, priced), nil
}

// appendVersion holds the chain lock only around the latest-query and the
// insert; pricing and rendering happen outside the critical section.
func (s *Service) appendVersion(ctx context.Context, chainID uuid.UUID) (*quote.Quote, error) {
	lock := s.chainLock(chainID)
	lock.Lock()
	defer lock.Unlock()

	latest, err := s.repo.FindLatestInChain(ctx, chainID)
	if err != nil {
		return nil, err
	}
	next, err := quote.NewVersionOf(latest, latest.Version+1)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, next); err != nil {
		return nil, fmt.Errorf("failed to save offer version: %w", err)
	}
	return next, nil
}

// Update replaces an offer's client, lines and discount in place and
// re-renders the PDF. Number, version and chain membership never change.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateOfferInput) (*OfferDetail, error) {
	q, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	client, err := s.resolveClient(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	priced, err := s.engine.PriceLines(ctx, in.Lines, in.Discount)
	if err != nil {
		return nil, err
	}

	if err := q.UpdateContent(in.ClientID, in.Lines, in.Discount); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateContent(ctx, q); err != nil {
		return nil, fmt.Errorf("failed to update offer: %w", err)
	}

	s.logger.Info("offer updated",
		zap.String("id", q.ID.String()),
		zap.String("number", q.Number))

	s.render(ctx, q, client, priced)
	return toDetail(q, client, priced), nil
}

// Deactivate soft-deletes the offer. Other versions of the chain keep their
// numbers and versions; deactivating an already inactive offer succeeds.
func (s *Service) Deactivate(ctx context.Context, id uuid.UUID) error {
	q, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !q.Active {
		return nil
	}
	if err := s.repo.SetActive(ctx, id, false); err != nil {
		return fmt.Errorf("failed to deactivate offer: %w", err)
	}

	s.logger.Info("offer deactivated",
		zap.String("id", q.ID.String()),
		zap.String("number", q.Number))
	return nil
}

// Get returns one offer priced against the live price list
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*OfferDetail, error) {
	q, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	client, err := s.resolveClient(ctx, q.ClientID)
	if err != nil {
		return nil, err
	}
	priced, err := s.engine.PriceLines(ctx, q.Lines, q.Discount)
	if err != nil {
		return nil, err
	}
	return toDetail(q, client, priced), nil
}

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

// List returns active offers, most recently updated first. A missing client
// or an unpriceable line degrades that row instead of failing the whole list.
func (s *Service) List(ctx context.Context, limit int) ([]OfferSummary, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	quotes, err := s.repo.ListActive(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}

	summaries := make([]OfferSummary, 0, len(quotes))
	for i := range quotes {
		q := &quotes[i]
		summary := OfferSummary{
			ID:        q.ID,
			ChainID:   q.ChainID,
			Number:    q.Number,
			Version:   q.Version,
			PDFPath:   q.PDFPath,
			CreatedAt: q.CreatedAt,
			UpdatedAt: q.UpdatedAt,
		}

		if client, err := s.clients.FindByID(ctx, q.ClientID); err == nil {
			summary.Client = clientInfo(client)
		} else {
			s.logger.Warn("offer references missing client",
				zap.String("offerId", q.ID.String()),
				zap.String("clientId", q.ClientID.String()))
		}

		if priced, err := s.engine.PriceLines(ctx, q.Lines, q.Discount); err == nil {
			summary.GrossTotal = priced.DiscountedGrossTotal
		} else {
			s.logger.Warn("offer lines no longer priceable",
				zap.String("offerId", q.ID.String()),
				zap.Error(err))
		}

		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// PDF resolves the offer's rendered artifact, rendering it on demand when no
// stored copy exists yet. It returns the file's path on disk plus the
// download file name.
func (s *Service) PDF(ctx context.Context, id uuid.UUID) (string, string, error) {
	q, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", "", err
	}

	if q.PDFPath == "" {
		client, err := s.resolveClient(ctx, q.ClientID)
		if err != nil {
			return "", "", err
		}
		priced, err := s.engine.PriceLines(ctx, q.Lines, q.Discount)
		if err != nil {
			return "", "", err
		}
		s.render(ctx, q, client, priced)
		if q.PDFPath == "" {
			return "", "", shared.NewDomainError("RENDER_FAILED", "Offer document could not be rendered")
		}
	}

	path, err := s.storage.Open(q.PDFPath)
	if err != nil {
		return "", "", err
	}
	return path, quote.SafeFileName(q.Number), nil
}

func (s *Service) chainLock(chainID uuid.UUID) *sync.Mutex {
	lock, _ := s.chainLocks.LoadOrStore(chainID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

func (s *Service) resolveClient(ctx context.Context, id uuid.UUID) (*partner.Client, error) {
	client, err := s.clients.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", fmt.Sprintf("Client %s does not exist", id))
		}
		return nil, fmt.Errorf("failed to resolve client: %w", err)
	}
	return client, nil
}

// render produces and stores the offer PDF. Failures are logged and swallowed:
// the stored offer is the source of truth, the artifact is derived and can be
// re-rendered on the next read.
func (s *Service) render(ctx context.Context, q *quote.Quote, client *partner.Client, priced *quote.PriceResult) {
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		s.logger.Warn("falling back to default template settings",
			zap.String("offerId", q.ID.String()),
			zap.Error(err))
		cfg = settings.Defaults()
	}

	rows := make([]rendering.OfferRow, 0, len(priced.Lines))
	for _, line := range priced.Lines {
		rows = append(rows, rendering.OfferRow{
			Name:           line.Name,
			Quantity:       line.Quantity,
			Unit:           line.Unit,
			UnitPrice:      line.UnitPrice,
			TaxRatePercent: line.TaxRatePercent,
			GrossTotal:     line.GrossTotal,
		})
	}

	data := &rendering.OfferData{
		Number:   q.Number,
		Date:     q.CreatedAt.Format("2. 1. 2006"),
		Client:   rendering.OfferParty{Name: clientDisplayName(client), Address: client.Address, TaxID: client.TaxNumber},
		Rows:     rows,
		NetTotal: priced.NetTotal,
		TaxTotal: priced.TaxTotal,
		Total:    priced.DiscountedGrossTotal,
		Note:     cfg.Note,
		Company:  cfg.Company,
	}

	pdf, err := s.renderer.RenderOffer(ctx, data)
	if err != nil {
		s.logger.Warn("offer PDF rendering failed",
			zap.String("offerId", q.ID.String()),
			zap.String("number", q.Number),
			zap.Error(err))
		return
	}

	relPath, err := s.storage.Store(quote.SafeFileName(q.Number), pdf)
	if err != nil {
		s.logger.Warn("offer PDF could not be stored",
			zap.String("offerId", q.ID.String()),
			zap.Error(err))
		return
	}
	if err := s.repo.UpdatePDFPath(ctx, q.ID, relPath); err != nil {
		s.logger.Warn("offer PDF path could not be persisted",
			zap.String("offerId", q.ID.String()),
			zap.Error(err))
		return
	}
	q.AttachPDF(relPath)
}

func clientDisplayName(c *partner.Client) string {
	if c == nil {
		return ""
	}
	if c.Company != "" {
		return c.Company
	}
	return c.Name
}
