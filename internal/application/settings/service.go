package settings

import (
	"context"
	"fmt"

	"github.com/inteligent/dashboard/internal/application/pricing"
	"github.com/inteligent/dashboard/internal/application/quote"
	"github.com/inteligent/dashboard/internal/domain/settings"
	"github.com/inteligent/dashboard/internal/infrastructure/rendering"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Store persists the singleton offer-template settings
type Store interface {
	Get(ctx context.Context) (settings.TemplateSettings, error)
	Put(ctx context.Context, next settings.TemplateSettings) (settings.TemplateSettings, error)
}

// Service manages the offer-template settings and renders throwaway previews
// of the configured template.
type Service struct {
	store    Store
	renderer quote.DocumentRenderer
	logger   *zap.Logger
}

// NewService creates the settings service
func NewService(store Store, renderer quote.DocumentRenderer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, renderer: renderer, logger: logger}
}

// Get returns the current settings, falling back to built-in defaults when
// nothing has been saved yet.
func (s *Service) Get(ctx context.Context) (settings.TemplateSettings, error) {
	return s.store.Get(ctx)
}

// Put replaces the settings wholesale. Absent fields are filled from the
// built-in defaults before persisting, so the stored document is always
// fully formed.
func (s *Service) Put(ctx context.Context, next settings.TemplateSettings) (settings.TemplateSettings, error) {
	normalized := settings.Normalize(next)
	saved, err := s.store.Put(ctx, normalized)
	if err != nil {
		return settings.TemplateSettings{}, err
	}
	s.logger.Info("offer template settings updated",
		zap.String("company", saved.Company.Name))
	return saved, nil
}

// Preview renders the submitted settings against the sample document and
// returns the PDF bytes. Nothing is persisted: the caller sees exactly what a
// real offer would look like if these settings were saved.
func (s *Service) Preview(ctx context.Context, candidate settings.TemplateSettings) ([]byte, error) {
	cfg := settings.Normalize(candidate)

	items := make([]pricing.AdHocItem, 0, len(cfg.Preview.Items))
	for _, item := range cfg.Preview.Items {
		items = append(items, pricing.AdHocItem{
			Name:           item.Name,
			Unit:           item.Unit,
			Quantity:       item.Quantity,
			UnitPrice:      item.UnitPrice,
			TaxRatePercent: item.TaxRatePercent,
		})
	}
	priced := pricing.PriceAdHoc(items, decimal.Zero)

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
		Number: cfg.Preview.Number,
		Date:   cfg.Preview.Date,
		Client: rendering.OfferParty{
			Name:    cfg.Preview.Client.Name,
			Address: cfg.Preview.Client.Address,
			TaxID:   cfg.Preview.Client.TaxID,
		},
		Rows:     rows,
		NetTotal: priced.NetTotal,
		TaxTotal: priced.TaxTotal,
		Total:    priced.GrossTotal,
		Note:     cfg.Note,
		Company:  cfg.Company,
	}
	pdf, err := s.renderer.RenderOffer(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("failed to render settings preview: %w", err)
	}
	return pdf, nil
}
