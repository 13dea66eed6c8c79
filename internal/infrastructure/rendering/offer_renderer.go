package rendering

import (
	"context"
)

// OfferRenderer composes an offer document and rasterizes it to PDF. It is
// the single entry point application services use; composition failures and
// engine failures both surface as RenderError.
type OfferRenderer struct {
	composer *Composer
	pdf      PDFRenderer
}

// NewOfferRenderer creates an offer renderer from a composer and a PDF engine
func NewOfferRenderer(composer *Composer, pdf PDFRenderer) *OfferRenderer {
	return &OfferRenderer{composer: composer, pdf: pdf}
}

// RenderOffer produces the final PDF bytes for the given offer view
func (r *OfferRenderer) RenderOffer(ctx context.Context, data *OfferData) ([]byte, error) {
	html, err := r.composer.Compose(data)
	if err != nil {
		return nil, err
	}

	result, err := r.pdf.Render(ctx, &RenderRequest{
		HTML:  html,
		Title: data.Number,
	})
	if err != nil {
		return nil, err
	}

	return result.PDFData, nil
}
