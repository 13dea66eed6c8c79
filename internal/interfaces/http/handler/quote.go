package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appquote "github.com/inteligent/dashboard/internal/application/quote"
	"github.com/inteligent/dashboard/internal/domain/quote"
	"github.com/inteligent/dashboard/internal/interfaces/http/router"
	"github.com/shopspring/decimal"
)

// QuoteHandler exposes the offer endpoints
type QuoteHandler struct {
	BaseHandler
	service *appquote.Service
}

// NewQuoteHandler creates a new QuoteHandler
func NewQuoteHandler(service *appquote.Service) *QuoteHandler {
	return &QuoteHandler{service: service}
}

// RegisterRoutes implements router.RouteRegistrar
func (h *QuoteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	router.NewDomainGroup("quotes", "/quotes").
		POST("", h.Create).
		GET("", h.List).
		GET("/:id", h.Get).
		PUT("/:id", h.Update).
		DELETE("/:id", h.Deactivate).
		POST("/:id/versions", h.NewVersion).
		GET("/:id/pdf", h.PDF).
		RegisterRoutes(rg)
}

type quoteLineRequest struct {
	ItemID   string          `json:"itemId" binding:"required,uuid"`
	Quantity decimal.Decimal `json:"quantity"`
}

type quoteRequest struct {
	ClientID string             `json:"clientId" binding:"required,uuid"`
	Lines    []quoteLineRequest `json:"lines" binding:"required"`
	Discount decimal.Decimal    `json:"discount"`
}

func (r *quoteRequest) toLines() []quote.LineInput {
	lines := make([]quote.LineInput, 0, len(r.Lines))
	for _, line := range r.Lines {
		// Validity was checked by binding; parse cannot fail here.
		id, _ := uuid.Parse(line.ItemID)
		lines = append(lines, quote.LineInput{ItemID: id, Quantity: line.Quantity})
	}
	return lines
}

type clientInfoResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Company   string `json:"company,omitempty"`
	Address   string `json:"address,omitempty"`
	TaxNumber string `json:"taxNumber,omitempty"`
}

type pricedLineResponse struct {
	ItemID         string          `json:"itemId"`
	Name           string          `json:"name"`
	Unit           string          `json:"unit"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	NetTotal       decimal.Decimal `json:"netTotal"`
	TaxRatePercent decimal.Decimal `json:"taxRatePercent"`
	GrossTotal     decimal.Decimal `json:"grossTotal"`
}

type quoteDetailResponse struct {
	ID                   string               `json:"id"`
	ChainID              string               `json:"chainId"`
	Number               string               `json:"number"`
	Version              int                  `json:"version"`
	Client               clientInfoResponse   `json:"client"`
	Lines                []pricedLineResponse `json:"lines"`
	Discount             decimal.Decimal      `json:"discount"`
	NetTotal             decimal.Decimal      `json:"netTotal"`
	TaxTotal             decimal.Decimal      `json:"taxTotal"`
	GrossTotal           decimal.Decimal      `json:"grossTotal"`
	DiscountedGrossTotal decimal.Decimal      `json:"discountedGrossTotal"`
	PDFPath              string               `json:"pdfPath,omitempty"`
	Active               bool                 `json:"active"`
	CreatedAt            time.Time            `json:"createdAt"`
	UpdatedAt            time.Time            `json:"updatedAt"`
}

type quoteSummaryResponse struct {
	ID         string             `json:"id"`
	ChainID    string             `json:"chainId"`
	Number     string             `json:"number"`
	Version    int                `json:"version"`
	Client     clientInfoResponse `json:"client"`
	GrossTotal decimal.Decimal    `json:"grossTotal"`
	PDFPath    string             `json:"pdfPath,omitempty"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

func toClientInfoResponse(info appquote.ClientInfo) clientInfoResponse {
	id := ""
	if info.ID != uuid.Nil {
		id = info.ID.String()
	}
	return clientInfoResponse{
		ID:        id,
		Name:      info.Name,
		Company:   info.Company,
		Address:   info.Address,
		TaxNumber: info.TaxNumber,
	}
}

func toQuoteDetailResponse(d *appquote.OfferDetail) quoteDetailResponse {
	lines := make([]pricedLineResponse, 0, len(d.Lines))
	for _, line := range d.Lines {
		lines = append(lines, pricedLineResponse{
			ItemID:         line.ItemID.String(),
			Name:           line.Name,
			Unit:           line.Unit,
			Quantity:       line.Quantity,
			UnitPrice:      line.UnitPrice,
			NetTotal:       line.NetTotal,
			TaxRatePercent: line.TaxRatePercent,
			GrossTotal:     line.GrossTotal,
		})
	}
	return quoteDetailResponse{
		ID:                   d.ID.String(),
		ChainID:              d.ChainID.String(),
		Number:               d.Number,
		Version:              d.Version,
		Client:               toClientInfoResponse(d.Client),
		Lines:                lines,
		Discount:             d.Discount,
		NetTotal:             d.NetTotal,
		TaxTotal:             d.TaxTotal,
		GrossTotal:           d.GrossTotal,
		DiscountedGrossTotal: d.DiscountedGrossTotal,
		PDFPath:              d.PDFPath,
		Active:               d.Active,
		CreatedAt:            d.CreatedAt,
		UpdatedAt:            d.UpdatedAt,
	}
}

// Create handles POST /quotes
func (h *QuoteHandler) Create(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		h.BadRequest(c, "Invalid client ID")
		return
	}

	detail, err := h.service.Create(c.Request.Context(), appquote.CreateOfferInput{
		ClientID: clientID,
		Lines:    req.toLines(),
		Discount: req.Discount,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toQuoteDetailResponse(detail))
}

// List handles GET /quotes
func (h *QuoteHandler) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.BadRequest(c, "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	summaries, err := h.service.List(c.Request.Context(), limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]quoteSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		responses = append(responses, quoteSummaryResponse{
			ID:         s.ID.String(),
			ChainID:    s.ChainID.String(),
			Number:     s.Number,
			Version:    s.Version,
			Client:     toClientInfoResponse(s.Client),
			GrossTotal: s.GrossTotal,
			PDFPath:    s.PDFPath,
			CreatedAt:  s.CreatedAt,
			UpdatedAt:  s.UpdatedAt,
		})
	}
	h.Success(c, responses)
}

// Get handles GET /quotes/:id
func (h *QuoteHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid offer ID")
		return
	}

	detail, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toQuoteDetailResponse(detail))
}

// Update handles PUT /quotes/:id
func (h *QuoteHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid offer ID")
		return
	}

	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		h.BadRequest(c, "Invalid client ID")
		return
	}

	detail, err := h.service.Update(c.Request.Context(), id, appquote.UpdateOfferInput{
		ClientID: clientID,
		Lines:    req.toLines(),
		Discount: req.Discount,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toQuoteDetailResponse(detail))
}

// Deactivate handles DELETE /quotes/:id
func (h *QuoteHandler) Deactivate(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid offer ID")
		return
	}
	if err := h.service.Deactivate(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// NewVersion handles POST /quotes/:id/versions
func (h *QuoteHandler) NewVersion(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid offer ID")
		return
	}

	detail, err := h.service.NewVersion(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toQuoteDetailResponse(detail))
}

// PDF handles GET /quotes/:id/pdf
func (h *QuoteHandler) PDF(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid offer ID")
		return
	}

	path, filename, err := h.service.PDF(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.FileAttachment(path, filename)
}
