package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	appcatalog "github.com/inteligent/dashboard/internal/application/catalog"
	"github.com/inteligent/dashboard/internal/domain/catalog"
	"github.com/inteligent/dashboard/internal/interfaces/http/router"
	"github.com/shopspring/decimal"
)

// CatalogHandler exposes the price-list endpoints
type CatalogHandler struct {
	BaseHandler
	service *appcatalog.Service
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(service *appcatalog.Service) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// RegisterRoutes implements router.RouteRegistrar
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	router.NewDomainGroup("price-list", "/price-list").
		POST("", h.Create).
		GET("", h.List).
		GET("/:id", h.Get).
		PUT("/:id", h.Update).
		RegisterRoutes(rg)
}

type itemRequest struct {
	Name           string          `json:"name" binding:"required"`
	Unit           string          `json:"unit"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	TaxRatePercent decimal.Decimal `json:"taxRatePercent"`
}

type itemResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Unit           string          `json:"unit"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	TaxRatePercent decimal.Decimal `json:"taxRatePercent"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

func toItemResponse(item *catalog.Item) itemResponse {
	return itemResponse{
		ID:             item.ID.String(),
		Name:           item.Name,
		Unit:           item.Unit,
		UnitPrice:      item.UnitPrice,
		TaxRatePercent: item.TaxRatePercent,
		CreatedAt:      item.CreatedAt,
		UpdatedAt:      item.UpdatedAt,
	}
}

// Create handles POST /price-list
func (h *CatalogHandler) Create(c *gin.Context) {
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	item, err := h.service.Create(c.Request.Context(), appcatalog.CreateItemInput{
		Name:           req.Name,
		Unit:           req.Unit,
		UnitPrice:      req.UnitPrice,
		TaxRatePercent: req.TaxRatePercent,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toItemResponse(item))
}

// List handles GET /price-list
func (h *CatalogHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]itemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, toItemResponse(&items[i]))
	}
	h.Success(c, responses)
}

// Get handles GET /price-list/:id
func (h *CatalogHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	item, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toItemResponse(item))
}

// Update handles PUT /price-list/:id
func (h *CatalogHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	item, err := h.service.Update(c.Request.Context(), id, appcatalog.UpdateItemInput{
		Name:           req.Name,
		Unit:           req.Unit,
		UnitPrice:      req.UnitPrice,
		TaxRatePercent: req.TaxRatePercent,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toItemResponse(item))
}
