package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	appsettings "github.com/inteligent/dashboard/internal/application/settings"
	"github.com/inteligent/dashboard/internal/domain/settings"
	"github.com/inteligent/dashboard/internal/interfaces/http/router"
)

// SettingsHandler exposes the offer-template settings endpoints
type SettingsHandler struct {
	BaseHandler
	service *appsettings.Service
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(service *appsettings.Service) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// RegisterRoutes implements router.RouteRegistrar
func (h *SettingsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	router.NewDomainGroup("settings", "/settings").
		GET("/offer-template", h.Get).
		PUT("/offer-template", h.Put).
		GET("/offer-template/preview", h.Preview).
		POST("/offer-template/preview", h.PreviewCandidate).
		RegisterRoutes(rg)
}

// Get handles GET /settings/offer-template
func (h *SettingsHandler) Get(c *gin.Context) {
	current, err := h.service.Get(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, current)
}

// Put handles PUT /settings/offer-template
func (h *SettingsHandler) Put(c *gin.Context) {
	var body settings.TemplateSettings
	if err := c.ShouldBindJSON(&body); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	saved, err := h.service.Put(c.Request.Context(), body)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, saved)
}

// Preview handles GET /settings/offer-template/preview: it renders the
// currently stored settings against the sample document.
func (h *SettingsHandler) Preview(c *gin.Context) {
	current, err := h.service.Get(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.servePreview(c, current)
}

// PreviewCandidate handles POST /settings/offer-template/preview: it renders
// submitted settings without persisting them, so the user can inspect changes
// before saving.
func (h *SettingsHandler) PreviewCandidate(c *gin.Context) {
	var body settings.TemplateSettings
	if err := c.ShouldBindJSON(&body); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	h.servePreview(c, body)
}

func (h *SettingsHandler) servePreview(c *gin.Context, candidate settings.TemplateSettings) {
	pdf, err := h.service.Preview(c.Request.Context(), candidate)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	// Previews reflect unsaved state and must never be cached.
	c.Header("Cache-Control", "no-store")
	c.Header("Content-Disposition", `inline; filename="predogled-ponudbe.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
