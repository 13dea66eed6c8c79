package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	apppartner "github.com/inteligent/dashboard/internal/application/partner"
	"github.com/inteligent/dashboard/internal/domain/partner"
	"github.com/inteligent/dashboard/internal/interfaces/http/router"
)

// ClientHandler exposes the CRM client endpoints
type ClientHandler struct {
	BaseHandler
	service *apppartner.Service
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(service *apppartner.Service) *ClientHandler {
	return &ClientHandler{service: service}
}

// RegisterRoutes implements router.RouteRegistrar
func (h *ClientHandler) RegisterRoutes(rg *gin.RouterGroup) {
	router.NewDomainGroup("clients", "/clients").
		POST("", h.Create).
		GET("", h.List).
		GET("/:id", h.Get).
		PUT("/:id", h.Update).
		RegisterRoutes(rg)
}

type clientRequest struct {
	Name      string `json:"name" binding:"required"`
	Company   string `json:"company"`
	Type      string `json:"type" binding:"required"`
	TaxNumber string `json:"taxNumber"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Status    string `json:"status"`
	Note      string `json:"note"`
}

type clientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Company   string    `json:"company,omitempty"`
	Type      string    `json:"type"`
	TaxNumber string    `json:"taxNumber,omitempty"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Status    string    `json:"status"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toClientResponse(c *partner.Client) clientResponse {
	return clientResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Company:   c.Company,
		Type:      string(c.Type),
		TaxNumber: c.TaxNumber,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		Status:    string(c.Status),
		Note:      c.Note,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// Create handles POST /clients
func (h *ClientHandler) Create(c *gin.Context) {
	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	client, err := h.service.Create(c.Request.Context(), apppartner.CreateClientInput{
		Name:      req.Name,
		Company:   req.Company,
		Type:      partner.ClientType(req.Type),
		TaxNumber: req.TaxNumber,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Note:      req.Note,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toClientResponse(client))
}

// List handles GET /clients
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]clientResponse, 0, len(clients))
	for i := range clients {
		responses = append(responses, toClientResponse(&clients[i]))
	}
	h.Success(c, responses)
}

// Get handles GET /clients/:id
func (h *ClientHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid client ID")
		return
	}

	client, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toClientResponse(client))
}

// Update handles PUT /clients/:id
func (h *ClientHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid client ID")
		return
	}

	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	status := partner.ClientStatus(req.Status)
	if req.Status == "" {
		status = partner.ClientStatusActive
	}

	client, err := h.service.Update(c.Request.Context(), id, apppartner.UpdateClientInput{
		Name:      req.Name,
		Company:   req.Company,
		Type:      partner.ClientType(req.Type),
		TaxNumber: req.TaxNumber,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Status:    status,
		Note:      req.Note,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toClientResponse(client))
}
