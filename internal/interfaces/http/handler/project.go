package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appproject "github.com/inteligent/dashboard/internal/application/project"
	"github.com/inteligent/dashboard/internal/domain/project"
	"github.com/inteligent/dashboard/internal/interfaces/http/router"
)

// ProjectHandler exposes the project endpoints
type ProjectHandler struct {
	BaseHandler
	service *appproject.Service
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(service *appproject.Service) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// RegisterRoutes implements router.RouteRegistrar
func (h *ProjectHandler) RegisterRoutes(rg *gin.RouterGroup) {
	router.NewDomainGroup("projects", "/projects").
		POST("", h.Create).
		GET("", h.List).
		GET("/:id", h.Get).
		PUT("/:id", h.Update).
		RegisterRoutes(rg)
}

type projectRequest struct {
	Name         string   `json:"name" binding:"required"`
	ClientID     string   `json:"clientId"`
	Location     string   `json:"location"`
	Categories   []string `json:"categories"`
	Requirements string   `json:"requirements"`
	Status       string   `json:"status"`
}

type projectResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ClientID     string    `json:"clientId,omitempty"`
	Location     string    `json:"location,omitempty"`
	Categories   []string  `json:"categories"`
	Requirements string    `json:"requirements,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toProjectResponse(p *project.Project) projectResponse {
	clientID := ""
	if p.ClientID != nil {
		clientID = p.ClientID.String()
	}
	categories := p.Categories
	if categories == nil {
		categories = []string{}
	}
	return projectResponse{
		ID:           p.ID.String(),
		Name:         p.Name,
		ClientID:     clientID,
		Location:     p.Location,
		Categories:   categories,
		Requirements: p.Requirements,
		Status:       string(p.Status),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (r *projectRequest) clientID() (*uuid.UUID, error) {
	if r.ClientID == "" {
		return nil, nil
	}
	id, err := uuid.Parse(r.ClientID)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// Create handles POST /projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	clientID, err := req.clientID()
	if err != nil {
		h.BadRequest(c, "Invalid client ID")
		return
	}

	p, err := h.service.Create(c.Request.Context(), appproject.CreateProjectInput{
		Name:         req.Name,
		ClientID:     clientID,
		Location:     req.Location,
		Categories:   req.Categories,
		Requirements: req.Requirements,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toProjectResponse(p))
}

// List handles GET /projects
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]projectResponse, 0, len(projects))
	for i := range projects {
		responses = append(responses, toProjectResponse(&projects[i]))
	}
	h.Success(c, responses)
}

// Get handles GET /projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid project ID")
		return
	}

	p, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toProjectResponse(p))
}

// Update handles PUT /projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid project ID")
		return
	}

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	clientID, err := req.clientID()
	if err != nil {
		h.BadRequest(c, "Invalid client ID")
		return
	}
	status := project.Status(req.Status)
	if req.Status == "" {
		status = project.StatusPreparing
	}

	p, err := h.service.Update(c.Request.Context(), id, appproject.UpdateProjectInput{
		Name:         req.Name,
		ClientID:     clientID,
		Location:     req.Location,
		Categories:   req.Categories,
		Requirements: req.Requirements,
		Status:       status,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toProjectResponse(p))
}
