package handlers

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ServiceCatalog interface {
	Services(ctx context.Context) ([]models.Service, error)
	Active(ctx context.Context) ([]models.Service, error)
	Find(ctx context.Context, id uint) (*models.Service, error)
	Create(ctx context.Context, svc *models.Service) error
	Update(ctx context.Context, svc *models.Service) error
}

type ServiceHandler struct {
	catalog ServiceCatalog
}

func NewServiceHandler(catalog ServiceCatalog) *ServiceHandler {
	return &ServiceHandler{catalog: catalog}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description string  `json:"description" binding:"max=255"`
	DurationMin int     `json:"duration_min" binding:"required,min=1,max=720"`
	Price       float64 `json:"price" binding:"min=0"`
	Category    string  `json:"category" binding:"max=50"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Description *string  `json:"description,omitempty" binding:"omitempty,max=255"`
	DurationMin *int     `json:"duration_min,omitempty" binding:"omitempty,min=1,max=720"`
	Price       *float64 `json:"price,omitempty" binding:"omitempty,min=0"`
	Category    *string  `json:"category,omitempty" binding:"omitempty,max=50"`
	Active      *bool    `json:"active,omitempty"`
}

// filterServices aplica os filtros de listagem: categoria exata,
// busca por nome/descrição e ativo ("true", "false" ou vazio).
func filterServices(services []models.Service, category, query, active string) []models.Service {
	category = strings.ToLower(strings.TrimSpace(category))
	query = strings.ToLower(strings.TrimSpace(query))
	active = strings.TrimSpace(active)

	out := make([]models.Service, 0, len(services))
	for _, s := range services {
		if category != "" && strings.ToLower(s.Category) != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(s.Name), query) &&
			!strings.Contains(strings.ToLower(s.Description), query) {
			continue
		}
		if (active == "true" && !s.Active) || (active == "false" && s.Active) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.catalog.Services(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, filterServices(services, c.Query("category"), c.Query("query"), c.Query("active")))
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err)
		return
	}

	svc := models.Service{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		DurationMin: req.DurationMin,
		Price:       req.Price,
		Active:      true,
		Category:    strings.ToLower(req.Category),
	}

	if err := h.catalog.Create(c.Request.Context(), &svc); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, svc)
}

// Update altera o catálogo; agendamentos já feitos passam a usar a
// nova duração na próxima classificação.
func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	svc, err := h.catalog.Find(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err)
		return
	}

	if req.Name != nil {
		svc.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.DurationMin != nil {
		svc.DurationMin = *req.DurationMin
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if req.Category != nil {
		svc.Category = strings.ToLower(*req.Category)
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := h.catalog.Update(c.Request.Context(), svc); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, svc)
}
