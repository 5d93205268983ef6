package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler atende a página de agendamento do cliente, sem login.
type PublicHandler struct {
	catalog ServiceCatalog
	create  AppointmentCreator
}

func NewPublicHandler(catalog ServiceCatalog, create AppointmentCreator) *PublicHandler {
	return &PublicHandler{
		catalog: catalog,
		create:  create,
	}
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	services, err := h.catalog.Active(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, filterServices(services, c.Query("category"), c.Query("query"), ""))
}

////////////////////////////////////////////////////////
// CREATE APPOINTMENT
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err)
		return
	}

	// profissional é escolhido pelo salão
	req.ProfessionalID = nil

	ap, err := h.create.Execute(c.Request.Context(), req.input(nil, ucAppointment.SourcePublic))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"id":      ap.ID,
		"date":    req.Date,
		"time":    ap.Time,
		"status":  ap.Status,
		"service": ap.Service,
	})
}
