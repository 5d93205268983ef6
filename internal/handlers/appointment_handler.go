package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

// ======================================================
// USE CASES
// ======================================================

type AppointmentCreator interface {
	Execute(ctx context.Context, in ucAppointment.CreateAppointmentInput) (*models.Appointment, error)
}

type AppointmentRescheduler interface {
	Execute(ctx context.Context, in ucAppointment.RescheduleAppointmentInput) (*models.Appointment, error)
}

type AppointmentStatusChanger interface {
	Execute(ctx context.Context, userID *uint, id uint) (*models.Appointment, error)
}

type AppointmentLister interface {
	Execute(ctx context.Context, date time.Time) ([]dto.AppointmentListDTO, error)
}

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create     AppointmentCreator
	reschedule AppointmentRescheduler
	cancel     AppointmentStatusChanger
	complete   AppointmentStatusChanger
	remove     AppointmentStatusChanger
	listByDate AppointmentLister
}

func NewAppointmentHandler(
	create AppointmentCreator,
	reschedule AppointmentRescheduler,
	cancel AppointmentStatusChanger,
	complete AppointmentStatusChanger,
	remove AppointmentStatusChanger,
	listByDate AppointmentLister,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:     create,
		reschedule: reschedule,
		cancel:     cancel,
		complete:   complete,
		remove:     remove,
		listByDate: listByDate,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientName     string `json:"client_name" binding:"required,max=100"`
	ClientPhone    string `json:"client_phone" binding:"required,phone"`
	ServiceID      uint   `json:"service_id" binding:"required"`
	ProfessionalID *uint  `json:"professional_id"`
	Date           string `json:"date" binding:"required"` // YYYY-MM-DD
	Time           string `json:"time" binding:"required,slotlabel"`
	Notes          string `json:"notes" binding:"max=500"`
}

func (r CreateAppointmentRequest) input(userID *uint, source string) ucAppointment.CreateAppointmentInput {
	return ucAppointment.CreateAppointmentInput{
		UserID:         userID,
		Source:         source,
		ClientName:     r.ClientName,
		ClientPhone:    r.ClientPhone,
		ServiceID:      r.ServiceID,
		ProfessionalID: r.ProfessionalID,
		Date:           r.Date,
		Time:           r.Time,
		Notes:          r.Notes,
	}
}

type RescheduleAppointmentRequest struct {
	Date      *string `json:"date"`
	Time      *string `json:"time" binding:"omitempty,slotlabel"`
	ServiceID *uint   `json:"service_id"`
	Notes     *string `json:"notes" binding:"omitempty,max=500"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err)
		return
	}

	ap, err := h.create.Execute(
		c.Request.Context(),
		req.input(middleware.UserID(c), ucAppointment.SourceAdmin),
	)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// RESCHEDULE
// ======================================================

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err)
		return
	}

	if req.Date == nil && req.Time == nil && req.ServiceID == nil && req.Notes == nil {
		httperr.BadRequest(c, "empty_patch", "Nenhum campo para atualizar.")
		return
	}

	ap, err := h.reschedule.Execute(c.Request.Context(), ucAppointment.RescheduleAppointmentInput{
		ID:        id,
		UserID:    middleware.UserID(c),
		Date:      req.Date,
		Time:      req.Time,
		ServiceID: req.ServiceID,
		Notes:     req.Notes,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.changeStatus(c, h.cancel)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.changeStatus(c, h.complete)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	h.changeStatus(c, h.remove)
}

func (h *AppointmentHandler) changeStatus(c *gin.Context, uc AppointmentStatusChanger) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	ap, err := uc.Execute(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	date, ok := dateParam(c, c.Query("date"))
	if !ok {
		return
	}

	list, err := h.listByDate.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, list)
}
