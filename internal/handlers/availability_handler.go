package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/dayconfig"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/holiday"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/slot"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type DayViewer interface {
	Execute(ctx context.Context, date time.Time) (availability.DayView, error)
}

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	dayView  DayViewer
	holidays *holiday.Calendar
}

func NewAvailabilityHandler(dayView DayViewer, holidays *holiday.Calendar) *AvailabilityHandler {
	if holidays == nil {
		holidays = holiday.Default
	}
	return &AvailabilityHandler{
		dayView:  dayView,
		holidays: holidays,
	}
}

// ======================================================
// RESPONSES
// ======================================================

type DayResponse struct {
	availability.DayView
	Previous string `json:"previous"`
	Next     string `json:"next"`
}

type PublicAvailabilityResponse struct {
	Date        string       `json:"date"`
	IsClosed    bool         `json:"is_closed"`
	IsHoliday   bool         `json:"is_holiday"`
	HolidayName string       `json:"holiday_name,omitempty"`
	Available   []slot.Label `json:"available"`
}

// ======================================================
// ADMIN: visão completa do dia
// ======================================================

func (h *AvailabilityHandler) Day(c *gin.Context) {
	date, ok := dateParam(c, c.Param("date"))
	if !ok {
		return
	}

	view, err := h.dayView.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, DayResponse{
		DayView:  view,
		Previous: availability.Previous(date).Format(dayconfig.DateLayout),
		Next:     availability.Next(date).Format(dayconfig.DateLayout),
	})
}

// ======================================================
// PÚBLICO: só os horários livres
// ======================================================

func (h *AvailabilityHandler) Public(c *gin.Context) {
	date, ok := dateParam(c, c.Query("date"))
	if !ok {
		return
	}

	view, err := h.dayView.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, PublicAvailabilityResponse{
		Date:        date.Format(dayconfig.DateLayout),
		IsClosed:    view.IsClosed,
		IsHoliday:   view.IsHoliday,
		HolidayName: view.HolidayName,
		Available:   view.AvailableLabels(),
	})
}

// ======================================================
// FERIADOS
// ======================================================

func (h *AvailabilityHandler) Holidays(c *gin.Context) {
	year := timezone.Now().Year()

	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 1583 || y > 9999 {
			httperr.BadRequest(c, "invalid_year", "Ano inválido.")
			return
		}
		year = y
	}

	c.JSON(http.StatusOK, gin.H{
		"year":     year,
		"holidays": h.holidays.ForYear(year),
	})
}
