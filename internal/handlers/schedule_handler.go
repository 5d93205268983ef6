package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/slot"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// ScheduleHandler expõe a política de funcionamento em vigor. A
// política vem da configuração do processo; mudanças por dia usam
// DayConfigHandler.
type ScheduleHandler struct {
	engine *availability.Engine
}

func NewScheduleHandler(engine *availability.Engine) *ScheduleHandler {
	return &ScheduleHandler{engine: engine}
}

type ScheduleResponse struct {
	Open          slot.Label   `json:"open"`
	Close         slot.Label   `json:"close"`
	Granularity   int          `json:"granularity"`
	HolidaysClose bool         `json:"holidays_close"`
	Timezone      string       `json:"timezone"`
	Slots         []slot.Label `json:"slots"`
}

func (h *ScheduleHandler) Get(c *gin.Context) {
	p := h.engine.Policy()

	c.JSON(http.StatusOK, ScheduleResponse{
		Open:          p.Open,
		Close:         p.Close,
		Granularity:   p.Granularity,
		HolidaysClose: p.HolidaysClose,
		Timezone:      timezone.Name(),
		Slots:         h.engine.Grid().Labels,
	})
}
