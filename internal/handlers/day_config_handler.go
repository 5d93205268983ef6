package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/dayconfig"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucDayConfig "github.com/BruksfildServices01/salon-scheduler/internal/usecase/dayconfig"
)

type DayConfigGetter interface {
	Execute(ctx context.Context, date string) (dayconfig.Config, error)
}

type DayConfigUpserter interface {
	Execute(ctx context.Context, in ucDayConfig.UpsertDayConfigInput) (dayconfig.Config, error)
}

type DayConfigHandler struct {
	get    DayConfigGetter
	upsert DayConfigUpserter
}

func NewDayConfigHandler(get DayConfigGetter, upsert DayConfigUpserter) *DayConfigHandler {
	return &DayConfigHandler{
		get:    get,
		upsert: upsert,
	}
}

func (h *DayConfigHandler) Get(c *gin.Context) {
	cfg, err := h.get.Execute(c.Request.Context(), c.Param("date"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, cfg)
}

// Patch altera só os campos enviados no corpo.
func (h *DayConfigHandler) Patch(c *gin.Context) {
	var req dayconfig.Patch
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err)
		return
	}

	cfg, err := h.upsert.Execute(c.Request.Context(), ucDayConfig.UpsertDayConfigInput{
		UserID: middleware.UserID(c),
		Date:   c.Param("date"),
		Patch:  req,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, cfg)
}
