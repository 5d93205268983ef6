package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/dayconfig"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

// dateParam lê uma data YYYY-MM-DD; em caso de erro já respondeu.
func dateParam(c *gin.Context, raw string) (time.Time, bool) {
	if raw == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return time.Time{}, false
	}

	date, err := dayconfig.ParseDate(raw)
	if err != nil {
		httperr.FromError(c, err)
		return time.Time{}, false
	}
	return date, true
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return 0, false
	}
	return uint(id), true
}
