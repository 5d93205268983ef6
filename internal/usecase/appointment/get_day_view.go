package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/availability"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/dayconfig"
)

type GetDayView struct {
	engine  *availability.Engine
	repo    domain.Repository
	days    dayconfig.Store
	catalog ServiceCatalog
}

func NewGetDayView(
	engine *availability.Engine,
	repo domain.Repository,
	days dayconfig.Store,
	catalog ServiceCatalog,
) *GetDayView {
	return &GetDayView{
		engine:  engine,
		repo:    repo,
		days:    days,
		catalog: catalog,
	}
}

func (uc *GetDayView) Execute(
	ctx context.Context,
	date time.Time,
) (availability.DayView, error) {

	services, err := uc.catalog.Lookup(ctx)
	if err != nil {
		return availability.DayView{}, err
	}

	view, _, err := buildDayView(ctx, uc.engine, uc.repo, uc.days, services, date, false, 0)
	return view, err
}
