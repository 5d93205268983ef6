package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/availability"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/dayconfig"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ServiceCatalog é o catálogo consumido pelos use cases.
type ServiceCatalog interface {
	Lookup(ctx context.Context) (availability.ServiceMap, error)
	Get(ctx context.Context, id uint) (*models.Service, error)
}

// Publisher recebe os eventos de auditoria.
type Publisher interface {
	Dispatch(ev audit.Event)
}

// buildDayView busca o snapshot do dia e chama o motor. excludeID
// remove um agendamento da classificação (remarcação).
func buildDayView(
	ctx context.Context,
	engine *availability.Engine,
	repo domain.Repository,
	days dayconfig.Store,
	services availability.ServiceMap,
	date time.Time,
	lock bool,
	excludeID uint,
) (availability.DayView, []models.Appointment, error) {

	aps, err := repo.ListByDate(ctx, date, lock)
	if err != nil {
		return availability.DayView{}, nil, err
	}

	cfg, err := days.Get(ctx, date)
	if err != nil {
		return availability.DayView{}, nil, err
	}

	considered := aps
	if excludeID != 0 {
		considered = make([]models.Appointment, 0, len(aps))
		for _, ap := range aps {
			if ap.ID != excludeID {
				considered = append(considered, ap)
			}
		}
	}

	bookings, err := availability.FromAppointments(considered)
	if err != nil {
		return availability.DayView{}, nil, err
	}

	view, err := engine.DayView(date, bookings, cfg, services)
	if err != nil {
		return availability.DayView{}, nil, err
	}

	return view, aps, nil
}
