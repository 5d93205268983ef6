package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/availability"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/slot"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
)

type ListAppointmentsByDate struct {
	repo    domain.Repository
	catalog ServiceCatalog
}

func NewListAppointmentsByDate(
	repo domain.Repository,
	catalog ServiceCatalog,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo:    repo,
		catalog: catalog,
	}
}

// Execute lista a agenda do dia; excluídos não aparecem.
func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	date time.Time,
) ([]dto.AppointmentListDTO, error) {

	services, err := uc.catalog.Lookup(ctx)
	if err != nil {
		return nil, err
	}

	aps, err := uc.repo.ListByDate(ctx, date, false)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		if domain.Status(ap.Status) == domain.StatusDeleted {
			continue
		}

		duration, err := availability.Duration(availability.Booking{ServiceID: ap.ServiceID}, services)
		if err != nil {
			duration = availability.DefaultDurationMin
		}

		end := ""
		if start, err := slot.ParseLabel(ap.Time); err == nil {
			ap.Time = string(start)
			end = string(slot.FromMinutes(start.Add(duration)))
		}

		out = append(out, dto.FromAppointment(ap, duration, end))
	}

	return out, nil
}
