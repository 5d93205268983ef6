package appointment

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/availability"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/dayconfig"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/slot"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// RescheduleAppointmentInput: campos nil mantêm o valor atual.
type RescheduleAppointmentInput struct {
	ID     uint
	UserID *uint

	Date      *string
	Time      *string
	ServiceID *uint
	Notes     *string
}

// ======================================================
// USE CASE
// ======================================================

type RescheduleAppointment struct {
	engine  *availability.Engine
	repo    domain.Repository
	days    dayconfig.Store
	catalog ServiceCatalog
	audit   Publisher
}

func NewRescheduleAppointment(
	engine *availability.Engine,
	repo domain.Repository,
	days dayconfig.Store,
	catalog ServiceCatalog,
	audit Publisher,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		engine:  engine,
		repo:    repo,
		days:    days,
		catalog: catalog,
		audit:   audit,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleAppointmentInput,
) (*models.Appointment, error) {

	services, err := uc.catalog.Lookup(ctx)
	if err != nil {
		return nil, err
	}

	var (
		ap       *models.Appointment
		fromDate string
		fromTime string
		target   slot.Label
		day      time.Time
	)

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {

		// --------------------------------------------------
		// 1️⃣ Agendamento atual
		// --------------------------------------------------
		current, err := tx.GetByID(ctx, in.ID)
		if err != nil {
			return err
		}

		if err := domain.CanReschedule(domain.Status(current.Status)); err != nil {
			return err
		}

		fromDate = current.Date.Format(dayconfig.DateLayout)
		fromTime = current.Time

		// --------------------------------------------------
		// 2️⃣ Destino
		// --------------------------------------------------
		day = dayconfig.DateOnly(current.Date)
		if in.Date != nil {
			if day, err = dayconfig.ParseDate(*in.Date); err != nil {
				return err
			}
		}

		raw := current.Time
		if in.Time != nil {
			raw = *in.Time
		}
		if target, err = slot.ParseLabel(raw); err != nil {
			return err
		}

		serviceID := current.ServiceID
		if in.ServiceID != nil {
			svc, err := uc.catalog.Get(ctx, *in.ServiceID)
			if err != nil {
				return err
			}
			serviceID = &svc.ID
			services[svc.ID] = *svc
		}

		duration, err := availability.Duration(availability.Booking{ServiceID: serviceID}, services)
		if err != nil {
			return err
		}

		// --------------------------------------------------
		// 3️⃣ Disponibilidade (sem o próprio agendamento)
		// --------------------------------------------------
		view, _, err := buildDayView(ctx, uc.engine, tx, uc.days, services, day, true, current.ID)
		if err != nil {
			return err
		}

		if err := view.CanPlace(target, duration); err != nil {
			return err
		}

		current.Date = day
		current.Time = string(target)
		current.ServiceID = serviceID
		current.Service = nil
		if in.Notes != nil {
			current.Notes = *in.Notes
		}

		if err := tx.Update(ctx, current); err != nil {
			return err
		}

		ap = current
		return nil
	})

	if err != nil {
		if code, ok := conflictCode(err); ok {
			uc.audit.Dispatch(audit.SlotConflict{
				UserID: in.UserID,
				Date:   day.Format(dayconfig.DateLayout),
				Time:   string(target),
				Reason: code,
			})
		} else if !isExpected(err) {
			log.Error().Err(err).Uint("appointment_id", in.ID).Msg("failed to reschedule appointment")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.AppointmentRescheduled{
		UserID:        in.UserID,
		AppointmentID: ap.ID,
		FromDate:      fromDate,
		FromTime:      fromTime,
		ToDate:        day.Format(dayconfig.DateLayout),
		ToTime:        ap.Time,
	})

	return ap, nil
}
