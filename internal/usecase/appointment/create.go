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
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

const (
	SourceAdmin  = "admin"
	SourcePublic = "public"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	UserID *uint
	Source string

	ClientName  string
	ClientPhone string

	ServiceID      uint
	ProfessionalID *uint

	Date  string
	Time  string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	engine  *availability.Engine
	repo    domain.Repository
	days    dayconfig.Store
	catalog ServiceCatalog
	audit   Publisher
	now     func() time.Time
}

func NewCreateAppointment(
	engine *availability.Engine,
	repo domain.Repository,
	days dayconfig.Store,
	catalog ServiceCatalog,
	audit Publisher,
) *CreateAppointment {
	return &CreateAppointment{
		engine:  engine,
		repo:    repo,
		days:    days,
		catalog: catalog,
		audit:   audit,
		now:     timezone.Now,
	}
}

// WithClock troca o relógio usado para recusar horários passados.
func (uc *CreateAppointment) WithClock(now func() time.Time) *CreateAppointment {
	uc.now = now
	return uc
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Data / hora
	// --------------------------------------------------
	date, err := dayconfig.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}

	label, err := slot.ParseLabel(in.Time)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Horário passado (somente fluxo público)
	// --------------------------------------------------
	if in.Source == SourcePublic && timezone.Combine(date, label.Minutes()).Before(uc.now()) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	// --------------------------------------------------
	// 3️⃣ Serviço
	// --------------------------------------------------
	service, err := uc.catalog.Get(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	services, err := uc.catalog.Lookup(ctx)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Disponibilidade + criação (mesma transação)
	// --------------------------------------------------
	ap := &models.Appointment{
		ClientName:     in.ClientName,
		ClientPhone:    in.ClientPhone,
		ServiceID:      &service.ID,
		ProfessionalID: in.ProfessionalID,
		Date:           date,
		Time:           string(label),
		Status:         string(domain.InitialStatus()),
		Notes:          in.Notes,
	}

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		view, _, err := buildDayView(ctx, uc.engine, tx, uc.days, services, date, true, 0)
		if err != nil {
			return err
		}

		if err := view.CanPlace(label, service.DurationMin); err != nil {
			return err
		}

		return tx.Create(ctx, ap)
	})

	if err != nil {
		if be, ok := conflictCode(err); ok {
			uc.audit.Dispatch(audit.SlotConflict{
				UserID: in.UserID,
				Date:   in.Date,
				Time:   string(label),
				Reason: be,
			})
		} else if !isExpected(err) {
			log.Error().Err(err).Str("date", in.Date).Str("time", in.Time).Msg("failed to create appointment")
		}
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.AppointmentCreated{
		UserID:        in.UserID,
		AppointmentID: ap.ID,
		Date:          in.Date,
		Time:          string(label),
		ServiceID:     ap.ServiceID,
		Source:        in.Source,
	})

	ap.Service = service
	return ap, nil
}
