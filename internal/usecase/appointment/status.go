package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type transition func(ap *models.Appointment, now time.Time) error

// statusChange aplica uma transição de status e registra a auditoria.
type statusChange struct {
	repo  domain.Repository
	audit Publisher
	apply transition
	now   func() time.Time
}

func (uc *statusChange) execute(
	ctx context.Context,
	userID *uint,
	id uint,
) (*models.Appointment, error) {

	var (
		ap   *models.Appointment
		from string
	)

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		current, err := tx.GetByID(ctx, id)
		if err != nil {
			return err
		}

		from = current.Status
		if err := uc.apply(current, uc.now()); err != nil {
			return err
		}

		current.Service = nil
		if err := tx.Update(ctx, current); err != nil {
			return err
		}

		ap = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.AppointmentStatusChanged{
		UserID:        userID,
		AppointmentID: ap.ID,
		From:          from,
		To:            ap.Status,
	})

	return ap, nil
}

func newStatusChange(repo domain.Repository, audit Publisher, apply transition) statusChange {
	return statusChange{
		repo:  repo,
		audit: audit,
		apply: apply,
		now:   timezone.Now,
	}
}
