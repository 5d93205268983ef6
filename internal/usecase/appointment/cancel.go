package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// CancelAppointment cancela um agendamento confirmado e libera o horário.
type CancelAppointment struct {
	statusChange
}

func NewCancelAppointment(
	repo domain.Repository,
	audit Publisher,
) *CancelAppointment {
	return &CancelAppointment{
		statusChange: newStatusChange(repo, audit, domain.Cancel),
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	userID *uint,
	id uint,
) (*models.Appointment, error) {
	return uc.execute(ctx, userID, id)
}
