package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// DeleteAppointment tira o agendamento da agenda; o registro fica para histórico.
type DeleteAppointment struct {
	statusChange
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit Publisher,
) *DeleteAppointment {
	return &DeleteAppointment{
		statusChange: newStatusChange(repo, audit, domain.Delete),
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	userID *uint,
	id uint,
) (*models.Appointment, error) {
	return uc.execute(ctx, userID, id)
}
