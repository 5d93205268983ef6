package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type CompleteAppointment struct {
	statusChange
}

func NewCompleteAppointment(
	repo domain.Repository,
	audit Publisher,
) *CompleteAppointment {
	return &CompleteAppointment{
		statusChange: newStatusChange(repo, audit, domain.Complete),
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	userID *uint,
	id uint,
) (*models.Appointment, error) {
	return uc.execute(ctx, userID, id)
}
