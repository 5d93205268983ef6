package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type Repository interface {
	// Transaction executa fn com um repositório transacional.
	Transaction(
		ctx context.Context,
		fn func(repo Repository) error,
	) error

	// -------- Listagem --------
	// lock=true serializa escritas concorrentes para a mesma data
	// até o fim da transação.
	ListByDate(
		ctx context.Context,
		date time.Time,
		lock bool,
	) ([]models.Appointment, error)

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// -------- Escrita --------
	Create(
		ctx context.Context,
		ap *models.Appointment,
	) error

	Update(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
