package appointment

import "github.com/BruksfildServices01/salon-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
	StatusDeleted   Status = "deleted"
)

// IsActive: qualquer status diferente de cancelado/excluído ocupa
// horário, inclusive valores desconhecidos.
func (s Status) IsActive() bool {
	return s != StatusCanceled && s != StatusDeleted
}

// ===============================
// Validations
// ===============================

// CanCancel define se um agendamento pode ser cancelado
func CanCancel(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete define se um agendamento pode ser concluído
func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanDelete: o registro permanece para histórico, só sai da agenda.
func CanDelete(current Status) error {
	if current == StatusDeleted {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanReschedule só vale para agendamentos ativos ainda não concluídos.
func CanReschedule(current Status) error {
	if !current.IsActive() || current == StatusCompleted {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusConfirmed
}
