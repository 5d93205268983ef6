package httperr

import "errors"

// Códigos de negócio do salão. São o contrato com o front: a mensagem
// exibida vem de businessMessages.
const (
	CodeInvalidDateOrTime   = "invalid_date_or_time"
	CodeInvalidState        = "invalid_state"
	CodeServiceNotFound     = "service_not_found"
	CodeAppointmentNotFound = "appointment_not_found"
	CodeDayClosed           = "day_closed"
	CodeSlotUnavailable     = "slot_unavailable"
	CodeTimeConflict        = "time_conflict"
	CodeOutsideWorkingHours = "outside_working_hours"
	CodeTooSoon             = "too_soon"
	CodeEmptyPatch          = "empty_patch"
)

// BusinessError é uma recusa esperada, identificada só pelo código.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	c, ok := Code(err)
	return ok && c == code
}

// Code extrai o código de negócio de err, se houver.
func Code(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}

// IsAvailabilityConflict indica recusa por disponibilidade do dia
// (fechado, ocupado, conflito ou fora do grid).
func IsAvailabilityConflict(err error) bool {
	code, ok := Code(err)
	if !ok {
		return false
	}
	switch code {
	case CodeDayClosed, CodeSlotUnavailable, CodeTimeConflict, CodeOutsideWorkingHours:
		return true
	}
	return false
}
