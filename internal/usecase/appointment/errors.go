package appointment

import (
	"errors"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/slot"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

// conflictCode indica se o erro é uma recusa de disponibilidade.
func conflictCode(err error) (string, bool) {
	if httperr.IsAvailabilityConflict(err) {
		return httperr.Code(err)
	}
	if httperr.IsExclusionConflict(err) {
		return httperr.CodeTimeConflict, true
	}
	return "", false
}

// isExpected: erros de negócio ou validação não são logados.
func isExpected(err error) bool {
	var be httperr.BusinessError
	var ve *slot.ValidationError
	return errors.As(err, &be) || errors.As(err, &ve)
}
