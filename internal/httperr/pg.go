package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsUniqueViolation detecta corrida na criação de registros únicos
// (ex: duas configurações para a mesma data).
func IsUniqueViolation(err error) bool {
	return pgCode(err) == pgUniqueViolation
}

// IsExclusionConflict detecta violação de constraint EXCLUDE
// (sobreposição de intervalos no banco).
func IsExclusionConflict(err error) bool {
	return pgCode(err) == pgExclusionViolation
}
