package httperr_test

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

func TestIsBusiness(t *testing.T) {
	err := fmt.Errorf("create: %w", httperr.ErrBusiness("time_conflict"))

	assert.True(t, httperr.IsBusiness(err, "time_conflict"))
	assert.False(t, httperr.IsBusiness(err, "day_closed"))
	assert.False(t, httperr.IsBusiness(fmt.Errorf("boom"), "time_conflict"))
}

func TestCode(t *testing.T) {
	code, ok := httperr.Code(fmt.Errorf("wrap: %w", httperr.ErrBusiness(httperr.CodeTooSoon)))
	assert.True(t, ok)
	assert.Equal(t, httperr.CodeTooSoon, code)

	_, ok = httperr.Code(fmt.Errorf("boom"))
	assert.False(t, ok)
}

func TestIsAvailabilityConflict(t *testing.T) {
	for _, code := range []string{
		httperr.CodeDayClosed,
		httperr.CodeSlotUnavailable,
		httperr.CodeTimeConflict,
		httperr.CodeOutsideWorkingHours,
	} {
		assert.True(t, httperr.IsAvailabilityConflict(httperr.ErrBusiness(code)), code)
	}

	assert.False(t, httperr.IsAvailabilityConflict(httperr.ErrBusiness(httperr.CodeInvalidState)))
	assert.False(t, httperr.IsAvailabilityConflict(fmt.Errorf("boom")))
}

func TestPgCodes(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	exclusion := &pgconn.PgError{Code: "23P01"}

	assert.True(t, httperr.IsUniqueViolation(unique))
	assert.False(t, httperr.IsExclusionConflict(unique))
	assert.True(t, httperr.IsExclusionConflict(exclusion))
	assert.False(t, httperr.IsUniqueViolation(fmt.Errorf("other")))
}
