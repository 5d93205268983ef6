package timezone_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

func TestSet(t *testing.T) {
	t.Cleanup(func() { timezone.Set(timezone.DefaultTimezone) })

	assert.False(t, timezone.Set("Mars/Olympus"))
	assert.Equal(t, timezone.DefaultTimezone, timezone.Name())

	assert.True(t, timezone.Set("UTC"))
	assert.Equal(t, "UTC", timezone.Name())
	assert.Equal(t, time.UTC.String(), timezone.Now().Location().String())
}

func TestCombine(t *testing.T) {
	t.Cleanup(func() { timezone.Set(timezone.DefaultTimezone) })
	timezone.Set("UTC")

	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	got := timezone.Combine(day, 10*60+30)

	assert.Equal(t, time.Date(2024, 6, 10, 10, 30, 0, 0, time.UTC), got)
}

func TestLocation_Fallback(t *testing.T) {
	assert.Equal(t, timezone.DefaultTimezone, timezone.Location("").String())
}
