package holiday_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/holiday"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEaster_ReferenceYears(t *testing.T) {
	tests := []struct {
		year int
		want time.Time
	}{
		{1818, date(1818, time.March, 22)},
		{1900, date(1900, time.April, 15)},
		{1961, date(1961, time.April, 2)},
		{2000, date(2000, time.April, 23)},
		{2024, date(2024, time.March, 31)},
		{2025, date(2025, time.April, 20)},
		{2038, date(2038, time.April, 25)},
		{2100, date(2100, time.March, 28)},
		{2285, date(2285, time.March, 22)},
	}

	for _, tt := range tests {
		t.Run(tt.want.Format("2006"), func(t *testing.T) {
			assert.True(t, tt.want.Equal(holiday.Easter(tt.year)), "got %s", holiday.Easter(tt.year))
		})
	}
}

func TestCalendar_MovableHolidays(t *testing.T) {
	cal := holiday.NewCalendar()

	tests := []struct {
		day  time.Time
		name string
	}{
		{date(2024, time.February, 13), holiday.CarnivalMonday},
		{date(2024, time.February, 14), holiday.CarnivalTuesday},
		{date(2024, time.March, 29), holiday.GoodFriday},
		{date(2024, time.May, 30), holiday.CorpusChristi},
		{date(2025, time.March, 4), holiday.CarnivalMonday},
		{date(2025, time.March, 5), holiday.CarnivalTuesday},
		{date(2025, time.April, 18), holiday.GoodFriday},
		{date(2025, time.June, 19), holiday.CorpusChristi},
	}

	for _, tt := range tests {
		t.Run(tt.day.Format("2006-01-02"), func(t *testing.T) {
			name, ok := cal.Name(tt.day)
			require.True(t, ok)
			assert.Equal(t, tt.name, name)
		})
	}
}

func TestCalendar_CarnivalOffsets(t *testing.T) {
	cal := holiday.NewCalendar()

	for _, year := range []int{1999, 2000, 2024, 2025, 2038} {
		easter := holiday.Easter(year)

		name, ok := cal.Name(easter.AddDate(0, 0, -47))
		require.True(t, ok, "E-47 %d", year)
		assert.Equal(t, holiday.CarnivalMonday, name)

		name, ok = cal.Name(easter.AddDate(0, 0, -46))
		require.True(t, ok, "E-46 %d", year)
		assert.Equal(t, holiday.CarnivalTuesday, name)

		assert.False(t, cal.IsHoliday(easter.AddDate(0, 0, -48)), "E-48 %d", year)
	}
}

func TestCalendar_IgnoresTimeOfDay(t *testing.T) {
	sp, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	name, ok := holiday.NewCalendar().Name(time.Date(2024, time.December, 25, 23, 30, 0, 0, sp))
	require.True(t, ok)
	assert.Equal(t, holiday.Christmas, name)
}

func TestCalendar_NoCrossYearContamination(t *testing.T) {
	cal := holiday.NewCalendar()

	assert.True(t, cal.IsHoliday(date(2024, time.March, 29)))
	assert.False(t, cal.IsHoliday(date(2025, time.March, 29)))
	assert.True(t, cal.IsHoliday(date(2025, time.April, 18)))
	assert.False(t, cal.IsHoliday(date(2024, time.April, 18)))
}

func TestCalendar_Fixed(t *testing.T) {
	name, ok := holiday.Name(date(2024, time.December, 25))
	require.True(t, ok)
	assert.Equal(t, holiday.Christmas, name)

	_, ok = holiday.Name(date(2024, time.December, 26))
	assert.False(t, ok)

	// Sexta-feira Santa de 2000 coincide com Tiradentes.
	name, ok = holiday.Name(date(2000, time.April, 21))
	require.True(t, ok)
	assert.Equal(t, "Tiradentes", name)
}

func TestCalendar_ForYear(t *testing.T) {
	list := holiday.NewCalendar().ForYear(2024)

	require.Len(t, list, 14)
	for i := 1; i < len(list); i++ {
		assert.True(t, list[i-1].Date.Before(list[i].Date))
	}

	assert.Len(t, holiday.NewCalendar().ForYear(2000), 13)
}

func TestCalendar_Concurrent(t *testing.T) {
	cal := holiday.NewCalendar()

	var wg sync.WaitGroup
	for y := 2000; y < 2050; y++ {
		wg.Add(1)
		go func(year int) {
			defer wg.Done()
			good := holiday.Easter(year).AddDate(0, 0, -2)
			assert.True(t, cal.IsHoliday(good))
		}(y)
	}
	wg.Wait()
}
