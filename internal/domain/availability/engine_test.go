package availability_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/dayconfig"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/holiday"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/slot"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func newEngine(t *testing.T, p availability.Policy) *availability.Engine {
	t.Helper()
	e, err := availability.NewEngine(p, holiday.NewCalendar())
	require.NoError(t, err)
	return e
}

func TestNewEngine_InvalidPolicy(t *testing.T) {
	_, err := availability.NewEngine(availability.Policy{Open: "08:00", Close: "20:00"}, nil)
	assert.Error(t, err)
}

func TestDayView_Holiday(t *testing.T) {
	e := newEngine(t, availability.DefaultPolicy())

	xmas := time.Date(2024, time.December, 25, 0, 0, 0, 0, time.UTC)
	v, err := e.DayView(xmas, nil, dayconfig.Default(xmas), nil)
	require.NoError(t, err)

	assert.True(t, v.IsHoliday)
	assert.Equal(t, holiday.Christmas, v.HolidayName)
	assert.False(t, v.IsClosed, "holidays are informational by default")
	assert.Len(t, v.Slots, 25)
	assert.True(t, v.Bookable("10:00"))

	goodFriday := time.Date(2024, time.March, 29, 0, 0, 0, 0, time.UTC)
	v, err = e.DayView(goodFriday, nil, dayconfig.Default(goodFriday), nil)
	require.NoError(t, err)
	assert.True(t, v.IsHoliday)
	assert.Equal(t, holiday.GoodFriday, v.HolidayName)
}

func TestDayView_HolidayPolicyCloses(t *testing.T) {
	p := availability.DefaultPolicy()
	p.HolidaysClose = true
	e := newEngine(t, p)

	xmas := time.Date(2024, time.December, 25, 0, 0, 0, 0, time.UTC)
	v, err := e.DayView(xmas, nil, dayconfig.Default(xmas), nil)
	require.NoError(t, err)

	assert.True(t, v.IsClosed)
	assert.False(t, v.Bookable("10:00"))
	assert.Empty(t, v.AvailableLabels())

	regular := time.Date(2024, time.December, 26, 0, 0, 0, 0, time.UTC)
	v, err = e.DayView(regular, nil, dayconfig.Default(regular), nil)
	require.NoError(t, err)
	assert.False(t, v.IsClosed)
}

func TestDayView_ClosedDay(t *testing.T) {
	e := newEngine(t, availability.DefaultPolicy())

	cfg := dayconfig.Default(testDay)
	cfg.Closed = true
	cfg.Notes = "reforma"

	v, err := e.DayView(testDay, nil, cfg, nil)
	require.NoError(t, err)

	assert.True(t, v.IsClosed)
	assert.Equal(t, "reforma", v.Notes)
	assert.False(t, v.Bookable("08:00"))
	assert.True(t, httperr.IsBusiness(v.CanPlace("08:00", 30), "day_closed"))
}

func TestDayView_ExtraSlots(t *testing.T) {
	e := newEngine(t, availability.DefaultPolicy())

	cfg := dayconfig.Default(testDay)
	cfg.Extra = []slot.Label{"20:30", "07:30"}

	v, err := e.DayView(testDay, nil, cfg, nil)
	require.NoError(t, err)

	require.Len(t, v.Slots, 27)
	assert.Equal(t, slot.Label("07:30"), v.Slots[0].Label)
	assert.Equal(t, slot.Label("20:30"), v.Slots[26].Label)
	assert.True(t, v.Bookable("20:30"))
	assert.Len(t, e.Grid().Labels, 25, "engine grid is not mutated")
}

func TestDayView_CanPlace(t *testing.T) {
	e := newEngine(t, availability.DefaultPolicy())

	cfg := dayconfig.Default(testDay)
	cfg.Blocked = []slot.Label{"15:00"}

	bookings := []availability.Booking{
		booking(1, "10:00", 3, appointment.StatusConfirmed),
	}
	v, err := e.DayView(testDay, bookings, cfg, services)
	require.NoError(t, err)

	tests := []struct {
		name     string
		start    slot.Label
		duration int
		code     string
	}{
		{"free", "08:00", 60, ""},
		{"ends exactly at next booking", "09:00", 60, ""},
		{"runs into booking", "09:30", 60, "time_conflict"},
		{"starts on booking", "10:00", 30, "slot_unavailable"},
		{"starts on occupied", "11:00", 30, "slot_unavailable"},
		{"right after booking", "11:30", 90, ""},
		{"runs into block", "14:00", 90, "time_conflict"},
		{"off grid", "09:15", 30, "outside_working_hours"},
		{"last slot", "20:00", 60, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.CanPlace(tt.start, tt.duration)
			if tt.code == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, httperr.IsBusiness(err, tt.code), "got %v", err)
		})
	}

	assert.Error(t, v.CanPlace("08:00", 0))
}

func TestDayView_CanPlace_OffGridBooking(t *testing.T) {
	e := newEngine(t, availability.DefaultPolicy())

	// horário legado fora do grid, serviço desconhecido: 60 minutos
	bookings := []availability.Booking{
		{ID: 1, Start: "10:15", Status: appointment.StatusConfirmed},
	}
	v, err := e.DayView(testDay, bookings, dayconfig.Default(testDay), services)
	require.NoError(t, err)

	st, ok := v.Lookup("10:00")
	require.True(t, ok)
	assert.Equal(t, availability.StatusAvailable, st.Status)

	tests := []struct {
		name     string
		start    slot.Label
		duration int
		code     string
	}{
		{"ends inside booking", "10:00", 30, "time_conflict"},
		{"ends at booking start", "09:30", 45, ""},
		{"covered by booking", "10:30", 30, "slot_unavailable"},
		{"starts before booking end", "09:00", 90, "time_conflict"},
		{"after booking", "11:30", 30, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.CanPlace(tt.start, tt.duration)
			if tt.code == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, httperr.IsBusiness(err, tt.code), "got %v", err)
		})
	}
}

func TestDayView_Concurrent(t *testing.T) {
	e := newEngine(t, availability.DefaultPolicy())
	bookings := []availability.Booking{booking(1, "10:00", 3, appointment.StatusConfirmed)}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			d := testDay.AddDate(0, 0, offset)
			v, err := e.DayView(d, bookings, dayconfig.Default(d), services)
			assert.NoError(t, err)
			assert.False(t, v.Bookable("10:30"))
		}(i)
	}
	wg.Wait()
}

func TestNavigation(t *testing.T) {
	d := time.Date(2024, time.February, 28, 13, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), availability.Next(d))
	assert.Equal(t, time.Date(2024, time.February, 27, 0, 0, 0, 0, time.UTC), availability.Previous(d))
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		availability.Next(time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)))
}

func TestFromAppointments(t *testing.T) {
	aps := []models.Appointment{
		{ID: 1, Time: "10:00:00", Status: "confirmed", ServiceID: uptr(3)},
		{ID: 2, Time: "garbage", Status: "canceled"},
	}

	got, err := availability.FromAppointments(aps)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, slot.Label("10:00"), got[0].Start)
	assert.Equal(t, appointment.StatusConfirmed, got[0].Status)

	_, err = availability.FromAppointments([]models.Appointment{{ID: 3, Time: "bad", Status: "confirmed"}})
	assert.Error(t, err)
}
