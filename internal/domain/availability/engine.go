package availability

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/dayconfig"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/holiday"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/slot"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Policy é a política de funcionamento do salão.
type Policy struct {
	Open        slot.Label
	Close       slot.Label
	Granularity int

	// HolidaysClose fecha automaticamente os feriados.
	HolidaysClose bool
}

func DefaultPolicy() Policy {
	return Policy{
		Open:        slot.DefaultOpen,
		Close:       slot.DefaultClose,
		Granularity: slot.DefaultGranularity,
	}
}

// Engine compõe grid, calendário de feriados e classificação.
// Não guarda estado por chamada; pode ser usado concorrentemente.
type Engine struct {
	policy   Policy
	grid     slot.Grid
	holidays *holiday.Calendar
}

func NewEngine(policy Policy, holidays *holiday.Calendar) (*Engine, error) {
	grid, err := slot.Generate(policy.Open, policy.Close, policy.Granularity)
	if err != nil {
		return nil, fmt.Errorf("availability policy: %w", err)
	}

	if holidays == nil {
		holidays = holiday.Default
	}

	return &Engine{
		policy:   policy,
		grid:     grid,
		holidays: holidays,
	}, nil
}

func (e *Engine) Policy() Policy { return e.policy }

// Grid devolve o grid padrão, sem horários extras.
func (e *Engine) Grid() slot.Grid { return e.grid }

// GridFor devolve o grid do dia incluindo os horários extras.
func (e *Engine) GridFor(cfg dayconfig.Config) slot.Grid {
	return e.grid.Merge(cfg.Extra)
}

type DayView struct {
	Date        time.Time   `json:"date"`
	Weekday     string      `json:"weekday"`
	IsHoliday   bool        `json:"is_holiday"`
	HolidayName string      `json:"holiday_name,omitempty"`
	IsClosed    bool        `json:"is_closed"`
	Notes       string      `json:"notes,omitempty"`
	Granularity int         `json:"granularity"`
	Slots       []SlotState `json:"slots"`
	Overlaps    []Overlap   `json:"overlaps,omitempty"`

	classification Classification
}

// DayView monta a visão completa do dia a partir de um snapshot de
// agendamentos e configuração fornecido pelo chamador.
func (e *Engine) DayView(
	date time.Time,
	bookings []Booking,
	cfg dayconfig.Config,
	services ServiceLookup,
) (DayView, error) {

	grid := e.GridFor(cfg)

	cls, err := Classify(grid, bookings, cfg, services)
	if err != nil {
		return DayView{}, err
	}

	day := dayconfig.DateOnly(date)
	name, isHoliday := e.holidays.Name(day)

	return DayView{
		Date:           day,
		Weekday:        day.Weekday().String(),
		IsHoliday:      isHoliday,
		HolidayName:    name,
		IsClosed:       cfg.Closed || (isHoliday && e.policy.HolidaysClose),
		Notes:          cfg.Notes,
		Granularity:    grid.Granularity,
		Slots:          cls.Slots,
		Overlaps:       cls.Overlaps,
		classification: cls,
	}, nil
}

func (v DayView) Lookup(l slot.Label) (SlotState, bool) {
	return v.classification.Lookup(l)
}

// Bookable indica se um novo agendamento pode começar em l.
func (v DayView) Bookable(l slot.Label) bool {
	if v.IsClosed {
		return false
	}
	st, ok := v.classification.Status(l)
	return ok && st == StatusAvailable
}

// CanPlace verifica se um agendamento de duration minutos pode começar
// em start: o dia precisa estar aberto, start precisa ser Available,
// todos os horários do grid cobertos pela duração também, e o intervalo
// não pode cruzar nenhum agendamento ativo (mesmo fora do grid).
func (v DayView) CanPlace(start slot.Label, duration int) error {
	if duration <= 0 {
		return &slot.ValidationError{Field: "duration", Value: fmt.Sprint(duration), Reason: "must be positive"}
	}

	if v.IsClosed {
		return httperr.ErrBusiness("day_closed")
	}

	st, ok := v.classification.Status(start)
	if !ok {
		return httperr.ErrBusiness("outside_working_hours")
	}
	if st != StatusAvailable {
		return httperr.ErrBusiness("slot_unavailable")
	}

	from := start.Minutes()
	to := from + duration
	if v.classification.Intersects(from, to) {
		return httperr.ErrBusiness("time_conflict")
	}

	for _, s := range v.Slots {
		m := s.Label.Minutes()
		if m <= from || m >= to {
			continue
		}
		if s.Status != StatusAvailable {
			return httperr.ErrBusiness("time_conflict")
		}
	}

	return nil
}

// AvailableLabels lista os horários livres, na ordem do grid.
// Dias fechados não têm horários livres.
func (v DayView) AvailableLabels() []slot.Label {
	if v.IsClosed {
		return []slot.Label{}
	}

	out := make([]slot.Label, 0, len(v.Slots))
	for _, s := range v.Slots {
		if s.Status == StatusAvailable {
			out = append(out, s.Label)
		}
	}
	return out
}

// ------------------------------------------------------
// Navegação
// ------------------------------------------------------

func Next(date time.Time) time.Time {
	return dayconfig.DateOnly(date).AddDate(0, 0, 1)
}

func Previous(date time.Time) time.Time {
	return dayconfig.DateOnly(date).AddDate(0, 0, -1)
}

// ------------------------------------------------------
// Conversão a partir dos modelos persistidos
// ------------------------------------------------------

func FromAppointment(ap models.Appointment) (Booking, error) {
	b := Booking{
		ID:        ap.ID,
		ServiceID: ap.ServiceID,
		Start:     slot.Label(ap.Time),
		Status:    appointment.Status(ap.Status),
	}

	// inativos não entram na classificação; o horário não é validado
	if !b.Status.IsActive() {
		return b, nil
	}

	label, err := slot.ParseLabel(ap.Time)
	if err != nil {
		return Booking{}, err
	}
	b.Start = label

	return b, nil
}

func FromAppointments(aps []models.Appointment) ([]Booking, error) {
	out := make([]Booking, 0, len(aps))
	for _, ap := range aps {
		b, err := FromAppointment(ap)
		if err != nil {
			return nil, fmt.Errorf("appointment %d: %w", ap.ID, err)
		}
		out = append(out, b)
	}
	return out, nil
}
