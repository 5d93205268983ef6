package availability

import (
	"sort"
	"strconv"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/dayconfig"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/slot"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// DefaultDurationMin é usada quando o serviço do agendamento não é
// encontrado no catálogo.
const DefaultDurationMin = 60

type Status string

const (
	StatusAvailable Status = "available"
	StatusBooked    Status = "booked"
	StatusOccupied  Status = "occupied"
	StatusBlocked   Status = "blocked"
)

// Booking é a visão mínima de um agendamento usada na classificação.
type Booking struct {
	ID        uint
	ServiceID *uint
	Start     slot.Label
	Status    appointment.Status
}

// ServiceLookup resolve serviços do catálogo por id.
type ServiceLookup interface {
	ServiceByID(id uint) (models.Service, bool)
}

// ServiceMap é um ServiceLookup em memória.
type ServiceMap map[uint]models.Service

func (m ServiceMap) ServiceByID(id uint) (models.Service, bool) {
	s, ok := m[id]
	return s, ok
}

func NewServiceMap(services []models.Service) ServiceMap {
	m := make(ServiceMap, len(services))
	for _, s := range services {
		m[s.ID] = s
	}
	return m
}

type SlotState struct {
	Label         slot.Label `json:"time"`
	Status        Status     `json:"status"`
	AppointmentID *uint      `json:"appointment_id,omitempty"`
	// altura visual do bloco, só para Booked
	Rows int `json:"rows,omitempty"`
}

// Overlap aponta um horário coberto por mais de um agendamento ativo.
// Não altera a classificação; serve de diagnóstico.
type Overlap struct {
	Label          slot.Label `json:"time"`
	AppointmentIDs []uint     `json:"appointment_ids"`
}

// Classification mantém a ordem cronológica do grid e permite
// consulta por label.
type Classification struct {
	Slots    []SlotState
	Overlaps []Overlap
	index    map[slot.Label]int
	// intervalos ativos, inclusive os que começam fora do grid
	spans []span
}

// Intersects indica se [from, to) cruza algum agendamento ativo.
func (c Classification) Intersects(from, to int) bool {
	for _, sp := range c.spans {
		if from < sp.end && sp.start < to {
			return true
		}
	}
	return false
}

func (c Classification) Lookup(l slot.Label) (SlotState, bool) {
	i, ok := c.index[l]
	if !ok {
		return SlotState{}, false
	}
	return c.Slots[i], true
}

func (c Classification) Status(l slot.Label) (Status, bool) {
	s, ok := c.Lookup(l)
	return s.Status, ok
}

// Map devolve label -> status (sem ordem).
func (c Classification) Map() map[slot.Label]Status {
	out := make(map[slot.Label]Status, len(c.Slots))
	for _, s := range c.Slots {
		out[s.Label] = s.Status
	}
	return out
}

type span struct {
	id    uint
	start int
	end   int
}

// Rows devolve quantas linhas do grid um bloco de duration minutos ocupa.
func Rows(duration, granularity int) int {
	if granularity <= 0 {
		granularity = slot.DefaultGranularity
	}
	return (duration + granularity - 1) / granularity
}

// Duration resolve a duração do serviço do agendamento.
func Duration(b Booking, services ServiceLookup) (int, error) {
	if b.ServiceID == nil || services == nil {
		return DefaultDurationMin, nil
	}

	svc, ok := services.ServiceByID(*b.ServiceID)
	if !ok {
		return DefaultDurationMin, nil
	}

	if svc.DurationMin <= 0 {
		return 0, &slot.ValidationError{
			Field:  "duration",
			Value:  strconv.Itoa(svc.DurationMin),
			Reason: "service " + strconv.FormatUint(uint64(svc.ID), 10) + " must have a positive duration",
		}
	}

	return svc.DurationMin, nil
}

// Classify atribui exatamente um status a cada label do grid.
//
// Precedência: Booked > Blocked > Occupied > Available. Agendamentos
// cancelados ou excluídos são ignorados. Sobreposições entre
// agendamentos ativos não geram erro: o label fica Booked se algum
// agendamento começa nele e a sobreposição é listada em Overlaps.
func Classify(
	grid slot.Grid,
	bookings []Booking,
	cfg dayconfig.Config,
	services ServiceLookup,
) (Classification, error) {

	spans := make([]span, 0, len(bookings))
	for _, b := range bookings {
		if !b.Status.IsActive() {
			continue
		}

		start := b.Start.Minutes()
		if start < 0 {
			return Classification{}, &slot.ValidationError{
				Field:  "time",
				Value:  string(b.Start),
				Reason: "appointment " + strconv.FormatUint(uint64(b.ID), 10) + " has no valid start",
			}
		}

		d, err := Duration(b, services)
		if err != nil {
			return Classification{}, err
		}

		spans = append(spans, span{id: b.ID, start: start, end: start + d})
	}

	// ordem estável independente da ordem de entrada
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		return spans[i].id < spans[j].id
	})

	blocked := cfg.BlockedSet()

	out := Classification{
		Slots: make([]SlotState, 0, grid.Len()),
		index: make(map[slot.Label]int, grid.Len()),
		spans: spans,
	}

	for _, label := range grid.Labels {
		m := label.Minutes()

		var starter, cover *span
		var covering []uint

		for i := range spans {
			sp := &spans[i]
			if sp.start > m {
				break
			}
			if m >= sp.end {
				continue
			}

			covering = append(covering, sp.id)
			if sp.start == m && starter == nil {
				starter = sp
			}
			if cover == nil {
				cover = sp
			}
		}

		state := SlotState{Label: label, Status: StatusAvailable}

		switch {
		case starter != nil:
			id := starter.id
			state.Status = StatusBooked
			state.AppointmentID = &id
			state.Rows = Rows(starter.end-starter.start, grid.Granularity)
		case blocked.Has(label):
			state.Status = StatusBlocked
		case cover != nil:
			id := cover.id
			state.Status = StatusOccupied
			state.AppointmentID = &id
		}

		if len(covering) > 1 {
			sort.Slice(covering, func(i, j int) bool { return covering[i] < covering[j] })
			out.Overlaps = append(out.Overlaps, Overlap{Label: label, AppointmentIDs: covering})
		}

		out.index[label] = len(out.Slots)
		out.Slots = append(out.Slots, state)
	}

	return out, nil
}
