package holiday

import (
	"sort"
	"time"

	"github.com/rickar/cal/v2"
)

// Holiday é um feriado calculado para uma data. Não é persistido.
type Holiday struct {
	Date    time.Time `json:"date"`
	Name    string    `json:"name"`
	Movable bool      `json:"movable"`
}

const (
	GoodFriday      = "Sexta-feira Santa"
	CorpusChristi   = "Corpus Christi"
	Christmas       = "Natal"
	CarnivalMonday  = "Carnaval (segunda-feira)"
	CarnivalTuesday = "Carnaval (terça-feira)"
)

func fixedDay(name string, month time.Month, day int) *cal.Holiday {
	return &cal.Holiday{Name: name, Month: month, Day: day, Func: cal.CalcDayOfMonth}
}

func easterOffset(name string, offset int) *cal.Holiday {
	return &cal.Holiday{Name: name, Offset: offset, Func: cal.CalcEasterOffset}
}

// Lista única de feriados (nacionais + padroeiro municipal). Os fixos
// vêm primeiro: numa coincidência com um móvel, o fixo dá o nome.
var (
	fixed = []*cal.Holiday{
		fixedDay("Confraternização Universal", time.January, 1),
		fixedDay("Dia de São Sebastião", time.January, 20),
		fixedDay("Tiradentes", time.April, 21),
		fixedDay("Dia do Trabalho", time.May, 1),
		fixedDay("Independência do Brasil", time.September, 7),
		fixedDay("Nossa Senhora Aparecida", time.October, 12),
		fixedDay("Finados", time.November, 2),
		fixedDay("Proclamação da República", time.November, 15),
		fixedDay("Dia da Consciência Negra", time.November, 20),
		fixedDay(Christmas, time.December, 25),
	}

	// deslocamentos em dias a partir do Domingo de Páscoa
	movable = []*cal.Holiday{
		easterOffset(CarnivalMonday, -47),
		easterOffset(CarnivalTuesday, -46),
		easterOffset(GoodFriday, -2),
		easterOffset(CorpusChristi, 60),
	}
)

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Easter devolve o Domingo de Páscoa (calendário gregoriano).
func Easter(year int) time.Time {
	return dateOnly(cal.CalcEasterOffset(&cal.Holiday{}, year))
}

// Calendar é somente leitura depois de criado e pode ser compartilhado
// entre goroutines.
type Calendar struct {
	cal *cal.BusinessCalendar
}

func NewCalendar() *Calendar {
	c := cal.NewBusinessCalendar()
	c.AddHoliday(fixed...)
	c.AddHoliday(movable...)
	return &Calendar{cal: c}
}

// Default é o calendário compartilhado pelo grid administrativo e pelo
// fluxo de agendamento.
var Default = NewCalendar()

// Name devolve o nome do feriado na data, se houver.
func (c *Calendar) Name(date time.Time) (string, bool) {
	actual, _, h := c.cal.IsHoliday(dateOnly(date))
	if !actual || h == nil {
		return "", false
	}
	return h.Name, true
}

func (c *Calendar) IsHoliday(date time.Time) bool {
	_, ok := c.Name(date)
	return ok
}

// ForYear lista todos os feriados do ano em ordem cronológica.
func (c *Calendar) ForYear(year int) []Holiday {
	out := make([]Holiday, 0, len(fixed)+len(movable))
	seen := make(map[time.Time]struct{}, len(fixed)+len(movable))

	add := func(list []*cal.Holiday, isMovable bool) {
		for _, h := range list {
			actual, _ := h.Calc(year)
			d := dateOnly(actual)
			if _, clash := seen[d]; clash {
				continue
			}
			seen[d] = struct{}{}
			out = append(out, Holiday{Date: d, Name: h.Name, Movable: isMovable})
		}
	}
	add(fixed, false)
	add(movable, true)

	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func IsHoliday(date time.Time) bool { return Default.IsHoliday(date) }

func Name(date time.Time) (string, bool) { return Default.Name(date) }
