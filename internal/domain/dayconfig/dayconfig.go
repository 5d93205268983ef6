package dayconfig

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/slot"
)

// Config é a configuração de um dia específico. A ausência de registro
// equivale a Default(date).
type Config struct {
	Date    time.Time    `json:"date"`
	Closed  bool         `json:"closed"`
	Blocked []slot.Label `json:"blocked_slots"`
	Extra   []slot.Label `json:"extra_slots"`
	Notes   string       `json:"notes"`
}

// Default: aberto, horário padrão, sem bloqueios.
func Default(date time.Time) Config {
	return Config{
		Date:    DateOnly(date),
		Blocked: []slot.Label{},
		Extra:   []slot.Label{},
	}
}

func (c Config) BlockedSet() slot.Set { return slot.NewSet(c.Blocked...) }

// Patch carrega apenas os campos informados; nil = não alterar.
type Patch struct {
	Closed  *bool     `json:"closed"`
	Blocked *[]string `json:"blocked_slots" binding:"omitempty,dive,slotlabel"`
	Extra   *[]string `json:"extra_slots" binding:"omitempty,dive,slotlabel"`
	Notes   *string   `json:"notes" binding:"omitempty,max=1000"`
}

func (p Patch) Empty() bool {
	return p.Closed == nil && p.Blocked == nil && p.Extra == nil && p.Notes == nil
}

// Apply devolve uma cópia de c com os campos do patch substituídos.
// Listas de horários são normalizadas para conjuntos ordenados.
func (c Config) Apply(p Patch) (Config, error) {
	out := c

	if p.Closed != nil {
		out.Closed = *p.Closed
	}

	if p.Blocked != nil {
		labels, err := slot.Normalize(*p.Blocked)
		if err != nil {
			return Config{}, err
		}
		out.Blocked = labels
	}

	if p.Extra != nil {
		labels, err := slot.Normalize(*p.Extra)
		if err != nil {
			return Config{}, err
		}
		out.Extra = labels
	}

	if p.Notes != nil {
		out.Notes = *p.Notes
	}

	return out, nil
}

// Store é o colaborador que persiste configurações por data.
type Store interface {
	Get(ctx context.Context, date time.Time) (Config, error)
	Upsert(ctx context.Context, date time.Time, patch Patch) (Config, error)
}

const DateLayout = "2006-01-02"

// ParseDate valida uma data "YYYY-MM-DD" (ex: 2024-02-30 é rejeitada).
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, &slot.ValidationError{Field: "date", Value: s, Reason: "expected a valid YYYY-MM-DD date"}
	}
	return t, nil
}

// DateOnly zera o horário mantendo o dia civil.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
