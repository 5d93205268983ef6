package slot

import (
	"fmt"
	"sort"
	"strings"
)

// Label é um horário canônico "HH:MM" dentro do dia.
type Label string

const minutesPerDay = 24 * 60

// ValidationError descreve uma entrada rejeitada pelo domínio.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

func invalid(field, value, reason string) error {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}

// twoDigits lê exatamente dois dígitos ASCII. Sinais, espaços e
// larguras diferentes são recusados.
func twoDigits(s string) (int, bool) {
	if len(s) != 2 || s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}

// ParseLabel aceita "HH:MM" ou "HH:MM:SS"; segundos são truncados.
func ParseLabel(s string) (Label, error) {
	raw := strings.TrimSpace(s)
	parts := strings.Split(raw, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return "", invalid("time", s, "expected HH:MM")
	}

	h, ok := twoDigits(parts[0])
	if !ok || h > 23 {
		return "", invalid("time", s, "hour out of range")
	}

	m, ok := twoDigits(parts[1])
	if !ok || m > 59 {
		return "", invalid("time", s, "minute out of range")
	}

	if len(parts) == 3 {
		if sec, ok := twoDigits(parts[2]); !ok || sec > 59 {
			return "", invalid("time", s, "second out of range")
		}
	}

	return FromMinutes(h*60 + m), nil
}

// MustLabel is for constants and tests.
func MustLabel(s string) Label {
	l, err := ParseLabel(s)
	if err != nil {
		panic(err)
	}
	return l
}

// FromMinutes converte minutos desde 00:00 em label.
// Valores fora do dia não são normalizados.
func FromMinutes(m int) Label {
	return Label(fmt.Sprintf("%02d:%02d", m/60, m%60))
}

// Minutes devolve minutos desde 00:00. Labels inválidos devolvem -1.
// Labels canônicos são lidos direto, sem passar por ParseLabel.
func (l Label) Minutes() int {
	if len(l) == 5 && l[2] == ':' {
		h, okH := twoDigits(string(l[:2]))
		m, okM := twoDigits(string(l[3:]))
		if okH && okM && h <= 23 && m <= 59 {
			return h*60 + m
		}
		return -1
	}

	parsed, err := ParseLabel(string(l))
	if err != nil {
		return -1
	}
	return parsed.Minutes()
}

func (l Label) String() string { return string(l) }

// Add soma minutos; o resultado pode sair do dia (ex: 24:30) e
// serve apenas para comparação.
func (l Label) Add(minutes int) int {
	return l.Minutes() + minutes
}

// Normalize converte uma coleção crua em conjunto ordenado de labels
// canônicos, sem duplicatas.
func Normalize(raw []string) ([]Label, error) {
	seen := make(map[Label]struct{}, len(raw))
	out := make([]Label, 0, len(raw))

	for _, r := range raw {
		l, err := ParseLabel(r)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}

	Sort(out)
	return out, nil
}

// Sort ordena labels cronologicamente.
func Sort(labels []Label) {
	sort.Slice(labels, func(i, j int) bool {
		return labels[i].Minutes() < labels[j].Minutes()
	})
}

// Strings converte para []string (persistência / JSON).
func Strings(labels []Label) []string {
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = string(l)
	}
	return out
}

// Set é uma coleção de labels com semântica de conjunto.
type Set map[Label]struct{}

func NewSet(labels ...Label) Set {
	s := make(Set, len(labels))
	for _, l := range labels {
		s[l] = struct{}{}
	}
	return s
}

func (s Set) Has(l Label) bool {
	_, ok := s[l]
	return ok
}
