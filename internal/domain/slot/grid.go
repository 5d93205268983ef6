package slot

import "strconv"

const (
	DefaultOpen        Label = "08:00"
	DefaultClose       Label = "20:00"
	DefaultGranularity       = 30
)

// Grid é a sequência ordenada de horários de um dia de funcionamento.
type Grid struct {
	Labels      []Label
	Granularity int
}

// Generate produz os labels de open até close (inclusive) a cada
// granularity minutos. Nenhum label começa depois de close.
func Generate(open, close Label, granularity int) (Grid, error) {
	start := open.Minutes()
	if start < 0 {
		return Grid{}, invalid("open", string(open), "expected HH:MM")
	}

	end := close.Minutes()
	if end < 0 {
		return Grid{}, invalid("close", string(close), "expected HH:MM")
	}

	if granularity <= 0 {
		return Grid{}, invalid("granularity", strconv.Itoa(granularity), "must be positive")
	}

	if start > end {
		return Grid{}, invalid("open", string(open), "after close "+string(close))
	}

	labels := make([]Label, 0, (end-start)/granularity+1)
	for m := start; m <= end; m += granularity {
		labels = append(labels, FromMinutes(m))
	}

	return Grid{Labels: labels, Granularity: granularity}, nil
}

// Default é a grade padrão do salão: 08:00–20:00 a cada 30 minutos.
func Default() Grid {
	g, _ := Generate(DefaultOpen, DefaultClose, DefaultGranularity)
	return g
}

// Merge acrescenta horários extras à grade mantendo a ordem
// cronológica e sem duplicatas. A grade original não é alterada.
func (g Grid) Merge(extras []Label) Grid {
	if len(extras) == 0 {
		return g
	}

	seen := NewSet(g.Labels...)
	labels := make([]Label, len(g.Labels), len(g.Labels)+len(extras))
	copy(labels, g.Labels)

	for _, e := range extras {
		if seen.Has(e) {
			continue
		}
		seen[e] = struct{}{}
		labels = append(labels, e)
	}

	Sort(labels)
	return Grid{Labels: labels, Granularity: g.Granularity}
}

func (g Grid) Contains(l Label) bool {
	for _, x := range g.Labels {
		if x == l {
			return true
		}
	}
	return false
}

func (g Grid) Len() int { return len(g.Labels) }
