package appointment_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/availability"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/dayconfig"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ------------------------------------------------------
// Repositório em memória
// ------------------------------------------------------

type memRepo struct {
	mu     *sync.Mutex
	items  map[uint]models.Appointment
	nextID uint
}

func newMemRepo(aps ...models.Appointment) *memRepo {
	r := &memRepo{mu: &sync.Mutex{}, items: map[uint]models.Appointment{}}
	for _, ap := range aps {
		r.items[ap.ID] = ap
		if ap.ID > r.nextID {
			r.nextID = ap.ID
		}
	}
	return r
}

// Transaction serializa o bloco inteiro, como a trava por data.
func (r *memRepo) Transaction(_ context.Context, fn func(repo domain.Repository) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := make(map[uint]models.Appointment, len(r.items))
	for k, v := range r.items {
		snapshot[k] = v
	}

	if err := fn(&memTx{r}); err != nil {
		r.items = snapshot
		return err
	}
	return nil
}

func (r *memRepo) ListByDate(ctx context.Context, date time.Time, _ bool) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return (&memTx{r}).ListByDate(ctx, date, false)
}

func (r *memRepo) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return (&memTx{r}).GetByID(ctx, id)
}

func (r *memRepo) Create(ctx context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return (&memTx{r}).Create(ctx, ap)
}

func (r *memRepo) Update(ctx context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return (&memTx{r}).Update(ctx, ap)
}

func (r *memRepo) get(id uint) models.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.items[id]
}

func (r *memRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// memTx opera sem travar; o lock já é do Transaction.
type memTx struct{ r *memRepo }

func (t *memTx) Transaction(_ context.Context, fn func(repo domain.Repository) error) error {
	return fn(t)
}

func (t *memTx) ListByDate(_ context.Context, date time.Time, _ bool) ([]models.Appointment, error) {
	day := date.Format(dayconfig.DateLayout)
	out := []models.Appointment{}
	for _, ap := range t.r.items {
		if ap.Date.Format(dayconfig.DateLayout) == day {
			out = append(out, ap)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Time != out[j].Time {
			return out[i].Time < out[j].Time
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (t *memTx) GetByID(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := t.r.items[id]
	if !ok {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	return &ap, nil
}

func (t *memTx) Create(_ context.Context, ap *models.Appointment) error {
	t.r.nextID++
	ap.ID = t.r.nextID
	t.r.items[ap.ID] = *ap
	return nil
}

func (t *memTx) Update(_ context.Context, ap *models.Appointment) error {
	t.r.items[ap.ID] = *ap
	return nil
}

// ------------------------------------------------------
// Configuração por dia
// ------------------------------------------------------

type memDays struct {
	mu   sync.Mutex
	days map[string]dayconfig.Config
}

func newMemDays() *memDays {
	return &memDays{days: map[string]dayconfig.Config{}}
}

func (s *memDays) Get(_ context.Context, date time.Time) (dayconfig.Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cfg, ok := s.days[date.Format(dayconfig.DateLayout)]; ok {
		return cfg, nil
	}
	return dayconfig.Default(date), nil
}

func (s *memDays) Upsert(ctx context.Context, date time.Time, p dayconfig.Patch) (dayconfig.Config, error) {
	cur, _ := s.Get(ctx, date)
	next, err := cur.Apply(p)
	if err != nil {
		return dayconfig.Config{}, err
	}
	s.mu.Lock()
	s.days[date.Format(dayconfig.DateLayout)] = next
	s.mu.Unlock()
	return next, nil
}

// ------------------------------------------------------
// Catálogo
// ------------------------------------------------------

type fakeCatalog struct {
	services []models.Service
}

func (c fakeCatalog) Lookup(context.Context) (availability.ServiceMap, error) {
	return availability.NewServiceMap(c.services), nil
}

func (c fakeCatalog) Get(_ context.Context, id uint) (*models.Service, error) {
	for _, s := range c.services {
		if s.ID == id && s.Active {
			svc := s
			return &svc, nil
		}
	}
	return nil, httperr.ErrBusiness("service_not_found")
}

var catalog = fakeCatalog{services: []models.Service{
	{ID: 1, Name: "Corte", DurationMin: 30, Active: true},
	{ID: 2, Name: "Escova", DurationMin: 60, Active: true},
	{ID: 3, Name: "Coloração", DurationMin: 90, Active: true},
	{ID: 9, Name: "Descontinuado", DurationMin: 30, Active: false},
}}

// ------------------------------------------------------
// Auditoria
// ------------------------------------------------------

type recorder struct {
	mu     sync.Mutex
	events []audit.Event
}

func (r *recorder) Dispatch(ev audit.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) kinds() []audit.Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]audit.Kind, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Kind())
	}
	return out
}

func uptr(v uint) *uint { return &v }

func sptr(v string) *string { return &v }
