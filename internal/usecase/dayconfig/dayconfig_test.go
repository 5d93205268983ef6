package dayconfig_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/dayconfig"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/slot"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	uc "github.com/BruksfildServices01/salon-scheduler/internal/usecase/dayconfig"
)

type memStore struct {
	mu   sync.Mutex
	days map[string]domain.Config
}

func (s *memStore) Get(_ context.Context, date time.Time) (domain.Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cfg, ok := s.days[date.Format(domain.DateLayout)]; ok {
		return cfg, nil
	}
	return domain.Default(date), nil
}

func (s *memStore) Upsert(ctx context.Context, date time.Time, p domain.Patch) (domain.Config, error) {
	cur, _ := s.Get(ctx, date)
	next, err := cur.Apply(p)
	if err != nil {
		return domain.Config{}, err
	}
	s.mu.Lock()
	s.days[date.Format(domain.DateLayout)] = next
	s.mu.Unlock()
	return next, nil
}

type recorder struct{ events []audit.Event }

func (r *recorder) Dispatch(ev audit.Event) { r.events = append(r.events, ev) }

func TestUpsert_PartialPatch(t *testing.T) {
	store := &memStore{days: map[string]domain.Config{}}
	rec := &recorder{}
	upsert := uc.NewUpsertDayConfig(store, rec)
	get := uc.NewGetDayConfig(store)
	ctx := context.Background()

	blocked := []string{"15:00", "09:00:00", "15:00"}
	cfg, err := upsert.Execute(ctx, uc.UpsertDayConfigInput{
		Date:  "2024-06-10",
		Patch: domain.Patch{Blocked: &blocked},
	})
	require.NoError(t, err)
	assert.Equal(t, []slot.Label{"09:00", "15:00"}, cfg.Blocked)

	notes := "feriado local"
	cfg, err = upsert.Execute(ctx, uc.UpsertDayConfigInput{
		Date:  "2024-06-10",
		Patch: domain.Patch{Notes: &notes},
	})
	require.NoError(t, err)
	assert.Equal(t, []slot.Label{"09:00", "15:00"}, cfg.Blocked, "omitted fields are kept")
	assert.Equal(t, notes, cfg.Notes)

	got, err := get.Execute(ctx, "2024-06-10")
	require.NoError(t, err)
	assert.Equal(t, cfg, got)

	require.Len(t, rec.events, 2)
	ev := rec.events[1].(audit.DayConfigChanged)
	assert.Equal(t, []string{"09:00", "15:00"}, ev.Blocked)
}

func TestUpsert_Rejections(t *testing.T) {
	store := &memStore{days: map[string]domain.Config{}}
	rec := &recorder{}
	upsert := uc.NewUpsertDayConfig(store, rec)
	ctx := context.Background()

	_, err := upsert.Execute(ctx, uc.UpsertDayConfigInput{Date: "2024-06-10"})
	assert.True(t, httperr.IsBusiness(err, "empty_patch"))

	bad := []string{"25:00"}
	_, err = upsert.Execute(ctx, uc.UpsertDayConfigInput{Date: "2024-06-10", Patch: domain.Patch{Extra: &bad}})
	var ve *slot.ValidationError
	assert.ErrorAs(t, err, &ve)

	closed := true
	_, err = upsert.Execute(ctx, uc.UpsertDayConfigInput{Date: "10/06/2024", Patch: domain.Patch{Closed: &closed}})
	assert.ErrorAs(t, err, &ve)

	assert.Empty(t, rec.events)
}

func TestGet_DefaultWhenMissing(t *testing.T) {
	store := &memStore{days: map[string]domain.Config{}}

	cfg, err := uc.NewGetDayConfig(store).Execute(context.Background(), "2024-12-25")
	require.NoError(t, err)
	assert.False(t, cfg.Closed)
	assert.Empty(t, cfg.Blocked)
}
