package dayconfig

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/dayconfig"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/slot"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

type Publisher interface {
	Dispatch(ev audit.Event)
}

// ======================================================
// GET
// ======================================================

type GetDayConfig struct {
	store domain.Store
}

func NewGetDayConfig(store domain.Store) *GetDayConfig {
	return &GetDayConfig{store: store}
}

// Execute devolve a configuração do dia; sem registro, o padrão.
func (uc *GetDayConfig) Execute(
	ctx context.Context,
	date string,
) (domain.Config, error) {

	day, err := domain.ParseDate(date)
	if err != nil {
		return domain.Config{}, err
	}

	return uc.store.Get(ctx, day)
}

// ======================================================
// UPSERT
// ======================================================

type UpsertDayConfigInput struct {
	UserID *uint
	Date   string
	Patch  domain.Patch
}

type UpsertDayConfig struct {
	store domain.Store
	audit Publisher
}

func NewUpsertDayConfig(store domain.Store, audit Publisher) *UpsertDayConfig {
	return &UpsertDayConfig{
		store: store,
		audit: audit,
	}
}

// Execute altera apenas os campos presentes no patch. Agendamentos
// existentes não são tocados.
func (uc *UpsertDayConfig) Execute(
	ctx context.Context,
	in UpsertDayConfigInput,
) (domain.Config, error) {

	day, err := domain.ParseDate(in.Date)
	if err != nil {
		return domain.Config{}, err
	}

	if in.Patch.Empty() {
		return domain.Config{}, httperr.ErrBusiness("empty_patch")
	}

	cfg, err := uc.store.Upsert(ctx, day, in.Patch)
	if err != nil {
		return domain.Config{}, err
	}

	uc.audit.Dispatch(audit.DayConfigChanged{
		UserID:  in.UserID,
		Date:    in.Date,
		Closed:  cfg.Closed,
		Blocked: slot.Strings(cfg.Blocked),
		Extra:   slot.Strings(cfg.Extra),
	})

	return cfg, nil
}
