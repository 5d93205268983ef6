package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/dayconfig"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/slot"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type DayConfigGormRepository struct {
	db *gorm.DB
}

func NewDayConfigGormRepository(db *gorm.DB) *DayConfigGormRepository {
	return &DayConfigGormRepository{db: db}
}

func (r *DayConfigGormRepository) find(ctx context.Context, day string, lock bool) (*models.DayConfig, error) {
	q := r.db.WithContext(ctx)
	if lock {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var row models.DayConfig
	err := q.Where("date = ?", day).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Get devolve a configuração padrão quando não há registro.
func (r *DayConfigGormRepository) Get(ctx context.Context, date time.Time) (dayconfig.Config, error) {
	row, err := r.find(ctx, date.Format(dayconfig.DateLayout), false)
	if err != nil {
		return dayconfig.Config{}, err
	}
	if row == nil {
		return dayconfig.Default(date), nil
	}
	return toDomain(row)
}

// Upsert atualiza se existir, senão cria. O registro existente fica
// travado durante a transação; patches concorrentes são aplicados em
// sequência.
func (r *DayConfigGormRepository) Upsert(
	ctx context.Context,
	date time.Time,
	patch dayconfig.Patch,
) (dayconfig.Config, error) {

	cfg, err := r.upsertTx(ctx, date, patch)
	if err != nil && httperr.IsUniqueViolation(err) {
		// outro admin criou o registro entre o SELECT e o INSERT
		cfg, err = r.upsertTx(ctx, date, patch)
	}
	return cfg, err
}

func (r *DayConfigGormRepository) upsertTx(
	ctx context.Context,
	date time.Time,
	patch dayconfig.Patch,
) (dayconfig.Config, error) {

	var cfg dayconfig.Config
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		cfg, err = (&DayConfigGormRepository{db: tx}).upsert(ctx, date, patch)
		return err
	})
	return cfg, err
}

func (r *DayConfigGormRepository) upsert(
	ctx context.Context,
	date time.Time,
	patch dayconfig.Patch,
) (dayconfig.Config, error) {

	day := date.Format(dayconfig.DateLayout)

	row, err := r.find(ctx, day, true)
	if err != nil {
		return dayconfig.Config{}, err
	}

	current := dayconfig.Default(date)
	if row != nil {
		if current, err = toDomain(row); err != nil {
			return dayconfig.Config{}, err
		}
	}

	next, err := current.Apply(patch)
	if err != nil {
		return dayconfig.Config{}, err
	}

	if row == nil {
		row = &models.DayConfig{Date: dayconfig.DateOnly(date)}
	}
	row.Closed = next.Closed
	row.BlockedSlots = slot.Strings(next.Blocked)
	row.ExtraSlots = slot.Strings(next.Extra)
	row.Notes = next.Notes

	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return dayconfig.Config{}, err
	}

	return next, nil
}

func toDomain(row *models.DayConfig) (dayconfig.Config, error) {
	blocked, err := slot.Normalize(row.BlockedSlots)
	if err != nil {
		return dayconfig.Config{}, err
	}
	extra, err := slot.Normalize(row.ExtraSlots)
	if err != nil {
		return dayconfig.Config{}, err
	}

	return dayconfig.Config{
		Date:    dayconfig.DateOnly(row.Date),
		Closed:  row.Closed,
		Blocked: blocked,
		Extra:   extra,
		Notes:   row.Notes,
	}, nil
}

var _ dayconfig.Store = (*DayConfigGormRepository)(nil)
