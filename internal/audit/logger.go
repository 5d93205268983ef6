package audit

import (
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Sink grava registros de auditoria.
type Sink interface {
	Write(entry models.AuditLog) error
}

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Write(entry models.AuditLog) error {
	return l.db.Create(&entry).Error
}

// ToLog converte o evento no registro persistido.
func ToLog(ev Event) (models.AuditLog, error) {
	var (
		userID   *uint
		entity   string
		entityID *uint
		meta     any
	)

	switch e := ev.(type) {
	case AppointmentCreated:
		userID, entity, entityID = e.UserID, "appointment", &e.AppointmentID
		meta = map[string]any{"date": e.Date, "time": e.Time, "service_id": e.ServiceID, "source": e.Source}
	case AppointmentRescheduled:
		userID, entity, entityID = e.UserID, "appointment", &e.AppointmentID
		meta = map[string]any{
			"from": e.FromDate + " " + e.FromTime,
			"to":   e.ToDate + " " + e.ToTime,
		}
	case AppointmentStatusChanged:
		userID, entity, entityID = e.UserID, "appointment", &e.AppointmentID
		meta = map[string]any{"from": e.From, "to": e.To}
	case SlotConflict:
		userID, entity = e.UserID, "appointment"
		meta = map[string]any{"date": e.Date, "time": e.Time, "reason": e.Reason}
	case DayConfigChanged:
		userID, entity = e.UserID, "day_config"
		meta = map[string]any{"date": e.Date, "closed": e.Closed, "blocked": e.Blocked, "extra": e.Extra}
	default:
		return models.AuditLog{}, fmt.Errorf("unknown audit event %T", ev)
	}

	var metaJSON string
	if b, err := json.Marshal(meta); err == nil {
		metaJSON = string(b)
	}

	return models.AuditLog{
		UserID:   userID,
		Action:   string(ev.Kind()),
		Entity:   entity,
		EntityID: entityID,
		Metadata: metaJSON,
	}, nil
}
