package audit

type Kind string

const (
	KindAppointmentCreated       Kind = "appointment_created"
	KindAppointmentRescheduled   Kind = "appointment_rescheduled"
	KindAppointmentStatusChanged Kind = "appointment_status_changed"
	KindSlotConflict             Kind = "appointment_conflict"
	KindDayConfigChanged         Kind = "day_config_changed"
)

// Event é um evento de auditoria. Cada Kind tem um tipo de payload
// próprio; o worker trata todos num único switch.
type Event interface {
	Kind() Kind
}

type AppointmentCreated struct {
	UserID        *uint
	AppointmentID uint
	Date          string
	Time          string
	ServiceID     *uint
	Source        string
}

type AppointmentRescheduled struct {
	UserID        *uint
	AppointmentID uint
	FromDate      string
	FromTime      string
	ToDate        string
	ToTime        string
}

type AppointmentStatusChanged struct {
	UserID        *uint
	AppointmentID uint
	From          string
	To            string
}

type SlotConflict struct {
	UserID *uint
	Date   string
	Time   string
	Reason string
}

type DayConfigChanged struct {
	UserID  *uint
	Date    string
	Closed  bool
	Blocked []string
	Extra   []string
}

func (AppointmentCreated) Kind() Kind       { return KindAppointmentCreated }
func (AppointmentRescheduled) Kind() Kind   { return KindAppointmentRescheduled }
func (AppointmentStatusChanged) Kind() Kind { return KindAppointmentStatusChanged }
func (SlotConflict) Kind() Kind             { return KindSlotConflict }
func (DayConfigChanged) Kind() Kind         { return KindDayConfigChanged }
