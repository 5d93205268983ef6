package dto

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type AppointmentListDTO struct {
	ID             uint      `json:"id"`
	Date           time.Time `json:"date"`
	Time           string    `json:"time"`
	EndTime        string    `json:"end_time"`
	Status         string    `json:"status"`
	ClientName     string    `json:"client_name"`
	ClientPhone    string    `json:"client_phone"`
	ServiceID      *uint     `json:"service_id"`
	ServiceName    string    `json:"service_name"`
	DurationMin    int       `json:"duration_min"`
	ProfessionalID *uint     `json:"professional_id"`
	Notes          string    `json:"notes"`
}

func FromAppointment(ap models.Appointment, durationMin int, endTime string) AppointmentListDTO {
	out := AppointmentListDTO{
		ID:             ap.ID,
		Date:           ap.Date,
		Time:           ap.Time,
		EndTime:        endTime,
		Status:         ap.Status,
		ClientName:     ap.ClientName,
		ClientPhone:    ap.ClientPhone,
		ServiceID:      ap.ServiceID,
		DurationMin:    durationMin,
		ProfessionalID: ap.ProfessionalID,
		Notes:          ap.Notes,
	}
	if ap.Service != nil {
		out.ServiceName = ap.Service.Name
	}
	return out
}
