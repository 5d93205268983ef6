package models

import "time"

// Registro criado sob demanda na primeira escrita para a data.
type DayConfig struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date   time.Time `gorm:"type:date;uniqueIndex;not null" json:"date"`
	Closed bool      `gorm:"default:false" json:"closed"`

	BlockedSlots []string `gorm:"serializer:json;type:text" json:"blocked_slots"`
	ExtraSlots   []string `gorm:"serializer:json;type:text" json:"extra_slots"`

	Notes string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
