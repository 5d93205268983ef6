package timezone

import (
	"sync/atomic"
	"time"
)

const DefaultTimezone = "America/Sao_Paulo"

var current atomic.Value

func init() {
	current.Store(DefaultTimezone)
}

// Set define o fuso do salão; valores inválidos são ignorados.
func Set(tz string) bool {
	if !IsValid(tz) {
		return false
	}
	current.Store(tz)
	return true
}

func Name() string {
	return current.Load().(string)
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(Name()))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// Combine junta o dia civil e o horário "HH:MM" no fuso do salão.
func Combine(day time.Time, minutes int) time.Time {
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		0, minutes, 0, 0,
		Location(Name()),
	)
}
