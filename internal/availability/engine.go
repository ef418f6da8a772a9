package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/salonsched/salonsched/internal/blocking"
	"github.com/salonsched/salonsched/internal/schedule"
)

var ErrInvalidDuration = errors.New("availability: duration must be a positive number of minutes")

// Engine lists bookable start times. It is read-only and advisory: a listed
// slot is only a snapshot, and the booking coordinator re-validates under a
// transaction before committing.
type Engine struct {
	resolver *blocking.Resolver
	appts    blocking.AppointmentSource
}

func NewEngine(resolver *blocking.Resolver, appts blocking.AppointmentSource) *Engine {
	return &Engine{resolver: resolver, appts: appts}
}

// AvailableSlots returns the ascending start times on the candidate grid
// where a service of durationMinutes fits without touching blocked time.
// now is injected by the caller; when date is now's calendar day, slots at
// or before now are dropped.
func (e *Engine) AvailableSlots(ctx context.Context, staffID string, date time.Time, durationMinutes, stepMinutes int, now time.Time) ([]schedule.TimeOfDay, error) {
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	day, err := e.resolver.Resolve(ctx, e.appts, staffID, date)
	if err != nil {
		return nil, fmt.Errorf("availability: %w", err)
	}
	// A fully blocked day is "no slots", not an error.
	if day.DayBlocked {
		return nil, nil
	}
	window, ok := day.Hours.Window()
	if !ok {
		return nil, nil
	}

	today := schedule.SameDay(date, now)
	nowMinute := schedule.TimeOfDayFrom(now)

	var out []schedule.TimeOfDay
	for _, start := range Slots(day.Hours, stepMinutes) {
		end := start.Add(durationMinutes)
		if end > window.End {
			continue // service must finish within working hours
		}
		if today && start <= nowMinute {
			continue
		}
		iv := schedule.Interval{Start: start, End: end}
		if overlapsAny(iv, day.Blocked) {
			continue
		}
		out = append(out, start)
	}
	return out, nil
}

func overlapsAny(iv schedule.Interval, blocked []schedule.Interval) bool {
	for _, b := range blocked {
		if iv.Overlaps(b) {
			return true
		}
	}
	return false
}
