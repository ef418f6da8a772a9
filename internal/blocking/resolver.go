package blocking

import (
	"context"
	"fmt"
	"time"

	"github.com/salonsched/salonsched/internal/model"
	"github.com/salonsched/salonsched/internal/rules"
	"github.com/salonsched/salonsched/internal/schedule"
)

// AppointmentSource lists committed appointments that occupy the calendar.
// The advisory read path passes a pool-backed source; the booking
// coordinator passes a transaction-bound one so re-validation observes rows
// committed by concurrent bookings.
type AppointmentSource interface {
	ListBlockingAppointments(ctx context.Context, staffID string, date time.Time) ([]model.Appointment, error)
}

// DaySchedule is the resolved picture of one staff member's day: either the
// whole day is blocked (vacation), or a sorted disjoint set of blocked
// intervals within the day's working hours.
type DaySchedule struct {
	Hours      schedule.WorkingHours
	DayBlocked bool
	Blocked    []schedule.Interval
}

// Resolver merges breaks, vacations and committed appointments into a single
// blocking set. It performs no writes and is safe for concurrent use.
type Resolver struct {
	rules rules.Provider
}

func NewResolver(provider rules.Provider) *Resolver {
	return &Resolver{rules: provider}
}

func (r *Resolver) Resolve(ctx context.Context, src AppointmentSource, staffID string, date time.Time) (DaySchedule, error) {
	cal, err := r.rules.StaffCalendar(ctx, staffID, date)
	if err != nil {
		return DaySchedule{}, fmt.Errorf("blocking: calendar for staff %s: %w", staffID, err)
	}

	out := DaySchedule{Hours: cal.Hours}

	// A vacation blocks the whole day; no finer-grained work needed.
	for _, v := range cal.Vacations {
		if v.Covers(date) {
			out.DayBlocked = true
			return out, nil
		}
	}

	var blocked []schedule.Interval
	for _, b := range cal.Breaks {
		if b.AppliesOn(date) {
			blocked = append(blocked, b.Span())
		}
	}

	appts, err := src.ListBlockingAppointments(ctx, staffID, date)
	if err != nil {
		return DaySchedule{}, fmt.Errorf("blocking: appointments for staff %s: %w", staffID, err)
	}
	for _, a := range appts {
		if model.IsBlockingStatus(a.Status) {
			blocked = append(blocked, a.Interval())
		}
	}

	out.Blocked = schedule.MergeIntervals(blocked)
	return out, nil
}

// Conflicts reports whether the candidate interval collides with the day:
// blocked day, outside working hours, or overlapping a blocked interval.
// The reason string feeds conflict errors and logs.
func (ds DaySchedule) Conflicts(iv schedule.Interval) (bool, string) {
	if ds.DayBlocked {
		return true, "day blocked by vacation"
	}
	window, ok := ds.Hours.Window()
	if !ok {
		return true, "staff not working that day"
	}
	if iv.Start < window.Start || iv.End > window.End {
		return true, "outside working hours"
	}
	for _, b := range ds.Blocked {
		if iv.Overlaps(b) {
			return true, "overlaps " + b.String()
		}
	}
	return false, ""
}
