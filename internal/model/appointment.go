package model

import (
	"time"

	"github.com/salonsched/salonsched/internal/schedule"
)

// Appointment statuses. Only pending, confirmed and in_progress occupy the
// calendar; the terminal statuses free the slot.
const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
	StatusNoShow     = "no_show"
)

func IsBlockingStatus(status string) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusInProgress:
		return true
	}
	return false
}

type Appointment struct {
	ID        string
	StaffID   string
	ServiceID string
	Date      time.Time
	Start     schedule.TimeOfDay
	End       schedule.TimeOfDay
	Status    string
	CreatedAt time.Time
}

func (a Appointment) Interval() schedule.Interval {
	return schedule.Interval{Start: a.Start, End: a.End}
}

// CanMarkNoShow reports whether the appointment may be flagged as a no-show:
// it must still be blocking and its end time must already have passed.
func (a Appointment) CanMarkNoShow(now time.Time) bool {
	if !IsBlockingStatus(a.Status) {
		return false
	}
	endAt := schedule.DateOnly(a.Date).Add(time.Duration(a.End) * time.Minute)
	return now.After(endAt)
}

// ServiceRequest is one link of a sequential booking chain: a service, the
// staff member performing it, and how long it takes.
type ServiceRequest struct {
	ServiceID       string
	StaffID         string
	DurationMinutes int
}
