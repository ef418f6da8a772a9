package rules

import (
	"context"
	"errors"
	"time"

	"github.com/salonsched/salonsched/internal/schedule"
)

var ErrStaffNotFound = errors.New("rules: staff not found")

// Calendar is the snapshot of schedule rules relevant to one staff member on
// one date: the weekday's working hours plus every active break and vacation
// owned by the staff member or their salon. Salon-level rules apply to all
// staff of that salon; the resolver treats both origins identically.
type Calendar struct {
	Hours     schedule.WorkingHours
	Breaks    []schedule.Break
	Vacations []schedule.Vacation
}

// Provider supplies calendar rules. The in-process implementation reads the
// local store; deployments that keep salon management in a separate service
// use the gRPC provider instead (protogen builds).
type Provider interface {
	StaffCalendar(ctx context.Context, staffID string, date time.Time) (Calendar, error)
}
