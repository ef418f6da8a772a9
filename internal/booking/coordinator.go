package booking

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/salonsched/salonsched/internal/blocking"
	"github.com/salonsched/salonsched/internal/model"
	"github.com/salonsched/salonsched/internal/schedule"
)

// Tx is the transactional view the coordinator validates and commits
// through. LockStaff must be called before any read so re-validation
// observes appointments committed by concurrent bookings.
type Tx interface {
	blocking.AppointmentSource
	LockStaff(ctx context.Context, staffIDs []string) error
	InsertAppointment(ctx context.Context, appt *model.Appointment) (string, error)
}

// Store opens the transaction scope. Implementations must roll back when fn
// returns an error and translate lock-wait exhaustion to ErrBusy.
type Store interface {
	InTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Coordinator validates and commits sequential bookings: a chain of services
// sharing one visit, each starting when the previous ends, each possibly on
// a different staff member. It is the only component with a write side.
type Coordinator struct {
	store    Store
	resolver *blocking.Resolver
	logger   *slog.Logger
}

func NewCoordinator(store Store, resolver *blocking.Resolver, logger *slog.Logger) *Coordinator {
	return &Coordinator{store: store, resolver: resolver, logger: logger}
}

type segment struct {
	req      model.ServiceRequest
	interval schedule.Interval
}

// Book commits all appointments of the chain or none of them.
//
// The advisory slot listing is only a snapshot, so every segment is
// re-checked here against the blocking set as seen inside the transaction,
// after the involved staff rows are locked in ascending id order. Exactly one of two racing overlapping bookings can
// win; the loser sees the winner's rows and receives a ConflictError.
func (c *Coordinator) Book(ctx context.Context, date time.Time, start schedule.TimeOfDay, reqs []model.ServiceRequest, now time.Time) ([]model.Appointment, error) {
	segments, err := buildSegments(start, reqs)
	if err != nil {
		return nil, err
	}
	if schedule.SameDay(date, now) && start <= schedule.TimeOfDayFrom(now) {
		return nil, fmt.Errorf("%w: start %s is not in the future", ErrInvalidInput, start)
	}

	staffIDs := distinctStaffAscending(reqs)

	var created []model.Appointment
	err = c.store.InTx(ctx, func(ctx context.Context, tx Tx) error {
		if err := tx.LockStaff(ctx, staffIDs); err != nil {
			return fmt.Errorf("lock staff: %w", err)
		}

		// Re-resolve per staff under lock; one resolve serves every segment
		// assigned to that staff member.
		days := make(map[string]blocking.DaySchedule, len(staffIDs))
		for _, staffID := range staffIDs {
			day, err := c.resolver.Resolve(ctx, tx, staffID, date)
			if err != nil {
				return err
			}
			days[staffID] = day
		}

		for i, seg := range segments {
			if conflicted, reason := days[seg.req.StaffID].Conflicts(seg.interval); conflicted {
				return &ConflictError{
					Index:     i,
					ServiceID: seg.req.ServiceID,
					StaffID:   seg.req.StaffID,
					Interval:  seg.interval,
					Reason:    reason,
				}
			}
		}

		created = created[:0]
		for _, seg := range segments {
			appt := model.Appointment{
				StaffID:   seg.req.StaffID,
				ServiceID: seg.req.ServiceID,
				Date:      schedule.DateOnly(date),
				Start:     seg.interval.Start,
				End:       seg.interval.End,
				Status:    model.StatusConfirmed,
			}
			id, err := tx.InsertAppointment(ctx, &appt)
			if err != nil {
				return fmt.Errorf("insert appointment: %w", err)
			}
			appt.ID = id
			created = append(created, appt)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("booking committed",
		"date", schedule.FormatDate(date),
		"start", start.String(),
		"services", len(created),
		"staff", staffIDs,
	)
	return created, nil
}

func buildSegments(start schedule.TimeOfDay, reqs []model.ServiceRequest) ([]segment, error) {
	if len(reqs) == 0 {
		return nil, fmt.Errorf("%w: no services requested", ErrInvalidInput)
	}
	if !start.Valid() {
		return nil, fmt.Errorf("%w: start time %d out of range", ErrInvalidInput, start)
	}

	segments := make([]segment, 0, len(reqs))
	cursor := start
	for i, req := range reqs {
		if req.StaffID == "" {
			return nil, fmt.Errorf("%w: service %d has no staff", ErrInvalidInput, i)
		}
		if req.DurationMinutes <= 0 {
			return nil, fmt.Errorf("%w: service %d has non-positive duration", ErrInvalidInput, i)
		}
		end := cursor.Add(req.DurationMinutes)
		if end > schedule.MinutesPerDay {
			return nil, fmt.Errorf("%w: chain runs past midnight", ErrInvalidInput)
		}
		segments = append(segments, segment{req: req, interval: schedule.Interval{Start: cursor, End: end}})
		cursor = end
	}
	return segments, nil
}

// distinctStaffAscending sorts to a globally consistent lock order so two
// multi-staff bookings contending for the same pair cannot deadlock.
func distinctStaffAscending(reqs []model.ServiceRequest) []string {
	seen := make(map[string]struct{}, len(reqs))
	var ids []string
	for _, r := range reqs {
		if _, ok := seen[r.StaffID]; ok {
			continue
		}
		seen[r.StaffID] = struct{}{}
		ids = append(ids, r.StaffID)
	}
	sort.Strings(ids)
	return ids
}
