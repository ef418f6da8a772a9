package rules

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/salonsched/salonsched/internal/schedule"
	"github.com/salonsched/salonsched/libs/db"
)

// DB is the slice of the pgx pool the repository needs. *db.Pool satisfies
// it, as do pgxmock pools in tests.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ DB = (*db.Pool)(nil)

// Repository owns the calendar-rule tables (salons, staff, working hours,
// breaks, vacations, service catalog) and implements Provider on top of them.
type Repository struct {
	pool DB
}

func NewRepository(pool DB) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) CreateSalon(ctx context.Context, name string) (string, error) {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO salons (id, name)
		VALUES ($1, $2)
	`, id, name)
	if err != nil {
		return "", fmt.Errorf("rules: create salon: %w", err)
	}
	return id, nil
}

// CreateStaff registers a staff member and seeds a default Mon-Fri
// 09:00-17:00 schedule so slot listings work before hours are customized.
func (r *Repository) CreateStaff(ctx context.Context, salonID, name string) (string, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("rules: begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	id := uuid.NewString()
	if _, err := tx.Exec(ctx, `
		INSERT INTO staff (id, salon_id, name, is_active)
		VALUES ($1, $2, $3, TRUE)
	`, id, salonID, name); err != nil {
		return "", fmt.Errorf("rules: create staff: %w", err)
	}

	for wd := 0; wd <= 6; wd++ {
		working := wd >= 1 && wd <= 5
		startMin, endMin := 540, 1020
		if !working {
			startMin, endMin = 0, 0
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO staff_working_hours (staff_id, weekday, is_working, start_minute, end_minute)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (staff_id, weekday) DO NOTHING
		`, id, wd, working, startMin, endMin); err != nil {
			return "", fmt.Errorf("rules: seed working hours: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("rules: commit: %w", err)
	}
	return id, nil
}

func (r *Repository) UpsertWorkingHours(ctx context.Context, staffID string, wh schedule.WorkingHours) error {
	if err := wh.Validate(); err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, `
		INSERT INTO staff_working_hours (staff_id, weekday, is_working, start_minute, end_minute)
		SELECT s.id, $2, $3, $4, $5
		FROM staff s
		WHERE s.id = $1
		ON CONFLICT (staff_id, weekday) DO UPDATE
		SET is_working = EXCLUDED.is_working,
			start_minute = EXCLUDED.start_minute,
			end_minute = EXCLUDED.end_minute
	`, staffID, int(wh.Weekday), wh.IsWorking, int(wh.Start), int(wh.End))
	if err != nil {
		return fmt.Errorf("rules: upsert working hours: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrStaffNotFound
	}
	return nil
}

// BreakSpec is the storage-level description of a break; NewBreak validates
// the kind-specific fields when rows are loaded back.
type BreakSpec struct {
	SalonID      string // set for salon-level breaks
	StaffID      string // set for staff-level breaks
	Kind         string
	Window       schedule.Interval
	WeeklyDays   schedule.WeekdaySet
	SpecificDate time.Time
	RangeFrom    time.Time
	RangeTo      time.Time
}

func (r *Repository) CreateBreak(ctx context.Context, spec BreakSpec) (string, error) {
	if (spec.SalonID == "") == (spec.StaffID == "") {
		return "", fmt.Errorf("rules: break must belong to exactly one of salon or staff")
	}
	// Fail fast on a spec the loader would later refuse.
	if _, err := schedule.NewBreak(spec.Kind, spec.Window, spec.WeeklyDays, spec.SpecificDate, spec.RangeFrom, spec.RangeTo); err != nil {
		return "", err
	}

	id := uuid.NewString()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO breaks (id, salon_id, staff_id, kind, start_minute, end_minute, weekly_days, specific_date, range_start, range_end, is_active)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, TRUE)
	`, id, spec.SalonID, spec.StaffID, spec.Kind,
		int(spec.Window.Start), int(spec.Window.End), int(spec.WeeklyDays),
		nullDate(spec.SpecificDate), nullDate(spec.RangeFrom), nullDate(spec.RangeTo))
	if err != nil {
		return "", fmt.Errorf("rules: create break: %w", err)
	}
	return id, nil
}

func (r *Repository) DeactivateBreak(ctx context.Context, breakID string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE breaks SET is_active = FALSE WHERE id = $1
	`, breakID)
	if err != nil {
		return fmt.Errorf("rules: deactivate break: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) CreateVacation(ctx context.Context, salonID, staffID string, from, to time.Time) (string, error) {
	if (salonID == "") == (staffID == "") {
		return "", fmt.Errorf("rules: vacation must belong to exactly one of salon or staff")
	}
	if schedule.DateOnly(to).Before(schedule.DateOnly(from)) {
		return "", fmt.Errorf("rules: vacation end precedes start")
	}
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO vacations (id, salon_id, staff_id, start_date, end_date, is_active)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), $4, $5, TRUE)
	`, id, salonID, staffID, schedule.DateOnly(from), schedule.DateOnly(to))
	if err != nil {
		return "", fmt.Errorf("rules: create vacation: %w", err)
	}
	return id, nil
}

type Service struct {
	ID              string
	SalonID         string
	Name            string
	DurationMinutes int
}

func (r *Repository) CreateService(ctx context.Context, salonID, name string, durationMinutes int) (string, error) {
	if durationMinutes <= 0 {
		return "", fmt.Errorf("rules: service duration must be positive")
	}
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO services (id, salon_id, name, duration_minutes)
		VALUES ($1, $2, $3, $4)
	`, id, salonID, name, durationMinutes)
	if err != nil {
		return "", fmt.Errorf("rules: create service: %w", err)
	}
	return id, nil
}

func (r *Repository) ListServices(ctx context.Context, salonID string) ([]Service, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, salon_id::text, name, duration_minutes
		FROM services
		WHERE salon_id = $1
		ORDER BY name ASC
	`, salonID)
	if err != nil {
		return nil, fmt.Errorf("rules: list services: %w", err)
	}
	defer rows.Close()

	var out []Service
	for rows.Next() {
		var s Service
		if err := rows.Scan(&s.ID, &s.SalonID, &s.Name, &s.DurationMinutes); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *Repository) ServiceDuration(ctx context.Context, serviceID string) (int, error) {
	var mins int
	err := r.pool.QueryRow(ctx, `
		SELECT duration_minutes FROM services WHERE id = $1
	`, serviceID).Scan(&mins)
	if err != nil {
		return 0, fmt.Errorf("rules: service duration: %w", err)
	}
	return mins, nil
}

// StaffCalendar implements Provider against the local store.
func (r *Repository) StaffCalendar(ctx context.Context, staffID string, date time.Time) (Calendar, error) {
	var salonID string
	err := r.pool.QueryRow(ctx, `
		SELECT salon_id::text FROM staff WHERE id = $1 AND is_active
	`, staffID).Scan(&salonID)
	if errors.Is(err, pgx.ErrNoRows) {
		return Calendar{}, ErrStaffNotFound
	}
	if err != nil {
		return Calendar{}, fmt.Errorf("rules: load staff: %w", err)
	}

	cal := Calendar{}
	cal.Hours, err = r.workingHours(ctx, staffID, date.Weekday())
	if err != nil {
		return Calendar{}, err
	}
	cal.Breaks, err = r.activeBreaks(ctx, staffID, salonID)
	if err != nil {
		return Calendar{}, err
	}
	cal.Vacations, err = r.activeVacations(ctx, staffID, salonID, date)
	if err != nil {
		return Calendar{}, err
	}
	return cal, nil
}

func (r *Repository) workingHours(ctx context.Context, staffID string, weekday time.Weekday) (schedule.WorkingHours, error) {
	wh := schedule.WorkingHours{Weekday: weekday}
	var startMin, endMin int
	err := r.pool.QueryRow(ctx, `
		SELECT is_working, start_minute, end_minute
		FROM staff_working_hours
		WHERE staff_id = $1 AND weekday = $2
	`, staffID, int(weekday)).Scan(&wh.IsWorking, &startMin, &endMin)
	if errors.Is(err, pgx.ErrNoRows) {
		// Unseeded schedule: treat as a day off rather than failing the read.
		return schedule.WorkingHours{Weekday: weekday, IsWorking: false}, nil
	}
	if err != nil {
		return schedule.WorkingHours{}, fmt.Errorf("rules: load working hours: %w", err)
	}
	wh.Start = schedule.TimeOfDay(startMin)
	wh.End = schedule.TimeOfDay(endMin)
	return wh, nil
}

func (r *Repository) activeBreaks(ctx context.Context, staffID, salonID string) ([]schedule.Break, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT kind, start_minute, end_minute, weekly_days, specific_date, range_start, range_end
		FROM breaks
		WHERE is_active AND (staff_id = $1 OR salon_id = $2)
	`, staffID, salonID)
	if err != nil {
		return nil, fmt.Errorf("rules: load breaks: %w", err)
	}
	defer rows.Close()

	var out []schedule.Break
	for rows.Next() {
		var (
			kind               string
			startMin, endMin   int
			weeklyDays         int
			specific, from, to *time.Time
		)
		if err := rows.Scan(&kind, &startMin, &endMin, &weeklyDays, &specific, &from, &to); err != nil {
			return nil, err
		}
		b, err := schedule.NewBreak(kind,
			schedule.Interval{Start: schedule.TimeOfDay(startMin), End: schedule.TimeOfDay(endMin)},
			schedule.WeekdaySet(weeklyDays), deref(specific), deref(from), deref(to))
		if err != nil {
			return nil, fmt.Errorf("rules: stored break invalid: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *Repository) activeVacations(ctx context.Context, staffID, salonID string, date time.Time) ([]schedule.Vacation, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT start_date, end_date
		FROM vacations
		WHERE is_active
			AND (staff_id = $1 OR salon_id = $2)
			AND start_date <= $3
			AND end_date >= $3
	`, staffID, salonID, schedule.DateOnly(date))
	if err != nil {
		return nil, fmt.Errorf("rules: load vacations: %w", err)
	}
	defer rows.Close()

	var out []schedule.Vacation
	for rows.Next() {
		var v schedule.Vacation
		if err := rows.Scan(&v.From, &v.To); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func nullDate(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	d := schedule.DateOnly(t)
	return &d
}

func deref(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
