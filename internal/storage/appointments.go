package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/salonsched/salonsched/internal/booking"
	"github.com/salonsched/salonsched/internal/model"
	"github.com/salonsched/salonsched/internal/outbox"
	"github.com/salonsched/salonsched/internal/schedule"
	"github.com/salonsched/salonsched/libs/db"
)

const (
	pgCodeLockNotAvailable = "55P03"
	pgCodeExclusion        = "23P01"
)

var (
	ErrNotFound          = errors.New("storage: appointment not found")
	ErrInvalidTransition = errors.New("storage: status transition not allowed")
)

// DB is the slice of the pgx pool the store needs. *db.Pool satisfies it, as
// do pgxmock pools in tests.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

var _ DB = (*db.Pool)(nil)

// Store persists appointments and provides the transactional scope the
// booking coordinator commits through. Lock waits are bounded by
// lockTimeout; exhaustion surfaces as booking.ErrBusy so callers can retry.
type Store struct {
	pool        DB
	outbox      *outbox.Repository
	lockTimeout time.Duration
}

func NewStore(pool DB, outboxRepo *outbox.Repository, lockTimeout time.Duration) *Store {
	if lockTimeout <= 0 {
		lockTimeout = 3 * time.Second
	}
	return &Store{pool: pool, outbox: outboxRepo, lockTimeout: lockTimeout}
}

// ListBlockingAppointments is the pool-backed read used by the advisory
// slot-listing path. Cancelled, completed and no-show rows free the slot.
func (s *Store) ListBlockingAppointments(ctx context.Context, staffID string, date time.Time) ([]model.Appointment, error) {
	return listBlocking(ctx, s.pool, staffID, date)
}

func (s *Store) ListForStaffDate(ctx context.Context, staffID string, date time.Time) ([]model.Appointment, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id::text, staff_id::text, service_id::text, date, start_minute, end_minute, status, created_at
		FROM appointments
		WHERE staff_id = $1 AND date = $2
		ORDER BY start_minute ASC
	`, staffID, schedule.DateOnly(date))
	if err != nil {
		return nil, fmt.Errorf("storage: list appointments: %w", err)
	}
	defer rows.Close()
	return scanAppointments(rows)
}

// Cancel transitions an appointment to cancelled. Cancelling an already
// cancelled appointment is a no-op; other terminal statuses are refused.
func (s *Store) Cancel(ctx context.Context, appointmentID string) (model.Appointment, error) {
	return s.transition(ctx, appointmentID, model.StatusCancelled, func(a model.Appointment, _ time.Time) error {
		if a.Status == model.StatusCancelled {
			return nil
		}
		if !model.IsBlockingStatus(a.Status) {
			return fmt.Errorf("%w: appointment %s is %s and cannot be cancelled", ErrInvalidTransition, a.ID, a.Status)
		}
		return nil
	}, time.Time{})
}

// MarkNoShow flags a missed appointment. Allowed only once the appointment's
// end time has passed; flagging early would free a slot that could still be
// honored.
func (s *Store) MarkNoShow(ctx context.Context, appointmentID string, now time.Time) (model.Appointment, error) {
	return s.transition(ctx, appointmentID, model.StatusNoShow, func(a model.Appointment, now time.Time) error {
		if a.Status == model.StatusNoShow {
			return nil
		}
		if !a.CanMarkNoShow(now) {
			return fmt.Errorf("%w: appointment %s cannot be marked no-show yet", ErrInvalidTransition, a.ID)
		}
		return nil
	}, now)
}

func (s *Store) transition(ctx context.Context, appointmentID, target string, guard func(model.Appointment, time.Time) error, now time.Time) (model.Appointment, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return model.Appointment{}, fmt.Errorf("storage: begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	appt, err := getForUpdate(ctx, tx, appointmentID)
	if err != nil {
		return model.Appointment{}, err
	}
	if err := guard(appt, now); err != nil {
		return model.Appointment{}, err
	}
	if appt.Status == target {
		return appt, nil // idempotent
	}

	if _, err := tx.Exec(ctx, `
		UPDATE appointments SET status = $2 WHERE id = $1
	`, appointmentID, target); err != nil {
		return model.Appointment{}, fmt.Errorf("storage: update status: %w", err)
	}
	appt.Status = target

	if err := s.insertStatusEvent(ctx, tx, appt); err != nil {
		return model.Appointment{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.Appointment{}, fmt.Errorf("storage: commit: %w", err)
	}
	return appt, nil
}

// InTx opens the coordinator's transaction scope. The lock timeout is set
// with SET LOCAL so it dies with the transaction.
func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context, tx booking.Tx) error) error {
	pgtx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("storage: begin: %w", err)
	}
	defer func() { _ = pgtx.Rollback(ctx) }()

	if _, err := pgtx.Exec(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", s.lockTimeout.Milliseconds())); err != nil {
		return fmt.Errorf("storage: set lock timeout: %w", err)
	}

	if err := fn(ctx, &storeTx{tx: pgtx, outbox: s.outbox}); err != nil {
		return translatePGError(err)
	}
	if err := pgtx.Commit(ctx); err != nil {
		return translatePGError(fmt.Errorf("storage: commit: %w", err))
	}
	return nil
}

// storeTx is the transaction-bound view handed to the coordinator.
type storeTx struct {
	tx     pgx.Tx
	outbox *outbox.Repository
}

// LockStaff acquires row locks on the staff set. Callers pass ids in
// ascending order; the ORDER BY keeps the row-lock acquisition sequence
// consistent across concurrent transactions.
func (t *storeTx) LockStaff(ctx context.Context, staffIDs []string) error {
	rows, err := t.tx.Query(ctx, `
		SELECT id FROM staff WHERE id = ANY($1) ORDER BY id FOR UPDATE
	`, staffIDs)
	if err != nil {
		return fmt.Errorf("storage: lock staff: %w", err)
	}
	defer rows.Close()

	locked := 0
	for rows.Next() {
		locked++
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("storage: lock staff: %w", err)
	}
	if locked != len(staffIDs) {
		return fmt.Errorf("storage: unknown staff in %v: %w", staffIDs, ErrNotFound)
	}
	return nil
}

func (t *storeTx) ListBlockingAppointments(ctx context.Context, staffID string, date time.Time) ([]model.Appointment, error) {
	return listBlocking(ctx, t.tx, staffID, date)
}

func (t *storeTx) InsertAppointment(ctx context.Context, appt *model.Appointment) (string, error) {
	id := uuid.NewString()
	_, err := t.tx.Exec(ctx, `
		INSERT INTO appointments (id, staff_id, service_id, date, start_minute, end_minute, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, id, appt.StaffID, appt.ServiceID, schedule.DateOnly(appt.Date), int(appt.Start), int(appt.End), appt.Status)
	if err != nil {
		return "", fmt.Errorf("storage: insert appointment: %w", err)
	}

	appt.ID = id
	if err := t.insertCreatedEvent(ctx, *appt); err != nil {
		return "", err
	}
	return id, nil
}

func (t *storeTx) insertCreatedEvent(ctx context.Context, appt model.Appointment) error {
	payload, err := json.Marshal(appointmentEvent(appt))
	if err != nil {
		return fmt.Errorf("storage: event payload: %w", err)
	}
	return t.outbox.Insert(ctx, t.tx, outbox.Event{
		AggregateType: "appointment",
		AggregateID:   appt.ID,
		EventType:     "booking.appointment.created.v1",
		Payload:       payload,
	})
}

func (s *Store) insertStatusEvent(ctx context.Context, tx pgx.Tx, appt model.Appointment) error {
	payload, err := json.Marshal(appointmentEvent(appt))
	if err != nil {
		return fmt.Errorf("storage: event payload: %w", err)
	}
	return s.outbox.Insert(ctx, tx, outbox.Event{
		AggregateType: "appointment",
		AggregateID:   appt.ID,
		EventType:     "booking.appointment." + appt.Status + ".v1",
		Payload:       payload,
	})
}

func appointmentEvent(appt model.Appointment) map[string]any {
	return map[string]any{
		"appointment_id": appt.ID,
		"staff_id":       appt.StaffID,
		"service_id":     appt.ServiceID,
		"date":           schedule.FormatDate(appt.Date),
		"start":          appt.Start.String(),
		"end":            appt.End.String(),
		"status":         appt.Status,
	}
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func listBlocking(ctx context.Context, q querier, staffID string, date time.Time) ([]model.Appointment, error) {
	rows, err := q.Query(ctx, `
		SELECT id::text, staff_id::text, service_id::text, date, start_minute, end_minute, status, created_at
		FROM appointments
		WHERE staff_id = $1
			AND date = $2
			AND status IN ('pending', 'confirmed', 'in_progress')
		ORDER BY start_minute ASC
	`, staffID, schedule.DateOnly(date))
	if err != nil {
		return nil, fmt.Errorf("storage: list blocking appointments: %w", err)
	}
	defer rows.Close()
	return scanAppointments(rows)
}

func scanAppointments(rows pgx.Rows) ([]model.Appointment, error) {
	var out []model.Appointment
	for rows.Next() {
		var (
			a                apptRow
			startMin, endMin int
		)
		if err := rows.Scan(&a.ID, &a.StaffID, &a.ServiceID, &a.Date, &startMin, &endMin, &a.Status, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, model.Appointment{
			ID:        a.ID,
			StaffID:   a.StaffID,
			ServiceID: a.ServiceID,
			Date:      a.Date,
			Start:     schedule.TimeOfDay(startMin),
			End:       schedule.TimeOfDay(endMin),
			Status:    a.Status,
			CreatedAt: a.CreatedAt,
		})
	}
	return out, rows.Err()
}

type apptRow struct {
	ID        string
	StaffID   string
	ServiceID string
	Date      time.Time
	Status    string
	CreatedAt time.Time
}

func getForUpdate(ctx context.Context, tx pgx.Tx, appointmentID string) (model.Appointment, error) {
	var (
		a                apptRow
		startMin, endMin int
	)
	err := tx.QueryRow(ctx, `
		SELECT id::text, staff_id::text, service_id::text, date, start_minute, end_minute, status, created_at
		FROM appointments
		WHERE id = $1
		FOR UPDATE
	`, appointmentID).Scan(&a.ID, &a.StaffID, &a.ServiceID, &a.Date, &startMin, &endMin, &a.Status, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Appointment{}, ErrNotFound
	}
	if err != nil {
		return model.Appointment{}, fmt.Errorf("storage: load appointment: %w", err)
	}
	return model.Appointment{
		ID:        a.ID,
		StaffID:   a.StaffID,
		ServiceID: a.ServiceID,
		Date:      a.Date,
		Start:     schedule.TimeOfDay(startMin),
		End:       schedule.TimeOfDay(endMin),
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
	}, nil
}

// translatePGError maps database failure modes onto the booking taxonomy:
// lock-wait exhaustion is retryable, an exclusion-constraint hit is the
// schema backstop for an overlap the validation pass should have caught.
func translatePGError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgCodeLockNotAvailable:
			return fmt.Errorf("%w: %s", booking.ErrBusy, pgErr.Message)
		case pgCodeExclusion:
			return &booking.ConflictError{Reason: "overlapping appointment rejected by store constraint"}
		}
	}
	return err
}
