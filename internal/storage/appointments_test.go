package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"

	"github.com/salonsched/salonsched/internal/booking"
	"github.com/salonsched/salonsched/internal/model"
	"github.com/salonsched/salonsched/internal/outbox"
	"github.com/salonsched/salonsched/internal/schedule"
)

func newMockStore(t *testing.T) (*Store, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	t.Cleanup(mock.Close)
	return NewStore(mock, outbox.NewRepository(nil), 3*time.Second), mock
}

func apptColumns() []string {
	return []string{"id", "staff_id", "service_id", "date", "start_minute", "end_minute", "status", "created_at"}
}

func TestListBlockingAppointments(t *testing.T) {
	store, mock := newMockStore(t)
	date, _ := schedule.ParseDate("2026-09-07")

	mock.ExpectQuery("SELECT id::text, staff_id::text, service_id::text, date, start_minute, end_minute, status, created_at").
		WithArgs("staff-1", date).
		WillReturnRows(pgxmock.NewRows(apptColumns()).
			AddRow("a1", "staff-1", "svc", date, 600, 630, "confirmed", time.Now()))

	appts, err := store.ListBlockingAppointments(context.Background(), "staff-1", date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(appts) != 1 {
		t.Fatalf("got %d appointments, want 1", len(appts))
	}
	if appts[0].Start != 600 || appts[0].End != 630 {
		t.Fatalf("interval = [%d, %d)", appts[0].Start, appts[0].End)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestInTxSetsLockTimeoutAndCommits(t *testing.T) {
	store, mock := newMockStore(t)
	date, _ := schedule.ParseDate("2026-09-07")

	mock.ExpectBegin()
	mock.ExpectExec("SET LOCAL lock_timeout").WillReturnResult(pgxmock.NewResult("SET", 0))
	mock.ExpectQuery("SELECT id FROM staff WHERE id = ANY").
		WithArgs([]string{"staff-1"}).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("staff-1"))
	mock.ExpectExec("INSERT INTO appointments").
		WithArgs(pgxmock.AnyArg(), "staff-1", "svc", date, 600, 630, "confirmed").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO outbox_events").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	err := store.InTx(context.Background(), func(ctx context.Context, tx booking.Tx) error {
		if err := tx.LockStaff(ctx, []string{"staff-1"}); err != nil {
			return err
		}
		appt := &model.Appointment{
			StaffID:   "staff-1",
			ServiceID: "svc",
			Date:      date,
			Start:     600,
			End:       630,
			Status:    model.StatusConfirmed,
		}
		id, err := tx.InsertAppointment(ctx, appt)
		if err != nil {
			return err
		}
		if id == "" || appt.ID != id {
			t.Fatalf("insert did not assign id: %q vs %q", id, appt.ID)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestInTxLockTimeoutBecomesBusy(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("SET LOCAL lock_timeout").WillReturnResult(pgxmock.NewResult("SET", 0))
	mock.ExpectQuery("SELECT id FROM staff WHERE id = ANY").
		WithArgs([]string{"staff-1"}).
		WillReturnError(&pgconn.PgError{Code: "55P03", Message: "canceling statement due to lock timeout"})
	mock.ExpectRollback()

	err := store.InTx(context.Background(), func(ctx context.Context, tx booking.Tx) error {
		return tx.LockStaff(ctx, []string{"staff-1"})
	})
	if !errors.Is(err, booking.ErrBusy) {
		t.Fatalf("err = %v, want ErrBusy", err)
	}
}

func TestInTxExclusionBecomesConflict(t *testing.T) {
	store, mock := newMockStore(t)
	date, _ := schedule.ParseDate("2026-09-07")

	mock.ExpectBegin()
	mock.ExpectExec("SET LOCAL lock_timeout").WillReturnResult(pgxmock.NewResult("SET", 0))
	mock.ExpectExec("INSERT INTO appointments").
		WillReturnError(&pgconn.PgError{Code: "23P01", ConstraintName: "appointments_no_overlap"})
	mock.ExpectRollback()

	err := store.InTx(context.Background(), func(ctx context.Context, tx booking.Tx) error {
		_, err := tx.InsertAppointment(ctx, &model.Appointment{
			StaffID: "staff-1", ServiceID: "svc", Date: date, Start: 600, End: 630, Status: model.StatusConfirmed,
		})
		return err
	})
	var conflict *booking.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("err = %v, want ConflictError", err)
	}
}

func TestLockStaffUnknownStaff(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("SET LOCAL lock_timeout").WillReturnResult(pgxmock.NewResult("SET", 0))
	mock.ExpectQuery("SELECT id FROM staff WHERE id = ANY").
		WithArgs([]string{"ghost", "staff-1"}).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("staff-1"))
	mock.ExpectRollback()

	err := store.InTx(context.Background(), func(ctx context.Context, tx booking.Tx) error {
		return tx.LockStaff(ctx, []string{"ghost", "staff-1"})
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCancelIdempotent(t *testing.T) {
	store, mock := newMockStore(t)
	date, _ := schedule.ParseDate("2026-09-07")

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id::text, staff_id::text, service_id::text, date, start_minute, end_minute, status, created_at").
		WithArgs("a1").
		WillReturnRows(pgxmock.NewRows(apptColumns()).
			AddRow("a1", "staff-1", "svc", date, 600, 630, "cancelled", time.Now()))

	appt, err := store.Cancel(context.Background(), "a1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appt.Status != model.StatusCancelled {
		t.Fatalf("status = %q", appt.Status)
	}
}

func TestMarkNoShowBeforeEndRefused(t *testing.T) {
	store, mock := newMockStore(t)
	date, _ := schedule.ParseDate("2026-09-07")

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id::text, staff_id::text, service_id::text, date, start_minute, end_minute, status, created_at").
		WithArgs("a1").
		WillReturnRows(pgxmock.NewRows(apptColumns()).
			AddRow("a1", "staff-1", "svc", date, 600, 630, "confirmed", time.Now()))

	// Appointment runs 10:00-10:30 on the 7th; "now" is still mid-appointment.
	now := date.Add(615 * time.Minute)
	_, err := store.MarkNoShow(context.Background(), "a1", now)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
}

func TestMarkNoShowAfterEnd(t *testing.T) {
	store, mock := newMockStore(t)
	date, _ := schedule.ParseDate("2026-09-07")

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id::text, staff_id::text, service_id::text, date, start_minute, end_minute, status, created_at").
		WithArgs("a1").
		WillReturnRows(pgxmock.NewRows(apptColumns()).
			AddRow("a1", "staff-1", "svc", date, 600, 630, "confirmed", time.Now()))
	mock.ExpectExec("UPDATE appointments SET status").
		WithArgs("a1", "no_show").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("INSERT INTO outbox_events").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	now := date.Add(700 * time.Minute)
	appt, err := store.MarkNoShow(context.Background(), "a1", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appt.Status != model.StatusNoShow {
		t.Fatalf("status = %q", appt.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
