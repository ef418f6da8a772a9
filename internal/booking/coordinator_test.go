package booking

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/salonsched/salonsched/internal/blocking"
	"github.com/salonsched/salonsched/internal/model"
	"github.com/salonsched/salonsched/internal/rules"
	"github.com/salonsched/salonsched/internal/schedule"
)

var (
	monday  = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	someDay = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
)

// fakeTx implements Tx over in-memory appointment lists keyed by staff id,
// recording lock and insert order.
type fakeTx struct {
	appts       map[string][]model.Appointment
	lockedIDs   []string
	inserted    []model.Appointment
	insertErr   error
	nextID      int
	insertsSeen int
}

func (f *fakeTx) LockStaff(_ context.Context, staffIDs []string) error {
	f.lockedIDs = append([]string(nil), staffIDs...)
	return nil
}

func (f *fakeTx) ListBlockingAppointments(_ context.Context, staffID string, _ time.Time) ([]model.Appointment, error) {
	return f.appts[staffID], nil
}

func (f *fakeTx) InsertAppointment(_ context.Context, appt *model.Appointment) (string, error) {
	f.insertsSeen++
	if f.insertErr != nil {
		return "", f.insertErr
	}
	f.nextID++
	appt.ID = string(rune('a' + f.nextID))
	f.inserted = append(f.inserted, *appt)
	return appt.ID, nil
}

// fakeStore commits by appending inserted rows to the shared map only when
// fn succeeds, mirroring transactional semantics.
type fakeStore struct {
	appts     map[string][]model.Appointment
	lastTx    *fakeTx
	lockErr   error
	insertErr error
}

func (s *fakeStore) InTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	if s.lockErr != nil {
		return s.lockErr
	}
	tx := &fakeTx{appts: s.appts, insertErr: s.insertErr}
	s.lastTx = tx
	if err := fn(ctx, tx); err != nil {
		return err // rollback: inserted rows are discarded
	}
	for _, a := range tx.inserted {
		s.appts[a.StaffID] = append(s.appts[a.StaffID], a)
	}
	return nil
}

type calendarByStaff map[string]rules.Calendar

func (c calendarByStaff) StaffCalendar(_ context.Context, staffID string, _ time.Time) (rules.Calendar, error) {
	cal, ok := c[staffID]
	if !ok {
		return rules.Calendar{}, rules.ErrStaffNotFound
	}
	return cal, nil
}

func workingCal() rules.Calendar {
	return rules.Calendar{Hours: schedule.WorkingHours{Weekday: time.Monday, IsWorking: true, Start: 540, End: 1020}}
}

func newCoordinator(store Store, cals calendarByStaff) *Coordinator {
	return NewCoordinator(store, blocking.NewResolver(cals), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBookTwoServiceChainAcrossStaff(t *testing.T) {
	store := &fakeStore{appts: map[string][]model.Appointment{}}
	c := newCoordinator(store, calendarByStaff{"staff-x": workingCal(), "staff-y": workingCal()})

	reqs := []model.ServiceRequest{
		{ServiceID: "cut", StaffID: "staff-x", DurationMinutes: 30},
		{ServiceID: "color", StaffID: "staff-y", DurationMinutes: 45},
	}
	created, err := c.Book(context.Background(), monday, 600, reqs, someDay) // 10:00
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(created))
	}
	// A occupies 10:00-10:30 on X, B occupies 10:30-11:15 on Y.
	if created[0].StaffID != "staff-x" || created[0].Start != 600 || created[0].End != 630 {
		t.Fatalf("first segment wrong: %+v", created[0])
	}
	if created[1].StaffID != "staff-y" || created[1].Start != 630 || created[1].End != 675 {
		t.Fatalf("second segment wrong: %+v", created[1])
	}
	if created[0].Status != model.StatusConfirmed {
		t.Fatalf("expected confirmed status, got %s", created[0].Status)
	}
	if len(store.appts["staff-x"]) != 1 || len(store.appts["staff-y"]) != 1 {
		t.Fatalf("expected both appointments committed")
	}
}

func TestBookLocksStaffInAscendingOrderWithoutDuplicates(t *testing.T) {
	store := &fakeStore{appts: map[string][]model.Appointment{}}
	c := newCoordinator(store, calendarByStaff{"staff-a": workingCal(), "staff-b": workingCal()})

	reqs := []model.ServiceRequest{
		{ServiceID: "s1", StaffID: "staff-b", DurationMinutes: 15},
		{ServiceID: "s2", StaffID: "staff-a", DurationMinutes: 15},
		{ServiceID: "s3", StaffID: "staff-b", DurationMinutes: 15},
	}
	if _, err := c.Book(context.Background(), monday, 600, reqs, someDay); err != nil {
		t.Fatalf("book: %v", err)
	}
	locked := store.lastTx.lockedIDs
	if len(locked) != 2 || locked[0] != "staff-a" || locked[1] != "staff-b" {
		t.Fatalf("expected [staff-a staff-b] lock order, got %v", locked)
	}
}

func TestBookConflictObservedUnderLock(t *testing.T) {
	// A committed appointment 10:00-10:30 already occupies staff-x, as a
	// racing transaction would have left behind.
	store := &fakeStore{appts: map[string][]model.Appointment{
		"staff-x": {{ID: "race-winner", StaffID: "staff-x", Date: monday, Start: 600, End: 630, Status: model.StatusConfirmed}},
	}}
	c := newCoordinator(store, calendarByStaff{"staff-x": workingCal()})

	reqs := []model.ServiceRequest{{ServiceID: "cut", StaffID: "staff-x", DurationMinutes: 30}}
	_, err := c.Book(context.Background(), monday, 600, reqs, someDay)
	if err == nil {
		t.Fatalf("expected conflict")
	}
	var ce *ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if ce.StaffID != "staff-x" || ce.ServiceID != "cut" || ce.Index != 0 {
		t.Fatalf("conflict detail wrong: %+v", ce)
	}
	if len(store.appts["staff-x"]) != 1 {
		t.Fatalf("conflicting booking must not add rows")
	}
}

func TestBookAtomicAcrossChain(t *testing.T) {
	// Second segment (staff-y 10:30-11:15) collides; nothing may persist.
	store := &fakeStore{appts: map[string][]model.Appointment{
		"staff-y": {{ID: "busy", StaffID: "staff-y", Date: monday, Start: 660, End: 690, Status: model.StatusPending}},
	}}
	c := newCoordinator(store, calendarByStaff{"staff-x": workingCal(), "staff-y": workingCal()})

	reqs := []model.ServiceRequest{
		{ServiceID: "cut", StaffID: "staff-x", DurationMinutes: 30},
		{ServiceID: "color", StaffID: "staff-y", DurationMinutes: 45},
	}
	_, err := c.Book(context.Background(), monday, 600, reqs, someDay)
	if !IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
	var ce *ConflictError
	errors.As(err, &ce)
	if ce.Index != 1 || ce.ServiceID != "color" {
		t.Fatalf("expected the second service to be named, got %+v", ce)
	}
	if len(store.appts["staff-x"]) != 0 {
		t.Fatalf("partial commit: staff-x gained an appointment despite the conflict")
	}
	// Validation precedes every insert, so the failed chain never wrote.
	if store.lastTx.insertsSeen != 0 {
		t.Fatalf("expected no insert attempts after validation failure, saw %d", store.lastTx.insertsSeen)
	}
}

func TestBookRejectsOutsideWorkingHours(t *testing.T) {
	store := &fakeStore{appts: map[string][]model.Appointment{}}
	c := newCoordinator(store, calendarByStaff{"staff-x": workingCal()})

	// 16:45 + 30m would end 17:15, past closing.
	_, err := c.Book(context.Background(), monday, 1005, []model.ServiceRequest{
		{ServiceID: "cut", StaffID: "staff-x", DurationMinutes: 30},
	}, someDay)
	if !IsConflict(err) {
		t.Fatalf("expected conflict for out-of-hours booking, got %v", err)
	}
}

func TestBookRejectsVacationDay(t *testing.T) {
	cal := workingCal()
	cal.Vacations = []schedule.Vacation{{From: monday, To: monday}}
	store := &fakeStore{appts: map[string][]model.Appointment{}}
	c := newCoordinator(store, calendarByStaff{"staff-x": cal})

	_, err := c.Book(context.Background(), monday, 600, []model.ServiceRequest{
		{ServiceID: "cut", StaffID: "staff-x", DurationMinutes: 30},
	}, someDay)
	if !IsConflict(err) {
		t.Fatalf("expected conflict on vacation day, got %v", err)
	}
}

func TestBookInvalidInput(t *testing.T) {
	store := &fakeStore{appts: map[string][]model.Appointment{}}
	c := newCoordinator(store, calendarByStaff{"staff-x": workingCal()})

	cases := []struct {
		name  string
		start schedule.TimeOfDay
		reqs  []model.ServiceRequest
		now   time.Time
	}{
		{"empty chain", 600, nil, someDay},
		{"zero duration", 600, []model.ServiceRequest{{ServiceID: "cut", StaffID: "staff-x", DurationMinutes: 0}}, someDay},
		{"negative duration", 600, []model.ServiceRequest{{ServiceID: "cut", StaffID: "staff-x", DurationMinutes: -30}}, someDay},
		{"missing staff", 600, []model.ServiceRequest{{ServiceID: "cut", DurationMinutes: 30}}, someDay},
		{"past midnight", 1410, []model.ServiceRequest{{ServiceID: "cut", StaffID: "staff-x", DurationMinutes: 60}}, someDay},
		{"start in the past today", 600, []model.ServiceRequest{{ServiceID: "cut", StaffID: "staff-x", DurationMinutes: 30}},
			time.Date(2026, 9, 7, 11, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		if _, err := c.Book(context.Background(), monday, tc.start, tc.reqs, tc.now); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
	if store.lastTx != nil {
		t.Fatalf("invalid input must be rejected before opening a transaction")
	}
}

func TestBookBusyPropagates(t *testing.T) {
	store := &fakeStore{appts: map[string][]model.Appointment{}, lockErr: ErrBusy}
	c := newCoordinator(store, calendarByStaff{"staff-x": workingCal()})

	_, err := c.Book(context.Background(), monday, 600, []model.ServiceRequest{
		{ServiceID: "cut", StaffID: "staff-x", DurationMinutes: 30},
	}, someDay)
	if !errors.Is(err, ErrBusy) {
		t.Fatalf("expected ErrBusy, got %v", err)
	}
}

func TestBookBackToBackSameStaff(t *testing.T) {
	// An existing 10:00-10:30 appointment; a new chain starting 10:30 on the
	// same staff member touches but does not overlap.
	store := &fakeStore{appts: map[string][]model.Appointment{
		"staff-x": {{ID: "prior", StaffID: "staff-x", Date: monday, Start: 600, End: 630, Status: model.StatusConfirmed}},
	}}
	c := newCoordinator(store, calendarByStaff{"staff-x": workingCal()})

	created, err := c.Book(context.Background(), monday, 630, []model.ServiceRequest{
		{ServiceID: "cut", StaffID: "staff-x", DurationMinutes: 30},
	}, someDay)
	if err != nil {
		t.Fatalf("adjacent booking must succeed: %v", err)
	}
	if created[0].Start != 630 || created[0].End != 660 {
		t.Fatalf("unexpected interval: %+v", created[0])
	}
}
