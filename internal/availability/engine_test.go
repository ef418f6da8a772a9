package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/salonsched/salonsched/internal/blocking"
	"github.com/salonsched/salonsched/internal/model"
	"github.com/salonsched/salonsched/internal/rules"
	"github.com/salonsched/salonsched/internal/schedule"
)

type stubRules struct {
	cal rules.Calendar
}

func (s *stubRules) StaffCalendar(_ context.Context, _ string, _ time.Time) (rules.Calendar, error) {
	return s.cal, nil
}

type stubAppointments struct {
	appts []model.Appointment
}

func (s *stubAppointments) ListBlockingAppointments(_ context.Context, _ string, _ time.Time) ([]model.Appointment, error) {
	return s.appts, nil
}

var (
	monday   = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	otherDay = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
)

func newEngine(cal rules.Calendar, appts []model.Appointment) *Engine {
	resolver := blocking.NewResolver(&stubRules{cal: cal})
	return NewEngine(resolver, &stubAppointments{appts: appts})
}

func mondayHours() schedule.WorkingHours {
	return schedule.WorkingHours{Weekday: time.Monday, IsWorking: true, Start: 540, End: 1020} // 09:00-17:00
}

func slotStrings(slots []schedule.TimeOfDay) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return out
}

func TestSlotsGrid(t *testing.T) {
	slots := Slots(mondayHours(), 30)
	if len(slots) != 16 {
		t.Fatalf("expected 16 grid points for 09:00-17:00 at 30m, got %d", len(slots))
	}
	if slots[0].String() != "09:00" || slots[15].String() != "16:30" {
		t.Fatalf("unexpected grid bounds: %s..%s", slots[0], slots[15])
	}

	if got := Slots(schedule.WorkingHours{IsWorking: false}, 30); got != nil {
		t.Fatalf("day off must produce no grid, got %v", got)
	}

	// Zero step falls back to the 30-minute default.
	if got := Slots(mondayHours(), 0); len(got) != 16 {
		t.Fatalf("default step: expected 16 points, got %d", len(got))
	}
}

func TestAvailableSlotsOpenDay(t *testing.T) {
	e := newEngine(rules.Calendar{Hours: mondayHours()}, nil)
	slots, err := e.AvailableSlots(context.Background(), "staff-1", monday, 30, 30, otherDay)
	if err != nil {
		t.Fatalf("available slots: %v", err)
	}
	if len(slots) != 16 {
		t.Fatalf("expected 16 slots on an empty day, got %d: %v", len(slots), slotStrings(slots))
	}
}

func TestAvailableSlotsDailyBreak(t *testing.T) {
	cal := rules.Calendar{
		Hours:  mondayHours(),
		Breaks: []schedule.Break{schedule.DailyBreak{Window: schedule.Interval{Start: 780, End: 840}}}, // 13:00-14:00
	}
	e := newEngine(cal, nil)
	slots, err := e.AvailableSlots(context.Background(), "staff-1", monday, 30, 30, otherDay)
	if err != nil {
		t.Fatalf("available slots: %v", err)
	}

	got := map[string]bool{}
	for _, s := range slots {
		got[s.String()] = true
	}
	// 12:30 ends exactly at 13:00 and survives; 13:00 and 13:30 fall inside
	// the break; 14:00 reappears.
	if !got["12:30"] {
		t.Fatalf("12:30 should remain bookable, slots: %v", slotStrings(slots))
	}
	if got["13:00"] || got["13:30"] {
		t.Fatalf("slots inside the break must be excluded, slots: %v", slotStrings(slots))
	}
	if !got["14:00"] {
		t.Fatalf("14:00 should reappear after the break, slots: %v", slotStrings(slots))
	}
	if len(slots) != 14 {
		t.Fatalf("expected 14 slots, got %d", len(slots))
	}
}

func TestAvailableSlotsExistingAppointment(t *testing.T) {
	appts := []model.Appointment{
		{StaffID: "staff-1", Date: monday, Start: 600, End: 630, Status: model.StatusConfirmed}, // 10:00-10:30
	}
	e := newEngine(rules.Calendar{Hours: mondayHours()}, appts)
	slots, err := e.AvailableSlots(context.Background(), "staff-1", monday, 30, 30, otherDay)
	if err != nil {
		t.Fatalf("available slots: %v", err)
	}

	got := map[string]bool{}
	for _, s := range slots {
		got[s.String()] = true
	}
	if !got["09:30"] {
		t.Fatalf("09:30 ends exactly at 10:00 and must stay, slots: %v", slotStrings(slots))
	}
	if got["10:00"] {
		t.Fatalf("10:00 overlaps the appointment and must go, slots: %v", slotStrings(slots))
	}
	if !got["10:30"] {
		t.Fatalf("10:30 starts when the appointment ends and must stay, slots: %v", slotStrings(slots))
	}
}

func TestAvailableSlotsVacationDay(t *testing.T) {
	cal := rules.Calendar{
		Hours:     mondayHours(),
		Vacations: []schedule.Vacation{{From: monday, To: monday}},
	}
	e := newEngine(cal, nil)
	slots, err := e.AvailableSlots(context.Background(), "staff-1", monday, 30, 30, otherDay)
	if err != nil {
		t.Fatalf("vacation day must not be an error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("vacation day must yield no slots, got %v", slotStrings(slots))
	}
}

func TestAvailableSlotsDurationMustFit(t *testing.T) {
	e := newEngine(rules.Calendar{Hours: mondayHours()}, nil)
	// 90-minute service: the last start that still finishes by 17:00 is 15:30.
	slots, err := e.AvailableSlots(context.Background(), "staff-1", monday, 90, 30, otherDay)
	if err != nil {
		t.Fatalf("available slots: %v", err)
	}
	last := slots[len(slots)-1]
	if last.String() != "15:30" {
		t.Fatalf("expected last slot 15:30 for a 90m service, got %s", last)
	}
}

func TestAvailableSlotsTodayFiltersPast(t *testing.T) {
	e := newEngine(rules.Calendar{Hours: mondayHours()}, nil)
	now := time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC) // noon on the requested day

	slots, err := e.AvailableSlots(context.Background(), "staff-1", monday, 30, 30, now)
	if err != nil {
		t.Fatalf("available slots: %v", err)
	}
	// Slots at or before 12:00 are gone; 12:30 is the first survivor.
	if slots[0].String() != "12:30" {
		t.Fatalf("expected first slot 12:30, got %s", slots[0])
	}
	for _, s := range slots {
		if s <= schedule.TimeOfDayFrom(now) {
			t.Fatalf("slot %s is not strictly after now", s)
		}
	}
}

func TestAvailableSlotsInvalidDuration(t *testing.T) {
	e := newEngine(rules.Calendar{Hours: mondayHours()}, nil)
	if _, err := e.AvailableSlots(context.Background(), "staff-1", monday, 0, 30, otherDay); !errors.Is(err, ErrInvalidDuration) {
		t.Fatalf("expected ErrInvalidDuration, got %v", err)
	}
	if _, err := e.AvailableSlots(context.Background(), "staff-1", monday, -15, 30, otherDay); !errors.Is(err, ErrInvalidDuration) {
		t.Fatalf("expected ErrInvalidDuration for negative duration, got %v", err)
	}
}

func TestAvailableSlotsIdempotentReads(t *testing.T) {
	cal := rules.Calendar{
		Hours:  mondayHours(),
		Breaks: []schedule.Break{schedule.DailyBreak{Window: schedule.Interval{Start: 780, End: 840}}},
	}
	e := newEngine(cal, nil)
	first, err := e.AvailableSlots(context.Background(), "staff-1", monday, 30, 30, otherDay)
	if err != nil {
		t.Fatalf("first read: %v", err)
	}
	second, err := e.AvailableSlots(context.Background(), "staff-1", monday, 30, 30, otherDay)
	if err != nil {
		t.Fatalf("second read: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("reads differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("reads differ at %d: %s vs %s", i, first[i], second[i])
		}
	}
}
