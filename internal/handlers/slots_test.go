package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/salonsched/salonsched/internal/observability/metrics"
	"github.com/salonsched/salonsched/internal/rules"
	"github.com/salonsched/salonsched/internal/schedule"
)

type stubEngine struct {
	slots []schedule.TimeOfDay
	err   error

	gotStaffID  string
	gotDuration int
	gotStep     int
}

func (s *stubEngine) AvailableSlots(_ context.Context, staffID string, _ time.Time, durationMinutes, stepMinutes int, _ time.Time) ([]schedule.TimeOfDay, error) {
	s.gotStaffID = staffID
	s.gotDuration = durationMinutes
	s.gotStep = stepMinutes
	return s.slots, s.err
}

type stubCatalog struct {
	durations map[string]int
}

func (s *stubCatalog) ServiceDuration(_ context.Context, serviceID string) (int, error) {
	mins, ok := s.durations[serviceID]
	if !ok {
		return 0, errors.New("no such service")
	}
	return mins, nil
}

func newSlotsHandler(engine *stubEngine, catalog *stubCatalog) *SlotsHandler {
	if catalog == nil {
		catalog = &stubCatalog{}
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewSlotsHandler(engine, catalog, logger, metrics.NewBooking(prometheus.NewRegistry()))
}

func TestSlotsListOK(t *testing.T) {
	engine := &stubEngine{slots: []schedule.TimeOfDay{540, 570}}
	h := newSlotsHandler(engine, &stubCatalog{durations: map[string]int{"svc-cut": 30}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/slots?staff_id=staff-1&date=2026-09-07&service_id=svc-cut", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %q)", rec.Code, rec.Body.String())
	}
	var items []slotItem
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d slots, want 2", len(items))
	}
	if items[0].Start != "09:00" || items[0].End != "09:30" {
		t.Fatalf("first slot = %+v", items[0])
	}
	if engine.gotStaffID != "staff-1" || engine.gotDuration != 30 {
		t.Fatalf("engine called with staff=%q duration=%d", engine.gotStaffID, engine.gotDuration)
	}
}

func TestSlotsListExplicitDuration(t *testing.T) {
	engine := &stubEngine{}
	h := newSlotsHandler(engine, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/slots?staff_id=staff-1&date=2026-09-07&duration_minutes=45&step_minutes=15", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if engine.gotDuration != 45 || engine.gotStep != 15 {
		t.Fatalf("engine called with duration=%d step=%d", engine.gotDuration, engine.gotStep)
	}
	if rec.Body.String() != "[]" {
		t.Fatalf("empty listing should encode as [], got %q", rec.Body.String())
	}
}

func TestSlotsListBadRequest(t *testing.T) {
	cases := []struct {
		name string
		url  string
	}{
		{"missing staff", "/api/v1/slots?date=2026-09-07&duration_minutes=30"},
		{"missing date", "/api/v1/slots?staff_id=s&duration_minutes=30"},
		{"bad date", "/api/v1/slots?staff_id=s&date=07-09-2026&duration_minutes=30"},
		{"no duration source", "/api/v1/slots?staff_id=s&date=2026-09-07"},
		{"zero duration", "/api/v1/slots?staff_id=s&date=2026-09-07&duration_minutes=0"},
		{"bad step", "/api/v1/slots?staff_id=s&date=2026-09-07&duration_minutes=30&step_minutes=-5"},
		{"unknown service", "/api/v1/slots?staff_id=s&date=2026-09-07&service_id=nope"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newSlotsHandler(&stubEngine{}, &stubCatalog{})
			rec := httptest.NewRecorder()
			h.List(rec, httptest.NewRequest(http.MethodGet, tc.url, nil))
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestSlotsListStaffNotFound(t *testing.T) {
	h := newSlotsHandler(&stubEngine{err: rules.ErrStaffNotFound}, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/slots?staff_id=ghost&date=2026-09-07&duration_minutes=30", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestSlotsListMethodNotAllowed(t *testing.T) {
	h := newSlotsHandler(&stubEngine{}, nil)
	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodPost, "/api/v1/slots", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}
