package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/salonsched/salonsched/internal/availability"
	"github.com/salonsched/salonsched/internal/observability/metrics"
	"github.com/salonsched/salonsched/internal/rules"
	"github.com/salonsched/salonsched/internal/schedule"
)

type slotLister interface {
	AvailableSlots(ctx context.Context, staffID string, date time.Time, durationMinutes, stepMinutes int, now time.Time) ([]schedule.TimeOfDay, error)
}

type serviceCatalog interface {
	ServiceDuration(ctx context.Context, serviceID string) (int, error)
}

// SlotsHandler serves the advisory availability listing. The response is a
// snapshot; the booking transaction re-validates every slot it commits.
type SlotsHandler struct {
	engine  slotLister
	catalog serviceCatalog
	logger  *slog.Logger
	metrics *metrics.Booking
	now     func() time.Time
}

func NewSlotsHandler(engine slotLister, catalog serviceCatalog, logger *slog.Logger, m *metrics.Booking) *SlotsHandler {
	return &SlotsHandler{
		engine:  engine,
		catalog: catalog,
		logger:  logger,
		metrics: m,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

type slotItem struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (h *SlotsHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	staffID := strings.TrimSpace(r.URL.Query().Get("staff_id"))
	dateStr := strings.TrimSpace(r.URL.Query().Get("date"))
	if staffID == "" || dateStr == "" {
		http.Error(w, "staff_id and date are required", http.StatusBadRequest)
		return
	}

	date, err := schedule.ParseDate(dateStr)
	if err != nil {
		http.Error(w, "invalid date (want YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	durationMins, ok := h.resolveDuration(r)
	if !ok {
		http.Error(w, "service_id or a positive duration_minutes is required", http.StatusBadRequest)
		return
	}

	stepMins := availability.DefaultStepMinutes
	if raw := strings.TrimSpace(r.URL.Query().Get("step_minutes")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > 120 {
			http.Error(w, "invalid step_minutes", http.StatusBadRequest)
			return
		}
		stepMins = n
	}

	slots, err := h.engine.AvailableSlots(r.Context(), staffID, date, durationMins, stepMins, h.now())
	if err != nil {
		if errors.Is(err, availability.ErrInvalidDuration) {
			h.metrics.ObserveSlotRequest("invalid")
			http.Error(w, "invalid duration", http.StatusBadRequest)
			return
		}
		if errors.Is(err, rules.ErrStaffNotFound) {
			h.metrics.ObserveSlotRequest("not_found")
			http.Error(w, "staff not found", http.StatusNotFound)
			return
		}
		h.metrics.ObserveSlotRequest("error")
		h.logger.Error("slot listing failed", "staff_id", staffID, "date", dateStr, "err", err)
		http.Error(w, "failed to compute availability", http.StatusInternalServerError)
		return
	}

	items := make([]slotItem, 0, len(slots))
	for _, s := range slots {
		items = append(items, slotItem{Start: s.String(), End: s.Add(durationMins).String()})
	}

	h.metrics.ObserveSlotRequest("ok")
	writeJSON(w, http.StatusOK, items)
}

// resolveDuration prefers the service catalog; an explicit duration_minutes
// query param covers ad-hoc listings without a catalogued service.
func (h *SlotsHandler) resolveDuration(r *http.Request) (int, bool) {
	if serviceID := strings.TrimSpace(r.URL.Query().Get("service_id")); serviceID != "" {
		mins, err := h.catalog.ServiceDuration(r.Context(), serviceID)
		if err != nil {
			h.logger.Warn("service duration lookup failed", "service_id", serviceID, "err", err)
			return 0, false
		}
		return mins, true
	}
	raw := strings.TrimSpace(r.URL.Query().Get("duration_minutes"))
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 || n > 8*60 {
		return 0, false
	}
	return n, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "failed to build response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
