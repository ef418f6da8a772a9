package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/salonsched/salonsched/internal/rules"
	"github.com/salonsched/salonsched/internal/schedule"
)

// CalendarHandler serves the admin surface: salons, staff, working hours,
// breaks, vacations, and the service catalog.
type CalendarHandler struct {
	repo   *rules.Repository
	logger *slog.Logger
}

func NewCalendarHandler(repo *rules.Repository, logger *slog.Logger) *CalendarHandler {
	return &CalendarHandler{repo: repo, logger: logger}
}

type idResponse struct {
	ID string `json:"id"`
}

type createSalonRequest struct {
	Name string `json:"name"`
}

func (h *CalendarHandler) CreateSalon(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req createSalonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		http.Error(w, "name required", http.StatusBadRequest)
		return
	}
	id, err := h.repo.CreateSalon(r.Context(), req.Name)
	if err != nil {
		h.logger.Error("create salon failed", "err", err)
		http.Error(w, "failed to create salon", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, idResponse{ID: id})
}

type createStaffRequest struct {
	SalonID string `json:"salon_id"`
	Name    string `json:"name"`
}

func (h *CalendarHandler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req createStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.SalonID = strings.TrimSpace(req.SalonID)
	req.Name = strings.TrimSpace(req.Name)
	if req.SalonID == "" || req.Name == "" {
		http.Error(w, "salon_id and name required", http.StatusBadRequest)
		return
	}
	id, err := h.repo.CreateStaff(r.Context(), req.SalonID, req.Name)
	if err != nil {
		h.logger.Error("create staff failed", "salon_id", req.SalonID, "err", err)
		http.Error(w, "failed to create staff", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, idResponse{ID: id})
}

type workingHoursRequest struct {
	StaffID   string `json:"staff_id"`
	Weekday   int    `json:"weekday"` // 0 = Sunday
	IsWorking bool   `json:"is_working"`
	Start     string `json:"start"`
	End       string `json:"end"`
}

func (h *CalendarHandler) UpsertWorkingHours(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut && r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req workingHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.StaffID = strings.TrimSpace(req.StaffID)
	if req.StaffID == "" {
		http.Error(w, "staff_id required", http.StatusBadRequest)
		return
	}
	if req.Weekday < 0 || req.Weekday > 6 {
		http.Error(w, "weekday must be 0..6", http.StatusBadRequest)
		return
	}

	wh := schedule.WorkingHours{
		Weekday:   time.Weekday(req.Weekday),
		IsWorking: req.IsWorking,
	}
	if req.IsWorking {
		start, err := schedule.ParseTimeOfDay(strings.TrimSpace(req.Start))
		if err != nil {
			http.Error(w, "invalid start (want HH:MM)", http.StatusBadRequest)
			return
		}
		end, err := schedule.ParseTimeOfDay(strings.TrimSpace(req.End))
		if err != nil {
			http.Error(w, "invalid end (want HH:MM)", http.StatusBadRequest)
			return
		}
		wh.Start, wh.End = start, end
	}
	if err := wh.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.repo.UpsertWorkingHours(r.Context(), req.StaffID, wh); err != nil {
		if errors.Is(err, rules.ErrStaffNotFound) {
			http.Error(w, "staff not found", http.StatusNotFound)
			return
		}
		h.logger.Error("upsert working hours failed", "staff_id", req.StaffID, "err", err)
		http.Error(w, "failed to save working hours", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type createBreakRequest struct {
	SalonID      string `json:"salon_id,omitempty"`
	StaffID      string `json:"staff_id,omitempty"`
	Kind         string `json:"kind"`
	Start        string `json:"start"`
	End          string `json:"end"`
	WeeklyDays   []int  `json:"weekly_days,omitempty"`
	SpecificDate string `json:"specific_date,omitempty"`
	RangeFrom    string `json:"range_from,omitempty"`
	RangeTo      string `json:"range_to,omitempty"`
}

func (h *CalendarHandler) CreateBreak(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req createBreakRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}

	start, err := schedule.ParseTimeOfDay(strings.TrimSpace(req.Start))
	if err != nil {
		http.Error(w, "invalid start (want HH:MM)", http.StatusBadRequest)
		return
	}
	end, err := schedule.ParseTimeOfDay(strings.TrimSpace(req.End))
	if err != nil {
		http.Error(w, "invalid end (want HH:MM)", http.StatusBadRequest)
		return
	}

	spec := rules.BreakSpec{
		SalonID: strings.TrimSpace(req.SalonID),
		StaffID: strings.TrimSpace(req.StaffID),
		Kind:    strings.TrimSpace(req.Kind),
		Window:  schedule.Interval{Start: start, End: end},
	}
	for _, d := range req.WeeklyDays {
		if d < 0 || d > 6 {
			http.Error(w, "weekly_days entries must be 0..6", http.StatusBadRequest)
			return
		}
		spec.WeeklyDays |= schedule.Weekdays(time.Weekday(d))
	}
	if spec.SpecificDate, err = parseOptionalDate(req.SpecificDate); err != nil {
		http.Error(w, "invalid specific_date (want YYYY-MM-DD)", http.StatusBadRequest)
		return
	}
	if spec.RangeFrom, err = parseOptionalDate(req.RangeFrom); err != nil {
		http.Error(w, "invalid range_from (want YYYY-MM-DD)", http.StatusBadRequest)
		return
	}
	if spec.RangeTo, err = parseOptionalDate(req.RangeTo); err != nil {
		http.Error(w, "invalid range_to (want YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	id, err := h.repo.CreateBreak(r.Context(), spec)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, idResponse{ID: id})
}

type deactivateBreakRequest struct {
	BreakID string `json:"break_id"`
}

func (h *CalendarHandler) DeactivateBreak(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req deactivateBreakRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.BreakID = strings.TrimSpace(req.BreakID)
	if req.BreakID == "" {
		http.Error(w, "break_id required", http.StatusBadRequest)
		return
	}
	if err := h.repo.DeactivateBreak(r.Context(), req.BreakID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			http.Error(w, "break not found", http.StatusNotFound)
			return
		}
		h.logger.Error("deactivate break failed", "break_id", req.BreakID, "err", err)
		http.Error(w, "failed to deactivate break", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type createVacationRequest struct {
	SalonID string `json:"salon_id,omitempty"`
	StaffID string `json:"staff_id,omitempty"`
	From    string `json:"from"`
	To      string `json:"to"`
}

func (h *CalendarHandler) CreateVacation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req createVacationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	from, err := schedule.ParseDate(strings.TrimSpace(req.From))
	if err != nil {
		http.Error(w, "invalid from (want YYYY-MM-DD)", http.StatusBadRequest)
		return
	}
	to, err := schedule.ParseDate(strings.TrimSpace(req.To))
	if err != nil {
		http.Error(w, "invalid to (want YYYY-MM-DD)", http.StatusBadRequest)
		return
	}
	id, err := h.repo.CreateVacation(r.Context(), strings.TrimSpace(req.SalonID), strings.TrimSpace(req.StaffID), from, to)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, idResponse{ID: id})
}

type createServiceRequest struct {
	SalonID         string `json:"salon_id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
}

func (h *CalendarHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req createServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.SalonID = strings.TrimSpace(req.SalonID)
	req.Name = strings.TrimSpace(req.Name)
	if req.SalonID == "" || req.Name == "" {
		http.Error(w, "salon_id and name required", http.StatusBadRequest)
		return
	}
	id, err := h.repo.CreateService(r.Context(), req.SalonID, req.Name, req.DurationMinutes)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, idResponse{ID: id})
}

type serviceItem struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
}

func (h *CalendarHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	salonID := strings.TrimSpace(r.URL.Query().Get("salon_id"))
	if salonID == "" {
		http.Error(w, "salon_id required", http.StatusBadRequest)
		return
	}
	services, err := h.repo.ListServices(r.Context(), salonID)
	if err != nil {
		h.logger.Error("list services failed", "salon_id", salonID, "err", err)
		http.Error(w, "failed to list services", http.StatusInternalServerError)
		return
	}
	items := make([]serviceItem, 0, len(services))
	for _, svc := range services {
		items = append(items, serviceItem{ID: svc.ID, Name: svc.Name, DurationMinutes: svc.DurationMinutes})
	}
	writeJSON(w, http.StatusOK, items)
}

func parseOptionalDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	return schedule.ParseDate(raw)
}
