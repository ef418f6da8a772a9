package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/salonsched/salonsched/internal/booking"
	"github.com/salonsched/salonsched/internal/model"
	"github.com/salonsched/salonsched/internal/observability/metrics"
	"github.com/salonsched/salonsched/internal/schedule"
	"github.com/salonsched/salonsched/internal/storage"
)

type booker interface {
	Book(ctx context.Context, date time.Time, start schedule.TimeOfDay, reqs []model.ServiceRequest, now time.Time) ([]model.Appointment, error)
}

type appointmentStore interface {
	ListForStaffDate(ctx context.Context, staffID string, date time.Time) ([]model.Appointment, error)
	Cancel(ctx context.Context, appointmentID string) (model.Appointment, error)
	MarkNoShow(ctx context.Context, appointmentID string, now time.Time) (model.Appointment, error)
}

// BookingHandler serves the write side: sequential multi-service booking,
// cancellation, and no-show flagging.
type BookingHandler struct {
	coordinator booker
	store       appointmentStore
	logger      *slog.Logger
	metrics     *metrics.Booking
	now         func() time.Time
}

func NewBookingHandler(coordinator booker, store appointmentStore, logger *slog.Logger, m *metrics.Booking) *BookingHandler {
	return &BookingHandler{
		coordinator: coordinator,
		store:       store,
		logger:      logger,
		metrics:     m,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

type bookingServiceItem struct {
	ServiceID       string `json:"service_id"`
	StaffID         string `json:"staff_id"`
	DurationMinutes int    `json:"duration_minutes"`
}

type createBookingRequest struct {
	Date     string               `json:"date"`
	Start    string               `json:"start"`
	Services []bookingServiceItem `json:"services"`
}

type appointmentItem struct {
	AppointmentID string `json:"appointment_id"`
	StaffID       string `json:"staff_id"`
	ServiceID     string `json:"service_id"`
	Date          string `json:"date"`
	Start         string `json:"start"`
	End           string `json:"end"`
	Status        string `json:"status"`
}

type conflictResponse struct {
	Error        string `json:"error"`
	ServiceIndex int    `json:"service_index"`
	ServiceID    string `json:"service_id"`
	StaffID      string `json:"staff_id"`
	Start        string `json:"start"`
	End          string `json:"end"`
	Reason       string `json:"reason"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}

	date, err := schedule.ParseDate(strings.TrimSpace(req.Date))
	if err != nil {
		http.Error(w, "invalid date (want YYYY-MM-DD)", http.StatusBadRequest)
		return
	}
	start, err := schedule.ParseTimeOfDay(strings.TrimSpace(req.Start))
	if err != nil {
		http.Error(w, "invalid start (want HH:MM)", http.StatusBadRequest)
		return
	}
	if len(req.Services) == 0 {
		http.Error(w, "at least one service is required", http.StatusBadRequest)
		return
	}

	reqs := make([]model.ServiceRequest, 0, len(req.Services))
	for _, item := range req.Services {
		reqs = append(reqs, model.ServiceRequest{
			ServiceID:       strings.TrimSpace(item.ServiceID),
			StaffID:         strings.TrimSpace(item.StaffID),
			DurationMinutes: item.DurationMinutes,
		})
	}

	began := time.Now()
	created, err := h.coordinator.Book(r.Context(), date, start, reqs, h.now())
	elapsed := time.Since(began).Seconds()
	if err != nil {
		h.writeBookingError(w, err, elapsed)
		return
	}

	h.metrics.ObserveBooking("confirmed", elapsed)
	items := make([]appointmentItem, 0, len(created))
	for _, appt := range created {
		items = append(items, toAppointmentItem(appt))
	}
	writeJSON(w, http.StatusCreated, items)
}

func (h *BookingHandler) writeBookingError(w http.ResponseWriter, err error, elapsed float64) {
	var conflict *booking.ConflictError
	switch {
	case errors.As(err, &conflict):
		h.metrics.ObserveBooking("conflict", elapsed)
		writeJSON(w, http.StatusConflict, conflictResponse{
			Error:        "requested time is no longer available",
			ServiceIndex: conflict.Index,
			ServiceID:    conflict.ServiceID,
			StaffID:      conflict.StaffID,
			Start:        conflict.Interval.Start.String(),
			End:          conflict.Interval.End.String(),
			Reason:       conflict.Reason,
		})
	case errors.Is(err, booking.ErrBusy):
		h.metrics.ObserveBooking("busy", elapsed)
		w.Header().Set("Retry-After", "1")
		http.Error(w, "booking contention, retry shortly", http.StatusServiceUnavailable)
	case errors.Is(err, booking.ErrInvalidInput):
		h.metrics.ObserveBooking("invalid", elapsed)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, storage.ErrNotFound):
		h.metrics.ObserveBooking("not_found", elapsed)
		http.Error(w, "unknown staff", http.StatusNotFound)
	default:
		h.metrics.ObserveBooking("error", elapsed)
		h.logger.Error("booking failed", "err", err)
		http.Error(w, "failed to create booking", http.StatusInternalServerError)
	}
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
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

	appts, err := h.store.ListForStaffDate(r.Context(), staffID, date)
	if err != nil {
		h.logger.Error("listing appointments failed", "staff_id", staffID, "err", err)
		http.Error(w, "failed to list appointments", http.StatusInternalServerError)
		return
	}

	items := make([]appointmentItem, 0, len(appts))
	for _, appt := range appts {
		items = append(items, toAppointmentItem(appt))
	}
	writeJSON(w, http.StatusOK, items)
}

type statusChangeRequest struct {
	AppointmentID string `json:"appointment_id"`
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.changeStatus(w, r, func(ctx context.Context, id string) (model.Appointment, error) {
		return h.store.Cancel(ctx, id)
	})
}

func (h *BookingHandler) NoShow(w http.ResponseWriter, r *http.Request) {
	h.changeStatus(w, r, func(ctx context.Context, id string) (model.Appointment, error) {
		return h.store.MarkNoShow(ctx, id, h.now())
	})
}

func (h *BookingHandler) changeStatus(w http.ResponseWriter, r *http.Request, apply func(context.Context, string) (model.Appointment, error)) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req statusChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.AppointmentID = strings.TrimSpace(req.AppointmentID)
	if req.AppointmentID == "" {
		http.Error(w, "appointment_id required", http.StatusBadRequest)
		return
	}

	appt, err := apply(r.Context(), req.AppointmentID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "appointment not found", http.StatusNotFound)
			return
		}
		if errors.Is(err, storage.ErrInvalidTransition) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		h.logger.Error("status change failed", "appointment_id", req.AppointmentID, "err", err)
		http.Error(w, "failed to update appointment", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, toAppointmentItem(appt))
}

func toAppointmentItem(appt model.Appointment) appointmentItem {
	return appointmentItem{
		AppointmentID: appt.ID,
		StaffID:       appt.StaffID,
		ServiceID:     appt.ServiceID,
		Date:          schedule.FormatDate(appt.Date),
		Start:         appt.Start.String(),
		End:           appt.End.String(),
		Status:        appt.Status,
	}
}
