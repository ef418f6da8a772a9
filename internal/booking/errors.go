package booking

import (
	"errors"
	"fmt"

	"github.com/salonsched/salonsched/internal/schedule"
)

var (
	// ErrInvalidInput covers malformed booking requests: empty service
	// chains, non-positive durations, out-of-range times. Never retried.
	ErrInvalidInput = errors.New("booking: invalid input")

	// ErrBusy means the staff locks could not be acquired within the bound;
	// callers may retry with backoff.
	ErrBusy = errors.New("booking: lock wait timed out, retry")
)

// ConflictError reports which service of a chain collided at commit time.
// It is the expected failure mode under contention, distinct from
// infrastructure errors.
type ConflictError struct {
	Index     int
	ServiceID string
	StaffID   string
	Interval  schedule.Interval
	Reason    string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("booking: service %s (position %d) conflicts for staff %s at %s: %s",
		e.ServiceID, e.Index, e.StaffID, e.Interval, e.Reason)
}

// IsConflict reports whether err is a booking conflict.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
