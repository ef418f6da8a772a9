package availability

import "github.com/salonsched/salonsched/internal/schedule"

// DefaultStepMinutes is the slot grid granularity used when the caller does
// not specify one.
const DefaultStepMinutes = 30

// Slots generates the candidate start-time grid for one day of working
// hours: every step from opening up to (but excluding) closing. It is a pure
// function; filtering against blocked time happens in the engine.
func Slots(hours schedule.WorkingHours, stepMinutes int) []schedule.TimeOfDay {
	window, ok := hours.Window()
	if !ok {
		return nil
	}
	if stepMinutes <= 0 {
		stepMinutes = DefaultStepMinutes
	}

	var out []schedule.TimeOfDay
	for t := window.Start; t < window.End; t = t.Add(stepMinutes) {
		out = append(out, t)
	}
	return out
}
