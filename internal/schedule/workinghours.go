package schedule

import (
	"fmt"
	"time"
)

// WorkingHours describes one weekday of a staff member's schedule.
// Start/End are ignored when IsWorking is false.
type WorkingHours struct {
	Weekday   time.Weekday
	IsWorking bool
	Start     TimeOfDay
	End       TimeOfDay
}

func (wh WorkingHours) Validate() error {
	if !wh.IsWorking {
		return nil
	}
	if !wh.Start.Valid() || wh.End > MinutesPerDay {
		return fmt.Errorf("working hours out of range: %s-%s", wh.Start, wh.End)
	}
	if wh.Start >= wh.End {
		return fmt.Errorf("working hours start %s must precede end %s", wh.Start, wh.End)
	}
	return nil
}

// Window returns the workable interval, or false on a day off.
func (wh WorkingHours) Window() (Interval, bool) {
	if !wh.IsWorking {
		return Interval{}, false
	}
	return Interval{Start: wh.Start, End: wh.End}, true
}
