package schedule

import "time"

// Vacation blocks entire calendar days, From/To inclusive. Unlike a Break it
// never blocks a sub-interval.
type Vacation struct {
	From time.Time
	To   time.Time
}

func (v Vacation) Covers(date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(DateOnly(v.From)) && !d.After(DateOnly(v.To))
}
