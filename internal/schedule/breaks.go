package schedule

import (
	"fmt"
	"strings"
	"time"
)

// Break is a recurring or one-off sub-day blackout on a staff or salon
// calendar. Each kind answers whether it applies on a given calendar date;
// the blocked clock window is the same on every day the break applies.
type Break interface {
	AppliesOn(date time.Time) bool
	Span() Interval
}

// DailyBreak applies every day (a lunch hour, cleaning slot, and so on).
type DailyBreak struct {
	Window Interval
}

func (b DailyBreak) AppliesOn(time.Time) bool { return true }
func (b DailyBreak) Span() Interval           { return b.Window }

// WeekdaySet is a bitmask over time.Weekday (bit 0 = Sunday).
type WeekdaySet uint8

func Weekdays(days ...time.Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s |= 1 << uint(d)
	}
	return s
}

func (s WeekdaySet) Has(d time.Weekday) bool {
	return s&(1<<uint(d)) != 0
}

func (s WeekdaySet) String() string {
	names := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	var out []string
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Has(d) {
			out = append(out, names[d])
		}
	}
	return strings.Join(out, ",")
}

// WeeklyBreak applies on the listed weekdays.
type WeeklyBreak struct {
	Window Interval
	Days   WeekdaySet
}

func (b WeeklyBreak) AppliesOn(date time.Time) bool { return b.Days.Has(date.Weekday()) }
func (b WeeklyBreak) Span() Interval                { return b.Window }

// SpecificDateBreak applies on exactly one calendar date.
type SpecificDateBreak struct {
	Window Interval
	Date   time.Time
}

func (b SpecificDateBreak) AppliesOn(date time.Time) bool { return SameDay(b.Date, date) }
func (b SpecificDateBreak) Span() Interval                { return b.Window }

// DateRangeBreak applies on every date of an inclusive range.
type DateRangeBreak struct {
	Window Interval
	From   time.Time
	To     time.Time
}

func (b DateRangeBreak) AppliesOn(date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(DateOnly(b.From)) && !d.After(DateOnly(b.To))
}

func (b DateRangeBreak) Span() Interval { return b.Window }

// Break kinds as persisted.
const (
	BreakKindDaily        = "daily"
	BreakKindWeekly       = "weekly"
	BreakKindSpecificDate = "specific_date"
	BreakKindDateRange    = "date_range"
)

// NewBreak builds the concrete break for a stored row. Inactive rows are
// filtered before this point.
func NewBreak(kind string, window Interval, days WeekdaySet, specificDate time.Time, rangeFrom, rangeTo time.Time) (Break, error) {
	if !window.Valid() {
		return nil, fmt.Errorf("break window %s invalid", window)
	}
	switch kind {
	case BreakKindDaily:
		return DailyBreak{Window: window}, nil
	case BreakKindWeekly:
		if days == 0 {
			return nil, fmt.Errorf("weekly break has no weekdays")
		}
		return WeeklyBreak{Window: window, Days: days}, nil
	case BreakKindSpecificDate:
		if specificDate.IsZero() {
			return nil, fmt.Errorf("specific-date break has no date")
		}
		return SpecificDateBreak{Window: window, Date: specificDate}, nil
	case BreakKindDateRange:
		if rangeFrom.IsZero() || rangeTo.IsZero() || DateOnly(rangeTo).Before(DateOnly(rangeFrom)) {
			return nil, fmt.Errorf("date-range break has invalid range")
		}
		return DateRangeBreak{Window: window, From: rangeFrom, To: rangeTo}, nil
	default:
		return nil, fmt.Errorf("unknown break kind %q", kind)
	}
}
