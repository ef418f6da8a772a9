package schedule

import "sort"

// Interval is a half-open [Start, End) range within one day. An interval
// ending exactly when another starts does not overlap it.
type Interval struct {
	Start TimeOfDay
	End   TimeOfDay
}

func (iv Interval) Valid() bool {
	return iv.Start.Valid() && iv.End > iv.Start && iv.End <= MinutesPerDay
}

func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && other.Start < iv.End
}

func (iv Interval) Contains(t TimeOfDay) bool {
	return t >= iv.Start && t < iv.End
}

func (iv Interval) String() string {
	return iv.Start.String() + "-" + iv.End.String()
}

// MergeIntervals unions overlapping or adjacent intervals and returns the
// sorted, disjoint result. The input slice is not modified.
func MergeIntervals(ivs []Interval) []Interval {
	if len(ivs) == 0 {
		return nil
	}
	sorted := make([]Interval, len(ivs))
	copy(sorted, ivs)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	merged := []Interval{sorted[0]}
	for _, iv := range sorted[1:] {
		last := &merged[len(merged)-1]
		if iv.Start <= last.End {
			if iv.End > last.End {
				last.End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}
