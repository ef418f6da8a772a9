//go:build protogen

package rules

import (
	"context"
	"time"

	"github.com/salonsched/salonsched/internal/schedule"
	"github.com/salonsched/salonsched/libs/grpcx"
	calendarv1 "github.com/salonsched/salonsched/protos/gen/calendar/v1"
)

// grpcProvider fetches calendar rules from a remote salon-management service.
// Built only with -tags protogen after the proto stubs are generated.
type grpcProvider struct {
	client calendarv1.CalendarServiceClient
}

func NewRemoteProvider(addr string) (Provider, error) {
	if addr == "" {
		return nil, nil
	}
	conn, err := grpcx.Dial(context.Background(), addr, grpcx.DialOptions{Timeout: 3 * time.Second})
	if err != nil {
		return nil, err
	}
	return &grpcProvider{client: calendarv1.NewCalendarServiceClient(conn)}, nil
}

func (p *grpcProvider) StaffCalendar(ctx context.Context, staffID string, date time.Time) (Calendar, error) {
	resp, err := p.client.GetStaffCalendar(ctx, &calendarv1.StaffCalendarRequest{
		StaffId: staffID,
		Date:    schedule.FormatDate(date),
	})
	if err != nil {
		return Calendar{}, err
	}

	cal := Calendar{
		Hours: schedule.WorkingHours{
			Weekday:   date.Weekday(),
			IsWorking: resp.GetIsWorking(),
			Start:     schedule.TimeOfDay(resp.GetStartMinute()),
			End:       schedule.TimeOfDay(resp.GetEndMinute()),
		},
	}
	for _, b := range resp.GetBreaks() {
		br, err := schedule.NewBreak(
			b.GetKind(),
			schedule.Interval{
				Start: schedule.TimeOfDay(b.GetStartMinute()),
				End:   schedule.TimeOfDay(b.GetEndMinute()),
			},
			schedule.WeekdaySet(b.GetWeeklyDays()),
			asDate(b.GetSpecificDate()),
			asDate(b.GetRangeStart()),
			asDate(b.GetRangeEnd()),
		)
		if err != nil {
			return Calendar{}, err
		}
		cal.Breaks = append(cal.Breaks, br)
	}
	for _, v := range resp.GetVacations() {
		cal.Vacations = append(cal.Vacations, schedule.Vacation{
			From: asDate(v.GetStartDate()),
			To:   asDate(v.GetEndDate()),
		})
	}
	return cal, nil
}

func asDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	d, err := schedule.ParseDate(s)
	if err != nil {
		return time.Time{}
	}
	return d
}
