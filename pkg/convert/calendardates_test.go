package convert

import (
	"errors"
	"testing"

	"github.com/transitkit/transx2gtfs/pkg/gtfs"
)

type stubHolidayProvider struct {
	dates []string
	err   error

	start string
	end   string
}

func (provider *stubHolidayProvider) DatesWithinWindow(startDate, endDate string) ([]string, error) {
	provider.start = startDate
	provider.end = endDate

	return provider.dates, provider.err
}

func TestBuildCalendars(t *testing.T) {
	groups := []CalendarGroup{
		{ServiceID: "SVC1_cal", StartDate: "20240101", EndDate: "20241231", WeeklyPattern: "monday|wednesday|friday"},
		{ServiceID: "SVC1_default", StartDate: "20240101", EndDate: "20241231", WeeklyPattern: ""},
	}

	calendars := BuildCalendars(groups)

	if len(calendars) != 2 {
		t.Fatalf("got %d calendars, want 2", len(calendars))
	}

	scheduled := calendars[0]
	if scheduled.Monday != 1 || scheduled.Wednesday != 1 || scheduled.Friday != 1 {
		t.Errorf("expected monday/wednesday/friday active: %+v", scheduled)
	}
	if scheduled.Tuesday != 0 || scheduled.Thursday != 0 || scheduled.Saturday != 0 || scheduled.Sunday != 0 {
		t.Errorf("expected remaining days inactive: %+v", scheduled)
	}
	if scheduled.Start != "20240101" || scheduled.End != "20241231" {
		t.Errorf("unexpected window: %s - %s", scheduled.Start, scheduled.End)
	}

	fallback := calendars[1]
	if fallback.Monday+fallback.Tuesday+fallback.Wednesday+fallback.Thursday+fallback.Friday+fallback.Saturday+fallback.Sunday != 0 {
		t.Errorf("default calendar should have no active days: %+v", fallback)
	}
}

func TestBuildCalendarDates(t *testing.T) {
	provider := &stubHolidayProvider{dates: []string{"20240101"}}

	trips := []*Trip{
		{ServiceID: "SVC1_cal", StartDate: "20240101", EndDate: "20241231", NonOperatingDays: "NewYearsDay"},
		{ServiceID: "SVC1_cal", StartDate: "20240101", EndDate: "20241231", NonOperatingDays: "NewYearsDay"},
		{ServiceID: "SVC2_cal", StartDate: "20240201", EndDate: "20240630", NonOperatingDays: "AllBankHolidays"},
	}

	calendarDates := BuildCalendarDates(trips, provider)

	if provider.start != "20240101" || provider.end != "20241231" {
		t.Errorf("provider queried with %s - %s, want union window 20240101 - 20241231", provider.start, provider.end)
	}

	if len(calendarDates) != 2 {
		t.Fatalf("got %d calendar dates, want 2", len(calendarDates))
	}

	for _, record := range calendarDates {
		if record.Date != "20240101" {
			t.Errorf("date = %q, want 20240101", record.Date)
		}
		if record.ExceptionType != gtfs.ExceptionTypeRemoved {
			t.Errorf("exception type = %d, want %d", record.ExceptionType, gtfs.ExceptionTypeRemoved)
		}
	}

	if calendarDates[0].ServiceID == calendarDates[1].ServiceID {
		t.Errorf("expected one record per distinct service id, got duplicates for %q", calendarDates[0].ServiceID)
	}
}

func TestBuildCalendarDatesNoExceptions(t *testing.T) {
	provider := &stubHolidayProvider{dates: []string{"20240101"}}

	trips := []*Trip{
		{ServiceID: "SVC1_cal", StartDate: "20240101", EndDate: "20241231"},
	}

	if got := BuildCalendarDates(trips, provider); got != nil {
		t.Errorf("expected no calendar dates, got %+v", got)
	}
	if provider.start != "" {
		t.Error("provider should not be queried when no trip carries exceptions")
	}
}

func TestBuildCalendarDatesProviderFailure(t *testing.T) {
	provider := &stubHolidayProvider{err: errors.New("feed unreachable")}

	trips := []*Trip{
		{ServiceID: "SVC1_cal", StartDate: "20240101", EndDate: "20241231", NonOperatingDays: "ChristmasDay"},
	}

	if got := BuildCalendarDates(trips, provider); got != nil {
		t.Errorf("expected no calendar dates on provider failure, got %+v", got)
	}
}

func TestBuildCalendarDatesUnknownCodeStillResolves(t *testing.T) {
	provider := &stubHolidayProvider{dates: []string{"20241225"}}

	trips := []*Trip{
		{ServiceID: "SVC1_cal", StartDate: "20240101", EndDate: "20241231", NonOperatingDays: "SomeFutureHoliday|ChristmasDay"},
	}

	calendarDates := BuildCalendarDates(trips, provider)

	if len(calendarDates) != 1 {
		t.Fatalf("got %d calendar dates, want 1", len(calendarDates))
	}
}
