package convert

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/transitkit/transx2gtfs/pkg/bankholidays"
	"github.com/transitkit/transx2gtfs/pkg/gtfs"
	"github.com/transitkit/transx2gtfs/pkg/util"
)

// AllHolidaysSentinel covers every bank holiday without naming them.
const AllHolidaysSentinel = "AllBankHolidays"

// knownHolidays maps the symbolic TransXChange day names onto the titles
// used by the gov.uk bank holiday feed.
var knownHolidays = map[string]string{
	"SpringBank":                       "Spring bank holiday",
	"LateSummerBankHolidayNotScotland": "Summer bank holiday",
	"MayDay":                           "Early May bank holiday",
	"GoodFriday":                       "Good Friday",
	"EasterMonday":                     "Easter Monday",
	"BoxingDay":                        "Boxing Day",
	"BoxingDayHoliday":                 "Boxing Day",
	"ChristmasDay":                     "Christmas Day",
	"ChristmasDayHoliday":              "Christmas Day",
	"ChristmasEve":                     "Christmas Eve",
	"NewYearsDay":                      "New Year’s Day",
	"NewYearsDayHoliday":               "New Year’s Day",
	"NewYearsEve":                      "New Year’s Eve",
}

// BuildCalendars emits one weekly pattern record per calendar group. A
// group without a weekly pattern yields all inactive days.
func BuildCalendars(groups []CalendarGroup) []gtfs.Calendar {
	var calendars []gtfs.Calendar

	for _, group := range groups {
		calendar := gtfs.Calendar{
			ServiceID: group.ServiceID,
			Start:     group.StartDate,
			End:       group.EndDate,
		}

		flags := []*int{
			&calendar.Monday, &calendar.Tuesday, &calendar.Wednesday, &calendar.Thursday,
			&calendar.Friday, &calendar.Saturday, &calendar.Sunday,
		}
		for i, name := range weekdayNames {
			if strings.Contains(group.WeeklyPattern, name) {
				*flags[i] = 1
			}
		}

		calendars = append(calendars, calendar)
	}

	return calendars
}

// BuildCalendarDates resolves the symbolic non-operation day identifiers
// across all trips into dated removal exceptions, using one provider query
// over the union of the trips' operative windows. A missing provider or an
// empty answer produces no records.
func BuildCalendarDates(trips []*Trip, provider bankholidays.Provider) []gtfs.CalendarDate {
	var exceptionIDs []string
	var windowStart, windowEnd string

	for _, trip := range trips {
		if trip.NonOperatingDays == "" {
			continue
		}

		exceptionIDs = append(exceptionIDs, strings.Split(trip.NonOperatingDays, "|")...)

		if windowStart == "" || trip.StartDate < windowStart {
			windowStart = trip.StartDate
		}
		if windowEnd == "" || trip.EndDate > windowEnd {
			windowEnd = trip.EndDate
		}
	}

	exceptionIDs = util.RemoveDuplicateStrings(exceptionIDs, nil)

	if len(exceptionIDs) == 0 {
		return nil
	}

	for _, exceptionID := range exceptionIDs {
		if _, known := knownHolidays[exceptionID]; !known && exceptionID != AllHolidaysSentinel {
			log.Warn().Str("holiday", exceptionID).Msg("Did not recognise holiday code")
		}
	}

	dates, err := provider.DatesWithinWindow(windowStart, windowEnd)
	if err != nil {
		log.Warn().Err(err).Msg("Bank holiday provider unavailable, emitting no exceptions")
		return nil
	}

	if len(dates) == 0 {
		return nil
	}

	var calendarDates []gtfs.CalendarDate
	seenServices := map[string]bool{}

	for _, trip := range trips {
		if trip.NonOperatingDays == "" || seenServices[trip.ServiceID] {
			continue
		}
		seenServices[trip.ServiceID] = true

		for _, date := range dates {
			calendarDates = append(calendarDates, gtfs.CalendarDate{
				ServiceID:     trip.ServiceID,
				Date:          date,
				ExceptionType: gtfs.ExceptionTypeRemoved,
			})
		}
	}

	return calendarDates
}
