package convert

import (
	"fmt"
)

// CalendarGroup is one shared operating calendar: the set of trips with an
// identical service reference, validity window and weekly pattern.
type CalendarGroup struct {
	ServiceID     string
	StartDate     string
	EndDate       string
	WeeklyPattern string
}

// AssignServiceIDs groups trips by their operating calendar signature and
// stamps each trip with the group's synthesized service id. Trips carrying
// no weekly pattern at all get a per service default id so they never merge
// with scheduled ones. Groups are returned in first seen order.
func AssignServiceIDs(trips []*Trip) []CalendarGroup {
	var groups []CalendarGroup
	seen := map[string]bool{}

	for _, trip := range trips {
		startDate := trip.StartDate
		if startDate == "" {
			startDate = defaultStartDate
		}
		endDate := trip.EndDate
		if endDate == "" {
			endDate = defaultEndDate
		}

		var serviceID string
		if trip.WeeklyPattern == "" {
			serviceID = fmt.Sprintf("%s_%s_%s_default", trip.ServiceRef, startDate, endDate)
		} else {
			serviceID = fmt.Sprintf("%s_%s_%s_%s", trip.ServiceRef, startDate, endDate, trip.WeeklyPattern)
		}

		trip.ServiceID = serviceID

		if !seen[serviceID] {
			seen[serviceID] = true
			groups = append(groups, CalendarGroup{
				ServiceID:     serviceID,
				StartDate:     startDate,
				EndDate:       endDate,
				WeeklyPattern: trip.WeeklyPattern,
			})
		}
	}

	return groups
}
