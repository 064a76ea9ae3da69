package convert

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/transitkit/transx2gtfs/pkg/transxchange"
	"github.com/transitkit/transx2gtfs/pkg/util"
)

// ErrCalendarResolution is returned when an operating profile's day
// designation cannot be normalised. Treated as "no schedule", never fatal.
var ErrCalendarResolution = errors.New("unresolvable operating days")

var weekdayNames = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// DaySet is the canonical weekly operating pattern, monday first.
type DaySet [7]bool

// String renders the set in the canonical form used for calendar grouping:
// lowercase day names in calendar order, pipe separated.
func (days DaySet) String() string {
	var names []string
	for i, active := range days {
		if active {
			names = append(names, weekdayNames[i])
		}
	}

	return strings.Join(names, "|")
}

// Contains reports whether the named day is active.
func (days DaySet) Contains(day string) bool {
	for i, name := range weekdayNames {
		if name == day {
			return days[i]
		}
	}

	return false
}

// ParseDaySet normalises a weekly day designation into a DaySet. Accepted
// forms: "Weekend", an inclusive "MondayToFriday" style range, a pipe
// separated list, or a single day name. Ranges never wrap around the week.
func ParseDaySet(dayinfo string) (DaySet, error) {
	var days DaySet

	trimmed := strings.TrimSpace(dayinfo)
	if trimmed == "" {
		return days, fmt.Errorf("%w: empty designation", ErrCalendarResolution)
	}

	if strings.Contains(strings.ToLower(trimmed), "weekend") {
		days[5] = true
		days[6] = true
		return days, nil
	}

	if strings.Contains(trimmed, "To") {
		dayRange := strings.SplitN(trimmed, "To", 2)

		start, err := weekdayIndex(dayRange[0])
		if err != nil {
			return days, err
		}
		end, err := weekdayIndex(dayRange[1])
		if err != nil {
			return days, err
		}

		if start > end {
			return days, fmt.Errorf("%w: range %q is reversed", ErrCalendarResolution, trimmed)
		}

		for i := start; i <= end; i++ {
			days[i] = true
		}
		return days, nil
	}

	if strings.Contains(trimmed, "|") {
		for _, day := range strings.Split(trimmed, "|") {
			i, err := weekdayIndex(day)
			if err != nil {
				return days, err
			}
			days[i] = true
		}
		return days, nil
	}

	i, err := weekdayIndex(trimmed)
	if err != nil {
		return days, err
	}
	days[i] = true

	return days, nil
}

func weekdayIndex(day string) (int, error) {
	normalised := strings.ToLower(strings.TrimSpace(day))
	for i, name := range weekdayNames {
		if name == normalised {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown day %q", ErrCalendarResolution, day)
}

// NormalizeWeeklyPattern converts any accepted day designation into the
// canonical pattern string, so that semantically identical designations
// always compare equal downstream.
func NormalizeWeeklyPattern(dayinfo string) (string, error) {
	days, err := ParseDaySet(dayinfo)
	if err != nil {
		return "", err
	}

	return days.String(), nil
}

// ResolveOperatingDays returns the canonical weekly pattern for a vehicle
// journey: the journey's own operating profile wins, then the service's
// defaults, then empty meaning no explicit schedule was found.
func ResolveOperatingDays(journey *transxchange.VehicleJourney, service *transxchange.Service) string {
	for _, profile := range []*transxchange.OperatingProfile{&journey.OperatingProfile, &service.OperatingProfile} {
		if profile.Empty() {
			continue
		}

		profile.ParseXMLValue()
		if len(profile.RegularDayType) == 0 {
			continue
		}

		pattern, err := NormalizeWeeklyPattern(strings.Join(profile.RegularDayType, "|"))
		if err != nil {
			log.Warn().Err(err).Str("journey", journey.VehicleJourneyCode).Msg("Failed to resolve operating days")
			return ""
		}

		return pattern
	}

	return ""
}

// ResolveNonOperatingDays returns the pipe joined symbolic bank holiday
// identifiers on which the journey does not run, using the journey's
// operating profile with the service's as fallback.
func ResolveNonOperatingDays(journey *transxchange.VehicleJourney, service *transxchange.Service) string {
	for _, profile := range []*transxchange.OperatingProfile{&journey.OperatingProfile, &service.OperatingProfile} {
		if profile.Empty() {
			continue
		}

		profile.ParseXMLValue()
		if len(profile.BankHolidayNonOperation) == 0 {
			continue
		}

		return strings.Join(util.RemoveDuplicateStrings(profile.BankHolidayNonOperation, nil), "|")
	}

	return ""
}
