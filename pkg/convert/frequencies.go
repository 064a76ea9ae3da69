package convert

import (
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	iso8601 "github.com/senseyeio/duration"

	"github.com/transitkit/transx2gtfs/pkg/transxchange"
)

// ExpandFrequencies duplicates frequency based vehicle journeys once per
// interval step up to the frequency end time, so the materializer only ever
// sees plain scheduled journeys.
func ExpandFrequencies(journeys []*transxchange.VehicleJourney) []*transxchange.VehicleJourney {
	expanded := journeys

	for _, journey := range journeys {
		if journey.Frequency == nil || journey.Frequency.Interval == nil {
			continue
		}

		departureTime, err := time.Parse("15:04:05", journey.DepartureTime)
		if err != nil {
			log.Warn().Str("journey", journey.VehicleJourneyCode).Msg("Frequency journey has unparsable departure time")
			continue
		}

		endTime, err := time.Parse("15:04:05", journey.Frequency.EndTime)
		if err != nil {
			log.Warn().Str("journey", journey.VehicleJourneyCode).Msg("Frequency journey has unparsable end time")
			continue
		}

		interval, err := iso8601.ParseISO8601(journey.Frequency.Interval.ScheduledFrequency)
		if err != nil {
			log.Warn().Str("journey", journey.VehicleJourneyCode).Msg("Frequency journey has unparsable interval")
			continue
		}

		for newDepartureTime := interval.Shift(departureTime); newDepartureTime.Sub(endTime) <= 0; newDepartureTime = interval.Shift(newDepartureTime) {
			var copiedJourney transxchange.VehicleJourney
			err := copier.CopyWithOption(&copiedJourney, *journey, copier.Option{IgnoreEmpty: true, DeepCopy: true})
			if err != nil {
				log.Error().Err(err).Str("journey", journey.VehicleJourneyCode).Msg("Failed to copy frequency journey")
				continue
			}

			copiedJourney.DepartureTime = newDepartureTime.Format("15:04:05")
			copiedJourney.VehicleJourneyCode = fmt.Sprintf("%s-%s", copiedJourney.VehicleJourneyCode, copiedJourney.DepartureTime)
			copiedJourney.Frequency = nil

			expanded = append(expanded, &copiedJourney)
		}
	}

	return expanded
}
