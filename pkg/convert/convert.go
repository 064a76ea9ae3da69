package convert

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/transitkit/transx2gtfs/pkg/bankholidays"
	"github.com/transitkit/transx2gtfs/pkg/gtfs"
	"github.com/transitkit/transx2gtfs/pkg/naptan"
	"github.com/transitkit/transx2gtfs/pkg/transxchange"
)

// Options configures one conversion run.
type Options struct {
	BoardingTime time.Duration

	HolidayProvider bankholidays.Provider

	// Optional; NaPTAN shaped documents emit degraded stops without it
	StopReference *naptan.StopReference
}

// Convert materializes one parsed TransXChange document into a complete
// GTFS feed. The document is processed fully in memory; empty output
// tables are a valid result.
func Convert(doc *transxchange.TransXChange, options Options) *gtfs.Feed {
	materializer := NewMaterializer(doc, options.BoardingTime)

	journeys := ExpandFrequencies(doc.VehicleJourneys)

	trips := materializer.MaterializeAll(journeys)

	groups := AssignServiceIDs(trips)

	feed := &gtfs.Feed{
		Agencies:  BuildAgencies(doc),
		Stops:     BuildStops(doc, trips, options.StopReference),
		Routes:    BuildRoutes(doc, materializer.Patterns),
		Calendars: BuildCalendars(groups),
	}

	if options.HolidayProvider != nil {
		feed.CalendarDates = BuildCalendarDates(trips, options.HolidayProvider)
	}

	seenTrips := map[string]bool{}
	for _, trip := range trips {
		if !seenTrips[trip.ID] {
			seenTrips[trip.ID] = true
			feed.Trips = append(feed.Trips, gtfs.Trip{
				RouteID:     trip.RouteID,
				ServiceID:   trip.ServiceID,
				ID:          trip.ID,
				Headsign:    trip.Headsign,
				DirectionID: trip.DirectionID,
			})
		}

		for _, stopTime := range trip.StopTimes {
			timepoint := 0
			if stopTime.Timepoint {
				timepoint = 1
			}

			feed.StopTimes = append(feed.StopTimes, gtfs.StopTime{
				TripID:        trip.ID,
				ArrivalTime:   stopTime.ArrivalTime,
				DepartureTime: stopTime.DepartureTime,
				StopID:        stopTime.StopRef,
				StopSequence:  stopTime.Sequence,
				Timepoint:     timepoint,
			})
		}
	}

	log.Info().
		Int("trips", len(feed.Trips)).
		Int("stopTimes", len(feed.StopTimes)).
		Int("calendars", len(feed.Calendars)).
		Int("calendarDates", len(feed.CalendarDates)).
		Msg("Materialized document")

	return feed
}
