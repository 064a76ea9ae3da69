package convert

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc"

	"github.com/transitkit/transx2gtfs/pkg/transxchange"
	"github.com/transitkit/transx2gtfs/pkg/util"
)

// ErrMultiDaySpan marks a journey whose running time passes a second
// midnight. The extended-hour formula only accounts for a single crossing,
// so these are dropped rather than mis-rendered.
var ErrMultiDaySpan = errors.New("journey spans more than one midnight")

// StopTimeRecord is one stop visit of a materialized trip.
type StopTimeRecord struct {
	StopRef       string
	Sequence      int
	ArrivalTime   string
	DepartureTime string
	Timepoint     bool
	RouteLinkRef  string
}

// Trip is one fully materialized vehicle journey with the denormalised
// attributes needed to assemble the output tables.
type Trip struct {
	ID                 string
	VehicleJourneyCode string
	ServiceRef         string

	AgencyID    string
	RouteID     string
	DirectionID int
	LineName    string
	RouteType   int
	Headsign    string

	VehicleTypeCode        string
	VehicleTypeDescription string

	StartDate string
	EndDate   string

	WeeklyPattern    string
	NonOperatingDays string

	// Assigned by AssignServiceIDs once the full trip set is known
	ServiceID string

	StopTimes []StopTimeRecord
}

// Materializer walks vehicle journeys against the pattern index and the
// section lookup, producing materialized trips.
type Materializer struct {
	Patterns *PatternIndex
	Sections map[string]*transxchange.JourneyPatternSection
	Services map[string]*transxchange.Service

	// Extra dwell added before each departure, zero by default
	BoardingTime time.Duration

	// All clock arithmetic happens on this arbitrary day
	ReferenceDate time.Time
}

func NewMaterializer(doc *transxchange.TransXChange, boardingTime time.Duration) *Materializer {
	sections := map[string]*transxchange.JourneyPatternSection{}
	for _, section := range doc.JourneyPatternSections {
		sections[section.ID] = section
	}

	services := map[string]*transxchange.Service{}
	for _, service := range doc.Services {
		// Parsed up front so the parallel journey walk only ever reads
		// the shared service profiles
		service.OperatingProfile.ParseXMLValue()
		services[service.ServiceCode] = service
	}

	return &Materializer{
		Patterns:      BuildPatternIndex(doc),
		Sections:      sections,
		Services:      services,
		BoardingTime:  boardingTime,
		ReferenceDate: startOfToday(),
	}
}

func startOfToday() time.Time {
	now := time.Now()

	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// MaterializeJourney produces the trip for a single vehicle journey.
// Unresolvable patterns, malformed durations and multi-day spans abort the
// journey only.
func (materializer *Materializer) MaterializeJourney(journey *transxchange.VehicleJourney) (*Trip, error) {
	pattern, err := materializer.Patterns.Get(journey.JourneyPatternRef)
	if err != nil {
		return nil, err
	}

	service := materializer.Services[journey.ServiceRef]
	if service == nil {
		return nil, fmt.Errorf("vehicle journey %s references unknown service %s", journey.VehicleJourneyCode, journey.ServiceRef)
	}

	weeklyPattern := ResolveOperatingDays(journey, service)
	nonOperatingDays := ResolveNonOperatingDays(journey, service)

	departureTime, err := time.Parse("15:04:05", journey.DepartureTime)
	if err != nil {
		return nil, fmt.Errorf("vehicle journey %s has unparsable departure time %q", journey.VehicleJourneyCode, journey.DepartureTime)
	}

	trip := &Trip{
		VehicleJourneyCode: journey.VehicleJourneyCode,
		ServiceRef:         journey.ServiceRef,

		AgencyID:    pattern.AgencyID,
		RouteID:     pattern.RouteID,
		DirectionID: pattern.DirectionID,
		LineName:    pattern.LineName,
		RouteType:   pattern.RouteType,
		Headsign:    pattern.Headsign,

		VehicleTypeCode:        pattern.VehicleTypeCode,
		VehicleTypeDescription: pattern.VehicleTypeDescription,

		StartDate: pattern.StartDate,
		EndDate:   pattern.EndDate,

		WeeklyPattern:    weeklyPattern,
		NonOperatingDays: nonOperatingDays,
	}

	clock := util.AddTimeToDate(materializer.ReferenceDate, departureTime)
	departureHour := departureTime.Hour()

	sequence := 1

	for _, sectionRef := range pattern.SectionRefs {
		section := materializer.Sections[sectionRef]
		if section == nil {
			log.Warn().Str("journey", journey.VehicleJourneyCode).Str("section", sectionRef).Msg("Referenced journey pattern section not found")
			continue
		}

		// Trip identity comes from the first matched section, the resolved
		// calendar signature and the departure minute. Distinct journeys
		// sharing all three collide; see MaterializeAll.
		if trip.ID == "" {
			trip.ID = fmt.Sprintf("%s_%s_%02d%02d", section.ID, weeklyPattern, departureTime.Hour(), departureTime.Minute())
		}

		for i := range section.JourneyPatternTimingLinks {
			link := &section.JourneyPatternTimingLinks[i]

			runTime, err := transxchange.ParseRunTime(link.RunTime)
			if err != nil {
				return nil, fmt.Errorf("vehicle journey %s link %s: %w", journey.VehicleJourneyCode, link.ID, err)
			}

			if sequence == 1 {
				// The journey's origin departs exactly at the scheduled
				// time and is the only timepoint of the trip.
				originClock, err := materializer.formatClock(clock, departureHour)
				if err != nil {
					return nil, err
				}

				trip.StopTimes = append(trip.StopTimes, StopTimeRecord{
					StopRef:       link.From.StopPointRef,
					Sequence:      sequence,
					ArrivalTime:   originClock,
					DepartureTime: originClock,
					Timepoint:     true,
					RouteLinkRef:  link.RouteLinkRef,
				})
				sequence++
			}

			clock = clock.Add(time.Duration(runTime) * time.Second)

			arrival, err := materializer.formatClock(clock, departureHour)
			if err != nil {
				return nil, err
			}

			clock = clock.Add(materializer.BoardingTime)

			departure, err := materializer.formatClock(clock, departureHour)
			if err != nil {
				return nil, err
			}

			trip.StopTimes = append(trip.StopTimes, StopTimeRecord{
				StopRef:       link.To.StopPointRef,
				Sequence:      sequence,
				ArrivalTime:   arrival,
				DepartureTime: departure,
				Timepoint:     false,
				RouteLinkRef:  link.RouteLinkRef,
			})
			sequence++
		}
	}

	return trip, nil
}

// formatClock renders a clock value as H+:MM:SS. When the walk has passed
// midnight the hour keeps counting beyond 23 so that times within a trip
// never decrease.
func (materializer *Materializer) formatClock(clock time.Time, departureHour int) (string, error) {
	if !clock.Before(materializer.ReferenceDate.AddDate(0, 0, 2)) {
		return "", fmt.Errorf("%w: %s", ErrMultiDaySpan, clock.Format(time.RFC3339))
	}

	hour := clock.Hour()

	if hour >= departureHour {
		return fmt.Sprintf("%02d:%s", hour, clock.Format("04:05")), nil
	}

	lastSecond := materializer.ReferenceDate.Add(24*time.Hour - time.Second)
	surplus := int(clock.Sub(lastSecond).Hours()) + 1

	return fmt.Sprintf("%02d:%s", 23+surplus, clock.Format("04:05")), nil
}

// MaterializeAll walks every vehicle journey, in parallel batches, and
// returns the retained trips in source order. Trips with fewer than two
// stop visits are dropped.
func (materializer *Materializer) MaterializeAll(journeys []*transxchange.VehicleJourney) []*Trip {
	if len(journeys) == 0 {
		return nil
	}

	type result struct {
		trip *Trip
		err  error
	}

	results := make([]result, len(journeys))

	maxBatchSize := int(math.Ceil(float64(len(journeys)) / float64(runtime.NumCPU())))

	var processingGroup conc.WaitGroup

	for lower := 0; lower < len(journeys); lower += maxBatchSize {
		upper := lower + maxBatchSize
		if upper > len(journeys) {
			upper = len(journeys)
		}

		lower := lower
		batch := journeys[lower:upper]

		processingGroup.Go(func() {
			for i, journey := range batch {
				trip, err := materializer.MaterializeJourney(journey)
				results[lower+i] = result{trip: trip, err: err}
			}
		})
	}

	processingGroup.Wait()

	seenTripIDs := map[string]string{}

	var trips []*Trip
	for i, outcome := range results {
		journey := journeys[i]

		if outcome.err != nil {
			log.Warn().Err(outcome.err).Str("journey", journey.VehicleJourneyCode).Msg("Skipping vehicle journey")
			continue
		}

		trip := outcome.trip

		if len(trip.StopTimes) < 2 {
			log.Warn().Str("trip", trip.ID).Str("journey", journey.VehicleJourneyCode).Msg("Trip does not include a sequence of stops, excluding from output")
			continue
		}

		if previous, collision := seenTripIDs[trip.ID]; collision {
			log.Warn().Str("trip", trip.ID).Str("journey", journey.VehicleJourneyCode).Str("previous", previous).Msg("Trip id collision")
		}
		seenTripIDs[trip.ID] = journey.VehicleJourneyCode

		trips = append(trips, trip)
	}

	return trips
}
