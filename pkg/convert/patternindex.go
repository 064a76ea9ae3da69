package convert

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/transitkit/transx2gtfs/pkg/transxchange"
)

// ErrUnresolvedPattern is returned when a vehicle journey references a
// journey pattern that no service defines. The journey is skipped, not the run.
var ErrUnresolvedPattern = errors.New("unresolved journey pattern")

const (
	DefaultAgencyID  = "UNKNOWN_AGENCY"
	defaultStartDate = "19700101"
	defaultEndDate   = "20991231"
)

// RouteType maps a TransXChange travel mode onto the GTFS route_type
// enumeration. Unknown or absent modes fall back to bus to keep the feed valid.
func RouteType(mode string) int {
	switch mode {
	case "tram", "trolleyBus":
		return 0
	case "underground", "metro":
		return 1
	case "rail":
		return 2
	case "bus", "coach":
		return 3
	case "ferry":
		return 4
	}

	return 3
}

// DirectionID maps inbound/outbound onto the GTFS direction_id values.
func DirectionID(direction string) int {
	switch direction {
	case "inbound":
		return 0
	case "outbound":
		return 1
	}

	log.Warn().Str("direction", direction).Msg("Unrecognised journey pattern direction, assuming outbound")
	return 1
}

// PatternAttributes is the resolved view of one journey pattern, carrying
// everything a materialized trip denormalises.
type PatternAttributes struct {
	ServiceCode string
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

	SectionRefs []string
}

type PatternIndex struct {
	patterns map[string]*PatternAttributes
}

func (index *PatternIndex) Get(journeyPatternRef string) (*PatternAttributes, error) {
	pattern := index.patterns[journeyPatternRef]
	if pattern == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnresolvedPattern, journeyPatternRef)
	}

	return pattern, nil
}

func (index *PatternIndex) Len() int {
	return len(index.patterns)
}

// BuildPatternIndex resolves every journey pattern of every service in the
// document into its denormalised attribute set.
func BuildPatternIndex(doc *transxchange.TransXChange) *PatternIndex {
	index := &PatternIndex{patterns: map[string]*PatternAttributes{}}

	for _, service := range doc.Services {
		agencyID := service.RegisteredOperatorRef
		if agencyID == "" {
			log.Warn().Str("service", service.ServiceCode).Msg("Service has no registered operator, using default agency")
			agencyID = DefaultAgencyID
		}

		var lineName string
		if len(service.Lines) > 0 {
			lineName = service.Lines[0].LineName
		}

		startDate := convertOperatingDate(service.StartDate, defaultStartDate, service.ServiceCode)
		endDate := convertOperatingDate(service.EndDate, defaultEndDate, service.ServiceCode)

		routeType := RouteType(service.Mode)

		for i := range service.JourneyPatterns {
			journeyPattern := &service.JourneyPatterns[i]

			directionID := DirectionID(journeyPattern.Direction)

			// The origin and destination labels are fixed per service;
			// inbound trips head back towards the origin.
			headsign := service.Destination
			if directionID == 0 {
				headsign = service.Origin
			}

			index.patterns[journeyPattern.ID] = &PatternAttributes{
				ServiceCode: service.ServiceCode,
				AgencyID:    agencyID,
				RouteID:     journeyPattern.RouteRef,
				DirectionID: directionID,
				LineName:    lineName,
				RouteType:   routeType,
				Headsign:    headsign,

				VehicleTypeCode:        journeyPattern.VehicleTypeCode,
				VehicleTypeDescription: journeyPattern.VehicleTypeDescription,

				StartDate: startDate,
				EndDate:   endDate,

				SectionRefs: journeyPattern.JourneyPatternSectionRefs,
			}
		}
	}

	return index
}

func convertOperatingDate(value string, fallback string, serviceCode string) string {
	if value == "" {
		return fallback
	}

	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		log.Warn().Str("service", serviceCode).Str("date", value).Msg("Unparsable operating period date, using default")
		return fallback
	}

	return parsed.Format("20060102")
}
