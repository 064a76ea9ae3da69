package convert

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/transitkit/transx2gtfs/pkg/gtfs"
	"github.com/transitkit/transx2gtfs/pkg/naptan"
	"github.com/transitkit/transx2gtfs/pkg/transxchange"
)

// Fixed operator website lookup, keyed by the operator id used in the
// London TransXChange exports.
var operatorURLs = map[string]string{
	"OId_LUL": "https://tfl.gov.uk/maps/track/tube",
	"OId_DLR": "https://tfl.gov.uk/modes/dlr/",
	"OId_TRS": "https://www.thamesriverservices.co.uk/",
	"OId_CCR": "https://www.citycruises.com/",
	"OId_CV":  "https://www.thamesclippers.com/",
	"OId_WFF": "https://tfl.gov.uk/modes/river/woolwich-ferry",
	"OId_TCL": "https://tfl.gov.uk/modes/trams/",
	"OId_EAL": "https://www.emiratesairline.co.uk/",
}

// BuildAgencies extracts the agency table from the document operators.
func BuildAgencies(doc *transxchange.TransXChange) []gtfs.Agency {
	var agencies []gtfs.Agency

	if len(doc.Operators) == 0 {
		log.Warn().Msg("Document contains no operators, using default agency")

		return []gtfs.Agency{{
			ID:       DefaultAgencyID,
			Name:     "Unknown Operator",
			URL:      "NA",
			Timezone: "Europe/London",
			Language: "en",
		}}
	}

	for _, operator := range doc.Operators {
		agencyID := operator.ID
		if agencyID == "" {
			log.Warn().Msg("Operator has no id attribute, using default agency id")
			agencyID = DefaultAgencyID
		}

		agencyName := operator.OperatorNameOnLicence
		if agencyName == "" {
			agencyName = operator.OperatorShortName
		}
		if agencyName == "" {
			agencyName = operator.TradingName
		}
		if agencyName == "" {
			agencyName = "Unknown Operator"
		}

		agencyURL := operatorURLs[agencyID]
		if agencyURL == "" {
			agencyURL = "NA"
		}

		agencies = append(agencies, gtfs.Agency{
			ID:       agencyID,
			Name:     agencyName,
			URL:      agencyURL,
			Timezone: "Europe/London",
			Language: "en",
		})
	}

	return agencies
}

// BuildRoutes extracts the route table, joining each route back to the
// agency and route type its journey patterns resolved to.
func BuildRoutes(doc *transxchange.TransXChange, patterns *PatternIndex) []gtfs.Route {
	type routeAttributes struct {
		agencyID  string
		routeType int
	}

	attributesByRoute := map[string]routeAttributes{}
	for _, pattern := range patterns.patterns {
		attributesByRoute[pattern.RouteID] = routeAttributes{
			agencyID:  pattern.AgencyID,
			routeType: pattern.RouteType,
		}
	}

	var routes []gtfs.Route

	for _, route := range doc.Routes {
		attributes, found := attributesByRoute[route.ID]
		if !found {
			log.Warn().Str("route", route.ID).Msg("No journey pattern references route, using default agency")
			attributes = routeAttributes{agencyID: DefaultAgencyID, routeType: RouteType("")}
		}

		// The private code doubles as the short name, with an optional
		// "-_-" suffixed qualifier
		shortName := strings.SplitN(route.PrivateCode, "-_-", 2)[0]

		routes = append(routes, gtfs.Route{
			ID:        route.ID,
			AgencyID:  attributes.agencyID,
			ShortName: shortName,
			LongName:  route.Description,
			Type:      attributes.routeType,
		})
	}

	return routes
}

// BuildStops resolves every stop referenced by the materialized trips into
// a stop record. TfL shaped documents carry coordinates inline; NaPTAN
// shaped ones are resolved against the stop reference dataset.
func BuildStops(doc *transxchange.TransXChange, trips []*Trip, reference *naptan.StopReference) []gtfs.Stop {
	var usedRefs []string
	seen := map[string]bool{}

	for _, trip := range trips {
		for _, stopTime := range trip.StopTimes {
			if !seen[stopTime.StopRef] {
				seen[stopTime.StopRef] = true
				usedRefs = append(usedRefs, stopTime.StopRef)
			}
		}
	}

	if doc.StopShape == transxchange.StopShapeTfL {
		return buildInlineStops(doc, usedRefs)
	}

	return buildReferencedStops(doc, usedRefs, reference)
}

func buildInlineStops(doc *transxchange.TransXChange, usedRefs []string) []gtfs.Stop {
	stopPoints := map[string]*transxchange.StopPoint{}
	for _, stopPoint := range doc.StopPoints {
		stopPoints[stopPoint.AtcoCode] = stopPoint
	}

	var stops []gtfs.Stop

	for _, stopRef := range usedRefs {
		stopPoint := stopPoints[stopRef]
		if stopPoint == nil {
			log.Warn().Str("stop", stopRef).Msg("Referenced stop point not defined in document")
			continue
		}

		stops = append(stops, gtfs.Stop{
			ID:        stopRef,
			Name:      stopPoint.CommonName,
			Latitude:  stopPoint.Latitude,
			Longitude: stopPoint.Longitude,
		})
	}

	return stops
}

func buildReferencedStops(doc *transxchange.TransXChange, usedRefs []string, reference *naptan.StopReference) []gtfs.Stop {
	annotatedNames := map[string]string{}
	for _, stopPointRef := range doc.AnnotatedStopPointRefs {
		annotatedNames[stopPointRef.StopPointRef] = stopPointRef.CommonName
	}

	var stops []gtfs.Stop

	for _, stopRef := range usedRefs {
		if reference != nil {
			if record := reference.Get(stopRef); record != nil {
				stops = append(stops, gtfs.Stop{
					ID:        stopRef,
					Name:      record.CommonName,
					Latitude:  record.Latitude,
					Longitude: record.Longitude,
				})
				continue
			}
		}

		name, annotated := annotatedNames[stopRef]
		if !annotated {
			log.Warn().Str("stop", stopRef).Msg("Stop not found in NaPTAN reference or document, excluding")
			continue
		}

		log.Warn().Str("stop", stopRef).Msg("Stop not found in NaPTAN reference, emitting without coordinates")
		stops = append(stops, gtfs.Stop{
			ID:   stopRef,
			Name: name,
		})
	}

	return stops
}
