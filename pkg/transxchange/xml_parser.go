package transxchange

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/html/charset"
)

func ParseXMLFile(reader io.Reader) (*TransXChange, error) {
	transXChange := TransXChange{}

	d := xml.NewDecoder(reader)
	d.CharsetReader = charset.NewReaderLabel
	for {
		tok, err := d.Token()
		if tok == nil || err == io.EOF {
			// EOF means we're done.
			break
		} else if err != nil {
			return nil, fmt.Errorf("error decoding token: %w", err)
		}

		switch ty := tok.(type) {
		case xml.StartElement:
			if ty.Name.Local == "TransXChange" {
				for i := 0; i < len(ty.Attr); i++ {
					attr := ty.Attr[i]

					switch attr.Name.Local {
					case "CreationDateTime":
						transXChange.CreationDateTime = attr.Value
					case "ModificationDateTime":
						transXChange.ModificationDateTime = attr.Value
					case "SchemaVersion":
						transXChange.SchemaVersion = attr.Value
					}
				}

				validate := transXChange.Validate()
				if validate != nil {
					return nil, validate
				}
			} else if ty.Name.Local == "StopPoint" {
				var stopPoint StopPoint

				if err = d.DecodeElement(&stopPoint, &ty); err != nil {
					return nil, fmt.Errorf("error decoding StopPoint: %w", err)
				}

				transXChange.StopShape = StopShapeTfL
				transXChange.StopPoints = append(transXChange.StopPoints, &stopPoint)
			} else if ty.Name.Local == "AnnotatedStopPointRef" {
				var stopPointRef AnnotatedStopPointRef

				if err = d.DecodeElement(&stopPointRef, &ty); err != nil {
					return nil, fmt.Errorf("error decoding AnnotatedStopPointRef: %w", err)
				}

				transXChange.StopShape = StopShapeNaPTAN
				transXChange.AnnotatedStopPointRefs = append(transXChange.AnnotatedStopPointRefs, &stopPointRef)
			} else if ty.Name.Local == "Operator" || ty.Name.Local == "LicensedOperator" {
				var operator Operator

				if err = d.DecodeElement(&operator, &ty); err != nil {
					return nil, fmt.Errorf("error decoding Operator: %w", err)
				}

				transXChange.Operators = append(transXChange.Operators, &operator)
			} else if ty.Name.Local == "Route" {
				var route Route

				if err = d.DecodeElement(&route, &ty); err != nil {
					return nil, fmt.Errorf("error decoding Route: %w", err)
				}

				transXChange.Routes = append(transXChange.Routes, &route)
			} else if ty.Name.Local == "Service" {
				var service Service

				if err = d.DecodeElement(&service, &ty); err != nil {
					return nil, fmt.Errorf("error decoding Service: %w", err)
				}

				transXChange.Services = append(transXChange.Services, &service)
			} else if ty.Name.Local == "JourneyPatternSection" {
				var jps JourneyPatternSection

				if err = d.DecodeElement(&jps, &ty); err != nil {
					return nil, fmt.Errorf("error decoding JourneyPatternSection: %w", err)
				}

				transXChange.JourneyPatternSections = append(transXChange.JourneyPatternSections, &jps)
			} else if ty.Name.Local == "VehicleJourney" {
				var vehicleJourney VehicleJourney

				if err = d.DecodeElement(&vehicleJourney, &ty); err != nil {
					return nil, fmt.Errorf("error decoding VehicleJourney: %w", err)
				}

				transXChange.VehicleJourneys = append(transXChange.VehicleJourneys, &vehicleJourney)
			}
		default:
		}
	}

	log.Debug().Msg("Successfully parsed document")
	log.Debug().Msgf(" - Last modified %s", transXChange.ModificationDateTime)
	log.Debug().Msgf(" - Contains %d operators", len(transXChange.Operators))
	log.Debug().Msgf(" - Contains %d services", len(transXChange.Services))
	log.Debug().Msgf(" - Contains %d routes", len(transXChange.Routes))
	log.Debug().Msgf(" - Contains %d journey pattern sections", len(transXChange.JourneyPatternSections))
	log.Debug().Msgf(" - Contains %d vehicle journeys", len(transXChange.VehicleJourneys))

	return &transXChange, nil
}
