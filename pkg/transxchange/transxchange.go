package transxchange

import (
	"errors"
)

type StopShape int

const (
	StopShapeUnknown StopShape = iota
	StopShapeNaPTAN            // <AnnotatedStopPointRef> entries, coordinates come from the NaPTAN reference dataset
	StopShapeTfL               // <StopPoint> entries with inline Place>Location coordinates
)

type TransXChange struct {
	CreationDateTime     string `xml:",attr"`
	ModificationDateTime string `xml:",attr"`
	SchemaVersion        string `xml:",attr"`

	Operators              []*Operator
	Routes                 []*Route
	Services               []*Service
	JourneyPatternSections []*JourneyPatternSection
	VehicleJourneys        []*VehicleJourney

	// Exactly one of these is populated, depending on which stop point
	// shape the document uses. StopShape records which one.
	StopShape              StopShape
	StopPoints             []*StopPoint
	AnnotatedStopPointRefs []*AnnotatedStopPointRef
}

func (doc *TransXChange) Validate() error {
	if doc.CreationDateTime == "" {
		return errors.New("CreationDateTime must be set")
	}
	if doc.ModificationDateTime == "" {
		return errors.New("ModificationDateTime must be set")
	}
	if doc.SchemaVersion == "" {
		return errors.New("SchemaVersion must be set")
	}

	return nil
}
