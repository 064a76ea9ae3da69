package transxchange

type Service struct {
	CreationDateTime     string `xml:",attr"`
	ModificationDateTime string `xml:",attr"`

	ServiceCode           string
	RegisteredOperatorRef string
	Mode                  string
	Description           string
	PublicUse             bool

	StartDate string `xml:"OperatingPeriod>StartDate"`
	EndDate   string `xml:"OperatingPeriod>EndDate"`

	OperatingProfile OperatingProfile

	Lines []Line `xml:"Lines>Line"`

	Origin      string `xml:"StandardService>Origin"`
	Destination string `xml:"StandardService>Destination"`

	JourneyPatterns []JourneyPattern `xml:"StandardService>JourneyPattern"`
}

type Line struct {
	ID       string `xml:"id,attr"`
	LineName string
}

type JourneyPattern struct {
	ID                   string `xml:"id,attr"`
	CreationDateTime     string `xml:",attr"`
	ModificationDateTime string `xml:",attr"`

	DestinationDisplay string
	Direction          string
	RouteRef           string

	// A pattern can span multiple sections, concatenated in document order.
	JourneyPatternSectionRefs []string `xml:"JourneyPatternSectionRefs"`

	VehicleTypeCode        string `xml:"Operational>VehicleType>VehicleTypeCode"`
	VehicleTypeDescription string `xml:"Operational>VehicleType>Description"`
}
