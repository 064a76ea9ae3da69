package transxchange

type VehicleJourney struct {
	CreationDateTime     string `xml:",attr"`
	ModificationDateTime string `xml:",attr"`
	SequenceNumber       string `xml:",attr"`

	PrivateCode        string
	OperatorRef        string
	Direction          string
	VehicleJourneyCode string
	ServiceRef         string
	LineRef            string
	JourneyPatternRef  string
	DepartureTime      string

	Frequency *Frequency

	OperatingProfile OperatingProfile
}

type Frequency struct {
	EndTime  string
	Interval *FrequencyInterval
}

type FrequencyInterval struct {
	ScheduledFrequency string
}
