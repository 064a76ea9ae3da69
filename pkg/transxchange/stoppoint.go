package transxchange

// StopPoint is the TfL-style stop definition carrying its own coordinates.
type StopPoint struct {
	CreationDateTime     string `xml:",attr"`
	ModificationDateTime string `xml:",attr"`
	Status               string `xml:",attr"`

	AtcoCode   string
	NaptanCode string

	CommonName string `xml:"Descriptor>CommonName"`

	Longitude float64 `xml:"Place>Location>Longitude"`
	Latitude  float64 `xml:"Place>Location>Latitude"`
}

// AnnotatedStopPointRef is the NaPTAN-style stop reference; coordinates
// are resolved against the external NaPTAN dataset.
type AnnotatedStopPointRef struct {
	StopPointRef string
	CommonName   string
}
