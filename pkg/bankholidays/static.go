package bankholidays

import (
	_ "embed"
)

// Bundled snapshot of the gov.uk feed, used when the network feed is
// unavailable or the run is explicitly offline.
//
//go:embed data/bank-holidays.json
var staticFeed []byte

// StaticProvider serves bank holiday dates from the bundled snapshot.
type StaticProvider struct {
	Region string
}

func NewStaticProvider(region string) *StaticProvider {
	return &StaticProvider{Region: region}
}

func (provider *StaticProvider) DatesWithinWindow(startDate string, endDate string) ([]string, error) {
	return datesFromFeed(staticFeed, provider.Region, startDate, endDate)
}
