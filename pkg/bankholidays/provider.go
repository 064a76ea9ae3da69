package bankholidays

import (
	"encoding/json"
	"sort"
	"time"
)

// Provider returns the bank holiday dates falling inside a date window.
// Dates are YYYYMMDD strings, returned in ascending order. An unavailable
// provider should return an empty set rather than fail the run.
type Provider interface {
	DatesWithinWindow(startDate string, endDate string) ([]string, error)
}

const (
	RegionEnglandAndWales = "england-and-wales"
	RegionScotland        = "scotland"
	RegionNorthernIreland = "northern-ireland"
)

// feedDocument mirrors the gov.uk bank-holidays.json layout.
type feedDocument map[string]feedDivision

type feedDivision struct {
	Division string      `json:"division"`
	Events   []feedEvent `json:"events"`
}

type feedEvent struct {
	Title string `json:"title"`
	Date  string `json:"date"`
}

func datesFromFeed(body []byte, region string, startDate string, endDate string) ([]string, error) {
	var document feedDocument
	if err := json.Unmarshal(body, &document); err != nil {
		return nil, err
	}

	start, err := time.Parse("20060102", startDate)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse("20060102", endDate)
	if err != nil {
		return nil, err
	}

	var dates []string
	for _, event := range document[region].Events {
		eventDate, err := time.Parse("2006-01-02", event.Date)
		if err != nil {
			continue
		}

		if eventDate.Before(start) || eventDate.After(end) {
			continue
		}

		dates = append(dates, eventDate.Format("20060102"))
	}

	sort.Strings(dates)

	return dates, nil
}
