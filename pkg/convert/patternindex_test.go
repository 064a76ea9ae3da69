package convert

import (
	"errors"
	"testing"

	"github.com/transitkit/transx2gtfs/pkg/transxchange"
)

func TestRouteType(t *testing.T) {
	tests := []struct {
		mode string
		want int
	}{
		{"tram", 0},
		{"trolleyBus", 0},
		{"underground", 1},
		{"metro", 1},
		{"rail", 2},
		{"bus", 3},
		{"coach", 3},
		{"ferry", 4},
		{"", 3},
		{"hovercraft", 3},
	}

	for _, tt := range tests {
		if got := RouteType(tt.mode); got != tt.want {
			t.Errorf("RouteType(%q) = %d, want %d", tt.mode, got, tt.want)
		}
	}
}

func TestDirectionID(t *testing.T) {
	if got := DirectionID("inbound"); got != 0 {
		t.Errorf("DirectionID(inbound) = %d, want 0", got)
	}
	if got := DirectionID("outbound"); got != 1 {
		t.Errorf("DirectionID(outbound) = %d, want 1", got)
	}
	if got := DirectionID("sideways"); got != 1 {
		t.Errorf("DirectionID(sideways) = %d, want 1", got)
	}
}

func TestBuildPatternIndex(t *testing.T) {
	doc := &transxchange.TransXChange{
		Services: []*transxchange.Service{
			{
				ServiceCode:           "SVC1",
				RegisteredOperatorRef: "OId_ABC",
				Mode:                  "rail",
				StartDate:             "2024-01-01",
				EndDate:               "2024-12-31",
				Origin:                "High Street",
				Destination:           "Market Square",
				Lines:                 []transxchange.Line{{ID: "L1", LineName: "12"}},
				JourneyPatterns: []transxchange.JourneyPattern{
					{
						ID:                        "JP_OUT",
						Direction:                 "outbound",
						RouteRef:                  "R_1",
						JourneyPatternSectionRefs: []string{"JPS_1", "JPS_2"},
					},
					{
						ID:                        "JP_IN",
						Direction:                 "inbound",
						RouteRef:                  "R_2",
						JourneyPatternSectionRefs: []string{"JPS_3"},
					},
				},
			},
		},
	}

	index := BuildPatternIndex(doc)

	if index.Len() != 2 {
		t.Fatalf("index has %d patterns, want 2", index.Len())
	}

	outbound, err := index.Get("JP_OUT")
	if err != nil {
		t.Fatalf("Get(JP_OUT) returned error: %v", err)
	}
	if outbound.Headsign != "Market Square" {
		t.Errorf("outbound headsign = %q, want destination", outbound.Headsign)
	}
	if outbound.RouteType != 2 {
		t.Errorf("route type = %d, want 2", outbound.RouteType)
	}
	if outbound.StartDate != "20240101" || outbound.EndDate != "20241231" {
		t.Errorf("unexpected window: %s - %s", outbound.StartDate, outbound.EndDate)
	}
	if len(outbound.SectionRefs) != 2 {
		t.Errorf("section refs = %v", outbound.SectionRefs)
	}

	inbound, err := index.Get("JP_IN")
	if err != nil {
		t.Fatalf("Get(JP_IN) returned error: %v", err)
	}
	if inbound.Headsign != "High Street" {
		t.Errorf("inbound headsign = %q, want origin", inbound.Headsign)
	}
	if inbound.DirectionID != 0 {
		t.Errorf("inbound direction = %d, want 0", inbound.DirectionID)
	}

	_, err = index.Get("JP_MISSING")
	if !errors.Is(err, ErrUnresolvedPattern) {
		t.Errorf("Get(JP_MISSING) error = %v, want ErrUnresolvedPattern", err)
	}
}

func TestBuildPatternIndexDefaults(t *testing.T) {
	doc := &transxchange.TransXChange{
		Services: []*transxchange.Service{
			{
				ServiceCode: "SVC1",
				JourneyPatterns: []transxchange.JourneyPattern{
					{ID: "JP_1", Direction: "outbound"},
				},
			},
		},
	}

	index := BuildPatternIndex(doc)

	pattern, err := index.Get("JP_1")
	if err != nil {
		t.Fatal(err)
	}

	if pattern.AgencyID != DefaultAgencyID {
		t.Errorf("agency = %q, want %q", pattern.AgencyID, DefaultAgencyID)
	}
	if pattern.StartDate != defaultStartDate || pattern.EndDate != defaultEndDate {
		t.Errorf("unexpected fallback window: %s - %s", pattern.StartDate, pattern.EndDate)
	}
	if pattern.RouteType != 3 {
		t.Errorf("route type = %d, want 3", pattern.RouteType)
	}
}
