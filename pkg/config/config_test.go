package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/transitkit/transx2gtfs/pkg/bankholidays"
)

func TestDefaults(t *testing.T) {
	config := Defaults()

	if config.Region != bankholidays.RegionEnglandAndWales {
		t.Errorf("Region = %q, want %q", config.Region, bankholidays.RegionEnglandAndWales)
	}
	if config.HolidayFeedURL != bankholidays.DefaultFeedURL {
		t.Errorf("HolidayFeedURL = %q, want %q", config.HolidayFeedURL, bankholidays.DefaultFeedURL)
	}
	if config.Offline {
		t.Error("Offline should default to false")
	}
	if config.BoardingTimeSeconds != 0 {
		t.Errorf("BoardingTimeSeconds = %d, want 0", config.BoardingTimeSeconds)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := `region: scotland
boarding_time: 30
offline: true
naptan_path: /data/stops.csv
`
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if config.Region != bankholidays.RegionScotland {
		t.Errorf("Region = %q, want scotland", config.Region)
	}
	if config.BoardingTimeSeconds != 30 {
		t.Errorf("BoardingTimeSeconds = %d, want 30", config.BoardingTimeSeconds)
	}
	if !config.Offline {
		t.Error("Offline should be true")
	}
	if config.NaPTANPath != "/data/stops.csv" {
		t.Errorf("NaPTANPath = %q", config.NaPTANPath)
	}
	// Unset keys keep their defaults
	if config.HolidayFeedURL != bankholidays.DefaultFeedURL {
		t.Errorf("HolidayFeedURL = %q, want default", config.HolidayFeedURL)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("TRANSX2GTFS_REGION", bankholidays.RegionNorthernIreland)
	t.Setenv("TRANSX2GTFS_HOLIDAY_FEED_URL", "https://example.com/holidays.json")
	t.Setenv("TRANSX2GTFS_NAPTAN_PATH", "/other/stops.csv")
	t.Setenv("TRANSX2GTFS_OFFLINE", "YES")
	t.Setenv("TRANSX2GTFS_BOARDING_TIME", "45")

	config, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if config.Region != bankholidays.RegionNorthernIreland {
		t.Errorf("Region = %q", config.Region)
	}
	if config.HolidayFeedURL != "https://example.com/holidays.json" {
		t.Errorf("HolidayFeedURL = %q", config.HolidayFeedURL)
	}
	if config.NaPTANPath != "/other/stops.csv" {
		t.Errorf("NaPTANPath = %q", config.NaPTANPath)
	}
	if !config.Offline {
		t.Error("Offline should be true")
	}
	if config.BoardingTimeSeconds != 45 {
		t.Errorf("BoardingTimeSeconds = %d, want 45", config.BoardingTimeSeconds)
	}
}

func TestHolidayProviderSelection(t *testing.T) {
	offline := Config{Region: bankholidays.RegionEnglandAndWales, Offline: true}
	if _, ok := offline.HolidayProvider().(*bankholidays.StaticProvider); !ok {
		t.Errorf("offline config should select the static provider, got %T", offline.HolidayProvider())
	}

	online := Defaults()
	if _, ok := online.HolidayProvider().(*bankholidays.GovUKProvider); !ok {
		t.Errorf("online config should select the gov.uk provider, got %T", online.HolidayProvider())
	}
}
