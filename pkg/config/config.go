package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/transitkit/transx2gtfs/pkg/bankholidays"
	"github.com/transitkit/transx2gtfs/pkg/util"
)

// Config holds the converter options. Values come from an optional yaml
// file, overridden by TRANSX2GTFS_* environment variables.
type Config struct {
	// Bank holiday region, one of the gov.uk feed divisions
	Region string `yaml:"region"`

	// Extra dwell added to each stop departure, in seconds
	BoardingTimeSeconds int `yaml:"boarding_time"`

	HolidayFeedURL string `yaml:"holiday_feed_url"`

	// Use the bundled bank holiday snapshot instead of the network feed
	Offline bool `yaml:"offline"`

	// Path to the NaPTAN stops CSV export
	NaPTANPath string `yaml:"naptan_path"`
}

func Defaults() Config {
	return Config{
		Region:         bankholidays.RegionEnglandAndWales,
		HolidayFeedURL: bankholidays.DefaultFeedURL,
	}
}

func Load(path string) (Config, error) {
	config := Defaults()

	if path != "" {
		contents, err := os.ReadFile(path)
		if err != nil {
			return config, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(contents, &config); err != nil {
			return config, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	config.applyEnvironment(util.GetEnvironmentVariables())

	return config, nil
}

func (config *Config) applyEnvironment(env map[string]string) {
	if value := env["TRANSX2GTFS_REGION"]; value != "" {
		config.Region = value
	}
	if value := env["TRANSX2GTFS_HOLIDAY_FEED_URL"]; value != "" {
		config.HolidayFeedURL = value
	}
	if value := env["TRANSX2GTFS_NAPTAN_PATH"]; value != "" {
		config.NaPTANPath = value
	}
	if value := env["TRANSX2GTFS_OFFLINE"]; value == "YES" {
		config.Offline = true
	}
	if value := env["TRANSX2GTFS_BOARDING_TIME"]; value != "" {
		seconds, err := strconv.Atoi(value)
		if err == nil {
			config.BoardingTimeSeconds = seconds
		}
	}
}

// HolidayProvider selects the provider implementation for this run.
func (config *Config) HolidayProvider() bankholidays.Provider {
	if config.Offline {
		return bankholidays.NewStaticProvider(config.Region)
	}

	return bankholidays.NewGovUKProvider(config.HolidayFeedURL, config.Region)
}
