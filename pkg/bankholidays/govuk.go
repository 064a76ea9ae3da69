package bankholidays

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
)

const DefaultFeedURL = "https://www.gov.uk/bank-holidays.json"

// GovUKProvider pulls bank holiday dates from the gov.uk JSON feed.
type GovUKProvider struct {
	FeedURL string
	Region  string

	Client *http.Client
}

func NewGovUKProvider(feedURL string, region string) *GovUKProvider {
	return &GovUKProvider{
		FeedURL: feedURL,
		Region:  region,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (provider *GovUKProvider) DatesWithinWindow(startDate string, endDate string) ([]string, error) {
	var body []byte

	retryBackoff := backoff.NewExponentialBackOff()
	retryBackoff.MaxElapsedTime = 2 * time.Minute

	err := backoff.Retry(func() error {
		resp, err := provider.Client.Get(provider.FeedURL)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("bank holiday feed returned status %d", resp.StatusCode)
		}

		body, err = io.ReadAll(resp.Body)

		return err
	}, retryBackoff)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bank holiday feed: %w", err)
	}

	log.Debug().Str("url", provider.FeedURL).Str("region", provider.Region).Msg("Fetched bank holiday feed")

	return datesFromFeed(body, provider.Region, startDate, endDate)
}
