package transxchange

import (
	"errors"
	"fmt"

	iso8601 "github.com/senseyeio/duration"
)

// ErrMalformedDuration is returned when a RunTime value is not a valid
// ISO 8601 duration. Callers should abort the enclosing journey, not the run.
var ErrMalformedDuration = errors.New("malformed duration")

// ParseRunTime converts a TransXChange RunTime value (eg. "PT2H5M30S")
// into a total number of seconds.
func ParseRunTime(runtime string) (int, error) {
	parsed, err := iso8601.ParseISO8601(runtime)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedDuration, runtime)
	}

	if parsed.Y != 0 || parsed.M != 0 || parsed.W != 0 {
		return 0, fmt.Errorf("%w: %q uses calendar units", ErrMalformedDuration, runtime)
	}

	seconds := ((parsed.D*24+parsed.TH)*60+parsed.TM)*60 + parsed.TS

	if seconds < 0 {
		return 0, fmt.Errorf("%w: %q is negative", ErrMalformedDuration, runtime)
	}

	return seconds, nil
}
