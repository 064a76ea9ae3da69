package gtfs

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"
)

// Feed is one complete set of GTFS output tables. Empty tables are still
// written out with their header row.
type Feed struct {
	Agencies      []Agency
	Stops         []Stop
	Routes        []Route
	Trips         []Trip
	StopTimes     []StopTime
	Calendars     []Calendar
	CalendarDates []CalendarDate
}

func (feed *Feed) fileMap() map[string]interface{} {
	return map[string]interface{}{
		"agency.txt":         &feed.Agencies,
		"stops.txt":          &feed.Stops,
		"routes.txt":         &feed.Routes,
		"trips.txt":          &feed.Trips,
		"stop_times.txt":     &feed.StopTimes,
		"calendar.txt":       &feed.Calendars,
		"calendar_dates.txt": &feed.CalendarDates,
	}
}

// Write serialises the feed to the given path. A path ending in .zip
// produces a zip archive, anything else is treated as a directory.
func (feed *Feed) Write(path string) error {
	if strings.HasSuffix(path, ".zip") {
		return feed.writeZip(path)
	}

	return feed.writeDirectory(path)
}

func (feed *Feed) writeZip(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	archive := zip.NewWriter(file)

	fileMap := feed.fileMap()
	fileNames := maps.Keys(fileMap)
	sort.Strings(fileNames)

	for _, fileName := range fileNames {
		writer, err := archive.Create(fileName)
		if err != nil {
			return err
		}

		if err := writeTable(writer, fileName, fileMap[fileName]); err != nil {
			return err
		}
	}

	return archive.Close()
}

func (feed *Feed) writeDirectory(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return err
	}

	for fileName, records := range feed.fileMap() {
		file, err := os.Create(filepath.Join(path, fileName))
		if err != nil {
			return err
		}

		err = writeTable(file, fileName, records)
		file.Close()

		if err != nil {
			return err
		}
	}

	return nil
}

func writeTable(writer io.Writer, fileName string, records interface{}) error {
	log.Debug().Str("file", fileName).Msg("Writing table")

	if err := gocsv.Marshal(records, writer); err != nil {
		return fmt.Errorf("failed to write %s: %w", fileName, err)
	}

	return nil
}
