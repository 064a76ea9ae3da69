package naptan

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
)

// StopRecord is one row of the NaPTAN national stop dataset CSV export.
// Only the columns needed to build GTFS stops are mapped.
type StopRecord struct {
	AtcoCode   string  `csv:"ATCOCode"`
	CommonName string  `csv:"CommonName"`
	Longitude  float64 `csv:"Longitude"`
	Latitude   float64 `csv:"Latitude"`
}

// StopReference resolves ATCO stop codes to names and coordinates.
type StopReference struct {
	stops map[string]*StopRecord
}

func (reference *StopReference) Get(atcoCode string) *StopRecord {
	return reference.stops[atcoCode]
}

func (reference *StopReference) Count() int {
	return len(reference.stops)
}

func LoadStopReference(path string) (*StopReference, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ParseStopReference(file)
}

func ParseStopReference(reader io.Reader) (*StopReference, error) {
	// Allow us to ignore those naughty records that have missing columns
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.FieldsPerRecord = -1
		return r
	})

	var records []*StopRecord
	if err := gocsv.Unmarshal(reader, &records); err != nil {
		return nil, err
	}

	reference := &StopReference{stops: map[string]*StopRecord{}}
	for _, record := range records {
		if record.AtcoCode == "" {
			continue
		}
		reference.stops[record.AtcoCode] = record
	}

	log.Debug().Int("stops", len(reference.stops)).Msg("Loaded NaPTAN stop reference")

	return reference, nil
}
