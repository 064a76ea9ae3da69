package transxchange

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
)

type OperatingProfile struct {
	XMLValue string `xml:",innerxml" json:"-"`

	RegularDayType          []string
	BankHolidayOperation    []string
	BankHolidayNonOperation []string

	parsed bool
}

// This is a bit hacky and doesn't seem like the best way of doing it but it works
func (operatingProfile *OperatingProfile) ParseXMLValue() {
	if operatingProfile.parsed {
		return
	}
	operatingProfile.parsed = true

	operatingProfile.RegularDayType = []string{}
	operatingProfile.BankHolidayOperation = []string{}
	operatingProfile.BankHolidayNonOperation = []string{}

	var field string

	d := xml.NewDecoder(strings.NewReader(operatingProfile.XMLValue))
	for {
		tok, err := d.Token()
		if tok == nil || err == io.EOF {
			// EOF means we're done.
			break
		} else if err != nil {
			log.Error().Err(err).Msg("Error decoding OperatingProfile token")
			return
		}

		switch ty := tok.(type) {
		case xml.StartElement:
			switch ty.Name.Local {
			case "DaysOfWeek":
			case "RegularDayType", "DaysOfOperation", "DaysOfNonOperation", "BankHolidayOperation":
				field = ty.Name.Local
			default:
				if field == "RegularDayType" {
					operatingProfile.RegularDayType = append(operatingProfile.RegularDayType, ty.Name.Local)
				} else if field == "DaysOfOperation" {
					operatingProfile.BankHolidayOperation = append(operatingProfile.BankHolidayOperation, ty.Name.Local)
				} else if field == "DaysOfNonOperation" {
					operatingProfile.BankHolidayNonOperation = append(operatingProfile.BankHolidayNonOperation, ty.Name.Local)
				}
			}
		}
	}
}

func (operatingProfile *OperatingProfile) Empty() bool {
	return strings.TrimSpace(operatingProfile.XMLValue) == ""
}
