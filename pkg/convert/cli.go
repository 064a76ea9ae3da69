package convert

import (
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/transitkit/transx2gtfs/pkg/config"
	"github.com/transitkit/transx2gtfs/pkg/naptan"
	"github.com/transitkit/transx2gtfs/pkg/transxchange"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "convert",
		Usage: "Convert a TransXChange document into a GTFS feed",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Usage:    "Path of the TransXChange XML document",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "output",
				Usage:    "Output path, either a directory or a .zip archive",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path of an optional yaml config file",
			},
			&cli.StringFlag{
				Name:  "naptan",
				Usage: "Path of the NaPTAN stops CSV export",
			},
			&cli.BoolFlag{
				Name:  "offline",
				Usage: "Use the bundled bank holiday snapshot instead of the gov.uk feed",
			},
		},
		Action: func(c *cli.Context) error {
			runConfig, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}

			if c.String("naptan") != "" {
				runConfig.NaPTANPath = c.String("naptan")
			}
			if c.Bool("offline") {
				runConfig.Offline = true
			}

			file, err := os.Open(c.String("input"))
			if err != nil {
				return err
			}
			defer file.Close()

			doc, err := transxchange.ParseXMLFile(file)
			if err != nil {
				return err
			}

			options := Options{
				BoardingTime:    time.Duration(runConfig.BoardingTimeSeconds) * time.Second,
				HolidayProvider: runConfig.HolidayProvider(),
			}

			if runConfig.NaPTANPath != "" {
				options.StopReference, err = naptan.LoadStopReference(runConfig.NaPTANPath)
				if err != nil {
					return err
				}
			} else if doc.StopShape == transxchange.StopShapeNaPTAN {
				log.Warn().Msg("Document uses NaPTAN stop references but no NaPTAN dataset was provided")
			}

			feed := Convert(doc, options)

			if err := feed.Write(c.String("output")); err != nil {
				return err
			}

			log.Info().Str("output", c.String("output")).Msg("Wrote GTFS feed")

			return nil
		},
	}
}
