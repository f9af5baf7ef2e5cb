package main

import (
	"io"
	"log"
	"os"

	"github.com/PatchMixolydic/xcursor"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "xcursor"
	app.Usage = "Xcursor rescaling utility"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "resize",
			Usage:       "Rescale one or more Xcursor files",
			Description: "Directories are not supported; use a glob instead.",
			ArgsUsage:   "FILE [FILE...]",
			Flags: []cli.Flag{
				&cli.UintFlag{
					Name:     "scale",
					Aliases:  []string{"s"},
					Usage:    "integer factor to scale each cursor by",
					Required: true,
				},
				&cli.BoolFlag{
					Name:    "ignore-unrecognized",
					Aliases: []string{"i"},
					Usage:   "silently skip files that aren't Xcursors",
				},
				&cli.StringSliceFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "output filename for each input, defaults to overwriting in place",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				logger := log.New(io.Discard, "", 0)
				if c.Bool("verbose") {
					logger.SetOutput(os.Stderr)
				}

				r, err := xcursor.New(uint32(c.Uint("scale")), c.Bool("ignore-unrecognized"), logger)
				if err != nil {
					return cli.Exit(err, 1)
				}

				var outputs []string
				if c.IsSet("output") {
					outputs = c.StringSlice("output")
				}

				if err := r.Resize(c.Args().Slice(), outputs); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "info",
			Usage:     "Show the images contained in one or more Xcursor files",
			ArgsUsage: "FILE [FILE...]",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				if err := xcursor.Info(os.Stdout, c.Args().Slice()); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
