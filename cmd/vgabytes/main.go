package main

import (
	"io/ioutil"
	"log"
	"os"

	"github.com/bodgit/vgabytes"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "vgabytes"
	app.Usage = "Convert an image to VGA text mode cell data"
	app.Version = "1.0.0"
	app.ErrWriter = os.Stderr
	app.ArgsUsage = "INPUT OUTPUT"
	app.Description = "Use -- before INPUT if either path begins with a '-'."

	// No subcommands, so don't let the built-in help command swallow an
	// input file named "help" or "h"
	app.HideHelp = true

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "help",
			Aliases: []string{"h"},
			Usage:   "show help",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			EnvVars: []string{"VGABYTES_VERBOSE"},
			Usage:   "increase verbosity",
		},
	}

	app.Action = func(c *cli.Context) error {
		if c.Bool("help") {
			return cli.ShowAppHelp(c)
		}

		if c.NArg() != 2 {
			if err := cli.ShowAppHelp(c); err != nil {
				return err
			}
			return cli.NewExitError("", 1)
		}

		logger := log.New(ioutil.Discard, "", 0)
		if c.Bool("verbose") {
			logger.SetOutput(c.App.ErrWriter)
		}

		v := vgabytes.New(c.App.Writer, logger)

		if err := v.Convert(c.Args().Get(0), c.Args().Get(1)); err != nil {
			return cli.NewExitError(err, 1)
		}

		return nil
	}

	return app
}

func main() {
	app := newApp()

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
