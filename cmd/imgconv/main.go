package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bodgit/imgconv"
	"github.com/bodgit/imgconv/jpeg"
	"github.com/bodgit/imgconv/pixel"
	"github.com/urfave/cli/v2"
)

const (
	exitSuccess = iota
	exitUsage
	exitUnknownInput
	exitUnknownOutput
	exitLoad
	exitSave
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, imgconv.ErrUnknownInputFormat):
		return exitUnknownInput
	case errors.Is(err, imgconv.ErrUnknownOutputFormat):
		return exitUnknownOutput
	case errors.Is(err, imgconv.ErrLoad):
		return exitLoad
	case errors.Is(err, imgconv.ErrSave):
		return exitSave
	default:
		return exitUsage
	}
}

func convert(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.Exit(fmt.Sprintf("Usage: %s [options] <in_file> <out_file>", c.App.Name), exitUsage)
	}

	if n := c.Int("colors"); n != 0 && (n < pixel.MinColors || n > pixel.MaxColors) {
		return cli.Exit(fmt.Sprintf("Number of colors must be between %d and %d", pixel.MinColors, pixel.MaxColors), exitUsage)
	}

	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(c.App.ErrWriter)
	}

	var journal *imgconv.Journal
	if file := c.String("journal"); file != "" {
		j, err := imgconv.NewJournal(file)
		if err != nil {
			logger.Printf("Unable to open journal \"%s\": %v\n", file, err)
		} else {
			defer j.Close()
			journal = j
		}
	}

	m := imgconv.New(imgconv.DefaultRegistry(logger, c.Int("quality")), journal, logger)
	m.ReduceColors(c.Int("colors"), c.Bool("dither"))

	if err := m.Convert(c.Args().Get(0), c.Args().Get(1)); err != nil {
		return cli.Exit(err, exitCode(err))
	}

	fmt.Fprintln(c.App.Writer, "Successfully converted")

	return nil
}

// Same as cli.HandleExitCoder but writes to the app's error writer
func handleExit(c *cli.Context, err error) {
	exitErr, ok := err.(cli.ExitCoder)
	if !ok {
		return
	}
	if msg := exitErr.Error(); msg != "" {
		fmt.Fprintln(c.App.ErrWriter, msg)
	}
	cli.OsExiter(exitErr.ExitCode())
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "imgconv"
	app.Usage = "Convert images between BMP, PPM and JPEG"
	app.Version = "1.0.0"
	app.ArgsUsage = "INPUT OUTPUT"
	app.HideHelpCommand = true

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
		&cli.IntFlag{
			Name:    "quality",
			Aliases: []string{"q"},
			EnvVars: []string{"IMGCONV_QUALITY"},
			Value:   jpeg.DefaultQuality,
			Usage:   "JPEG quality, 1 to 100",
		},
		&cli.IntFlag{
			Name:    "colors",
			Aliases: []string{"c"},
			EnvVars: []string{"IMGCONV_COLORS"},
			Usage:   "reduce the image to at most this many colors, 2 to 256",
		},
		&cli.BoolFlag{
			Name:  "dither",
			Usage: "dither when reducing colors",
		},
		&cli.StringFlag{
			Name:    "journal",
			EnvVars: []string{"IMGCONV_JOURNAL"},
			Usage:   "record conversions in this database",
		},
	}

	app.Action = convert
	app.ExitErrHandler = handleExit

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
