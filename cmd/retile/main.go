package main

import (
	"context"
	"fmt"
	"image"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"github.com/bodgit/retile"
	"github.com/bodgit/retile/codec"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

var tileFlags = []cli.Flag{
	&cli.IntFlag{
		Name:     "tile-width",
		Aliases:  []string{"W"},
		Usage:    "tile width in pixels",
		Required: true,
	},
	&cli.IntFlag{
		Name:     "tile-height",
		Aliases:  []string{"H"},
		Usage:    "tile height in pixels",
		Required: true,
	},
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func newCodec(c *cli.Context) (retile.Codec, error) {
	switch c.String("backend") {
	case "imaging":
		return codec.Imaging{}, nil
	case "jpegn":
		return codec.JPEGN{}, nil
	default:
		return nil, fmt.Errorf("unknown backend \"%s\"", c.String("backend"))
	}
}

func newRearranger(c *cli.Context) (*retile.Rearranger, error) {
	cd, err := newCodec(c)
	if err != nil {
		return nil, err
	}
	return retile.New(cd, newLogger(c)), nil
}

func tileSize(c *cli.Context) image.Point {
	return image.Pt(c.Int("tile-width"), c.Int("tile-height"))
}

func loadOrdering(c *cli.Context, file string) ([]int, error) {
	ordering, err := retile.LoadOrdering(file)
	if err != nil {
		return nil, err
	}
	if c.Bool("invert") {
		return retile.Inverse(ordering)
	}
	return ordering, nil
}

func main() {
	app := cli.NewApp()

	app.Name = "retile"
	app.Usage = "Rearrange the tiles of an image"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "backend",
			EnvVars: []string{"RETILE_BACKEND"},
			Value:   "imaging",
			Usage:   "image backend, either \"imaging\" or \"jpegn\"",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "rearrange",
			Usage:       "Rearrange the tiles of an image",
			Description: "Supported formats are " + strings.Join(codec.Extensions(), ", "),
			ArgsUsage:   "IMAGE ORDERING OUTPUT",
			Flags: append([]cli.Flag{
				&cli.BoolFlag{
					Name:  "invert",
					Usage: "apply the inverse of the ordering",
				},
			}, tileFlags...),
			Action: func(c *cli.Context) error {
				if c.NArg() < 3 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				r, err := newRearranger(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				ordering, err := loadOrdering(c, c.Args().Get(1))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := r.Rearrange(c.Args().Get(0), tileSize(c), ordering, c.Args().Get(2)); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "validate",
			Usage:       "Check an ordering and tile size against an image",
			Description: "",
			ArgsUsage:   "IMAGE ORDERING",
			Flags:       tileFlags,
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				cd, err := newCodec(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				m, err := cd.Load(c.Args().Get(0))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				ordering, err := retile.LoadOrdering(c.Args().Get(1))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if !retile.IsValid(m.Bounds().Size(), tileSize(c), ordering) {
					return cli.NewExitError(retile.ErrInvalidConfiguration, 1)
				}

				fmt.Println("valid")

				return nil
			},
		},
		{
			Name:        "invert",
			Usage:       "Write the inverse of an ordering",
			Description: "",
			ArgsUsage:   "ORDERING OUTPUT",
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				ordering, err := retile.LoadOrdering(c.Args().Get(0))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				inverse, err := retile.Inverse(ordering)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				f, err := os.Create(c.Args().Get(1))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer f.Close()

				if err := retile.WriteOrdering(f, inverse); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "batch",
			Usage:       "Rearrange every image in a directory",
			Description: "",
			ArgsUsage:   "INDIR OUTDIR ORDERING",
			Flags: append([]cli.Flag{
				&cli.BoolFlag{
					Name:  "invert",
					Usage: "apply the inverse of the ordering",
				},
				&cli.IntFlag{
					Name:  "workers",
					Value: 4,
					Usage: "number of images processed at once",
				},
			}, tileFlags...),
			Action: func(c *cli.Context) error {
				if c.NArg() < 3 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				r, err := newRearranger(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				ordering, err := loadOrdering(c, c.Args().Get(2))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := os.MkdirAll(c.Args().Get(1), 0755); err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := r.Batch(context.Background(), c.Args().Get(0), c.Args().Get(1), tileSize(c), ordering, c.Int("workers")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
