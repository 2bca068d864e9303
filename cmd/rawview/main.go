package main

import (
	"fmt"
	"os"

	"github.com/bodgit/rawview"
	"github.com/bodgit/rawview/export"
	"github.com/bodgit/rawview/preset"
	"github.com/bodgit/rawview/raster"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) zerolog.Logger {
	level := zerolog.WarnLevel
	if c.Bool("verbose") {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

func configure(c *cli.Context, v *rawview.Viewer) error {
	if s := c.String("offset"); s != "" {
		off, err := rawview.ParseOffset(s)
		if err != nil {
			return err
		}
		v.SetOffset(off)
	}
	v.SetBitAlign(c.Int("bit-align"))
	v.SetWidth(c.Int("width"))
	if c.Bool("lsb") {
		v.SetBitOrder(raster.LSBFirst)
	}
	if c.Bool("little-endian") {
		v.SetByteOrder(raster.LittleEndian)
	}

	if name := c.String("preset"); name != "" {
		p, err := preset.Lookup(name)
		if err != nil {
			return err
		}
		v.SelectPreset(p)
	}
	if s := c.String("fields"); s != "" {
		d, err := preset.ParseDescriptor(s)
		if err != nil {
			return err
		}
		v.SetDescriptor(d)
		v.SetBPP(d.Width())
	}
	if c.IsSet("bpp") {
		v.SetBPP(c.Int("bpp"))
	}

	return nil
}

func main() {
	app := cli.NewApp()

	app.Name = "rawview"
	app.Usage = "Raw bitmap stream exploration utility"
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
			Name:        "render",
			Usage:       "Decode a window of a file into an image",
			Description: "",
			ArgsUsage:   "FILE",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "offset",
					Aliases: []string{"o"},
					Usage:   "byte offset of the first pixel, 0x prefix for hex",
				},
				&cli.IntFlag{
					Name:  "bit-align",
					Usage: "sub-byte bit alignment (0-7)",
				},
				&cli.IntFlag{
					Name:    "bpp",
					Aliases: []string{"b"},
					Usage:   "bits per pixel (1-64)",
				},
				&cli.IntFlag{
					Name:    "width",
					Aliases: []string{"w"},
					Value:   256,
					Usage:   "row width in pixels",
				},
				&cli.IntFlag{
					Name:    "rows",
					Aliases: []string{"r"},
					Value:   256,
					Usage:   "number of rows to render",
				},
				&cli.StringFlag{
					Name:    "preset",
					Aliases: []string{"p"},
					EnvVars: []string{"RAWVIEW_PRESET"},
					Usage:   "named format preset",
				},
				&cli.StringFlag{
					Name:    "fields",
					Aliases: []string{"f"},
					Usage:   "field layout such as r5g6b5, overrides --preset",
				},
				&cli.BoolFlag{
					Name:  "lsb",
					Usage: "read bits LSB-first",
				},
				&cli.BoolFlag{
					Name:    "little-endian",
					Aliases: []string{"le"},
					Usage:   "treat multi-byte pixels as little-endian",
				},
				&cli.StringFlag{
					Name:  "output",
					Usage: "output file (.png, .gif or .bmp), numbered PNG if empty",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				v := rawview.New(newLogger(c))

				if err := v.LoadFile(c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := configure(c, v); err != nil {
					return cli.NewExitError(err, 1)
				}

				m := v.Render(c.Int("rows"))

				path := c.String("output")
				if path == "" {
					cwd, err := os.Getwd()
					if err != nil {
						return cli.NewExitError(err, 1)
					}
					if path, err = export.NumberedPath(cwd, export.PNG); err != nil {
						return cli.NewExitError(err, 1)
					}
				}

				if err := export.WriteFile(path, m); err != nil {
					return cli.NewExitError(err, 1)
				}

				fmt.Println(path)

				return nil
			},
		},
		{
			Name:        "presets",
			Usage:       "List the named format presets",
			Description: "",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "bpp",
					Aliases: []string{"b"},
					Usage:   "only presets of this pixel width",
				},
			},
			Action: func(c *cli.Context) error {
				list := preset.Catalog()
				if c.IsSet("bpp") {
					list = preset.ByBPP(c.Int("bpp"))
				}
				for _, p := range list {
					fmt.Printf("%-10s %s\n", p.Name, p.Label)
				}
				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
