// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

func verboseFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "verbose",
		Usage: "Enable debug logging",
	}
}

func libraryFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "library",
		Aliases: []string{"l"},
		Usage:   "Path to the library XML export (default from config)",
	}
}

func reportFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Report file path (default from config)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Report format: csv, markdown or txt (default from config)",
		},
	}
}

func jsonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print output",
		},
	}
}

func sourceFlag(usage string) cli.Flag {
	return &cli.StringFlag{
		Name:  "source",
		Usage: usage,
	}
}

// sortCommand runs the full library to report pipeline
func sortCommand(r *Runner) *cli.Command {
	flags := []cli.Flag{configFlag(), verboseFlag(), libraryFlag()}
	return &cli.Command{
		Name:   "sort",
		Usage:  "Read the library export and write tracks grouped by decade",
		Flags:  append(flags, reportFlags()...),
		Action: r.Sort,
	}
}

// tracksCommand lists extracted tracks
func tracksCommand(r *Runner) *cli.Command {
	flags := []cli.Flag{configFlag(), verboseFlag(), libraryFlag()}
	return &cli.Command{
		Name:   "tracks",
		Usage:  "List tracks extracted from the library export",
		Flags:  append(flags, jsonFlags()...),
		Action: r.Tracks,
	}
}

// decadesCommand summarizes extracted tracks per decade
func decadesCommand(r *Runner) *cli.Command {
	flags := []cli.Flag{configFlag(), verboseFlag(), libraryFlag()}
	return &cli.Command{
		Name:   "decades",
		Usage:  "Show track counts and year ranges per decade",
		Flags:  append(flags, jsonFlags()...),
		Action: r.Decades,
	}
}

// setupCommand handles setup operations for configuration and the track cache.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:   "config",
				Usage:  "Write an example configuration file",
				Flags:  []cli.Flag{configFlag()},
				Action: r.SetupConfig,
			},
			{
				Name:  "database",
				Usage: "Initialize the track cache database and run migrations",
				Flags: []cli.Flag{
					configFlag(),
					verboseFlag(),
					&cli.BoolFlag{
						Name:  "reset",
						Usage: "Drop cached tracks and recreate the schema",
					},
				},
				Action: r.SetupDatabase,
			},
		},
	}
}

// cacheCommand handles the opt-in SQLite track cache
func cacheCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "Cache extracted tracks locally",
		Commands: []*cli.Command{
			{
				Name:   "import",
				Usage:  "Extract tracks from the library export and store them",
				Flags:  []cli.Flag{configFlag(), verboseFlag(), libraryFlag()},
				Action: r.CacheImport,
			},
			{
				Name:  "list",
				Usage: "List cached tracks",
				Flags: append(
					[]cli.Flag{
						configFlag(),
						verboseFlag(),
						sourceFlag("Only list tracks imported from this export path"),
						&cli.IntFlag{
							Name:  "min-year",
							Usage: "Only list tracks released in or after this year",
						},
						&cli.IntFlag{
							Name:  "max-year",
							Usage: "Only list tracks released in or before this year",
						},
					},
					jsonFlags()...,
				),
				Action: r.CacheList,
			},
			{
				Name:  "report",
				Usage: "Write the decade report from cached tracks",
				Flags: append(
					[]cli.Flag{configFlag(), verboseFlag(), sourceFlag("Only report tracks imported from this export path")},
					reportFlags()...,
				),
				Action: r.CacheReport,
			},
			{
				Name:   "clear",
				Usage:  "Remove cached tracks",
				Flags:  []cli.Flag{configFlag(), verboseFlag(), sourceFlag("Only remove tracks imported from this export path")},
				Action: r.CacheClear,
			},
		},
	}
}
