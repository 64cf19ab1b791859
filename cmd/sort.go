package main

import (
	"context"
	"strconv"

	"github.com/desertthunder/libsort/internal/formatter"
	"github.com/desertthunder/libsort/internal/models"
	"github.com/desertthunder/libsort/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Sort reads the library export, groups its tracks by decade and writes the report.
//
// Unreadable or malformed exports produce a header-only report. Only a failed
// write ends the command with an error.
func (r *Runner) Sort(ctx context.Context, cmd *cli.Command) error {
	config, err := r.settings(cmd)
	if err != nil {
		return err
	}

	opts, err := r.reportOpts(cmd, config)
	if err != nil {
		return err
	}

	libraryPath := r.libraryPath(cmd, config)
	r.logger.Debug("sorting library", "library", libraryPath, "output", opts.OutputPath, "format", opts.Format)

	result, err := r.engine.Run(ctx, r.progress, tasks.SortOpts{LibraryPath: libraryPath, ReportOpts: opts})
	if err != nil {
		return err
	}

	if result.Stats.Dropped > 0 {
		r.console.Info("Skipped %d entries without a name or artist.", result.Stats.Dropped)
	}
	return nil
}

// Tracks lists tracks extracted from the library export.
func (r *Runner) Tracks(ctx context.Context, cmd *cli.Command) error {
	config, err := r.settings(cmd)
	if err != nil {
		return err
	}

	result := r.engine.Extract(r.libraryPath(cmd, config))

	if cmd.Bool("json") {
		return r.writeJSON(result.Tracks, cmd.Bool("pretty"))
	}

	rows := make([][]string, 0, len(result.Tracks))
	for i, track := range result.Tracks {
		rows = append(rows, []string{strconv.Itoa(i + 1), track.Title, track.Artist, formatYear(track)})
	}

	if err := r.writePlain("%s\n", renderTable(
		[]string{"#", "Title", "Artist", "Year"}, rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight},
	)); err != nil {
		return err
	}
	return r.console.Info("%d tracks, %d entries skipped", result.Stats.Tracks, result.Stats.Dropped)
}

// Decades prints per-decade counts and year ranges for the library export.
func (r *Runner) Decades(ctx context.Context, cmd *cli.Command) error {
	config, err := r.settings(cmd)
	if err != nil {
		return err
	}

	result := r.engine.Extract(r.libraryPath(cmd, config))
	groups := formatter.GroupByDecade(result.Tracks)
	summary := formatter.Summarize(groups)

	if cmd.Bool("json") {
		return r.writeJSON(summary, cmd.Bool("pretty"))
	}

	if len(summary) == 0 {
		return r.console.Warning("No dated tracks found.")
	}

	if err := r.console.Title("Music Library by Decade"); err != nil {
		return err
	}

	rows := make([][]string, 0, len(summary))
	for _, s := range summary {
		rows = append(rows, []string{s.Label, strconv.Itoa(s.Count), strconv.Itoa(s.FirstYear), strconv.Itoa(s.LastYear)})
	}

	if err := r.writePlain("%s\n", renderTable(
		[]string{"Decade", "Tracks", "First", "Last"}, rows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight},
	)); err != nil {
		return err
	}
	return r.console.Info("%d of %d tracks dated", formatter.CountTracks(groups), len(result.Tracks))
}

func formatYear(track models.Track) string {
	if !track.Dated() {
		return ""
	}
	return strconv.Itoa(track.Year)
}
