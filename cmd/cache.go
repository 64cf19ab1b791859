package main

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/desertthunder/libsort/internal/repositories"
	"github.com/desertthunder/libsort/internal/shared"
	"github.com/urfave/cli/v3"
)

// openCache resolves settings and opens the migrated track cache.
func (r *Runner) openCache(cmd *cli.Command) (*shared.Config, *sql.DB, error) {
	config, err := r.settings(cmd)
	if err != nil {
		return nil, nil, err
	}

	db, err := shared.OpenCache(config.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open track cache: %w", err)
	}
	return config, db, nil
}

// CacheImport extracts the library export and replaces its cached tracks.
func (r *Runner) CacheImport(ctx context.Context, cmd *cli.Command) error {
	config, db, err := r.openCache(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	source := r.libraryPath(cmd, config)
	result := r.engine.Extract(source)
	r.logger.Infof("fetched %d tracks from %s", len(result.Tracks), source)

	adapter := repositories.NewTrackCacheAdapter(repositories.NewTrackRepository(db))
	count, err := adapter.Import(source, result.Tracks)
	if err != nil {
		return fmt.Errorf("failed to import tracks: %w", err)
	}

	return r.console.Success("Cached %d tracks from %s", count, source)
}

// CacheList prints cached tracks in import order.
func (r *Runner) CacheList(ctx context.Context, cmd *cli.Command) error {
	_, db, err := r.openCache(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	criteria := map[string]any{"source": cmd.String("source")}
	if cmd.IsSet("min-year") {
		criteria["min_year"] = int(cmd.Int("min-year"))
	}
	if cmd.IsSet("max-year") {
		criteria["max_year"] = int(cmd.Int("max-year"))
	}

	persisted, err := repositories.NewTrackRepository(db).List(criteria)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		type cachedTrack struct {
			ID     string `json:"id"`
			Source string `json:"source"`
			Title  string `json:"title"`
			Artist string `json:"artist"`
			Year   int    `json:"year"`
		}
		out := make([]cachedTrack, 0, len(persisted))
		for _, p := range persisted {
			out = append(out, cachedTrack{ID: p.ID(), Source: p.Source(), Title: p.Title(), Artist: p.Artist(), Year: p.Year()})
		}
		return r.writeJSON(out, cmd.Bool("pretty"))
	}

	if len(persisted) == 0 {
		if cmd.String("source") != "" || len(criteria) > 1 {
			return r.console.Warning("No cached tracks match the filters.")
		}
		return r.console.Warning("Track cache is empty. Run 'libsort cache import' first.")
	}

	rows := make([][]string, 0, len(persisted))
	for _, p := range persisted {
		rows = append(rows, []string{strconv.Itoa(p.Sequence()), p.Title(), p.Artist(), formatYear(p.Track()), p.Source()})
	}
	return r.writePlain("%s\n", renderTable(
		[]string{"#", "Title", "Artist", "Year", "Source"}, rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft},
	))
}

// CacheReport writes the decade report from cached tracks.
func (r *Runner) CacheReport(ctx context.Context, cmd *cli.Command) error {
	config, db, err := r.openCache(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	opts, err := r.reportOpts(cmd, config)
	if err != nil {
		return err
	}

	tracks, err := repositories.NewTrackCacheAdapter(repositories.NewTrackRepository(db)).Tracks(cmd.String("source"))
	if err != nil {
		return fmt.Errorf("failed to load cached tracks: %w", err)
	}
	r.console.Success("Loaded %d tracks from cache.", len(tracks))

	_, err = r.engine.Report(ctx, r.progress, tracks, opts)
	return err
}

// CacheClear removes cached tracks, optionally for a single source.
func (r *Runner) CacheClear(ctx context.Context, cmd *cli.Command) error {
	_, db, err := r.openCache(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := repositories.NewTrackRepository(db)

	var removed int64
	if source := cmd.String("source"); source != "" {
		removed, err = repo.PurgeSource(source)
	} else {
		removed, err = repo.Purge()
	}
	if err != nil {
		return fmt.Errorf("failed to clear track cache: %w", err)
	}

	return r.console.Success("Removed %d cached tracks", removed)
}
