package tasks

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/libsort/internal/formatter"
	"github.com/desertthunder/libsort/internal/library"
	"github.com/desertthunder/libsort/internal/models"
	"github.com/desertthunder/libsort/internal/shared"
)

// ReportOpts describes where and how the decade report is written.
type ReportOpts struct {
	OutputPath string
	Format     shared.Format
}

// SortOpts configures a full pipeline run.
type SortOpts struct {
	LibraryPath string
	ReportOpts
}

// SortResult contains all data from a pipeline run.
type SortResult struct {
	Tracks []models.Track          // Extracted tracks in document order
	Stats  library.Stats           // Extraction counters
	Groups []formatter.DecadeGroup // Decade buckets in report order
	Report *formatter.ReportResult // Nil when the write failed
}

// SortEngine runs the pipeline.
type SortEngine struct {
	logger *log.Logger
}

// NewSortEngine creates a SortEngine. A nil logger keeps extraction silent.
func NewSortEngine(logger *log.Logger) *SortEngine {
	return &SortEngine{logger: logger}
}

// sendProgress forwards an update when a ProgressFunc is set.
func (e *SortEngine) sendProgress(progress ProgressFunc, update ProgressUpdate) {
	if progress == nil {
		return
	}
	progress(update)
}

// Extract loads tracks from the library export at path. It never fails: missing or
// malformed exports produce an empty result.
func (e *SortEngine) Extract(path string) *library.Result {
	var opts []library.Option
	if e.logger != nil {
		opts = append(opts, library.WithLogger(e.logger))
	}
	return library.Load(path, opts...)
}

// Run loads the library export, groups its tracks by decade and writes the report.
func (e *SortEngine) Run(ctx context.Context, progress ProgressFunc, opts SortOpts) (*SortResult, error) {
	const total = 3

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	extracted := e.Extract(opts.LibraryPath)
	e.sendProgress(progress, loadedLibraryUpdate(1, total, extracted.Stats))

	result := &SortResult{Tracks: extracted.Tracks, Stats: extracted.Stats}
	if err := e.report(ctx, progress, result, opts.ReportOpts, 2, total); err != nil {
		return result, err
	}
	return result, nil
}

// Report groups already-extracted tracks and writes the report.
func (e *SortEngine) Report(ctx context.Context, progress ProgressFunc, tracks []models.Track, opts ReportOpts) (*SortResult, error) {
	result := &SortResult{Tracks: tracks, Stats: library.Stats{Tracks: len(tracks)}}
	if err := e.report(ctx, progress, result, opts, 1, 2); err != nil {
		return result, err
	}
	return result, nil
}

func (e *SortEngine) report(ctx context.Context, progress ProgressFunc, result *SortResult, opts ReportOpts, step, total int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	result.Groups = formatter.GroupByDecade(result.Tracks)
	e.sendProgress(progress, groupedDecadesUpdate(step, total, result.Groups))

	if err := ctx.Err(); err != nil {
		return err
	}

	res, err := formatter.WriteReport(result.Groups, opts.Format, opts.OutputPath)
	if err != nil {
		e.sendProgress(progress, reportFailedUpdate(step+1, total, opts, err))
		return err
	}

	result.Report = res
	e.sendProgress(progress, reportWrittenUpdate(step+1, total, res))
	return nil
}
