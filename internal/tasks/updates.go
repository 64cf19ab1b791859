package tasks

import (
	"fmt"

	"github.com/desertthunder/libsort/internal/formatter"
	"github.com/desertthunder/libsort/internal/library"
)

// ProgressUpdate represents a progress event during a pipeline run.
//
// Used to send updates to the CLI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Pipeline stage
	Step    int    // Current step number
	Total   int    // Total steps in the run
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data
	Err     error  // Set when the stage failed
}

// ProgressFunc receives progress updates. Calls happen on the goroutine running the pipeline.
type ProgressFunc func(ProgressUpdate)

// Operation phase enumeration
type Phase int

const (
	LoadLibrary Phase = iota
	GroupDecades
	WriteReport
)

func (p Phase) String() string {
	switch p {
	case LoadLibrary:
		return "load_library"
	case GroupDecades:
		return "group_decades"
	case WriteReport:
		return "write_report"
	default:
		return ""
	}
}

func loadedLibraryUpdate(step, total int, stats library.Stats) ProgressUpdate {
	return ProgressUpdate{
		Phase:   LoadLibrary,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Fetched %d tracks from XML.", stats.Tracks),
		Data:    stats,
	}
}

func groupedDecadesUpdate(step, total int, groups []formatter.DecadeGroup) ProgressUpdate {
	return ProgressUpdate{
		Phase:   GroupDecades,
		Step:    step,
		Total:   total,
		Message: "Sorted tracks by decade.",
		Data:    formatter.Summarize(groups),
	}
}

func reportWrittenUpdate(step, total int, res *formatter.ReportResult) ProgressUpdate {
	return ProgressUpdate{
		Phase:   WriteReport,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Sorted music saved to %s: %s", res.Format.Label(), res.Path),
		Data:    res,
	}
}

func reportFailedUpdate(step, total int, opts ReportOpts, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   WriteReport,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Failed to write %s file: %v", opts.Format.Label(), err),
		Err:     err,
	}
}
