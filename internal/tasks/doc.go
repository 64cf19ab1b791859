// Package tasks runs the library-to-report pipeline with progress reporting after each stage.
//
// # Stages
//
// [SortEngine.Run] executes three stages in order, synchronously:
//
//  1. [LoadLibrary] : stream the library export into tracks ([library.Load]);
//     unreadable or malformed exports yield zero tracks rather than an error
//  2. [GroupDecades] : filter undated tracks and bucket the rest by decade
//  3. [WriteReport] : render the report and write it atomically
//
// [SortEngine.Report] runs only the last two stages, for tracks that came from
// somewhere else (the track cache).
//
// # Progress Reporting
//
// Each stage finishes by calling the caller's [ProgressFunc] with a [ProgressUpdate]
// holding the phase, step counters, a human-readable message and the stage's data.
// A nil ProgressFunc disables reporting.
//
// # Failure
//
// Only the write stage can fail a run. When it does, Run returns the partially
// filled [SortResult] alongside an error wrapping shared.ErrWriteFailed, so the
// tracks and groups already computed remain available to the caller.
package tasks
