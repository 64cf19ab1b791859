// package formatter renders the decade report in CSV, Markdown and plain text
package formatter

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/desertthunder/libsort/internal/models"
	"github.com/desertthunder/libsort/internal/shared"
)

// CSVHeader is the first line of every CSV report.
const CSVHeader = "Title,Artist,Year,Decade"

// DecadeGroup holds the tracks of one decade in encounter order.
type DecadeGroup struct {
	Label  string
	Tracks []models.Track
}

// GroupByDecade drops undated tracks (year <= 0), buckets the rest by decade label and
// orders the buckets by plain string comparison of the label.
//
// Labels compare correctly as strings only while every decade has the same number of
// digits, which holds for years 1000 through 9999.
func GroupByDecade(tracks []models.Track) []DecadeGroup {
	buckets := make(map[string][]models.Track)
	var labels []string

	for _, track := range tracks {
		label, ok := track.Decade()
		if !ok {
			continue
		}
		if _, seen := buckets[label]; !seen {
			labels = append(labels, label)
		}
		buckets[label] = append(buckets[label], track)
	}

	sort.Strings(labels)

	groups := make([]DecadeGroup, 0, len(labels))
	for _, label := range labels {
		groups = append(groups, DecadeGroup{Label: label, Tracks: buckets[label]})
	}
	return groups
}

// CountTracks returns the number of tracks across all groups.
func CountTracks(groups []DecadeGroup) int {
	n := 0
	for _, g := range groups {
		n += len(g.Tracks)
	}
	return n
}

// ExportToCSV renders groups as CSV with columns Title, Artist, Year, Decade.
//
// Title and artist are always quoted with embedded quotes doubled; year and decade are bare.
func ExportToCSV(groups []DecadeGroup) []byte {
	var buf bytes.Buffer
	buf.WriteString(CSVHeader)
	buf.WriteByte('\n')

	for _, group := range groups {
		for _, track := range group.Tracks {
			buf.WriteString(quoteField(track.Title))
			buf.WriteByte(',')
			buf.WriteString(quoteField(track.Artist))
			buf.WriteByte(',')
			buf.WriteString(strconv.Itoa(track.Year))
			buf.WriteByte(',')
			buf.WriteString(group.Label)
			buf.WriteByte('\n')
		}
	}

	return buf.Bytes()
}

func quoteField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// ExportToMarkdown renders groups as a Markdown document with one section per decade
func ExportToMarkdown(groups []DecadeGroup) []byte {
	var buf bytes.Buffer

	buf.WriteString("# Music Library by Decade\n\n")
	buf.WriteString(fmt.Sprintf("**Tracks**: %d\n", CountTracks(groups)))
	buf.WriteString(fmt.Sprintf("**Decades**: %d\n", len(groups)))

	for _, group := range groups {
		buf.WriteString(fmt.Sprintf("\n## %s\n\n", group.Label))
		for i, track := range group.Tracks {
			buf.WriteString(fmt.Sprintf("%d. %s - %s (%d)\n", i+1, track.Artist, track.Title, track.Year))
		}
	}

	return buf.Bytes()
}

// ExportToText renders groups as plain text
func ExportToText(groups []DecadeGroup) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Tracks: %d\n", CountTracks(groups)))
	buf.WriteString(fmt.Sprintf("Decades: %d\n", len(groups)))

	for _, group := range groups {
		buf.WriteString(fmt.Sprintf("\n%s\n", group.Label))
		for i, track := range group.Tracks {
			buf.WriteString(fmt.Sprintf("  %d. %s - %s (%d)\n", i+1, track.Artist, track.Title, track.Year))
		}
	}

	return buf.Bytes()
}

// Render dispatches to the exporter for format.
func Render(format shared.Format, groups []DecadeGroup) ([]byte, error) {
	switch format {
	case shared.FormatCSV:
		return ExportToCSV(groups), nil
	case shared.FormatMarkdown:
		return ExportToMarkdown(groups), nil
	case shared.FormatText:
		return ExportToText(groups), nil
	default:
		return nil, fmt.Errorf("%w: %q", shared.ErrInvalidFormat, format)
	}
}

// ReportResult describes a report written by [WriteReport]
type ReportResult struct {
	Path   string
	Format shared.Format
	Rows   int // tracks written
	Bytes  int
}

// WriteReport renders groups and writes them to path in a single atomic step.
//
// On failure the destination is left untouched and the error wraps [shared.ErrWriteFailed].
func WriteReport(groups []DecadeGroup, format shared.Format, path string) (*ReportResult, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: output path", shared.ErrMissingArgument)
	}

	data, err := Render(format, groups)
	if err != nil {
		return nil, err
	}

	if err := shared.WriteFileAtomic(path, data, 0644); err != nil {
		return nil, err
	}

	return &ReportResult{
		Path:   path,
		Format: format,
		Rows:   CountTracks(groups),
		Bytes:  len(data),
	}, nil
}

// DecadeSummary is one row of the per-decade overview.
type DecadeSummary struct {
	Label     string `json:"decade"`
	Count     int    `json:"tracks"`
	FirstYear int    `json:"first_year"`
	LastYear  int    `json:"last_year"`
}

// Summarize reduces each group to its track count and year range.
func Summarize(groups []DecadeGroup) []DecadeSummary {
	out := make([]DecadeSummary, 0, len(groups))
	for _, g := range groups {
		s := DecadeSummary{Label: g.Label, Count: len(g.Tracks)}
		for i, track := range g.Tracks {
			if i == 0 || track.Year < s.FirstYear {
				s.FirstYear = track.Year
			}
			if track.Year > s.LastYear {
				s.LastYear = track.Year
			}
		}
		out = append(out, s)
	}
	return out
}
