package models

import "strconv"

// Track is one song's metadata as read from a library export.
//
// Values are built once when a track entry closes and never mutated afterwards.
type Track struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Year   int    `json:"year"` // 0 when absent or non-numeric
}

// NewTrack builds a Track, parsing year as a base-10 integer and falling back to 0.
func NewTrack(title, artist, year string) Track {
	return Track{Title: title, Artist: artist, Year: ParseYear(year)}
}

// ParseYear converts a raw Year field into an integer, returning 0 for anything unparsable.
func ParseYear(raw string) int {
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return year
}

// Dated reports whether the track carries a usable (positive) year.
func (t Track) Dated() bool {
	return t.Year > 0
}

// Decade returns the decade label for the track, or false when the year is not positive.
func (t Track) Decade() (string, bool) {
	return DecadeLabel(t.Year)
}

// DecadeStart rounds year down to the nearest multiple of ten.
func DecadeStart(year int) int {
	return (year / 10) * 10
}

// DecadeLabel formats the decade bucket for year, e.g. 1994 -> "1990s" and 9 -> "0s".
//
// Years <= 0 belong to no bucket.
func DecadeLabel(year int) (string, bool) {
	if year <= 0 {
		return "", false
	}
	return strconv.Itoa(DecadeStart(year)) + "s", true
}
