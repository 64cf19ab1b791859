package models

import (
	"errors"
	"strings"
	"time"
)

// PersistedTrack is a [Track] cached in the local database.
//
// The source field records which library export the track came from so that
// re-importing the same file replaces its rows instead of duplicating them.
type PersistedTrack struct {
	id        string
	sequence  int
	source    string
	track     Track
	createdAt time.Time
	updatedAt time.Time
	deletedAt *time.Time
}

// NewPersistedTrack wraps a [Track] for storage.
func NewPersistedTrack(sequence int, source string, track Track) *PersistedTrack {
	now := time.Now()
	return &PersistedTrack{
		sequence:  sequence,
		source:    source,
		track:     track,
		createdAt: now,
		updatedAt: now,
	}
}

func (p *PersistedTrack) ID() string { return p.id }
func (p *PersistedTrack) Sequence() int { return p.sequence }
func (p *PersistedTrack) Source() string { return p.source }
func (p *PersistedTrack) Track() Track { return p.track }
func (p *PersistedTrack) Title() string { return p.track.Title }
func (p *PersistedTrack) Artist() string { return p.track.Artist }
func (p *PersistedTrack) Year() int { return p.track.Year }
func (p *PersistedTrack) CreatedAt() time.Time { return p.createdAt }
func (p *PersistedTrack) UpdatedAt() time.Time { return p.updatedAt }
func (p *PersistedTrack) DeletedAt() *time.Time { return p.deletedAt }
func (p *PersistedTrack) SetID(id string) { p.id = id }
func (p *PersistedTrack) SetSequence(seq int) { p.sequence = seq }
func (p *PersistedTrack) SetTrack(t Track) { p.track = t }
func (p *PersistedTrack) SetCreatedAt(t time.Time) { p.createdAt = t }
func (p *PersistedTrack) SetUpdatedAt(t time.Time) { p.updatedAt = t }
func (p *PersistedTrack) SetDeletedAt(t *time.Time) { p.deletedAt = t }

// Decade returns the decade label of the cached track.
func (p *PersistedTrack) Decade() (string, bool) {
	return p.track.Decade()
}

// Validate checks the fields the cache needs to address a row.
func (p *PersistedTrack) Validate() error {
	if p.id == "" {
		return errors.New("track ID is required")
	}
	if strings.TrimSpace(p.source) == "" {
		return errors.New("track source is required")
	}
	return nil
}

// Tracks unwraps a slice of cached tracks, preserving order.
func Tracks(persisted []*PersistedTrack) []Track {
	out := make([]Track, 0, len(persisted))
	for _, p := range persisted {
		out = append(out, p.track)
	}
	return out
}
