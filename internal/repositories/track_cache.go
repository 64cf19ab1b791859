package repositories

import (
	"github.com/desertthunder/libsort/internal/models"
)

// TrackCacheAdapter stores extracted tracks using TrackRepository.
//
// Importing the same export twice replaces its rows, so the cache always mirrors
// the latest extraction of each source.
type TrackCacheAdapter struct {
	repo *TrackRepository
}

// NewTrackCacheAdapter creates a new TrackCacheAdapter with the given repository
func NewTrackCacheAdapter(repo *TrackRepository) *TrackCacheAdapter {
	return &TrackCacheAdapter{repo: repo}
}

// Import replaces the cached tracks for source with tracks, keeping their order.
// Returns the number of tracks stored. A failed import keeps the previous rows.
func (a *TrackCacheAdapter) Import(source string, tracks []models.Track) (int, error) {
	persisted := make([]*models.PersistedTrack, 0, len(tracks))
	for _, track := range tracks {
		persisted = append(persisted, models.NewPersistedTrack(0, source, track))
	}
	return a.repo.ReplaceSource(source, persisted)
}

// Tracks returns cached tracks in import order, optionally limited to one source.
func (a *TrackCacheAdapter) Tracks(source string) ([]models.Track, error) {
	persisted, err := a.repo.List(map[string]any{"source": source})
	if err != nil {
		return nil, err
	}
	return models.Tracks(persisted), nil
}
