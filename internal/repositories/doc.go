// Package repositories implements SQLite persistence for cached tracks.
//
// The track cache lets the decade report be rebuilt without re-reading a large
// library export. Rows are keyed by a generated UUID and carry a sequence number
// that preserves the order in which tracks were imported, which is the order
// the reporter needs for stable grouping.
//
// Key Implementations:
//   - [TrackRepository] : CRUD over the tracks table with soft deletes
//   - [TrackCacheAdapter] : Replaces all cached tracks for one export in a single import
//
// The [NextSequence] function atomically increments per-table sequence counters in dedicated sequence tables.
package repositories
