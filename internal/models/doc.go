// Package models defines domain entities and persistence interfaces for the libsort decade sorter.
//
// The package contains two categories of types:
//
// 1. Data Transfer Objects (DTOs): Lightweight, immutable values produced by the library extractor
//   - [Track] : Song metadata (title, artist, year) read from a library export
//
// 2. Persistent Entities: Database-backed models with full lifecycle management
//   - [PersistedTrack] : Cached tracks so reports can be rebuilt without re-parsing the export
//
// Decade bucketing lives here as well ([DecadeLabel], [Track.Decade]) since both the
// reporter and the track cache group by it.
//
// All persistent entities implement the Model interface providing ID generation, timestamps, and validation.
// The Repository[T] interface defines standard CRUD operations for database access.
package models
