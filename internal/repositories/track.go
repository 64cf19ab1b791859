package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/desertthunder/libsort/internal/models"
	"github.com/desertthunder/libsort/internal/shared"
)

// TrackRepository implements models.Repository[*models.PersistedTrack] for track caching.
//
// Handles track caching with soft delete support and per-export lookups.
type TrackRepository struct {
	db *sql.DB
}

var _ models.Repository[*models.PersistedTrack] = (*TrackRepository)(nil)

// NewTrackRepository creates a new TrackRepository with the given database connection
func NewTrackRepository(db *sql.DB) *TrackRepository {
	return &TrackRepository{db: db}
}

const trackColumns = `id, sequence, source, title, artist, year, created_at, updated_at, deleted_at`

// Create inserts a new [models.PersistedTrack] into the database with generated ID and sequence
func (r *TrackRepository) Create(track *models.PersistedTrack) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := r.CreateTx(tx, track); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit track: %w", err)
	}
	return nil
}

// CreateTx inserts track inside tx, assigning its ID and sequence from the same transaction.
func (r *TrackRepository) CreateTx(tx *sql.Tx, track *models.PersistedTrack) error {
	sequence, err := nextSequence(tx, "tracks")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	track.SetID(id)
	track.SetSequence(sequence)

	if err := track.Validate(); err != nil {
		return fmt.Errorf("%w: validation failed: %w", shared.ErrInvalidInput, err)
	}

	query := `
		INSERT INTO tracks (id, sequence, source, title, artist, year, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = tx.Exec(query,
		id,
		sequence,
		track.Source(),
		track.Title(),
		track.Artist(),
		track.Year(),
		track.CreatedAt(),
		track.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert track: %w", err)
	}

	return nil
}

// ReplaceSource swaps every track imported from source for tracks in one transaction.
//
// On any failure the previous rows for source are left untouched.
func (r *TrackRepository) ReplaceSource(source string, tracks []*models.PersistedTrack) (int, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM tracks WHERE source = ?`, source); err != nil {
		return 0, fmt.Errorf("failed to clear previous import: %w", err)
	}

	for _, track := range tracks {
		if err := r.CreateTx(tx, track); err != nil {
			return 0, fmt.Errorf("failed to cache track %q: %w", track.Title(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit import: %w", err)
	}
	return len(tracks), nil
}

// Get retrieves a track by ID, excluding soft-deleted tracks
func (r *TrackRepository) Get(id string) (*models.PersistedTrack, error) {
	query := `SELECT ` + trackColumns + ` FROM tracks WHERE id = ? AND deleted_at IS NULL`

	return r.scan(r.db.QueryRow(query, id))
}

// Update modifies an existing track in the database
func (r *TrackRepository) Update(track *models.PersistedTrack) error {
	if err := track.Validate(); err != nil {
		return fmt.Errorf("%w: validation failed: %w", shared.ErrInvalidInput, err)
	}

	now := time.Now()
	track.SetUpdatedAt(now)

	query := `
		UPDATE tracks
		SET title = ?, artist = ?, year = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, track.Title(), track.Artist(), track.Year(), now, track.ID())
	if err != nil {
		return fmt.Errorf("failed to update track: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrTrackNotFound, track.ID())
	}

	return nil
}

// Delete soft-deletes a track by ID
func (r *TrackRepository) Delete(id string) error {
	query := `
		UPDATE tracks
		SET deleted_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete track: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrTrackNotFound, id)
	}

	return nil
}

// PurgeSource permanently removes every track imported from source, returning the number removed.
func (r *TrackRepository) PurgeSource(source string) (int64, error) {
	result, err := r.db.Exec(`DELETE FROM tracks WHERE source = ?`, source)
	if err != nil {
		return 0, fmt.Errorf("failed to purge tracks: %w", err)
	}
	return result.RowsAffected()
}

// Purge permanently removes every cached track.
func (r *TrackRepository) Purge() (int64, error) {
	result, err := r.db.Exec(`DELETE FROM tracks`)
	if err != nil {
		return 0, fmt.Errorf("failed to purge tracks: %w", err)
	}
	return result.RowsAffected()
}

// List retrieves all tracks matching the given criteria in import order, excluding soft-deleted tracks.
//
// Supported criteria: "source" (string), "min_year" and "max_year" (int, inclusive).
func (r *TrackRepository) List(criteria map[string]any) ([]*models.PersistedTrack, error) {
	query := `SELECT ` + trackColumns + ` FROM tracks WHERE deleted_at IS NULL`

	args := []any{}

	if source, ok := criteria["source"].(string); ok && source != "" {
		query += " AND source = ?"
		args = append(args, source)
	}

	if minYear, ok := criteria["min_year"].(int); ok {
		query += " AND year >= ?"
		args = append(args, minYear)
	}

	if maxYear, ok := criteria["max_year"].(int); ok {
		query += " AND year <= ?"
		args = append(args, maxYear)
	}

	query += " ORDER BY sequence ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tracks: %w", err)
	}
	defer rows.Close()

	var tracks []*models.PersistedTrack
	for rows.Next() {
		track, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, track)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return tracks, nil
}

// rowScanner is satisfied by both [sql.Row] and [sql.Rows]
type rowScanner interface {
	Scan(dest ...any) error
}

// scan reads one row into a [models.PersistedTrack]
func (r *TrackRepository) scan(row rowScanner) (*models.PersistedTrack, error) {
	var (
		id        string
		sequence  int
		source    string
		title     string
		artist    string
		year      int
		createdAt time.Time
		updatedAt time.Time
		deletedAt sql.NullTime
	)

	err := row.Scan(&id, &sequence, &source, &title, &artist, &year, &createdAt, &updatedAt, &deletedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, shared.ErrTrackNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan track: %w", err)
	}

	track := models.NewPersistedTrack(sequence, source, models.Track{Title: title, Artist: artist, Year: year})
	track.SetID(id)
	track.SetCreatedAt(createdAt)
	track.SetUpdatedAt(updatedAt)
	if deletedAt.Valid {
		track.SetDeletedAt(&deletedAt.Time)
	}

	return track, nil
}
