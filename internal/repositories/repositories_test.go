package repositories

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/desertthunder/libsort/internal/models"
	"github.com/desertthunder/libsort/internal/shared"
)

// setupTestDB creates a temporary SQLite database with migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func newTrack(source, title string, year int) *models.PersistedTrack {
	return models.NewPersistedTrack(0, source, models.Track{Title: title, Artist: "Artist", Year: year})
}

func TestNextSequence(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	for want := 1; want <= 3; want++ {
		got, err := NextSequence(db, "tracks")
		if err != nil {
			t.Fatalf("NextSequence() error = %v", err)
		}
		if got != want {
			t.Errorf("NextSequence() = %d, want %d", got, want)
		}
	}
}

func TestTrackRepository(t *testing.T) {
	t.Run("Create", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewTrackRepository(db)
		track := newTrack("Library.xml", "Song A", 1994)

		if err := repo.Create(track); err != nil {
			t.Fatalf("failed to create track: %v", err)
		}

		if track.ID() == "" {
			t.Error("track ID should be set after creation")
		}
		if track.Sequence() != 1 {
			t.Errorf("expected sequence 1, got %d", track.Sequence())
		}
	})

	t.Run("Get", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewTrackRepository(db)
		track := newTrack("Library.xml", "Song A", 1994)
		if err := repo.Create(track); err != nil {
			t.Fatalf("failed to create track: %v", err)
		}

		retrieved, err := repo.Get(track.ID())
		if err != nil {
			t.Fatalf("failed to get track: %v", err)
		}

		if retrieved.Track() != track.Track() {
			t.Errorf("expected %+v, got %+v", track.Track(), retrieved.Track())
		}
		if retrieved.Source() != "Library.xml" {
			t.Errorf("expected source Library.xml, got %s", retrieved.Source())
		}
	})

	t.Run("Update", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewTrackRepository(db)
		track := newTrack("Library.xml", "Song A", 0)
		if err := repo.Create(track); err != nil {
			t.Fatalf("failed to create track: %v", err)
		}

		track.SetTrack(models.Track{Title: "Song A", Artist: "Artist", Year: 1994})
		if err := repo.Update(track); err != nil {
			t.Fatalf("failed to update track: %v", err)
		}

		retrieved, err := repo.Get(track.ID())
		if err != nil {
			t.Fatalf("failed to get track: %v", err)
		}
		if retrieved.Year() != 1994 {
			t.Errorf("expected year 1994, got %d", retrieved.Year())
		}
	})

	t.Run("Delete", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewTrackRepository(db)
		track := newTrack("Library.xml", "Song A", 1994)
		if err := repo.Create(track); err != nil {
			t.Fatalf("failed to create track: %v", err)
		}

		if err := repo.Delete(track.ID()); err != nil {
			t.Fatalf("failed to delete track: %v", err)
		}

		if _, err := repo.Get(track.ID()); !errors.Is(err, shared.ErrTrackNotFound) {
			t.Errorf("expected ErrTrackNotFound for deleted track, got %v", err)
		}
	})

	t.Run("List", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewTrackRepository(db)
		for _, track := range []*models.PersistedTrack{
			newTrack("a.xml", "One", 1971),
			newTrack("b.xml", "Two", 1985),
			newTrack("a.xml", "Three", 1999),
		} {
			if err := repo.Create(track); err != nil {
				t.Fatalf("failed to create track: %v", err)
			}
		}

		all, err := repo.List(map[string]any{})
		if err != nil {
			t.Fatalf("failed to list tracks: %v", err)
		}
		if len(all) != 3 {
			t.Fatalf("expected 3 tracks, got %d", len(all))
		}
		if all[0].Title() != "One" || all[2].Title() != "Three" {
			t.Errorf("tracks not in import order")
		}

		fromA, err := repo.List(map[string]any{"source": "a.xml"})
		if err != nil {
			t.Fatalf("failed to list tracks: %v", err)
		}
		if len(fromA) != 2 {
			t.Errorf("expected 2 tracks from a.xml, got %d", len(fromA))
		}

		eighties, err := repo.List(map[string]any{"min_year": 1980, "max_year": 1989})
		if err != nil {
			t.Fatalf("failed to list tracks: %v", err)
		}
		if len(eighties) != 1 || eighties[0].Title() != "Two" {
			t.Errorf("unexpected year filter result: %d tracks", len(eighties))
		}
	})

	t.Run("Purge", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewTrackRepository(db)
		for _, track := range []*models.PersistedTrack{
			newTrack("a.xml", "One", 1971),
			newTrack("b.xml", "Two", 1985),
		} {
			if err := repo.Create(track); err != nil {
				t.Fatalf("failed to create track: %v", err)
			}
		}

		n, err := repo.PurgeSource("a.xml")
		if err != nil || n != 1 {
			t.Fatalf("PurgeSource() = %d, %v", n, err)
		}

		n, err = repo.Purge()
		if err != nil || n != 1 {
			t.Fatalf("Purge() = %d, %v", n, err)
		}
	})
}

func TestTrackCacheAdapter(t *testing.T) {
	t.Run("Import preserves order", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		cache := NewTrackCacheAdapter(NewTrackRepository(db))
		tracks := []models.Track{
			{Title: "B", Artist: "x", Year: 1978},
			{Title: "A", Artist: "y", Year: 1975},
		}

		n, err := cache.Import("Library.xml", tracks)
		if err != nil || n != 2 {
			t.Fatalf("Import() = %d, %v", n, err)
		}

		got, err := cache.Tracks("Library.xml")
		if err != nil {
			t.Fatalf("Tracks() error = %v", err)
		}
		if len(got) != 2 || got[0] != tracks[0] || got[1] != tracks[1] {
			t.Errorf("Tracks() = %+v, want %+v", got, tracks)
		}
	})

	t.Run("Import replaces previous rows", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		cache := NewTrackCacheAdapter(NewTrackRepository(db))
		if _, err := cache.Import("Library.xml", []models.Track{{Title: "Old", Artist: "x", Year: 1960}}); err != nil {
			t.Fatalf("first import failed: %v", err)
		}
		if _, err := cache.Import("Other.xml", []models.Track{{Title: "Other", Artist: "z", Year: 2001}}); err != nil {
			t.Fatalf("other import failed: %v", err)
		}
		if _, err := cache.Import("Library.xml", []models.Track{{Title: "New", Artist: "y", Year: 1990}}); err != nil {
			t.Fatalf("second import failed: %v", err)
		}

		got, err := cache.Tracks("Library.xml")
		if err != nil {
			t.Fatalf("Tracks() error = %v", err)
		}
		if len(got) != 1 || got[0].Title != "New" {
			t.Errorf("expected only the new import, got %+v", got)
		}

		all, err := cache.Tracks("")
		if err != nil {
			t.Fatalf("Tracks() error = %v", err)
		}
		if len(all) != 2 {
			t.Errorf("expected 2 tracks across sources, got %d", len(all))
		}
	})
	t.Run("failed import keeps previous rows", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		cache := NewTrackCacheAdapter(NewTrackRepository(db))
		original := []models.Track{
			{Title: "x", Artist: "X", Year: 1971},
			{Title: "y", Artist: "Y", Year: 1972},
		}
		if _, err := cache.Import("Library.xml", original); err != nil {
			t.Fatalf("first import failed: %v", err)
		}

		var before int
		if err := db.QueryRow("SELECT value FROM tracks_sequence WHERE id = 1").Scan(&before); err != nil {
			t.Fatal(err)
		}

		if _, err := db.Exec(`
			CREATE TRIGGER reject_boom BEFORE INSERT ON tracks
			WHEN NEW.title = 'BOOM'
			BEGIN SELECT RAISE(ABORT, 'rejected'); END
		`); err != nil {
			t.Fatalf("failed to create trigger: %v", err)
		}

		n, err := cache.Import("Library.xml", []models.Track{
			{Title: "a", Artist: "A", Year: 1980},
			{Title: "BOOM", Artist: "B", Year: 1981},
		})
		if err == nil {
			t.Fatal("expected import to fail")
		}
		if n != 0 {
			t.Errorf("expected 0 tracks reported after failure, got %d", n)
		}

		got, err := cache.Tracks("Library.xml")
		if err != nil {
			t.Fatalf("Tracks() error = %v", err)
		}
		if len(got) != 2 || got[0] != original[0] || got[1] != original[1] {
			t.Errorf("previous import lost: got %+v, want %+v", got, original)
		}

		var after int
		if err := db.QueryRow("SELECT value FROM tracks_sequence WHERE id = 1").Scan(&after); err != nil {
			t.Fatal(err)
		}
		if after != before {
			t.Errorf("sequence advanced from %d to %d after rollback", before, after)
		}
	})

	t.Run("ReplaceSource rejects invalid rows atomically", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewTrackRepository(db)
		if _, err := repo.ReplaceSource("a.xml", []*models.PersistedTrack{newTrack("a.xml", "Keep", 1990)}); err != nil {
			t.Fatalf("ReplaceSource() error = %v", err)
		}

		_, err := repo.ReplaceSource("a.xml", []*models.PersistedTrack{
			newTrack("a.xml", "New", 2000),
			newTrack(" ", "Blank Source", 2001),
		})
		if !errors.Is(err, shared.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}

		tracks, err := repo.List(map[string]any{})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(tracks) != 1 || tracks[0].Title() != "Keep" {
			t.Errorf("expected only the original row, got %d rows", len(tracks))
		}
	})
}
