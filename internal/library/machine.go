package library

import (
	"strings"

	"github.com/desertthunder/libsort/internal/models"
)

// Element and key names from the property-list dialect.
const (
	elemKey     = "key"
	elemDict    = "dict"
	elemString  = "string"
	elemInteger = "integer"

	sectionTracks = "Tracks"

	FieldName   = "Name"
	FieldArtist = "Artist"
	FieldYear   = "Year"
)

// State is the extractor's position in the document.
type State int

const (
	StateRoot State = iota
	StateTracksSection
	StateTrackEntry
)

func (s State) String() string {
	switch s {
	case StateRoot:
		return "root"
	case StateTracksSection:
		return "tracks_section"
	case StateTrackEntry:
		return "track_entry"
	default:
		return ""
	}
}

// DroppedEntry describes a track entry that closed without a Name or an Artist.
type DroppedEntry struct {
	Key    string            // key of the entry inside the Tracks dict (the track ID)
	Fields map[string]string // fields collected before the entry closed
}

// Stats counts what a single extraction pass saw.
type Stats struct {
	Tracks   int // entries turned into tracks
	Dropped  int // entries missing Name or Artist
	Sections int // Tracks sections entered
}

// Machine is the extraction state machine. It is fed one [Event] at a time by
// [Machine.Step] and owns all working state for a single pass; create a new
// Machine for every document.
type Machine struct {
	state        State
	currentKey   string
	currentValue strings.Builder
	pending      map[string]string
	entryKey     string
	sectionArmed bool // the last closed element was the key "Tracks"
	depth        int  // nested dicts open inside the current track entry
	stats        Stats
	onDrop       func(DroppedEntry)
}

// NewMachine returns a Machine in [StateRoot]. onDrop may be nil.
func NewMachine(onDrop func(DroppedEntry)) *Machine {
	return &Machine{state: StateRoot, onDrop: onDrop}
}

// State reports the current state.
func (m *Machine) State() State { return m.state }

// Stats reports counters for the events consumed so far.
func (m *Machine) Stats() Stats { return m.stats }

// Step consumes one event. It returns a track and true when the event closed a
// complete track entry.
func (m *Machine) Step(ev Event) (models.Track, bool) {
	switch ev.Kind {
	case StartElement:
		m.currentValue.Reset()
		m.start(ev.Name)
	case CharData:
		if s := strings.TrimSpace(ev.Text); s != "" {
			m.currentValue.WriteString(s)
		}
	case EndElement:
		return m.end(ev.Name)
	}
	return models.Track{}, false
}

func (m *Machine) start(name string) {
	armed := m.sectionArmed
	m.sectionArmed = false

	switch m.state {
	case StateRoot:
		if name == elemDict && armed {
			m.state = StateTracksSection
			m.stats.Sections++
		}
	case StateTracksSection:
		if name == elemDict {
			m.state = StateTrackEntry
			m.pending = make(map[string]string)
			m.entryKey = m.currentKey
			m.depth = 0
		}
	case StateTrackEntry:
		if name == elemDict {
			m.depth++
		}
	}
}

func (m *Machine) end(name string) (models.Track, bool) {
	value := m.currentValue.String()

	switch m.state {
	case StateRoot:
		if name == elemKey {
			m.currentKey = value
			m.sectionArmed = value == sectionTracks
		}
	case StateTracksSection:
		switch name {
		case elemKey:
			m.currentKey = value
		case elemDict:
			// Closing the Tracks dict ends the section for good; later dicts
			// such as Playlists are never read as tracks.
			m.state = StateRoot
		}
	case StateTrackEntry:
		if m.depth > 0 {
			if name == elemDict {
				m.depth--
			}
			return models.Track{}, false
		}

		switch name {
		case elemKey:
			m.currentKey = value
		case elemString, elemInteger:
			m.pending[m.currentKey] = value
		case elemDict:
			return m.closeEntry()
		}
	}
	return models.Track{}, false
}

// closeEntry finishes the current track entry and returns to the Tracks section.
func (m *Machine) closeEntry() (models.Track, bool) {
	fields := m.pending
	m.pending = nil
	m.state = StateTracksSection

	name, hasName := fields[FieldName]
	artist, hasArtist := fields[FieldArtist]
	if !hasName || !hasArtist {
		m.stats.Dropped++
		if m.onDrop != nil {
			m.onDrop(DroppedEntry{Key: m.entryKey, Fields: fields})
		}
		return models.Track{}, false
	}

	m.stats.Tracks++
	return models.NewTrack(name, artist, fields[FieldYear]), true
}
