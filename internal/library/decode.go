package library

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/libsort/internal/models"
	"github.com/desertthunder/libsort/internal/shared"
)

// Result is the outcome of one extraction pass.
type Result struct {
	Tracks []models.Track // document order
	Stats  Stats
}

// Option configures an extraction pass.
type Option func(*options)

type options struct {
	logger *log.Logger
	onDrop func(DroppedEntry)
}

// WithLogger reports absorbed failures at warn level and dropped entries at debug level.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithDropHandler registers a callback invoked for every dropped track entry.
func WithDropHandler(fn func(DroppedEntry)) Option {
	return func(o *options) { o.onDrop = fn }
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) dropHandler() func(DroppedEntry) {
	if o.logger == nil && o.onDrop == nil {
		return nil
	}
	return func(d DroppedEntry) {
		if o.logger != nil {
			o.logger.Debug("dropped incomplete track entry", "key", d.Key, "fields", len(d.Fields))
		}
		if o.onDrop != nil {
			o.onDrop(d)
		}
	}
}

// Decode streams a library export from r.
//
// A document the XML decoder rejects yields an error wrapping [shared.ErrMalformedDocument]
// and no tracks; tracks collected before the failure are discarded.
func Decode(r io.Reader, opts ...Option) (*Result, error) {
	o := newOptions(opts)
	dec := xml.NewDecoder(r)
	m := NewMachine(o.dropHandler())
	tracks := []models.Track{}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", shared.ErrMalformedDocument, err)
		}

		ev, ok := FromToken(tok)
		if !ok {
			continue
		}
		if track, done := m.Step(ev); done {
			tracks = append(tracks, track)
		}
	}

	return &Result{Tracks: tracks, Stats: m.Stats()}, nil
}

// DecodeFile opens path and decodes it. An unreadable path yields an error
// wrapping [shared.ErrSourceUnavailable].
func DecodeFile(path string, opts ...Option) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", shared.ErrSourceUnavailable, err)
	}
	defer f.Close()

	return Decode(f, opts...)
}

// Load decodes the export at path, absorbing every failure into an empty result.
//
// The returned Result is never nil.
func Load(path string, opts ...Option) *Result {
	res, err := DecodeFile(path, opts...)
	if err != nil {
		if o := newOptions(opts); o.logger != nil {
			o.logger.Warn("library export could not be read", "path", path, "err", err)
		}
		return &Result{Tracks: []models.Track{}}
	}
	return res
}
