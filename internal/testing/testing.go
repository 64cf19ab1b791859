// package testing contains shared testing utilities
package testing

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// Field is a single key/value pair inside a plist track dictionary.
type Field struct {
	Key   string
	Kind  string // string, integer, date, true, ...
	Value string
}

// String returns a string-typed field.
func String(key, value string) Field { return Field{Key: key, Kind: "string", Value: value} }

// Integer returns an integer-typed field.
func Integer(key, value string) Field { return Field{Key: key, Kind: "integer", Value: value} }

// Entry is one track dictionary in the Tracks section, keyed by its track ID.
type Entry struct {
	ID     string
	Fields []Field
}

// Song builds a typical entry with Name, Artist and an integer Year.
func Song(id, name, artist, year string) Entry {
	return Entry{ID: id, Fields: []Field{
		Integer("Track ID", id),
		String("Name", name),
		String("Artist", artist),
		Integer("Year", year),
	}}
}

// LibraryXML renders a library export with the given track entries followed by
// a Playlists section whose dictionaries must never be read as tracks.
func LibraryXML(entries ...Entry) string {
	var b bytes.Buffer
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple Computer//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Major Version</key><integer>1</integer>
	<key>Minor Version</key><integer>1</integer>
	<key>Application Version</key><string>1.5.0.73</string>
	<key>Show Content Ratings</key><true/>
	<key>Tracks</key>
	<dict>
`)
	for _, e := range entries {
		b.WriteString("\t\t<key>")
		writeEscaped(&b, e.ID)
		b.WriteString("</key>\n\t\t<dict>\n")
		for _, f := range e.Fields {
			b.WriteString("\t\t\t<key>")
			writeEscaped(&b, f.Key)
			b.WriteString("</key>")
			if f.Kind == "true" || f.Kind == "false" {
				b.WriteString("<" + f.Kind + "/>\n")
				continue
			}
			b.WriteString("<" + f.Kind + ">")
			writeEscaped(&b, f.Value)
			b.WriteString("</" + f.Kind + ">\n")
		}
		b.WriteString("\t\t</dict>\n")
	}
	b.WriteString(`	</dict>
	<key>Playlists</key>
	<array>
		<dict>
			<key>Name</key><string>Library</string>
			<key>Artist</key><string>Not A Track</string>
			<key>Playlist Items</key>
			<array>
				<dict>
					<key>Track ID</key><integer>1</integer>
				</dict>
			</array>
		</dict>
	</array>
</dict>
</plist>
`)
	return b.String()
}

func writeEscaped(b *bytes.Buffer, s string) {
	_ = xml.EscapeText(b, []byte(s))
}

// WriteFixture writes content into a temp directory and returns its path.
func WriteFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write fixture %s: %v", path, err)
	}
	return path
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
