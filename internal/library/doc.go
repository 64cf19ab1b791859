// Package library extracts tracks from a property-list music library export.
//
// The export is a root dictionary whose "Tracks" entry maps track IDs to one
// dictionary per track. Extraction is a single streaming pass: an [xml.Decoder]
// produces tokens, [FromToken] narrows them to the three [Event] kinds the
// extractor cares about, and a [Machine] consumes them one at a time, returning
// a [models.Track] whenever a track entry closes with both a Name and an Artist.
//
// # States
//
// The [Machine] moves between three states:
//
//  1. [StateRoot] : outside the Tracks section; watches for a "Tracks" key
//     immediately followed by a dict
//  2. [StateTracksSection] : inside the Tracks dictionary; each child dict opens
//     a track entry, closing the section dict returns to Root
//  3. [StateTrackEntry] : collecting string and integer fields for one track;
//     nested dictionaries are skipped
//
// # Recovery
//
// Entries missing Name or Artist are dropped without aborting the pass; a
// Year that is missing or not an integer becomes 0. [Load] absorbs unreadable
// paths and malformed documents into an empty result so callers always get a
// (possibly empty) track list. [Decode] and [DecodeFile] return the error instead.
package library
