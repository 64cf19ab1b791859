package library

import "encoding/xml"

// EventKind identifies the three token kinds the extractor reacts to.
type EventKind int

const (
	StartElement EventKind = iota
	CharData
	EndElement
)

func (k EventKind) String() string {
	switch k {
	case StartElement:
		return "start"
	case CharData:
		return "chardata"
	case EndElement:
		return "end"
	default:
		return ""
	}
}

// Event is a single parser notification: an element opening, text, or an element closing.
type Event struct {
	Kind EventKind
	Name string // element local name, empty for CharData
	Text string // character data, empty for elements
}

// Start returns a StartElement event for name.
func Start(name string) Event { return Event{Kind: StartElement, Name: name} }

// Text returns a CharData event.
func Text(s string) Event { return Event{Kind: CharData, Text: s} }

// End returns an EndElement event for name.
func End(name string) Event { return Event{Kind: EndElement, Name: name} }

// FromToken converts a decoder token into an [Event].
//
// Comments, processing instructions and directives (the plist DOCTYPE) carry no
// track data and report false.
func FromToken(tok xml.Token) (Event, bool) {
	switch t := tok.(type) {
	case xml.StartElement:
		return Start(t.Name.Local), true
	case xml.EndElement:
		return End(t.Name.Local), true
	case xml.CharData:
		return Text(string(t)), true
	default:
		return Event{}, false
	}
}
