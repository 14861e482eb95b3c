package pbxproj

import (
	"strings"
)

const (
	sectionBeginPrefix = "Begin "
	sectionEndPrefix   = "End "
	sectionSuffix      = " section"
)

// SectionSpan locates one `/* Begin X section */ ... /* End X section */`
// block. Begin/BeginEnd bound the begin marker, End/EndEnd the end marker,
// so the interior is [BeginEnd, End).
type SectionSpan struct {
	Name     string
	Begin    int
	BeginEnd int
	End      int
	EndEnd   int
}

type marker struct {
	name  string
	begin bool
	start int
	end   int
}

// sectionMarkers lists every section marker comment in document order.
// Text inside quoted strings is never mistaken for a marker.
func sectionMarkers(doc Document) ([]marker, error) {
	var out []marker
	l := newLexer(doc.text, 0, len(doc.text))
	for {
		tok, ok, err := l.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		if tok.kind != tokenComment {
			continue
		}
		if m, ok := parseMarker(tok.text(doc.text)); ok {
			m.start, m.end = tok.start, tok.end
			out = append(out, m)
		}
	}
}

func parseMarker(raw string) (marker, bool) {
	if !strings.HasPrefix(raw, "/*") {
		return marker{}, false
	}
	text := commentText(raw)
	if !strings.HasSuffix(text, sectionSuffix) {
		return marker{}, false
	}
	text = strings.TrimSuffix(text, sectionSuffix)
	switch {
	case strings.HasPrefix(text, sectionBeginPrefix):
		return marker{name: strings.TrimPrefix(text, sectionBeginPrefix), begin: true}, true
	case strings.HasPrefix(text, sectionEndPrefix):
		return marker{name: strings.TrimPrefix(text, sectionEndPrefix)}, true
	}
	return marker{}, false
}

func beginMarker(name string) string {
	return "/* " + sectionBeginPrefix + name + sectionSuffix + " */"
}

func endMarker(name string) string {
	return "/* " + sectionEndPrefix + name + sectionSuffix + " */"
}

// LookupSection finds the named section. Absence is reported through the
// bool; a begin marker without its end marker, or a second section with the
// same name, is a *StructuralError.
func LookupSection(doc Document, name string) (SectionSpan, bool, error) {
	markers, err := sectionMarkers(doc)
	if err != nil {
		return SectionSpan{}, false, &StructuralError{Op: "lookup", Section: name, Reason: err.Error()}
	}
	var span SectionSpan
	open, found := false, false
	for _, m := range markers {
		if m.name != name {
			continue
		}
		switch {
		case m.begin && open:
			return SectionSpan{}, false, structuralf("lookup", name, "begin marker at offset %d inside an open section", m.start)
		case m.begin && found:
			return SectionSpan{}, false, structuralf("lookup", name, "duplicate section at offset %d", m.start)
		case m.begin:
			span = SectionSpan{Name: name, Begin: m.start, BeginEnd: m.end}
			open = true
		case !open:
			return SectionSpan{}, false, structuralf("lookup", name, "end marker at offset %d without begin marker", m.start)
		default:
			span.End, span.EndEnd = m.start, m.end
			open, found = false, true
		}
	}
	if open {
		return SectionSpan{}, false, structuralf("lookup", name, "begin marker at offset %d has no end marker", span.Begin)
	}
	return span, found, nil
}

type Placement int8

const (
	// After places a synthesized section right after the anchor's end marker.
	After Placement = iota
	// Before places it right before the anchor's begin marker.
	Before
)

func (p Placement) String() string {
	if p == Before {
		return "before"
	}
	return "after"
}

// Anchor names an existing section a missing one is created next to.
type Anchor struct {
	Section   string
	Placement Placement
}

// Target is where an entry for a section goes: inside the existing section,
// or into a new section placed next to Anchor.
type Target struct {
	Section    string
	Exists     bool
	Span       SectionSpan
	Anchor     Anchor
	AnchorSpan SectionSpan
}

// Locate resolves the insertion target for section. When the section is
// absent the first anchor that is present decides the placement.
func Locate(doc Document, section string, anchors ...Anchor) (Target, error) {
	span, ok, err := LookupSection(doc, section)
	if err != nil {
		return Target{}, err
	}
	if ok {
		return Target{Section: section, Exists: true, Span: span}, nil
	}
	for _, a := range anchors {
		aspan, ok, err := LookupSection(doc, a.Section)
		if err != nil {
			return Target{}, err
		}
		if ok {
			return Target{Section: section, Anchor: a, AnchorSpan: aspan}, nil
		}
	}
	names := make([]string, 0, len(anchors))
	for _, a := range anchors {
		names = append(names, a.Section)
	}
	return Target{}, structuralf("locate", section, "section is missing and no anchor section is present (tried %s)", strings.Join(names, ", "))
}
