package pbxproj

// EntrySpan locates one `ID /* comment */ = { ... };` record. The body is
// the text between the braces.
type EntrySpan struct {
	Section   string
	ID        string
	Comment   string
	Start     int
	End       int
	BodyStart int
	BodyEnd   int
}

// Entries lists the records of a section in document order. A missing
// section yields no entries and no error.
func Entries(doc Document, section string) ([]EntrySpan, error) {
	span, ok, err := LookupSection(doc, section)
	if err != nil || !ok {
		return nil, err
	}
	attrs, err := parseAssignments(doc.text, span.BeginEnd, span.End)
	if err != nil {
		return nil, &StructuralError{Op: "entries", Section: section, Reason: err.Error()}
	}
	out := make([]EntrySpan, 0, len(attrs))
	for _, a := range attrs {
		if a.Kind != valueObject {
			return nil, structuralf("entries", section, "entry %s is not an object", a.Key)
		}
		out = append(out, EntrySpan{
			Section:   section,
			ID:        a.Key,
			Comment:   a.Comment,
			Start:     a.Start,
			End:       a.End,
			BodyStart: a.ValueStart + 1,
			BodyEnd:   a.ValueEnd - 1,
		})
	}
	return out, nil
}

// FindEntry looks up a record by identifier within a section.
func FindEntry(doc Document, section, id string) (EntrySpan, bool, error) {
	entries, err := Entries(doc, section)
	if err != nil {
		return EntrySpan{}, false, err
	}
	for _, e := range entries {
		if e.ID == id {
			return e, true, nil
		}
	}
	return EntrySpan{}, false, nil
}

func (e EntrySpan) attributes(doc Document) ([]assignment, error) {
	attrs, err := parseAssignments(doc.text, e.BodyStart, e.BodyEnd)
	if err != nil {
		return nil, &StructuralError{Op: "attributes", Section: e.Section, Reason: e.ID + ": " + err.Error()}
	}
	return attrs, nil
}

// Attribute returns the unquoted value of a scalar attribute of the entry.
func (e EntrySpan) Attribute(doc Document, key string) (string, bool, error) {
	attrs, err := e.attributes(doc)
	if err != nil {
		return "", false, err
	}
	for _, a := range attrs {
		if a.Key == key && a.Kind == valueScalar {
			return unquote(a.rawValue(doc.text)), true, nil
		}
	}
	return "", false, nil
}

// ListValues returns the item values of a list attribute, without comments.
func (e EntrySpan) ListValues(doc Document, key string) ([]string, error) {
	attrs, err := e.attributes(doc)
	if err != nil {
		return nil, err
	}
	for _, a := range attrs {
		if a.Key != key || a.Kind != valueList {
			continue
		}
		items, err := parseListItems(doc.text, a.ValueStart, a.ValueEnd-1)
		if err != nil {
			return nil, &StructuralError{Op: "list", Section: e.Section, Reason: e.ID + "." + key + ": " + err.Error()}
		}
		values := make([]string, 0, len(items))
		for _, it := range items {
			values = append(values, it.Value)
		}
		return values, nil
	}
	return nil, nil
}

// findEntryWhere returns the first entry of section accepted by match.
func findEntryWhere(doc Document, section string, match func(EntrySpan) (bool, error)) (EntrySpan, bool, error) {
	entries, err := Entries(doc, section)
	if err != nil {
		return EntrySpan{}, false, err
	}
	for _, e := range entries {
		ok, err := match(e)
		if err != nil {
			return EntrySpan{}, false, err
		}
		if ok {
			return e, true, nil
		}
	}
	return EntrySpan{}, false, nil
}
