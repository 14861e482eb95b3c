package pbxproj

import (
	"strings"
)

// InsertEntry adds entryText as the last record of the target section, or
// creates the section next to its anchor. Every other byte of the document
// is kept as is. entryText carries its own indentation.
func InsertEntry(doc Document, target Target, entryText string) (Document, error) {
	entryText = strings.TrimRight(entryText, "\n")
	if target.Exists {
		span := target.Span
		if span.End > doc.Len() || span.End < span.BeginEnd {
			return doc, structuralf("insert", target.Section, "stale section offsets")
		}
		insert := entryText + "\n"
		if doc.text[span.End-1] != '\n' {
			insert = "\n" + insert
		}
		return doc.insertAt(span.End, insert), nil
	}

	anchor := target.AnchorSpan
	if anchor.EndEnd > doc.Len() || anchor.Name == "" {
		return doc, structuralf("insert", target.Section, "no anchor to create the section at")
	}
	block := beginMarker(target.Section) + "\n" + entryText + "\n" + endMarker(target.Section)
	if target.Anchor.Placement == Before {
		return doc.insertAt(anchor.Begin, block+"\n\n"), nil
	}
	return doc.insertAt(anchor.EndEnd, "\n\n"+block), nil
}

// AppendListItem appends item to the list attribute key of entry, one item
// per line, indented one level deeper than the key. A missing attribute is
// created in key order. An item whose value is already listed is not added
// again.
func AppendListItem(doc Document, entry EntrySpan, key, item string) (Document, error) {
	attrs, err := entry.attributes(doc)
	if err != nil {
		return doc, err
	}
	for _, a := range attrs {
		if a.Key != key {
			continue
		}
		if a.Kind != valueList {
			return doc, structuralf("append", entry.Section, "%s.%s is not a list", entry.ID, key)
		}
		return appendToList(doc, entry, a, item)
	}
	return insertListAttribute(doc, entry, attrs, key, item), nil
}

func appendToList(doc Document, entry EntrySpan, a assignment, item string) (Document, error) {
	closePos := a.ValueEnd - 1
	items, err := parseListItems(doc.text, a.ValueStart, closePos)
	if err != nil {
		return doc, &StructuralError{Op: "append", Section: entry.Section, Reason: entry.ID + "." + a.Key + ": " + err.Error()}
	}
	value := listItemValue(item)
	for _, it := range items {
		if it.Value == value {
			return doc, nil
		}
	}

	// q is the end of the last token before the closing parenthesis.
	q := a.ValueStart + 1
	needComma := false
	if len(items) > 0 {
		last := items[len(items)-1]
		q = last.End
		needComma = true
		l := newLexer(doc.text, last.End, closePos)
		for {
			tok, ok, err := l.next()
			if err != nil || !ok {
				break
			}
			q = tok.end
			if tok.is(doc.text, ',') {
				needComma = false
			}
		}
	}

	indent := doc.indentAt(a.Start)
	var b strings.Builder
	if needComma {
		b.WriteByte(',')
	}
	b.WriteString("\n")
	b.WriteString(indent + INDENT + item + ",")
	b.WriteString("\n" + indent)
	return doc.splice(q, closePos, b.String()), nil
}

func insertListAttribute(doc Document, entry EntrySpan, attrs []assignment, key, item string) Document {
	indent := doc.indentAt(entry.Start) + INDENT
	if len(attrs) > 0 {
		indent = doc.indentAt(attrs[0].Start)
	}
	text := key + " = (\n" + indent + INDENT + item + ",\n" + indent + ");"

	// isa stays first, the rest is kept in key order
	idx := len(attrs)
	for i, a := range attrs {
		if a.Key != "isa" && a.Key > key {
			idx = i
			break
		}
	}
	if idx < len(attrs) {
		pos := doc.lineStart(attrs[idx].Start)
		return doc.insertAt(pos, indent+text+"\n")
	}
	if len(attrs) > 0 {
		return doc.insertAt(attrs[len(attrs)-1].End, "\n"+indent+text)
	}
	return doc.insertAt(entry.BodyStart, "\n"+indent+text)
}

// listItemValue extracts the identifier of an item such as
// `ABC /* Foo in Frameworks */`.
func listItemValue(item string) string {
	if idx := strings.Index(item, "/*"); idx >= 0 {
		item = item[:idx]
	}
	return unquote(strings.TrimSpace(item))
}
