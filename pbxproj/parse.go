package pbxproj

import (
	"fmt"
	"strings"
)

type valueKind int8

const (
	valueScalar valueKind = iota
	valueObject
	valueList
)

// assignment is one `key = value;` pair located in the document. Offsets
// are absolute. For objects and lists ValueStart is the opening delimiter
// and ValueEnd is one past the closing one.
type assignment struct {
	Key        string
	Comment    string
	Start      int
	ValueStart int
	ValueEnd   int
	End        int
	Kind       valueKind
}

func (a assignment) rawValue(src string) string {
	return src[a.ValueStart:a.ValueEnd]
}

// parseAssignments reads consecutive `key [/* c */] = value [/* c */];`
// pairs from src[from:to]. It does not descend into nested values.
func parseAssignments(src string, from, to int) ([]assignment, error) {
	var out []assignment
	l := newLexer(src, from, to)
	for {
		keyTok, ok, err := l.nextSignificant()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		if keyTok.kind != tokenWord && keyTok.kind != tokenString {
			return nil, fmt.Errorf("expected key at offset %d, found %q", keyTok.start, keyTok.text(src))
		}
		a := assignment{Key: unquote(keyTok.text(src)), Start: keyTok.start}

		tok, ok, err := l.next()
		for err == nil && ok && tok.kind == tokenComment {
			a.Comment = commentText(tok.text(src))
			tok, ok, err = l.next()
		}
		if err != nil {
			return nil, err
		}
		if !ok || !tok.is(src, '=') {
			return nil, fmt.Errorf("expected '=' after %q at offset %d", a.Key, keyTok.start)
		}

		valTok, ok, err := l.nextSignificant()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("missing value for %q at offset %d", a.Key, keyTok.start)
		}
		switch {
		case valTok.is(src, '{'), valTok.is(src, '('):
			closePos, err := matchClose(src, valTok.start, to)
			if err != nil {
				return nil, err
			}
			a.ValueStart, a.ValueEnd = valTok.start, closePos+1
			a.Kind = valueList
			if valTok.is(src, '{') {
				a.Kind = valueObject
			}
			l.pos = closePos + 1
		case valTok.kind == tokenWord, valTok.kind == tokenString:
			a.ValueStart, a.ValueEnd = valTok.start, valTok.end
			a.Kind = valueScalar
		default:
			return nil, fmt.Errorf("unexpected %q for %q at offset %d", valTok.text(src), a.Key, valTok.start)
		}

		semi, ok, err := l.nextSignificant()
		if err != nil {
			return nil, err
		}
		if !ok || !semi.is(src, ';') {
			return nil, fmt.Errorf("expected ';' after %q at offset %d", a.Key, a.ValueEnd)
		}
		a.End = semi.end
		out = append(out, a)
	}
}

// listItem is one element of a `( ... )` list. End covers a trailing
// comment but not the separating comma.
type listItem struct {
	Value   string
	Comment string
	Start   int
	End     int
}

// parseListItems reads the items between the parentheses at open and closePos.
func parseListItems(src string, open, closePos int) ([]listItem, error) {
	var out []listItem
	var cur *listItem
	l := newLexer(src, open+1, closePos)
	for {
		tok, ok, err := l.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		switch {
		case tok.kind == tokenComment:
			if cur != nil {
				cur.Comment = commentText(tok.text(src))
				cur.End = tok.end
			}
		case tok.is(src, ','):
			if cur == nil {
				return nil, fmt.Errorf("empty list item at offset %d", tok.start)
			}
			out = append(out, *cur)
			cur = nil
		case tok.is(src, '{'), tok.is(src, '('):
			end, err := matchClose(src, tok.start, closePos)
			if err != nil {
				return nil, err
			}
			cur = &listItem{Value: src[tok.start : end+1], Start: tok.start, End: end + 1}
			l.pos = end + 1
		case tok.kind == tokenWord, tok.kind == tokenString:
			if cur != nil {
				return nil, fmt.Errorf("missing ',' before offset %d", tok.start)
			}
			cur = &listItem{Value: unquote(tok.text(src)), Start: tok.start, End: tok.end}
		default:
			return nil, fmt.Errorf("unexpected %q in list at offset %d", tok.text(src), tok.start)
		}
	}
	if cur != nil {
		out = append(out, *cur)
	}
	return out, nil
}

// rootBody returns the interior of the outermost object.
func rootBody(doc Document) (int, int, error) {
	l := newLexer(doc.text, 0, len(doc.text))
	tok, ok, err := l.nextSignificant()
	if err != nil {
		return 0, 0, err
	}
	if !ok || !tok.is(doc.text, '{') {
		return 0, 0, fmt.Errorf("document does not start with an object")
	}
	closePos, err := matchClose(doc.text, tok.start, len(doc.text))
	if err != nil {
		return 0, 0, err
	}
	return tok.start + 1, closePos, nil
}

// rootAttribute returns the unquoted value of a top-level scalar such as
// rootObject.
func rootAttribute(doc Document, key string) (string, bool, error) {
	start, end, err := rootBody(doc)
	if err != nil {
		return "", false, err
	}
	attrs, err := parseAssignments(doc.text, start, end)
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

func unquote(s string) string {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return s
	}
	s = s[1 : len(s)-1]
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
