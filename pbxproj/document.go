package pbxproj

// Document is the full text of a project file. Mutations return a new
// Document and leave the receiver untouched.
type Document struct {
	text string
}

func NewDocument(text string) Document {
	return Document{text: text}
}

func (d Document) String() string {
	return d.text
}

func (d Document) Len() int {
	return len(d.text)
}

// splice replaces text[start:end] with insert.
func (d Document) splice(start, end int, insert string) Document {
	return Document{text: d.text[:start] + insert + d.text[end:]}
}

func (d Document) insertAt(pos int, insert string) Document {
	return d.splice(pos, pos, insert)
}

// lineStart returns the offset of the first byte of the line holding pos.
func (d Document) lineStart(pos int) int {
	for pos > 0 && d.text[pos-1] != '\n' {
		pos--
	}
	return pos
}

// indentAt returns the leading whitespace of the line holding pos.
func (d Document) indentAt(pos int) string {
	start := d.lineStart(pos)
	end := start
	for end < len(d.text) && (d.text[end] == '\t' || d.text[end] == ' ') {
		end++
	}
	return d.text[start:end]
}
